package repos

import (
	"strings"

	"github.com/taskboard/taskboard/internal/db/models"
)

type ProjectRepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func (s *ProjectRepositoryTestSuite) TestCreateProject() {
	project := &models.Project{
		Name:        "website-redesign",
		Description: "Redesign of the marketing site",
	}

	err := s.projectRepo.Create(s.ctx, project)
	s.Require().NoError(err)
	s.Require().NotZero(project.ID)

	created, err := s.projectRepo.Get(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Require().Equal(project.Name, created.Name)
	s.Require().Equal(project.Description, created.Description)
}

func (s *ProjectRepositoryTestSuite) TestCreateProjectWithoutName() {
	err := s.projectRepo.Create(s.ctx, &models.Project{Description: "nameless"})
	s.Require().Error(err)
}

func (s *ProjectRepositoryTestSuite) TestCreateProjectDuplicateName() {
	project := s.createTestProject()

	err := s.projectRepo.Create(s.ctx, &models.Project{Name: project.Name})
	s.Require().Error(err)
}

func (s *ProjectRepositoryTestSuite) TestGetProjectNotFound() {
	_, err := s.projectRepo.Get(s.ctx, 999)
	s.Require().Error(err)
}

func (s *ProjectRepositoryTestSuite) TestGetProjectByNameIgnoresCase() {
	project := s.createTestProject()

	found, err := s.projectRepo.GetByName(s.ctx, strings.ToUpper(project.Name))
	s.Require().NoError(err)
	s.Require().Equal(project.ID, found.ID)

	_, err = s.projectRepo.GetByName(s.ctx, "no-such-project")
	s.Require().Error(err)
}

func (s *ProjectRepositoryTestSuite) TestListProjectsNewestFirstPaginated() {
	for i := 0; i < 7; i++ {
		s.createTestProject()
	}

	page, err := s.projectRepo.List(s.ctx, &models.ListOptions{Limit: 5, Offset: 0})
	s.Require().NoError(err)
	s.Require().Len(page, 5)
	for i := 1; i < len(page); i++ {
		s.Require().Greater(page[i-1].ID, page[i].ID)
	}

	rest, err := s.projectRepo.List(s.ctx, &models.ListOptions{Limit: 5, Offset: 5})
	s.Require().NoError(err)
	s.Require().Len(rest, 2)
	s.Require().Less(rest[0].ID, page[len(page)-1].ID)
}

func (s *ProjectRepositoryTestSuite) TestListAllProjects() {
	for i := 0; i < 3; i++ {
		s.createTestProject()
	}

	all, err := s.projectRepo.ListAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
}
