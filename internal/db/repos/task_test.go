package repos

import (
	"strings"
	"time"

	"github.com/taskboard/taskboard/internal/db/models"
)

type TaskRepositoryTestSuite struct {
	DBRepositoryTestSuite
}

func (s *TaskRepositoryTestSuite) TestCreateTask() {
	project := s.createTestProject()

	due := models.NewDateOnly(time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC))
	task := &models.Task{
		ProjectID:   project.ID,
		Title:       "write release notes",
		Description: "cover the breaking changes",
		Status:      "TO_DO",
		DueDate:     &due,
	}

	err := s.taskRepo.Create(s.ctx, task)
	s.Require().NoError(err)
	s.Require().NotZero(task.ID)

	created, err := s.taskRepo.Get(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Require().Equal(task.Title, created.Title)
	s.Require().Equal(task.ProjectID, created.ProjectID)
	s.Require().Equal(task.Status, created.Status)
	s.Require().NotNil(created.DueDate)
	s.Require().True(due.Equal(*created.DueDate))
}

func (s *TaskRepositoryTestSuite) TestCreateTaskWithoutTitle() {
	project := s.createTestProject()

	err := s.taskRepo.Create(s.ctx, &models.Task{ProjectID: project.ID})
	s.Require().Error(err)
}

func (s *TaskRepositoryTestSuite) TestGetTaskByTitleScopedToProject() {
	project := s.createTestProject()
	other := s.createTestProject()
	task := s.createTestTask(project.ID)

	// Case-insensitive match within the owning project
	found, err := s.taskRepo.GetByTitle(s.ctx, project.ID, strings.ToUpper(task.Title))
	s.Require().NoError(err)
	s.Require().Equal(task.ID, found.ID)

	// Same title does not exist under another project
	_, err = s.taskRepo.GetByTitle(s.ctx, other.ID, task.Title)
	s.Require().Error(err)
}

func (s *TaskRepositoryTestSuite) TestListByProjectFilters() {
	project := s.createTestProject()

	due1 := models.NewDateOnly(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))
	due2 := models.NewDateOnly(time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC))
	todo := "TO_DO"
	done := "DONE"

	for _, task := range []*models.Task{
		{ProjectID: project.ID, Title: "a", Status: todo, DueDate: &due1},
		{ProjectID: project.ID, Title: "b", Status: done, DueDate: &due1},
		{ProjectID: project.ID, Title: "c", Status: todo, DueDate: &due2},
	} {
		s.Require().NoError(s.taskRepo.Create(s.ctx, task))
	}

	opts := &models.ListOptions{Limit: 10, Offset: 0}

	// No filters
	tasks, err := s.taskRepo.ListByProject(s.ctx, project.ID, models.TaskFilters{}, opts)
	s.Require().NoError(err)
	s.Require().Len(tasks, 3)

	// Due date only
	tasks, err = s.taskRepo.ListByProject(s.ctx, project.ID, models.TaskFilters{DueDate: &due1}, opts)
	s.Require().NoError(err)
	s.Require().Len(tasks, 2)

	// Status only
	tasks, err = s.taskRepo.ListByProject(s.ctx, project.ID, models.TaskFilters{Status: &todo}, opts)
	s.Require().NoError(err)
	s.Require().Len(tasks, 2)

	// Both
	tasks, err = s.taskRepo.ListByProject(s.ctx, project.ID, models.TaskFilters{DueDate: &due1, Status: &todo}, opts)
	s.Require().NoError(err)
	s.Require().Len(tasks, 1)
	s.Require().Equal("a", tasks[0].Title)
}

func (s *TaskRepositoryTestSuite) TestListByProjectNewestFirstPaginated() {
	project := s.createTestProject()
	for i := 0; i < 7; i++ {
		s.createTestTask(project.ID)
	}

	page, err := s.taskRepo.ListByProject(s.ctx, project.ID, models.TaskFilters{}, &models.ListOptions{Limit: 5, Offset: 0})
	s.Require().NoError(err)
	s.Require().Len(page, 5)
	for i := 1; i < len(page); i++ {
		s.Require().Greater(page[i-1].ID, page[i].ID)
	}

	rest, err := s.taskRepo.ListByProject(s.ctx, project.ID, models.TaskFilters{}, &models.ListOptions{Limit: 5, Offset: 5})
	s.Require().NoError(err)
	s.Require().Len(rest, 2)
}

func (s *TaskRepositoryTestSuite) TestSaveTask() {
	project := s.createTestProject()
	task := s.createTestTask(project.ID)

	task.Status = "IN_PROGRESS"
	task.Description = "picked up"
	s.Require().NoError(s.taskRepo.Save(s.ctx, task))

	updated, err := s.taskRepo.Get(s.ctx, task.ID)
	s.Require().NoError(err)
	s.Require().Equal("IN_PROGRESS", updated.Status)
	s.Require().Equal("picked up", updated.Description)
}

func (s *TaskRepositoryTestSuite) TestDeleteTask() {
	project := s.createTestProject()
	task := s.createTestTask(project.ID)

	s.Require().NoError(s.taskRepo.Delete(s.ctx, task))

	_, err := s.taskRepo.Get(s.ctx, task.ID)
	s.Require().Error(err)
}

func (s *TaskRepositoryTestSuite) TestListAllByProject() {
	project := s.createTestProject()
	other := s.createTestProject()
	for i := 0; i < 3; i++ {
		s.createTestTask(project.ID)
	}
	s.createTestTask(other.ID)

	all, err := s.taskRepo.ListAllByProject(s.ctx, project.ID)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
}
