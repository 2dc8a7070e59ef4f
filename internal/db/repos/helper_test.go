package repos

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/taskboard/taskboard/internal/db"
	"github.com/taskboard/taskboard/internal/db/models"
)

// DBRepositoryTestSuite provides a base test suite for repository tests
type DBRepositoryTestSuite struct {
	suite.Suite
	db          *gorm.DB
	ctx         context.Context
	projectRepo *ProjectRepository
	taskRepo    *TaskRepository

	nameSeq int
}

// dbSeq distinguishes the shared-cache memory databases between tests
var dbSeq int

func (s *DBRepositoryTestSuite) SetupTest() {
	// New in-memory database per test
	dbSeq++
	dsn := fmt.Sprintf("file:repos_test_%d?mode=memory&cache=shared", dbSeq)
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err, "Failed to create in-memory database")

	err = db.Migrate(gormDB)
	require.NoError(s.T(), err, "Failed to run database migrations")

	s.db = gormDB
	s.projectRepo = NewProjectRepository(s.db)
	s.taskRepo = NewTaskRepository(s.db)
	s.ctx = context.Background()
	s.nameSeq = 0
}

func (s *DBRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}

// Helper methods for creating test data

func (s *DBRepositoryTestSuite) uniqueName(prefix string) string {
	s.nameSeq++
	return fmt.Sprintf("%s-%d", prefix, s.nameSeq)
}

func (s *DBRepositoryTestSuite) createTestProject() *models.Project {
	project := &models.Project{
		Name:        s.uniqueName("test-project"),
		Description: "a test project",
	}
	err := s.projectRepo.Create(s.ctx, project)
	s.Require().NoError(err)
	return project
}

func (s *DBRepositoryTestSuite) createTestTask(projectID uint) *models.Task {
	task := &models.Task{
		ProjectID:   projectID,
		Title:       s.uniqueName("test-task"),
		Description: "a test task",
		Status:      "TO_DO",
	}
	err := s.taskRepo.Create(s.ctx, task)
	s.Require().NoError(err)
	return task
}

func TestDBRepositoryTestSuites(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
	suite.Run(t, new(TaskRepositoryTestSuite))
}
