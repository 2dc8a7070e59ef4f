// Package test provides an end-to-end harness running the full API server
// against an in-memory database
package test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/taskboard/taskboard/internal/app"
	"github.com/taskboard/taskboard/internal/db"
	"github.com/taskboard/taskboard/pkg/api/v1/client"
)

// clientTimeout is the timeout for test API client requests
const clientTimeout = 5 * time.Second

// Suite is the base end-to-end test suite. It runs the real Fiber app over an
// in-memory database and talks to it through the real API client.
type Suite struct {
	suite.Suite
	DB        *gorm.DB
	Server    *httptest.Server
	APIClient client.Client

	ctx context.Context
}

var dbSeq int

// SetupTest creates a fresh database, server and client for each test
func (s *Suite) SetupTest() {
	dbSeq++
	dsn := fmt.Sprintf("file:e2e_test_%d?mode=memory&cache=shared", dbSeq)
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err, "Failed to create in-memory database")
	s.Require().NoError(db.Migrate(gormDB), "Failed to run database migrations")
	s.DB = gormDB

	fiberApp := app.New(gormDB)
	s.Server = httptest.NewServer(adaptor.FiberApp(fiberApp))

	apiClient, err := client.NewClient(&client.Options{
		BaseURL: s.Server.URL,
		Timeout: clientTimeout,
	})
	s.Require().NoError(err, "Failed to create API client")
	s.APIClient = apiClient

	s.ctx = context.Background()
}

// TearDownTest shuts down the server and closes the database
func (s *Suite) TearDownTest() {
	if s.Server != nil {
		s.Server.Close()
	}
	if s.DB != nil {
		if sqlDB, err := s.DB.DB(); err == nil && sqlDB != nil {
			_ = sqlDB.Close()
		}
	}
}
