package handlers_test

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/taskboard/taskboard/internal/app"
	"github.com/taskboard/taskboard/internal/db"
)

var dbSeq int

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dbSeq++
	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", dbSeq)
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil && sqlDB != nil {
			_ = sqlDB.Close()
		}
	})

	return app.New(gormDB)
}

func TestCreateProjectRejectsMissingName(t *testing.T) {
	fiberApp := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/v1/projects", strings.NewReader(`{"description":"no name"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := fiberApp.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "name is required")
}

func TestCreateProjectRejectsMalformedBody(t *testing.T) {
	fiberApp := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/v1/projects", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := fiberApp.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetProjectRejectsNonNumericID(t *testing.T) {
	fiberApp := newTestApp(t)

	resp, err := fiberApp.Test(httptest.NewRequest("GET", "/api/v1/projects/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetProjectTasksRejectsBadDueDate(t *testing.T) {
	fiberApp := newTestApp(t)

	resp, err := fiberApp.Test(httptest.NewRequest("GET", "/api/v1/projects/1/tasks?dueDate=not-a-date", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProjectsSummaryRouteNotShadowedByID(t *testing.T) {
	fiberApp := newTestApp(t)

	resp, err := fiberApp.Test(httptest.NewRequest("GET", "/api/v1/projects/summary", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(body))
}
