package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"siteops/internal/handler"
	"siteops/internal/model"
	"siteops/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupPlanningTest() (*gin.Engine, *MockTaskRepository, *MockProjectRepository, *MockDependencyRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	taskRepo := new(MockTaskRepository)
	projectRepo := new(MockProjectRepository)
	depRepo := new(MockDependencyRepository)
	planningHandler := handler.NewPlanningHandler(projectRepo, taskRepo, depRepo)

	r.GET("/projects/:id/planning", planningHandler.GetSummary)
	r.GET("/projects/:id/schedule", planningHandler.GetSchedule)
	r.GET("/projects/:id/alerts", planningHandler.GetAlerts)
	r.GET("/projects/:id/costs", planningHandler.GetCosts)

	return r, taskRepo, projectRepo, depRepo
}

func planningDate(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestGetPlanningSummary(t *testing.T) {
	// Arrange
	router, taskRepo, projectRepo, _ := setupPlanningTest()

	projectID := uuid.New()
	projectRepo.On("GetByID", mock.Anything, projectID).Return(&model.Project{ID: projectID, Name: "Villa Aurora"}, nil)
	taskRepo.On("GetByProjectID", mock.Anything, projectID).Return([]model.Task{
		{ID: uuid.New(), Name: "Foundation", DurationDays: 21, PlannedStartDate: planningDate(2026, 3, 1), PlannedFinishDate: planningDate(2026, 3, 22), Status: model.TaskStatusPending, TotalCost: 50000},
		{ID: uuid.New(), Name: "Structure", DurationDays: 45, PlannedStartDate: planningDate(2026, 3, 22), PlannedFinishDate: planningDate(2026, 5, 6), Status: model.TaskStatusPending, TotalCost: 120000},
		{ID: uuid.New(), Name: "Site Preparation", DurationDays: 7, PlannedStartDate: planningDate(2026, 2, 20), PlannedFinishDate: planningDate(2026, 2, 27), Status: model.TaskStatusCompleted, TotalCost: 8000},
	}, nil)

	req, _ := http.NewRequest("GET", "/projects/"+projectID.String()+"/planning", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	require.Equal(t, http.StatusOK, resp.Code)

	var response handler.PlanningSummaryResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "Villa Aurora", response.Project)
	assert.Equal(t, 3, response.Planning.TotalTasks)
	assert.Equal(t, 73, response.Planning.TotalEffortDays)
	assert.Equal(t, 73, response.Planning.SequentialEffortDays)
	assert.Equal(t, 1.0, response.Planning.ParallelismFactor)
	require.NotNil(t, response.Planning.EarliestStart)
	require.NotNil(t, response.Planning.LatestFinish)
	assert.Len(t, response.Tasks, 3)
	assert.Equal(t, "Foundation", response.Tasks[0].Name)

	projectRepo.AssertExpectations(t)
	taskRepo.AssertExpectations(t)
}

func TestGetPlanningSummary_ProjectNotFound(t *testing.T) {
	router, _, projectRepo, _ := setupPlanningTest()

	projectID := uuid.New()
	projectRepo.On("GetByID", mock.Anything, projectID).Return(nil, repository.ErrProjectNotFound)

	req, _ := http.NewRequest("GET", "/projects/"+projectID.String()+"/planning", nil)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetSchedule_CycleConflict(t *testing.T) {
	// Arrange
	router, taskRepo, projectRepo, depRepo := setupPlanningTest()

	projectID := uuid.New()
	a := model.Task{ID: uuid.New(), DurationDays: 2}
	b := model.Task{ID: uuid.New(), DurationDays: 3}
	projectRepo.On("GetByID", mock.Anything, projectID).Return(&model.Project{ID: projectID, Name: "Looped"}, nil)
	taskRepo.On("GetByProjectID", mock.Anything, projectID).Return([]model.Task{a, b}, nil)
	depRepo.On("GetByProjectID", mock.Anything, projectID).Return([]model.TaskDependency{
		{PredecessorID: a.ID, SuccessorID: b.ID},
		{PredecessorID: b.ID, SuccessorID: a.ID},
	}, nil)

	req, _ := http.NewRequest("GET", "/projects/"+projectID.String()+"/schedule", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestGetSchedule(t *testing.T) {
	// Arrange
	router, taskRepo, projectRepo, depRepo := setupPlanningTest()

	projectID := uuid.New()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	a := model.Task{ID: uuid.New(), Name: "Foundation", DurationDays: 21}
	b := model.Task{ID: uuid.New(), Name: "Structure", DurationDays: 45}
	projectRepo.On("GetByID", mock.Anything, projectID).Return(&model.Project{ID: projectID, Name: "Villa Aurora", StartDate: &start}, nil)
	taskRepo.On("GetByProjectID", mock.Anything, projectID).Return([]model.Task{a, b}, nil)
	depRepo.On("GetByProjectID", mock.Anything, projectID).Return([]model.TaskDependency{
		{PredecessorID: a.ID, SuccessorID: b.ID},
	}, nil)

	req, _ := http.NewRequest("GET", "/projects/"+projectID.String()+"/schedule", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	require.Equal(t, http.StatusOK, resp.Code)

	var response handler.ScheduleResponse
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, start, response.Schedule.StartDate)
	assert.Equal(t, start.AddDate(0, 0, 66), response.Schedule.FinishDate)
	assert.Len(t, response.Schedule.CriticalPathTaskIDs, 2)
	require.Len(t, response.Tasks, 2)

	// Даты не сохраняются без persist=true
	taskRepo.AssertNotCalled(t, "Update")
}

func TestGetAlerts(t *testing.T) {
	// Arrange
	router, taskRepo, projectRepo, _ := setupPlanningTest()

	projectID := uuid.New()
	past := time.Now().AddDate(0, 0, -10)
	projectRepo.On("GetByID", mock.Anything, projectID).Return(&model.Project{ID: projectID, Name: "Villa Aurora"}, nil)
	taskRepo.On("GetByProjectID", mock.Anything, projectID).Return([]model.Task{
		{ID: uuid.New(), Name: "Roof Slab", Status: model.TaskStatusInProgress, PercentComplete: 50, PlannedFinishDate: &past},
	}, nil)

	req, _ := http.NewRequest("GET", "/projects/"+projectID.String()+"/alerts", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	require.Equal(t, http.StatusOK, resp.Code)

	var response struct {
		Project string `json:"project"`
		Alerts  []struct {
			Level   string `json:"level"`
			Message string `json:"message"`
		} `json:"alerts"`
	}
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	require.NoError(t, err)
	require.Len(t, response.Alerts, 1)
	assert.Equal(t, "CRITICAL", response.Alerts[0].Level)
	assert.Contains(t, response.Alerts[0].Message, "Roof Slab")
}

func TestGetCosts(t *testing.T) {
	// Arrange
	router, taskRepo, projectRepo, _ := setupPlanningTest()

	projectID := uuid.New()
	projectRepo.On("GetByID", mock.Anything, projectID).Return(&model.Project{ID: projectID, Name: "Villa Aurora", Budget: 500000}, nil)
	taskRepo.On("GetByProjectID", mock.Anything, projectID).Return([]model.Task{
		{TotalCost: 100000, ActualCost: 80000},
		{TotalCost: 50000, ActualCost: 0},
	}, nil)

	req, _ := http.NewRequest("GET", "/projects/"+projectID.String()+"/costs", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	require.Equal(t, http.StatusOK, resp.Code)

	var response struct {
		Project string  `json:"project"`
		Budget  float64 `json:"budget"`
		Costs   struct {
			PlannedCost float64 `json:"planned_cost"`
			ActualCost  float64 `json:"actual_cost"`
			Variance    float64 `json:"variance"`
			CPI         float64 `json:"cpi"`
		} `json:"costs"`
	}
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, 500000.0, response.Budget)
	assert.Equal(t, 150000.0, response.Costs.PlannedCost)
	assert.Equal(t, 80000.0, response.Costs.ActualCost)
	assert.Equal(t, -70000.0, response.Costs.Variance)
	assert.Equal(t, 1.875, response.Costs.CPI)
}
