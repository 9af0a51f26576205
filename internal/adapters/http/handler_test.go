package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpHandlers "github.com/taskflow/core/internal/adapters/http"
	"github.com/taskflow/core/internal/adapters/repository/memory"
	"github.com/taskflow/core/internal/application/services"
	"github.com/taskflow/core/internal/infrastructure/logger"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

// newTestRouter wires the full handler stack over a fresh in-memory backend.
func newTestRouter() *echo.Echo {
	repos := memory.NewRepositories()
	log := logger.NewNop()

	userService := services.NewUserService(repos.Users, log)
	teamService := services.NewTeamService(repos.Teams, repos.TeamMembers, repos.Users, log)
	projectService := services.NewProjectService(repos.Projects, repos.Tasks, repos.Teams, log)
	taskService := services.NewTaskService(repos.Tasks, repos.Comments, repos.Projects, repos.Users, log)
	statsService := services.NewStatsService(repos.Projects, repos.Tasks)

	userHandler := httpHandlers.NewUserHandler(userService, log)
	teamHandler := httpHandlers.NewTeamHandler(teamService, log)
	projectHandler := httpHandlers.NewProjectHandler(projectService, taskService, log)
	taskHandler := httpHandlers.NewTaskHandler(taskService, log)
	statsHandler := httpHandlers.NewStatsHandler(statsService, log)

	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	api := e.Group("/api")

	api.GET("/users", userHandler.ListUsers)
	api.POST("/users", userHandler.CreateUser)
	api.GET("/users/:id", userHandler.GetUser)
	api.PUT("/users/:id", userHandler.UpdateUser)
	api.DELETE("/users/:id", userHandler.DeleteUser)

	api.GET("/teams", teamHandler.ListTeams)
	api.POST("/teams", teamHandler.CreateTeam)
	api.GET("/teams/:id", teamHandler.GetTeam)
	api.PUT("/teams/:id", teamHandler.UpdateTeam)
	api.DELETE("/teams/:id", teamHandler.DeleteTeam)
	api.GET("/teams/:id/members", teamHandler.ListMembers)
	api.POST("/teams/:id/members", teamHandler.AddMember)
	api.DELETE("/teams/:id/members/:userId", teamHandler.RemoveMember)

	api.GET("/projects", projectHandler.ListProjects)
	api.POST("/projects", projectHandler.CreateProject)
	api.GET("/projects/:id", projectHandler.GetProject)
	api.PUT("/projects/:id", projectHandler.UpdateProject)
	api.DELETE("/projects/:id", projectHandler.DeleteProject)
	api.GET("/projects/:id/tasks", projectHandler.GetProjectTasks)
	api.GET("/projects/:id/stats", projectHandler.GetProjectStats)

	api.GET("/tasks", taskHandler.ListTasks)
	api.POST("/tasks", taskHandler.CreateTask)
	api.GET("/tasks/:id", taskHandler.GetTask)
	api.PUT("/tasks/:id", taskHandler.UpdateTask)
	api.DELETE("/tasks/:id", taskHandler.DeleteTask)
	api.GET("/tasks/:id/comments", taskHandler.ListComments)
	api.POST("/tasks/:id/comments", taskHandler.AddComment)

	api.GET("/stats", statsHandler.GetOverview)

	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCreateUserResponseOmitsPassword(t *testing.T) {
	e := newTestRouter()

	rec := doJSON(t, e, http.MethodPost, "/api/users",
		`{"username":"tom","email":"tom@example.com","name":"Tom Cook","password":"password123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "tom", body["username"])
	assert.NotContains(t, body, "password")

	listRec := doJSON(t, e, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, listRec.Code)
	assert.NotContains(t, listRec.Body.String(), "password")
}

func TestCreateUserValidation(t *testing.T) {
	e := newTestRouter()

	rec := doJSON(t, e, http.MethodPost, "/api/users", `{"username":"tom"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUserNotFound(t *testing.T) {
	e := newTestRouter()

	rec := doJSON(t, e, http.MethodGet, "/api/users/42", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "user not found", decode(t, rec)["message"])

	rec = doJSON(t, e, http.MethodGet, "/api/users/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTeamMembersEmbedUser(t *testing.T) {
	e := newTestRouter()

	userRec := doJSON(t, e, http.MethodPost, "/api/users",
		`{"username":"emily","email":"emily@example.com","name":"Emily Davis","password":"secret"}`)
	require.Equal(t, http.StatusCreated, userRec.Code)
	userID := int64(decode(t, userRec)["id"].(float64))

	teamRec := doJSON(t, e, http.MethodPost, "/api/teams", `{"name":"Product Development"}`)
	require.Equal(t, http.StatusCreated, teamRec.Code)
	teamID := int64(decode(t, teamRec)["id"].(float64))

	memberRec := doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/teams/%d/members", teamID),
		fmt.Sprintf(`{"userId":%d}`, userID))
	require.Equal(t, http.StatusCreated, memberRec.Code)

	member := decode(t, memberRec)
	assert.Equal(t, "member", member["role"])
	user, ok := member["user"].(map[string]interface{})
	require.True(t, ok, "expected embedded user record")
	assert.Equal(t, "emily", user["username"])
	assert.NotContains(t, user, "password")
}

func TestTaskLifecycleEndToEnd(t *testing.T) {
	e := newTestRouter()

	userRec := doJSON(t, e, http.MethodPost, "/api/users",
		`{"username":"tom","email":"tom@example.com","name":"Tom Cook","password":"secret"}`)
	require.Equal(t, http.StatusCreated, userRec.Code)
	userID := int64(decode(t, userRec)["id"].(float64))

	teamRec := doJSON(t, e, http.MethodPost, "/api/teams", `{"name":"Product Development"}`)
	require.Equal(t, http.StatusCreated, teamRec.Code)
	teamID := int64(decode(t, teamRec)["id"].(float64))

	projectRec := doJSON(t, e, http.MethodPost, "/api/projects",
		fmt.Sprintf(`{"name":"Mobile App Redesign","teamId":%d}`, teamID))
	require.Equal(t, http.StatusCreated, projectRec.Code)
	project := decode(t, projectRec)
	projectID := int64(project["id"].(float64))
	assert.Equal(t, "active", project["status"])

	taskRec := doJSON(t, e, http.MethodPost, "/api/tasks",
		fmt.Sprintf(`{"title":"Create wireframes","projectId":%d,"creatorId":%d,"dueDate":"2023-05-08T00:00:00Z"}`, projectID, userID))
	require.Equal(t, http.StatusCreated, taskRec.Code)
	task := decode(t, taskRec)
	taskID := int64(task["id"].(float64))
	assert.Equal(t, "todo", task["status"])
	assert.Equal(t, "medium", task["priority"])
	creator, ok := task["creator"].(map[string]interface{})
	require.True(t, ok, "expected embedded creator")
	assert.Equal(t, "tom", creator["username"])

	// Past due date and not done: the project counters see it as overdue.
	statsRec := doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/projects/%d/stats", projectID), "")
	require.Equal(t, http.StatusOK, statsRec.Code)
	projectStats := decode(t, statsRec)
	assert.Equal(t, float64(1), projectStats["totalTasks"])
	assert.Equal(t, float64(1), projectStats["overdueTasksCount"])

	doneRec := doJSON(t, e, http.MethodPut, fmt.Sprintf("/api/tasks/%d", taskID), `{"status":"done"}`)
	require.Equal(t, http.StatusOK, doneRec.Code)

	statsRec = doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/projects/%d/stats", projectID), "")
	projectStats = decode(t, statsRec)
	assert.Equal(t, float64(1), projectStats["completedTasks"])
	assert.Equal(t, float64(0), projectStats["overdueTasksCount"])

	commentRec := doJSON(t, e, http.MethodPost, fmt.Sprintf("/api/tasks/%d/comments", taskID),
		fmt.Sprintf(`{"userId":%d,"content":"Looks good"}`, userID))
	require.Equal(t, http.StatusCreated, commentRec.Code)
	comment := decode(t, commentRec)
	commentUser, ok := comment["user"].(map[string]interface{})
	require.True(t, ok, "expected embedded comment author")
	assert.Equal(t, "tom", commentUser["username"])

	deleteRec := doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", taskID), "")
	assert.Equal(t, http.StatusNoContent, deleteRec.Code)

	missingRec := doJSON(t, e, http.MethodGet, fmt.Sprintf("/api/tasks/%d", taskID), "")
	assert.Equal(t, http.StatusNotFound, missingRec.Code)
}

func TestEmptyListsSerializeAsArrays(t *testing.T) {
	e := newTestRouter()

	userRec := doJSON(t, e, http.MethodPost, "/api/users",
		`{"username":"tom","email":"tom@example.com","name":"Tom Cook","password":"secret"}`)
	require.Equal(t, http.StatusCreated, userRec.Code)
	userID := int64(decode(t, userRec)["id"].(float64))

	teamRec := doJSON(t, e, http.MethodPost, "/api/teams", `{"name":"Product Development"}`)
	require.Equal(t, http.StatusCreated, teamRec.Code)
	teamID := int64(decode(t, teamRec)["id"].(float64))

	projectRec := doJSON(t, e, http.MethodPost, "/api/projects",
		fmt.Sprintf(`{"name":"Mobile App Redesign","teamId":%d}`, teamID))
	require.Equal(t, http.StatusCreated, projectRec.Code)
	projectID := int64(decode(t, projectRec)["id"].(float64))

	taskRec := doJSON(t, e, http.MethodPost, "/api/tasks",
		fmt.Sprintf(`{"title":"Create wireframes","projectId":%d,"creatorId":%d}`, projectID, userID))
	require.Equal(t, http.StatusCreated, taskRec.Code)
	taskID := int64(decode(t, taskRec)["id"].(float64))

	// A fresh task has no comments and a fresh team has no members;
	// both must come back as JSON arrays, not null.
	for _, path := range []string{
		fmt.Sprintf("/api/tasks/%d/comments", taskID),
		fmt.Sprintf("/api/teams/%d/members", teamID),
	} {
		rec := doJSON(t, e, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "[]\n", rec.Body.String(), path)
	}
}

func TestCreateTaskUnknownProjectReturns404(t *testing.T) {
	e := newTestRouter()

	userRec := doJSON(t, e, http.MethodPost, "/api/users",
		`{"username":"tom","email":"tom@example.com","name":"Tom Cook","password":"secret"}`)
	require.Equal(t, http.StatusCreated, userRec.Code)
	userID := int64(decode(t, userRec)["id"].(float64))

	rec := doJSON(t, e, http.MethodPost, "/api/tasks",
		fmt.Sprintf(`{"title":"orphan","projectId":999,"creatorId":%d}`, userID))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUserReturnsSuccessBody(t *testing.T) {
	e := newTestRouter()

	userRec := doJSON(t, e, http.MethodPost, "/api/users",
		`{"username":"tom","email":"tom@example.com","name":"Tom Cook","password":"secret"}`)
	require.Equal(t, http.StatusCreated, userRec.Code)
	userID := int64(decode(t, userRec)["id"].(float64))

	rec := doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/users/%d", userID), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode(t, rec)["success"])

	rec = doJSON(t, e, http.MethodDelete, fmt.Sprintf("/api/users/%d", userID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListTasksStatusFilter(t *testing.T) {
	e := newTestRouter()

	userRec := doJSON(t, e, http.MethodPost, "/api/users",
		`{"username":"tom","email":"tom@example.com","name":"Tom Cook","password":"secret"}`)
	userID := int64(decode(t, userRec)["id"].(float64))

	teamRec := doJSON(t, e, http.MethodPost, "/api/teams", `{"name":"Team"}`)
	teamID := int64(decode(t, teamRec)["id"].(float64))

	projectRec := doJSON(t, e, http.MethodPost, "/api/projects",
		fmt.Sprintf(`{"name":"Project","teamId":%d}`, teamID))
	projectID := int64(decode(t, projectRec)["id"].(float64))

	doJSON(t, e, http.MethodPost, "/api/tasks",
		fmt.Sprintf(`{"title":"a","projectId":%d,"creatorId":%d,"status":"done"}`, projectID, userID))
	doJSON(t, e, http.MethodPost, "/api/tasks",
		fmt.Sprintf(`{"title":"b","projectId":%d,"creatorId":%d}`, projectID, userID))

	rec := doJSON(t, e, http.MethodGet, "/api/tasks?status=done", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "a", tasks[0]["title"])

	rec = doJSON(t, e, http.MethodGet, "/api/tasks?status=bogus", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsOverviewEndpoint(t *testing.T) {
	e := newTestRouter()

	rec := doJSON(t, e, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, float64(0), body["totalProjects"])
	assert.Equal(t, float64(0), body["overdue"])
}
