package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"task-manager-api/internal/realtime"
	"task-manager-api/internal/store"
	"task-manager-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type taskTestEnv struct {
	router *gin.Engine
	users  *store.UserStore
	tasks  *store.TaskStore
}

func setupTaskRouter(t *testing.T) *taskTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)

	users := store.NewUserStore(db)
	tasks := store.NewTaskStore(db)
	categories := store.NewCategoryStore(db)

	taskHandler := NewTaskHandler(tasks, realtime.NewHub())
	userHandler := NewUserHandler(users)
	categoryHandler := NewCategoryHandler(categories)

	r := gin.New()
	r.POST("/api/users", userHandler.Create)
	r.POST("/api/categories", categoryHandler.Create)
	r.GET("/api/tasks", taskHandler.List)
	r.GET("/api/tasks/user/:userId", taskHandler.ListByUser)
	r.GET("/api/tasks/:id", taskHandler.Get)
	r.POST("/api/tasks", taskHandler.Create)
	r.PUT("/api/tasks/:id", taskHandler.Update)
	r.DELETE("/api/tasks/:id", taskHandler.Delete)

	return &taskTestEnv{router: r, users: users, tasks: tasks}
}

// End-to-end flow: category and user are created, a task referencing both
// comes back enriched with the category name.
func TestTaskFlow_CreateAndReadEnriched(t *testing.T) {
	env := setupTaskRouter(t)

	w := doJSON(t, env.router, http.MethodPost, "/api/categories", map[string]string{"name": "Work"})
	require.Equal(t, http.StatusCreated, w.Code)
	var category struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))

	w = doJSON(t, env.router, http.MethodPost, "/api/users", map[string]string{
		"username": "al", "email": "a@x.com", "password": "pw",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotContains(t, w.Body.String(), "pw")
	var user struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))

	w = doJSON(t, env.router, http.MethodPost, "/api/tasks", map[string]any{
		"title":       "T1",
		"created_by":  user.ID,
		"category_id": category.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var task struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	require.Equal(t, "pending", task.Status)

	w = doJSON(t, env.router, http.MethodGet, "/api/tasks/"+itoa(task.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		CategoryName  *string          `json:"category_name"`
		CreatorName   *string          `json:"creator_name"`
		AssignedUsers []map[string]any `json:"assignedUsers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	require.NotNil(t, detail.CategoryName)
	require.Equal(t, "Work", *detail.CategoryName)
	require.NotNil(t, detail.CreatorName)
	require.Equal(t, "al", *detail.CreatorName)
	require.NotNil(t, detail.AssignedUsers)
	require.Empty(t, detail.AssignedUsers)
}

func TestCreateTask_MissingRequiredFields(t *testing.T) {
	env := setupTaskRouter(t)

	w := doJSON(t, env.router, http.MethodPost, "/api/tasks", map[string]any{"title": "no creator"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, env.router, http.MethodPost, "/api/tasks", map[string]any{"created_by": 1})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// Updating description to "" stores the empty string; updating title to ""
// leaves the title alone. The two gates must differ observably.
func TestUpdateTask_GatingObservableOverHTTP(t *testing.T) {
	env := setupTaskRouter(t)

	user, err := env.users.Create("alice", "alice@example.com", "pw")
	require.NoError(t, err)
	w := doJSON(t, env.router, http.MethodPost, "/api/tasks", map[string]any{
		"title":       "keep me",
		"description": "to be cleared",
		"created_by":  user.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var task struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))

	w = doJSON(t, env.router, http.MethodPut, "/api/tasks/"+itoa(task.ID), map[string]any{
		"title":       "",
		"description": "",
	})
	require.Equal(t, http.StatusOK, w.Code)

	detail, err := env.tasks.Get(task.ID)
	require.NoError(t, err)
	require.Equal(t, "keep me", detail.Title)
	require.Equal(t, "", detail.Description)
}

func TestUpdateTask_EmptyPatchRejected(t *testing.T) {
	env := setupTaskRouter(t)

	user, err := env.users.Create("alice", "alice@example.com", "pw")
	require.NoError(t, err)
	w := doJSON(t, env.router, http.MethodPost, "/api/tasks", map[string]any{
		"title": "T1", "created_by": user.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var task struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))

	w = doJSON(t, env.router, http.MethodPut, "/api/tasks/"+itoa(task.ID), map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTask_NotFound(t *testing.T) {
	env := setupTaskRouter(t)

	w := doJSON(t, env.router, http.MethodGet, "/api/tasks/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTask_NotFound(t *testing.T) {
	env := setupTaskRouter(t)

	w := doJSON(t, env.router, http.MethodDelete, "/api/tasks/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
