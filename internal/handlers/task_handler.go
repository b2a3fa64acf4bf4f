package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"task-manager-api/internal/models"
	"task-manager-api/internal/realtime"
	"task-manager-api/internal/store"

	"github.com/gin-gonic/gin"
)

// TaskHandler serves the /api/tasks endpoints and broadcasts lifecycle
// events to websocket subscribers.
type TaskHandler struct {
	tasks *store.TaskStore
	hub   *realtime.Hub
}

func NewTaskHandler(tasks *store.TaskStore, hub *realtime.Hub) *TaskHandler {
	return &TaskHandler{tasks: tasks, hub: hub}
}

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	DueDate     string              `json:"due_date"`
	CategoryID  *uint               `json:"category_id"`
	CreatedBy   uint                `json:"created_by" binding:"required"`
}

func (h *TaskHandler) publish(event string, taskID uint) {
	if h.hub == nil {
		return
	}
	payload, err := json.Marshal(map[string]any{
		"type":    event,
		"task_id": taskID,
		"version": 1,
	})
	if err == nil {
		h.hub.Broadcast(payload)
	}
}

// List handles GET /api/tasks
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.tasks.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// ListByUser handles GET /api/tasks/user/:userId
// Returns tasks created by or assigned to the given user.
func (h *TaskHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	tasks, err := h.tasks.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// Get handles GET /api/tasks/:id
// Returns a single task with its assigned users attached.
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	task, err := h.tasks.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, task)
}

// Create handles POST /api/tasks
func (h *TaskHandler) Create(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Title and created_by are required",
		})
		return
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		CategoryID:  req.CategoryID,
		CreatedBy:   req.CreatedBy,
	}
	if req.DueDate != "" {
		task.DueDate = &req.DueDate
	}

	if err := h.tasks.Create(&task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	h.publish("task_created", task.ID)
	c.JSON(http.StatusCreated, task)
}

// Update handles PUT /api/tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var patch store.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	switch err := h.tasks.Update(id, patch); {
	case err == nil:
		h.publish("task_updated", id)
		c.JSON(http.StatusOK, gin.H{"message": "Task updated successfully"})
	case errors.Is(err, store.ErrEmptyPatch):
		c.JSON(http.StatusBadRequest, gin.H{"message": "No fields to update"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}

// Delete handles DELETE /api/tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.tasks.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	h.publish("task_deleted", id)
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
