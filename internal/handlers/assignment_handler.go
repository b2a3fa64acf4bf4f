package handlers

import (
	"errors"
	"net/http"

	"task-manager-api/internal/store"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler serves the /api/assignments endpoints.
type AssignmentHandler struct {
	assignments *store.AssignmentStore
}

func NewAssignmentHandler(assignments *store.AssignmentStore) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

// CreateAssignmentRequest represents the request payload for assigning a
// user to a task
type CreateAssignmentRequest struct {
	TaskID uint `json:"task_id" binding:"required"`
	UserID uint `json:"user_id" binding:"required"`
}

// List handles GET /api/assignments
func (h *AssignmentHandler) List(c *gin.Context) {
	assignments, err := h.assignments.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// ListByTask handles GET /api/assignments/task/:taskId
func (h *AssignmentHandler) ListByTask(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	assignments, err := h.assignments.ListByTask(taskID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// ListByUser handles GET /api/assignments/user/:userId
func (h *AssignmentHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	assignments, err := h.assignments.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// Create handles POST /api/assignments
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Task ID and User ID are required",
		})
		return
	}

	assignment, err := h.assignments.Create(req.TaskID, req.UserID)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"message": "Assignment already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, assignment)
}

// Delete handles DELETE /api/assignments/:taskId/:userId
func (h *AssignmentHandler) Delete(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.assignments.Delete(taskID, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Assignment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assignment deleted successfully"})
}
