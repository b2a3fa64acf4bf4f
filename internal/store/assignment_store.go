package store

import (
	"errors"
	"time"

	"task-manager-api/internal/models"

	"gorm.io/gorm"
)

// AssignmentStore is the resource accessor for task assignments.
type AssignmentStore struct {
	db *gorm.DB
}

func NewAssignmentStore(db *gorm.DB) *AssignmentStore {
	return &AssignmentStore{db: db}
}

// AssignmentRow is an assignment enriched with task title and username.
type AssignmentRow struct {
	ID         uint      `json:"id"`
	TaskID     uint      `json:"task_id"`
	UserID     uint      `json:"user_id"`
	AssignedAt time.Time `json:"assigned_at"`
	TaskTitle  string    `json:"task_title"`
	Username   string    `json:"username"`
}

// TaskAssigneeRow is an assignment on a task with the assignee's details.
type TaskAssigneeRow struct {
	ID         uint      `json:"id"`
	TaskID     uint      `json:"task_id"`
	UserID     uint      `json:"user_id"`
	AssignedAt time.Time `json:"assigned_at"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
}

// UserAssignmentRow is an assignment for a user with the task's details.
type UserAssignmentRow struct {
	ID         uint                `json:"id"`
	TaskID     uint                `json:"task_id"`
	UserID     uint                `json:"user_id"`
	AssignedAt time.Time           `json:"assigned_at"`
	Title      string              `json:"title"`
	Status     models.TaskStatus   `json:"status"`
	Priority   models.TaskPriority `json:"priority"`
	DueDate    *string             `json:"due_date"`
}

// List returns all assignments with task titles and usernames, newest first.
func (s *AssignmentStore) List() ([]AssignmentRow, error) {
	var rows []AssignmentRow
	err := s.db.Table("task_assignments").
		Select("task_assignments.*, tasks.title AS task_title, users.username").
		Joins("JOIN tasks ON task_assignments.task_id = tasks.id").
		Joins("JOIN users ON task_assignments.user_id = users.id").
		Order("task_assignments.assigned_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByTask returns the assignments on a task with assignee details.
func (s *AssignmentStore) ListByTask(taskID uint) ([]TaskAssigneeRow, error) {
	var rows []TaskAssigneeRow
	err := s.db.Table("task_assignments").
		Select("task_assignments.*, users.username, users.email").
		Joins("JOIN users ON task_assignments.user_id = users.id").
		Where("task_assignments.task_id = ?", taskID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByUser returns a user's assignments with task details.
func (s *AssignmentStore) ListByUser(userID uint) ([]UserAssignmentRow, error) {
	var rows []UserAssignmentRow
	err := s.db.Table("task_assignments").
		Select("task_assignments.*, tasks.title, tasks.status, tasks.priority, tasks.due_date").
		Joins("JOIN tasks ON task_assignments.task_id = tasks.id").
		Where("task_assignments.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Create assigns a user to a task. An existing (task_id, user_id) pair
// reports ErrDuplicate. The pre-check is not atomic against concurrent
// requests; the unique index is the authoritative guard, so an insert-time
// violation reports the same outcome.
func (s *AssignmentStore) Create(taskID, userID uint) (*models.TaskAssignment, error) {
	var existing models.TaskAssignment
	err := s.db.Where("task_id = ? AND user_id = ?", taskID, userID).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicate
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	assignment := models.TaskAssignment{TaskID: taskID, UserID: userID}
	if err := s.db.Create(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &assignment, nil
}

// Delete removes the assignment identified by the (task_id, user_id) pair.
func (s *AssignmentStore) Delete(taskID, userID uint) error {
	tx := s.db.Where("task_id = ? AND user_id = ?", taskID, userID).
		Delete(&models.TaskAssignment{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
