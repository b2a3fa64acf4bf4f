package store

import (
	"time"

	"task-manager-api/internal/models"

	"gorm.io/gorm"
)

// TaskStore is the resource accessor for tasks.
type TaskStore struct {
	db *gorm.DB
}

func NewTaskStore(db *gorm.DB) *TaskStore {
	return &TaskStore{db: db}
}

// TaskPatch carries the updatable task fields. Title, status, priority and
// due_date are skipped when absent or empty; description and category_id are
// applied whenever the key is present, so an explicit empty string or null
// is stored as such.
type TaskPatch struct {
	Title       Field[string] `json:"title"`
	Description Field[string] `json:"description"`
	Status      Field[string] `json:"status"`
	Priority    Field[string] `json:"priority"`
	DueDate     Field[string] `json:"due_date"`
	CategoryID  Field[*uint]  `json:"category_id"`
}

// TaskRow is a task enriched with display fields from its category and
// creator for list responses.
type TaskRow struct {
	ID           uint                `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Status       models.TaskStatus   `json:"status"`
	Priority     models.TaskPriority `json:"priority"`
	DueDate      *string             `json:"due_date"`
	CategoryID   *uint               `json:"category_id"`
	CreatedBy    uint                `json:"created_by"`
	CreatedAt    time.Time           `json:"created_at"`
	CategoryName *string             `json:"category_name"`
	CreatorName  *string             `json:"creator_name"`
}

// AssignedUser is a user currently assigned to a task.
type AssignedUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TaskDetail is a single task with its assigned users attached.
type TaskDetail struct {
	TaskRow
	AssignedUsers []AssignedUser `json:"assignedUsers"`
}

const taskSelect = "tasks.*, categories.name AS category_name, users.username AS creator_name"

func (s *TaskStore) joined() *gorm.DB {
	return s.db.Table("tasks").
		Select(taskSelect).
		Joins("LEFT JOIN categories ON tasks.category_id = categories.id").
		Joins("LEFT JOIN users ON tasks.created_by = users.id")
}

// List returns all tasks with category and creator names, newest first.
func (s *TaskStore) List() ([]TaskRow, error) {
	var rows []TaskRow
	if err := s.joined().Order("tasks.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByUser returns tasks either created by or assigned to the given user,
// newest first.
func (s *TaskStore) ListByUser(userID uint) ([]TaskRow, error) {
	var rows []TaskRow
	err := s.db.Table("tasks").
		Select("DISTINCT "+taskSelect).
		Joins("LEFT JOIN categories ON tasks.category_id = categories.id").
		Joins("LEFT JOIN users ON tasks.created_by = users.id").
		Joins("LEFT JOIN task_assignments ta ON tasks.id = ta.task_id").
		Where("tasks.created_by = ? OR ta.user_id = ?", userID, userID).
		Order("tasks.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Get returns a single task with its assigned users.
func (s *TaskStore) Get(id uint) (*TaskDetail, error) {
	var row TaskRow
	tx := s.joined().Where("tasks.id = ?", id).Scan(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	assigned := make([]AssignedUser, 0)
	err := s.db.Table("task_assignments").
		Select("users.id, users.username, users.email").
		Joins("JOIN users ON task_assignments.user_id = users.id").
		Where("task_assignments.task_id = ?", id).
		Scan(&assigned).Error
	if err != nil {
		return nil, err
	}

	return &TaskDetail{TaskRow: row, AssignedUsers: assigned}, nil
}

// Create inserts a new task, defaulting status and priority when unset.
func (s *TaskStore) Create(task *models.Task) error {
	if task.Status == "" {
		task.Status = models.StatusPending
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	return s.db.Create(task).Error
}

// Update applies the patch as a single UPDATE keyed by id.
func (s *TaskStore) Update(id uint, p TaskPatch) error {
	cols := map[string]any{}
	if p.Title.Set && p.Title.Value != "" {
		cols["title"] = p.Title.Value
	}
	if p.Status.Set && p.Status.Value != "" {
		cols["status"] = p.Status.Value
	}
	if p.Priority.Set && p.Priority.Value != "" {
		cols["priority"] = p.Priority.Value
	}
	if p.DueDate.Set && p.DueDate.Value != "" {
		cols["due_date"] = p.DueDate.Value
	}
	if p.Description.Set {
		cols["description"] = p.Description.Value
	}
	if p.CategoryID.Set {
		cols["category_id"] = p.CategoryID.Value
	}
	if len(cols) == 0 {
		return ErrEmptyPatch
	}

	tx := s.db.Model(&models.Task{}).Where("id = ?", id).Updates(cols)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a task by ID. Its assignments go with it.
func (s *TaskStore) Delete(id uint) error {
	tx := s.db.Delete(&models.Task{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
