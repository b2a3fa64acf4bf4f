package models

import "time"

// TaskStatus represents the status of a task
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusCancelled  TaskStatus = "cancelled"
)

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Task represents a task in the system. Category is optional and is cleared
// when the referenced category is deleted; the creator reference is required
// and restricts user deletion.
type Task struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Title       string       `json:"title" gorm:"not null"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status" gorm:"not null;default:'pending'"`
	Priority    TaskPriority `json:"priority" gorm:"not null;default:'medium'"`
	DueDate     *string      `json:"due_date" gorm:"column:due_date"`
	CategoryID  *uint        `json:"category_id" gorm:"column:category_id"`
	Category    *Category    `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	CreatedBy   uint         `json:"created_by" gorm:"column:created_by;not null"`
	Creator     *User        `json:"-" gorm:"foreignKey:CreatedBy;constraint:OnDelete:RESTRICT"`
	CreatedAt   time.Time    `json:"created_at"`
}

// TableName specifies the table name for the Task model
func (Task) TableName() string {
	return "tasks"
}
