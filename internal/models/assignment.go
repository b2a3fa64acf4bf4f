package models

import "time"

// TaskAssignment links a user to a task. The (task_id, user_id) pair is
// unique; rows are removed when either side is deleted.
type TaskAssignment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	TaskID     uint      `json:"task_id" gorm:"column:task_id;not null;uniqueIndex:idx_task_user"`
	UserID     uint      `json:"user_id" gorm:"column:user_id;not null;uniqueIndex:idx_task_user"`
	Task       *Task     `json:"-" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	User       *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	AssignedAt time.Time `json:"assigned_at" gorm:"column:assigned_at;autoCreateTime"`
}

// TableName specifies the table name for the TaskAssignment model
func (TaskAssignment) TableName() string {
	return "task_assignments"
}
