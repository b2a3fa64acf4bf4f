package models

import "time"

// Category groups tasks under a unique name.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
