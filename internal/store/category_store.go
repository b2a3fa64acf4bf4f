package store

import (
	"errors"
	"time"

	"task-manager-api/internal/models"

	"gorm.io/gorm"
)

// CategoryStore is the resource accessor for categories.
type CategoryStore struct {
	db *gorm.DB
}

func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// CategoryPatch carries the updatable category fields. Name is skipped when
// absent or empty; description is applied whenever the key is present.
type CategoryPatch struct {
	Name        Field[string] `json:"name"`
	Description Field[string] `json:"description"`
}

// CategoryTaskRow is a task in a category, enriched with its creator's name.
type CategoryTaskRow struct {
	ID          uint                `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	DueDate     *string             `json:"due_date"`
	CategoryID  *uint               `json:"category_id"`
	CreatedBy   uint                `json:"created_by"`
	CreatedAt   time.Time           `json:"created_at"`
	CreatorName string              `json:"creator_name"`
}

// List returns all categories ordered by name.
func (s *CategoryStore) List() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Get returns a single category by ID.
func (s *CategoryStore) Get(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Create inserts a new category. A name collision reports ErrDuplicate.
func (s *CategoryStore) Create(name, description string) (*models.Category, error) {
	category := models.Category{Name: name, Description: description}
	if err := s.db.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &category, nil
}

// Update applies the patch as a single UPDATE keyed by id.
func (s *CategoryStore) Update(id uint, p CategoryPatch) error {
	cols := map[string]any{}
	if p.Name.Set && p.Name.Value != "" {
		cols["name"] = p.Name.Value
	}
	if p.Description.Set {
		cols["description"] = p.Description.Value
	}
	if len(cols) == 0 {
		return ErrEmptyPatch
	}

	tx := s.db.Model(&models.Category{}).Where("id = ?", id).Updates(cols)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a category by ID. Tasks referencing it keep existing with
// their category cleared.
func (s *CategoryStore) Delete(id uint) error {
	tx := s.db.Delete(&models.Category{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Tasks returns the tasks in a category with creator names, newest first.
func (s *CategoryStore) Tasks(categoryID uint) ([]CategoryTaskRow, error) {
	var rows []CategoryTaskRow
	err := s.db.Table("tasks").
		Select("tasks.*, users.username AS creator_name").
		Joins("JOIN users ON tasks.created_by = users.id").
		Where("tasks.category_id = ?", categoryID).
		Order("tasks.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
