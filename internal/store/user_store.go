package store

import (
	"errors"

	"task-manager-api/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserStore is the resource accessor for users.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// UserPatch carries the updatable user fields. Username and email are
// skipped when absent or empty; password is applied whenever the key is
// present and is re-hashed before storing.
type UserPatch struct {
	Username Field[string] `json:"username"`
	Email    Field[string] `json:"email"`
	Password Field[string] `json:"password"`
}

// List returns all users, oldest first.
func (s *UserStore) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Get returns a single user by ID.
func (s *UserStore) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns a single user by username. Used by login.
func (s *UserStore) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create hashes the password and inserts a new user. A username or email
// collision reports ErrDuplicate.
func (s *UserStore) Create(username, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &user, nil
}

// Update applies the patch as a single UPDATE keyed by id. Only fields
// present per their gating rule are written; everything else is untouched.
func (s *UserStore) Update(id uint, p UserPatch) error {
	cols := map[string]any{}
	if p.Username.Set && p.Username.Value != "" {
		cols["username"] = p.Username.Value
	}
	if p.Email.Set && p.Email.Value != "" {
		cols["email"] = p.Email.Value
	}
	if p.Password.Set {
		hash, err := bcrypt.GenerateFromPassword([]byte(p.Password.Value), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		cols["password_hash"] = string(hash)
	}
	if len(cols) == 0 {
		return ErrEmptyPatch
	}

	tx := s.db.Model(&models.User{}).Where("id = ?", id).Updates(cols)
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

// Delete removes a user by ID. Deleting a user who still owns tasks fails
// with a foreign-key error from the store.
func (s *UserStore) Delete(id uint) error {
	tx := s.db.Delete(&models.User{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
