package store

import (
	"encoding/json"
	"testing"

	"task-manager-api/internal/models"
	"task-manager-api/internal/testutil"

	"github.com/stretchr/testify/require"
)

func newCategoryStore(t *testing.T) (*CategoryStore, *UserStore, *TaskStore) {
	t.Helper()
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	return NewCategoryStore(db), NewUserStore(db), NewTaskStore(db)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	s, _, _ := newCategoryStore(t)

	_, err := s.Create("Work", "")
	require.NoError(t, err)
	_, err = s.Create("Work", "again")
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestListCategories_OrderedByName(t *testing.T) {
	s, _, _ := newCategoryStore(t)

	_, err := s.Create("Personal", "")
	require.NoError(t, err)
	_, err = s.Create("Errands", "")
	require.NoError(t, err)

	categories, err := s.List()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	require.Equal(t, "Errands", categories[0].Name)
	require.Equal(t, "Personal", categories[1].Name)
}

func TestUpdateCategory_Gating(t *testing.T) {
	s, _, _ := newCategoryStore(t)

	category, err := s.Create("Work", "old text")
	require.NoError(t, err)

	// name empty is skipped, description empty is stored
	var patch CategoryPatch
	require.NoError(t, json.Unmarshal([]byte(`{"name":"","description":""}`), &patch))
	require.NoError(t, s.Update(category.ID, patch))

	updated, err := s.Get(category.ID)
	require.NoError(t, err)
	require.Equal(t, "Work", updated.Name)
	require.Equal(t, "", updated.Description)
}

func TestUpdateCategory_EmptyPatch(t *testing.T) {
	s, _, _ := newCategoryStore(t)

	category, err := s.Create("Work", "")
	require.NoError(t, err)

	var patch CategoryPatch
	require.NoError(t, json.Unmarshal([]byte(`{"name":""}`), &patch))
	require.ErrorIs(t, s.Update(category.ID, patch), ErrEmptyPatch)
}

func TestCategoryTasks_IncludesCreatorName(t *testing.T) {
	s, users, tasks := newCategoryStore(t)

	category, err := s.Create("Work", "")
	require.NoError(t, err)
	alice, err := users.Create("alice", "alice@example.com", "pw")
	require.NoError(t, err)

	task := &models.Task{Title: "T1", CategoryID: &category.ID, CreatedBy: alice.ID}
	require.NoError(t, tasks.Create(task))

	rows, err := s.Tasks(category.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "T1", rows[0].Title)
	require.Equal(t, "alice", rows[0].CreatorName)
}

func TestDeleteCategory_NotFound(t *testing.T) {
	s, _, _ := newCategoryStore(t)
	require.ErrorIs(t, s.Delete(5), ErrNotFound)
}
