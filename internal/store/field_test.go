package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestField_AbsentKey(t *testing.T) {
	var patch TaskPatch
	require.NoError(t, json.Unmarshal([]byte(`{}`), &patch))
	require.False(t, patch.Title.Set)
	require.False(t, patch.Description.Set)
}

func TestField_PresentValue(t *testing.T) {
	var patch TaskPatch
	require.NoError(t, json.Unmarshal([]byte(`{"title":"T","description":""}`), &patch))
	require.True(t, patch.Title.Set)
	require.Equal(t, "T", patch.Title.Value)
	require.True(t, patch.Description.Set)
	require.Equal(t, "", patch.Description.Value)
}

func TestField_ExplicitNull(t *testing.T) {
	var patch TaskPatch
	require.NoError(t, json.Unmarshal([]byte(`{"category_id":null}`), &patch))
	require.True(t, patch.CategoryID.Set)
	require.Nil(t, patch.CategoryID.Value)

	require.NoError(t, json.Unmarshal([]byte(`{"category_id":7}`), &patch))
	require.True(t, patch.CategoryID.Set)
	require.NotNil(t, patch.CategoryID.Value)
	require.Equal(t, uint(7), *patch.CategoryID.Value)
}
