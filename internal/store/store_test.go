package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, ok, err := m.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "k", []byte(`{"a":1}`)))

	v, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), v)

	require.NoError(t, m.Delete(ctx, "k"))
	_, ok, _ = m.Get(ctx, "k")
	assert.False(t, ok)

	// deleting an absent key is fine
	require.NoError(t, m.Delete(ctx, "k"))
}

func TestGetJSON_MissingKeyReturnsFalse(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	var dest map[string]int
	ok, err := GetJSON(ctx, m, "nope", &dest)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, dest)
}

func TestGetJSON_CorruptValueFallsBack(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Set(ctx, "bad", []byte("{not json")))

	dest := map[string]int{"untouched": 1}
	ok, err := GetJSON(ctx, m, "bad", &dest)
	require.NoError(t, err)
	assert.False(t, ok, "corrupt value must read as absent")
	assert.Equal(t, map[string]int{"untouched": 1}, dest)
}

func TestSetJSON_RoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	type prefs struct {
		RoleKeywords  string   `json:"roleKeywords"`
		Locations     []string `json:"preferredLocations"`
		MinMatchScore int      `json:"minMatchScore"`
	}

	in := prefs{RoleKeywords: "backend, golang", Locations: []string{"Bangalore"}, MinMatchScore: 40}
	require.NoError(t, SetJSON(ctx, m, KeyPreferences, in))

	var out prefs
	ok, err := GetJSON(ctx, m, KeyPreferences, &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestDB_SqliteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "kv.db")

	db, err := Open(ctx, dbPath)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Set(ctx, "k1", []byte("v1")))

	v, ok, err := db.Get(ctx, "k1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), v)

	// overwrite - last writer wins
	require.NoError(t, db.Set(ctx, "k1", []byte("v2")))
	v, _, _ = db.Get(ctx, "k1")
	assert.Equal(t, []byte("v2"), v)

	require.NoError(t, db.Delete(ctx, "k1"))
	_, ok, err = db.Get(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpen_EmptyURL(t *testing.T) {
	_, err := Open(context.Background(), "")
	assert.Error(t, err)
}
