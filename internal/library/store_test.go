package library

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "library.db")
	s, err := New(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestNew_RunsMigrations(t *testing.T) {
	s := testStore(t)

	var name string
	err := s.DB().QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='images'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "images", name)
}

func TestStore_AddAndGet(t *testing.T) {
	s := testStore(t)

	img, err := s.Add("costume1", "png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.NotEmpty(t, img.ID)
	assert.Equal(t, "costume1", img.Name)

	got, err := s.Get("costume1")
	require.NoError(t, err)
	assert.Equal(t, img.ID, got.ID)
	assert.Equal(t, []byte("png-bytes"), got.Data)
}

func TestStore_Add_Validation(t *testing.T) {
	s := testStore(t)

	_, err := s.Add("", "png", []byte("x"))
	assert.Error(t, err)

	_, err = s.Add("empty", "png", nil)
	assert.Error(t, err)

	_, err = s.Add("dup", "png", []byte("x"))
	require.NoError(t, err)
	_, err = s.Add("dup", "png", []byte("y"))
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestStore_Get_NotFound(t *testing.T) {
	s := testStore(t)

	_, err := s.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ListAndDelete(t *testing.T) {
	s := testStore(t)

	_, err := s.Add("first", "png", []byte("a"))
	require.NoError(t, err)
	_, err = s.Add("second", "jpg", []byte("b"))
	require.NoError(t, err)

	images, err := s.List()
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "first", images[0].Name)
	assert.Nil(t, images[0].Data, "List should not load image data")

	require.NoError(t, s.Delete("first"))
	assert.ErrorIs(t, s.Delete("first"), ErrNotFound)

	images, err = s.List()
	require.NoError(t, err)
	assert.Len(t, images, 1)
}

func TestStore_Resolve(t *testing.T) {
	s := testStore(t)

	_, err := s.Add("first", "png", []byte("a"))
	require.NoError(t, err)
	_, err = s.Add("2", "png", []byte("named-two"))
	require.NoError(t, err)
	_, err = s.Add("third", "png", []byte("c"))
	require.NoError(t, err)

	t.Run("exact match", func(t *testing.T) {
		data, ok := s.Resolve("first")
		require.True(t, ok)
		assert.Equal(t, []byte("a"), data)
	})

	t.Run("exact match beats index fallback", func(t *testing.T) {
		// "2" is both a stored name and a valid index; the name wins.
		data, ok := s.Resolve("2")
		require.True(t, ok)
		assert.Equal(t, []byte("named-two"), data)
	})

	t.Run("numeric fallback is a 1-based position", func(t *testing.T) {
		data, ok := s.Resolve("3")
		require.True(t, ok)
		assert.Equal(t, []byte("c"), data)
	})

	t.Run("out-of-range index misses", func(t *testing.T) {
		_, ok := s.Resolve("0")
		assert.False(t, ok)
		_, ok = s.Resolve("4")
		assert.False(t, ok)
	})

	t.Run("unknown name misses", func(t *testing.T) {
		_, ok := s.Resolve("nope")
		assert.False(t, ok)
	})
}
