package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "library.json"))
	require.NoError(t, err)
	return s
}

func TestNewStoreMissingFile(t *testing.T) {
	s := tempStore(t)
	assert.Empty(t, s.all())
	assert.Equal(t, int64(1), s.nextID())

	// A missing file is not an error, and nothing is created until a save.
	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestNewStoreMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	require.NoError(t, os.WriteFile(path, []byte("{this is not json"), 0o644))

	s, err := NewStore(path)
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Contains(t, err.Error(), "decode library file")
}

func TestNewStoreRejectsBadRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	doc := `[{"id":1,"title":"T","author":"A","year":2000,"status":"nonsense"}]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := NewStore(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestNextIDWithSparseIDs(t *testing.T) {
	s := tempStore(t)
	s.books[1] = &Book{ID: 1, Title: "Book 1", Author: "Author 1", Year: 2000}
	s.books[3] = &Book{ID: 3, Title: "Book 3", Author: "Author 3", Year: 2020}

	assert.Equal(t, int64(4), s.nextID())
}

func TestSaveAndReload(t *testing.T) {
	s := tempStore(t)
	book := &Book{ID: 1, Title: "Animal Farm", Author: "George Orwell", Year: 1945, Status: StatusIssued}
	require.NoError(t, s.insert(book))

	reloaded, err := NewStore(s.Path())
	require.NoError(t, err)
	require.Len(t, reloaded.all(), 1)
	assert.Equal(t, book, reloaded.all()[0])
	assert.Equal(t, int64(2), reloaded.nextID())
}

func TestSaveEmptyWritesArray(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.save())

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestAllSortedByID(t *testing.T) {
	s := tempStore(t)
	s.books[3] = &Book{ID: 3, Title: "C", Author: "c", Year: 2003}
	s.books[1] = &Book{ID: 1, Title: "A", Author: "a", Year: 2001}
	s.books[2] = &Book{ID: 2, Title: "B", Author: "b", Year: 2002}

	var ids []int64
	for _, b := range s.all() {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func TestRemoveUnknownID(t *testing.T) {
	s := tempStore(t)
	err := s.remove(42)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookNotFound)
}
