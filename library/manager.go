package library

import (
	"fmt"
	"strings"
)

// Manager is a thin facade over the Store, keeping CLI code simple.
type Manager struct {
	store *Store
}

// NewManager opens (or creates) the library backed by the JSON file at path.
func NewManager(path string) (*Manager, error) {
	store, err := NewStore(path)
	if err != nil {
		return nil, err
	}
	return &Manager{store: store}, nil
}

// Path returns the location of the backing file.
func (m *Manager) Path() string { return m.store.Path() }

// Count returns the number of books currently in the inventory.
func (m *Manager) Count() int { return len(m.store.books) }

// ------------------ Mutations ------------------

// AddBook validates the fields, assigns the next free id and persists the
// new record with status Available.
func (m *Manager) AddBook(title, author string, year int) (int64, error) {
	book := &Book{
		ID:     m.store.nextID(),
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
		Year:   year,
		Status: StatusAvailable,
	}
	if err := book.Validate(); err != nil {
		return 0, err
	}
	if err := m.store.insert(book); err != nil {
		return 0, err
	}
	return book.ID, nil
}

// DeleteBook removes the record with the given id and persists.
func (m *Manager) DeleteBook(id int64) error {
	return m.store.remove(id)
}

// SetStatus changes a book's loan status and persists. When the requested
// status equals the current one nothing is written and changed is false.
func (m *Manager) SetStatus(id int64, status Status) (changed bool, err error) {
	book, ok := m.store.get(id)
	if !ok {
		return false, fmt.Errorf("book %d: %w", id, ErrBookNotFound)
	}
	if book.Status == status {
		return false, nil
	}
	previous := book.Status
	book.Status = status
	if err := m.store.save(); err != nil {
		book.Status = previous
		return false, err
	}
	return true, nil
}

// ------------------ Queries ------------------

// GetBook fetches a single record by id.
func (m *Manager) GetBook(id int64) (*Book, error) {
	book, ok := m.store.get(id)
	if !ok {
		return nil, fmt.Errorf("book %d: %w", id, ErrBookNotFound)
	}
	return book, nil
}

// GetAllBooks returns every record sorted by id ascending.
func (m *Manager) GetAllBooks() []*Book {
	return m.store.all()
}

// SearchField selects which record field SearchBooks matches against.
type SearchField int

const (
	SearchTitle SearchField = iota
	SearchAuthor
	SearchYear
	SearchAny
)

// ParseSearchField maps menu numbers and field names to a SearchField.
func ParseSearchField(s string) (SearchField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "title":
		return SearchTitle, nil
	case "2", "author":
		return SearchAuthor, nil
	case "3", "year":
		return SearchYear, nil
	case "4", "any", "all":
		return SearchAny, nil
	}
	return SearchTitle, fmt.Errorf("%w: unrecognized search field %q", ErrInvalidValue, s)
}

// SearchBooks returns the records matching term on the chosen field, in id
// order. Title and author match by case-insensitive substring; year matches
// by substring of its decimal form, so "20" matches 2019 and 1720 alike.
func (m *Manager) SearchBooks(field SearchField, term string) []*Book {
	needle := strings.ToLower(term)
	var results []*Book
	for _, b := range m.store.all() {
		if matches(b, field, needle) {
			results = append(results, b)
		}
	}
	return results
}

func matches(b *Book, field SearchField, needle string) bool {
	byTitle := strings.Contains(strings.ToLower(b.Title), needle)
	byAuthor := strings.Contains(strings.ToLower(b.Author), needle)
	byYear := strings.Contains(fmt.Sprintf("%d", b.Year), needle)
	switch field {
	case SearchTitle:
		return byTitle
	case SearchAuthor:
		return byAuthor
	case SearchYear:
		return byYear
	default:
		return byTitle || byAuthor || byYear
	}
}
