package library

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog/log"
)

// Store holds the whole inventory in memory and mirrors every mutation to a
// JSON array on disk. The file is read once at construction and rewritten in
// full on each change; exactly one process is assumed to own it.
type Store struct {
	path  string
	books map[int64]*Book
}

// NewStore loads the backing file at path. A missing file starts an empty
// inventory; a file that exists but cannot be decoded is an error, left to
// the caller to decide whether to halt or start fresh.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path, books: make(map[int64]*Book)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string { return s.path }

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		log.Info().Str("file", s.path).Msg("backing file not found, starting with an empty library")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read library file: %w", err)
	}

	var books []*Book
	if err := json.Unmarshal(data, &books); err != nil {
		return fmt.Errorf("decode library file %s: %w", s.path, err)
	}
	for _, b := range books {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("invalid record %d in library file: %w", b.ID, err)
		}
		s.books[b.ID] = b
	}
	log.Debug().Int("books", len(s.books)).Str("file", s.path).Msg("library loaded")
	return nil
}

// save rewrites the whole backing file as an indented JSON array. Writing a
// temp file and renaming it over the old one keeps the previous contents
// intact if the write fails partway.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.all(), "", "    ")
	if err != nil {
		return fmt.Errorf("encode library: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".library-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write library file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close library file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace library file: %w", err)
	}
	log.Debug().Int("books", len(s.books)).Str("file", s.path).Msg("library saved")
	return nil
}

// all returns the books in ascending id order, which is also insertion
// order since ids only ever grow.
func (s *Store) all() []*Book {
	books := make([]*Book, 0, len(s.books))
	for _, b := range s.books {
		books = append(books, b)
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books
}

// nextID is max existing id + 1, or 1 for an empty library. It is derived
// on demand and never stored in the file.
func (s *Store) nextID() int64 {
	var max int64
	for id := range s.books {
		if id > max {
			max = id
		}
	}
	return max + 1
}

func (s *Store) get(id int64) (*Book, bool) {
	b, ok := s.books[id]
	return b, ok
}

// insert adds a validated record and persists. The in-memory map is rolled
// back when the write fails so state and file never diverge.
func (s *Store) insert(b *Book) error {
	s.books[b.ID] = b
	if err := s.save(); err != nil {
		delete(s.books, b.ID)
		return err
	}
	return nil
}

// remove deletes a record and persists, rolling back on write failure.
func (s *Store) remove(id int64) error {
	b, ok := s.books[id]
	if !ok {
		return fmt.Errorf("book %d: %w", id, ErrBookNotFound)
	}
	delete(s.books, id)
	if err := s.save(); err != nil {
		s.books[id] = b
		return err
	}
	return nil
}
