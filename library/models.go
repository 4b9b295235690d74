package library

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Status is the two-valued loan state of a book.
type Status int

const (
	StatusAvailable Status = iota
	StatusIssued
)

// String returns the display form used in the backing file and in tables.
func (s Status) String() string {
	if s == StatusIssued {
		return "Issued"
	}
	return "Available"
}

// ParseStatus recognizes a status typed by the operator or read from the
// backing file. It accepts "1" or "available" for Available and "0" or
// "issued" for Issued, ignoring case and surrounding spaces.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "available":
		return StatusAvailable, nil
	case "0", "issued":
		return StatusIssued, nil
	}
	return StatusAvailable, fmt.Errorf("%w: unrecognized status %q", ErrInvalidValue, s)
}

// MinYear is the earliest publication year a record may carry. The upper
// bound is the current calendar year, checked at validation time.
const MinYear = 1000

// Book is one record in the inventory. Title, author and year are fixed at
// creation; only the status changes over a book's lifetime. The id is
// assigned by the store and never reused while the record exists.
type Book struct {
	ID     int64
	Title  string
	Author string
	Year   int
	Status Status
}

// Validate checks the constraints every stored record must satisfy.
func (b Book) Validate() error {
	currentYear := time.Now().Year()
	return validation.ValidateStruct(&b,
		validation.Field(&b.ID,
			validation.Required.Error("id must be a positive integer"),
			validation.Min(int64(1)).Error("id must be a positive integer"),
		),
		validation.Field(&b.Title, validation.Required.Error("title cannot be empty")),
		validation.Field(&b.Author, validation.Required.Error("author cannot be empty")),
		validation.Field(&b.Year,
			validation.Required.Error(fmt.Sprintf("year must be %d or later", MinYear)),
			validation.Min(MinYear).Error(fmt.Sprintf("year must be %d or later", MinYear)),
			validation.Max(currentYear).Error(fmt.Sprintf("year cannot be later than %d", currentYear)),
		),
	)
}

// bookJSON is the wire form of a record in the backing file.
type bookJSON struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Status string `json:"status"`
}

// MarshalJSON renders the five contractual keys with the status as its
// display string.
func (b Book) MarshalJSON() ([]byte, error) {
	return json.Marshal(bookJSON{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Year:   b.Year,
		Status: b.Status.String(),
	})
}

var requiredKeys = []string{"id", "title", "author", "year", "status"}

// UnmarshalJSON decodes one record, reporting a missing-field error when any
// of the five keys is absent and a value error when id or year is not an
// integer or the status string is unrecognized.
func (b *Book) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingField, key)
		}
	}

	id, err := intField(raw["id"], "id")
	if err != nil {
		return err
	}
	year, err := intField(raw["year"], "year")
	if err != nil {
		return err
	}
	var title, author, status string
	if err := json.Unmarshal(raw["title"], &title); err != nil {
		return fmt.Errorf("%w: title must be a string", ErrInvalidValue)
	}
	if err := json.Unmarshal(raw["author"], &author); err != nil {
		return fmt.Errorf("%w: author must be a string", ErrInvalidValue)
	}
	if err := json.Unmarshal(raw["status"], &status); err != nil {
		return fmt.Errorf("%w: status must be a string", ErrInvalidValue)
	}
	st, err := ParseStatus(status)
	if err != nil {
		return err
	}

	b.ID = id
	b.Title = title
	b.Author = author
	b.Year = int(year)
	b.Status = st
	return nil
}

// intField accepts a JSON number or a numeric string, matching the lax
// integer handling of earlier revisions of the file format.
func intField(raw json.RawMessage, name string) (int64, error) {
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidValue, name)
}
