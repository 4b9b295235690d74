package library

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"1", StatusAvailable, false},
		{"available", StatusAvailable, false},
		{"Available", StatusAvailable, false},
		{"  AVAILABLE  ", StatusAvailable, false},
		{"0", StatusIssued, false},
		{"issued", StatusIssued, false},
		{" Issued ", StatusIssued, false},
		{"", StatusAvailable, true},
		{"2", StatusAvailable, true},
		{"lost", StatusAvailable, true},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q", tc.input), func(t *testing.T) {
			got, err := ParseStatus(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidValue)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Available", StatusAvailable.String())
	assert.Equal(t, "Issued", StatusIssued.String())
}

func TestBookValidate(t *testing.T) {
	currentYear := time.Now().Year()
	valid := Book{ID: 1, Title: "Clean Code", Author: "Robert C. Martin", Year: 2008}

	cases := []struct {
		name    string
		mutate  func(*Book)
		wantErr bool
	}{
		{"valid", func(b *Book) {}, false},
		{"min year", func(b *Book) { b.Year = MinYear }, false},
		{"current year", func(b *Book) { b.Year = currentYear }, false},
		{"zero id", func(b *Book) { b.ID = 0 }, true},
		{"negative id", func(b *Book) { b.ID = -3 }, true},
		{"empty title", func(b *Book) { b.Title = "" }, true},
		{"empty author", func(b *Book) { b.Author = "" }, true},
		{"year too early", func(b *Book) { b.Year = MinYear - 1 }, true},
		{"year in the future", func(b *Book) { b.Year = currentYear + 1 }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			book := valid
			tc.mutate(&book)
			err := book.Validate()
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestBookMarshalJSON(t *testing.T) {
	book := Book{ID: 7, Title: "1984", Author: "George Orwell", Year: 1949, Status: StatusIssued}

	data, err := json.Marshal(book)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, float64(7), m["id"])
	assert.Equal(t, "1984", m["title"])
	assert.Equal(t, "George Orwell", m["author"])
	assert.Equal(t, float64(1949), m["year"])
	assert.Equal(t, "Issued", m["status"])
	assert.Len(t, m, 5)
}

func TestBookUnmarshalJSON(t *testing.T) {
	var book Book
	err := json.Unmarshal([]byte(`{"id":1,"title":"1984","author":"George Orwell","year":1949,"status":"available"}`), &book)
	require.NoError(t, err)
	assert.Equal(t, Book{ID: 1, Title: "1984", Author: "George Orwell", Year: 1949, Status: StatusAvailable}, book)
}

func TestBookUnmarshalJSONNumericStrings(t *testing.T) {
	var book Book
	err := json.Unmarshal([]byte(`{"id":"3","title":"1984","author":"George Orwell","year":"1949","status":"Issued"}`), &book)
	require.NoError(t, err)
	assert.Equal(t, int64(3), book.ID)
	assert.Equal(t, 1949, book.Year)
	assert.Equal(t, StatusIssued, book.Status)
}

func TestBookUnmarshalJSONMissingFields(t *testing.T) {
	full := map[string]any{
		"id":     1,
		"title":  "1984",
		"author": "George Orwell",
		"year":   1949,
		"status": "available",
	}

	for _, key := range []string{"id", "title", "author", "year", "status"} {
		t.Run(key, func(t *testing.T) {
			partial := make(map[string]any, len(full)-1)
			for k, v := range full {
				if k != key {
					partial[k] = v
				}
			}
			data, err := json.Marshal(partial)
			require.NoError(t, err)

			var book Book
			err = json.Unmarshal(data, &book)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingField)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestBookUnmarshalJSONBadValues(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"non-integer id", `{"id":"abc","title":"T","author":"A","year":2000,"status":"available"}`},
		{"fractional year", `{"id":1,"title":"T","author":"A","year":20.5,"status":"available"}`},
		{"non-integer year", `{"id":1,"title":"T","author":"A","year":"soon","status":"available"}`},
		{"unknown status", `{"id":1,"title":"T","author":"A","year":2000,"status":"lost"}`},
		{"non-string title", `{"id":1,"title":42,"author":"A","year":2000,"status":"available"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var book Book
			err := json.Unmarshal([]byte(tc.doc), &book)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}
