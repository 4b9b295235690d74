// Command seed_books recreates a library file and fills it with a fixed
// catalog of sample books, for demos and manual testing.
package main

import (
	"fmt"
	"os"

	"book-inventory/library"
)

const libraryFile = "library.json"

type seedBook struct {
	title  string
	author string
	year   int
}

var catalog = []seedBook{
	{"1984", "George Orwell", 1949},
	{"Animal Farm", "George Orwell", 1945},
	{"The Diary of a Young Girl", "Anne Frank", 1947},
	{"The Fellowship of the Ring", "J.R.R. Tolkien", 1954},
	{"The Two Towers", "J.R.R. Tolkien", 1954},
	{"The Return of the King", "J.R.R. Tolkien", 1955},
	{"Harry Potter and the Philosopher's Stone", "J.K. Rowling", 1997},
	{"Harry Potter and the Chamber of Secrets", "J.K. Rowling", 1998},
	{"Harry Potter and the Prisoner of Azkaban", "J.K. Rowling", 1999},
	{"Romeo and Juliet", "William Shakespeare", 1597},
	{"The Three Musketeers", "Alexandre Dumas", 1844},
	{"Python Crash Course", "Eric Matthes", 2019},
	{"Clean Code", "Robert C. Martin", 2008},
}

func main() {
	fmt.Printf("Recreating %s...\n", libraryFile)
	if err := os.Remove(libraryFile); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error removing %s: %v\n", libraryFile, err)
		os.Exit(1)
	}

	mgr, err := library.NewManager(libraryFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating library: %v\n", err)
		os.Exit(1)
	}

	successCount := 0
	errorCount := 0
	for _, b := range catalog {
		fmt.Printf("Adding: %s by %s... ", b.title, b.author)
		id, err := mgr.AddBook(b.title, b.author, b.year)
		if err != nil {
			fmt.Printf("ERROR - %v\n", err)
			errorCount++
			continue
		}
		fmt.Printf("OK (ID: %d)\n", id)
		successCount++
	}

	fmt.Printf("\nSeeding complete!\n")
	fmt.Printf("Added: %d books\n", successCount)
	fmt.Printf("Errors: %d\n", errorCount)

	if successCount > 0 {
		fmt.Println("\nLibrary contents:")
		fmt.Printf("%-3s %-45s %-25s %-6s %s\n", "ID", "Title", "Author", "Year", "Status")
		for _, book := range mgr.GetAllBooks() {
			fmt.Printf("%-3d %-45s %-25s %-6d %s\n",
				book.ID, truncateString(book.Title, 45), truncateString(book.Author, 25), book.Year, book.Status)
		}
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
