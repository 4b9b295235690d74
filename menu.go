package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"book-inventory/library"
)

// runMenu drives the interactive numbered menu until the operator exits.
func runMenu(mgr *library.Manager) {
	sc := bufio.NewScanner(os.Stdin)

	fmt.Printf("Book inventory — %s (%d books)\n", mgr.Path(), mgr.Count())

	for {
		fmt.Println("\nMenu:")
		fmt.Println("1. Add a book")
		fmt.Println("2. Delete a book")
		fmt.Println("3. Search books")
		fmt.Println("4. List all books")
		fmt.Println("5. Change book status")
		fmt.Println("6. Exit")
		fmt.Print("Select an option: ")

		if !sc.Scan() {
			return
		}

		switch strings.TrimSpace(sc.Text()) {
		case "1":
			handleAdd(sc, mgr)
		case "2":
			handleDelete(sc, mgr)
		case "3":
			handleSearch(sc, mgr)
		case "4":
			handleList(mgr)
		case "5":
			handleChangeStatus(sc, mgr)
		case "6":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func handleAdd(sc *bufio.Scanner, mgr *library.Manager) {
	title, err := promptValidated(sc, "Title: ", notEmpty("the title cannot be empty"))
	if err != nil {
		reportAbort(err, "The book was not added.")
		return
	}

	author, err := promptValidated(sc, "Author: ", notEmpty("the author cannot be empty"))
	if err != nil {
		reportAbort(err, "The book was not added.")
		return
	}

	currentYear := time.Now().Year()
	yearStr, err := promptValidated(sc, "Publication year: ", func(s string) error {
		n, convErr := strconv.Atoi(s)
		if convErr != nil || n < library.MinYear || n > currentYear {
			return fmt.Errorf("the year must be a number between %d and %d", library.MinYear, currentYear)
		}
		return nil
	})
	if err != nil {
		reportAbort(err, "The book was not added.")
		return
	}
	year, _ := strconv.Atoi(yearStr)

	id, err := mgr.AddBook(title, author, year)
	if err != nil {
		fmt.Printf("Error adding book: %v\n", err)
		return
	}
	fmt.Printf("Book added with ID %d.\n", id)
}

func handleDelete(sc *bufio.Scanner, mgr *library.Manager) {
	id, ok := promptBookID(sc, "Book ID to delete: ")
	if !ok {
		fmt.Println("The book was not deleted.")
		return
	}

	if err := mgr.DeleteBook(id); err != nil {
		if errors.Is(err, library.ErrBookNotFound) {
			fmt.Printf("Book with ID %d not found.\n", id)
		} else {
			fmt.Printf("Error deleting book: %v\n", err)
		}
		return
	}
	fmt.Println("Book deleted.")
}

func handleSearch(sc *bufio.Scanner, mgr *library.Manager) {
	fmt.Println("Search by:")
	fmt.Println("1. Title")
	fmt.Println("2. Author")
	fmt.Println("3. Year")
	fmt.Println("4. Any field")

	fieldStr, err := promptValidated(sc, "Select a criterion: ", func(s string) error {
		_, parseErr := library.ParseSearchField(s)
		return parseErr
	})
	if err != nil {
		reportAbort(err, "Search cancelled.")
		return
	}
	field, _ := library.ParseSearchField(fieldStr)

	fmt.Print("Search term: ")
	if !sc.Scan() {
		return
	}
	term := strings.TrimSpace(sc.Text())

	results := mgr.SearchBooks(field, term)
	if len(results) == 0 {
		fmt.Printf("No books found matching %q.\n", term)
		return
	}
	fmt.Printf("Found %d book(s):\n", len(results))
	renderBooks(results)
}

func handleList(mgr *library.Manager) {
	books := mgr.GetAllBooks()
	if len(books) == 0 {
		fmt.Println("The library is empty.")
		return
	}
	renderBooks(books)
}

func handleChangeStatus(sc *bufio.Scanner, mgr *library.Manager) {
	id, ok := promptBookID(sc, "Book ID: ")
	if !ok {
		fmt.Println("The status was not changed.")
		return
	}

	statusStr, err := promptValidated(sc, "New status (1 - available, 0 - issued): ", func(s string) error {
		_, parseErr := library.ParseStatus(s)
		return parseErr
	})
	if err != nil {
		reportAbort(err, "The status was not changed.")
		return
	}
	status, _ := library.ParseStatus(statusStr)

	changed, err := mgr.SetStatus(id, status)
	if err != nil {
		if errors.Is(err, library.ErrBookNotFound) {
			fmt.Printf("Book with ID %d not found.\n", id)
		} else {
			fmt.Printf("Error changing status: %v\n", err)
		}
		return
	}
	if !changed {
		fmt.Printf("Book %d already has status %s.\n", id, status)
		return
	}
	fmt.Printf("Status of book %d changed to %s.\n", id, status)
}

// promptBookID collects a numeric id within the shared attempt budget.
func promptBookID(sc *bufio.Scanner, label string) (int64, bool) {
	idStr, err := promptValidated(sc, label, func(s string) error {
		if _, convErr := strconv.ParseInt(s, 10, 64); convErr != nil {
			return errors.New("the book ID must be an integer")
		}
		return nil
	})
	if err != nil {
		return 0, false
	}
	id, _ := strconv.ParseInt(idStr, 10, 64)
	return id, true
}

func reportAbort(err error, outcome string) {
	if errors.Is(err, errAttemptsExhausted) {
		fmt.Printf("Too many invalid attempts. %s\n", outcome)
	}
}
