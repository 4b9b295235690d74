package main

import (
	"errors"
	"fmt"
	"strconv"

	"book-inventory/library"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var (
		title  string
		author string
		year   int
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a book to the inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager()
			if err != nil {
				return err
			}
			id, err := mgr.AddBook(title, author, year)
			if err != nil {
				return err
			}
			fmt.Printf("Added book ID %d.\n", id)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "book title")
	cmd.Flags().StringVar(&author, "author", "", "book author")
	cmd.Flags().IntVar(&year, "year", 0, "publication year")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("author")
	cmd.MarkFlagRequired("year")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a book by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid book ID %q", args[0])
			}
			mgr, err := openManager()
			if err != nil {
				return err
			}
			if err := mgr.DeleteBook(id); err != nil {
				return err
			}
			fmt.Printf("Deleted book ID %d.\n", id)
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all books",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager()
			if err != nil {
				return err
			}
			books := mgr.GetAllBooks()
			if len(books) == 0 {
				fmt.Println("The library is empty.")
				return nil
			}
			renderBooks(books)
			return nil
		},
	}
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <title|author|year|any> <term>",
		Short: "Search books by field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := library.ParseSearchField(args[0])
			if err != nil {
				return err
			}
			mgr, err := openManager()
			if err != nil {
				return err
			}
			results := mgr.SearchBooks(field, args[1])
			if len(results) == 0 {
				fmt.Printf("No books found matching %q.\n", args[1])
				return nil
			}
			renderBooks(results)
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <available|issued>",
		Short: "Change a book's loan status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid book ID %q", args[0])
			}
			status, err := library.ParseStatus(args[1])
			if err != nil {
				return err
			}
			mgr, err := openManager()
			if err != nil {
				return err
			}
			changed, err := mgr.SetStatus(id, status)
			if err != nil {
				if errors.Is(err, library.ErrBookNotFound) {
					return fmt.Errorf("book with ID %d not found", id)
				}
				return err
			}
			if !changed {
				fmt.Printf("Book %d already has status %s.\n", id, status)
				return nil
			}
			fmt.Printf("Status of book %d changed to %s.\n", id, status)
			return nil
		},
	}
}
