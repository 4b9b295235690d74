package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"book-inventory/library"

	"golang.org/x/term"
)

const (
	defaultTableWidth = 100
	minColumnWidth    = 10
)

var tableHeaders = []string{"ID", "Title", "Author", "Year", "Status"}

// renderBooks prints books as a padded table. Column widths grow with the
// content, with the title and author columns shrunk until rows fit the
// terminal.
func renderBooks(books []*library.Book) {
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{
			strconv.FormatInt(b.ID, 10),
			b.Title,
			b.Author,
			strconv.Itoa(b.Year),
			b.Status.String(),
		})
	}

	widths := columnWidths(tableHeaders, rows, terminalWidth())
	printRow(tableHeaders, widths)
	fmt.Println(strings.Repeat("-", tableWidth(widths)))
	for _, row := range rows {
		printRow(row, widths)
	}
}

// columnWidths sizes each column to its longest cell, then narrows the
// title and author columns until the table fits within limit.
func columnWidths(headers []string, rows [][]string, limit int) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for tableWidth(widths) > limit {
		widest := 1
		if widths[2] > widths[1] {
			widest = 2
		}
		if widths[widest] <= minColumnWidth {
			break
		}
		widths[widest]--
	}
	return widths
}

// tableWidth is the printed row length: cells plus two spaces between them.
func tableWidth(widths []int) int {
	total := 2 * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	return total
}

func printRow(cells []string, widths []int) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = fmt.Sprintf("%-*s", widths[i], truncateString(cell, widths[i]))
	}
	fmt.Println(strings.TrimRight(strings.Join(parts, "  "), " "))
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return defaultTableWidth
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
