package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
)

// maxAttempts bounds how often a single field is re-prompted before the
// enclosing operation aborts.
const maxAttempts = 3

var (
	errAttemptsExhausted = errors.New("too many invalid attempts")
	errInputClosed       = errors.New("input closed")
)

// promptValidated asks for one field, re-prompting until validate accepts
// the trimmed input or the attempt budget runs out.
func promptValidated(sc *bufio.Scanner, label string, validate func(string) error) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		fmt.Print(label)
		if !sc.Scan() {
			return "", errInputClosed
		}
		text := strings.TrimSpace(sc.Text())
		if err := validate(text); err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		return text, nil
	}
	return "", errAttemptsExhausted
}

// notEmpty rejects blank input with the given message.
func notEmpty(message string) func(string) error {
	return func(s string) error {
		if s == "" {
			return errors.New(message)
		}
		return nil
	}
}
