// Package id assigns and parses task identifiers.
package id

import (
	"fmt"
	"strconv"
	"strings"
)

// Next returns one more than the largest id in ids, or 1 when ids is empty.
// The whole slice is scanned; callers may pass ids in any order.
func Next(ids []int) int {
	highest := 0
	for _, v := range ids {
		if v > highest {
			highest = v
		}
	}
	return highest + 1
}

// Parse reads a task id from a command-line argument.
func Parse(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q: must be a positive integer", s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid task id %q: must be a positive integer", s)
	}
	return n, nil
}
