// Package models defines the persisted data structures.
package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Combination is a persisted accepted combination.
type Combination struct {
	ID         int64
	Strategy   string
	OrderIndex int64
	Numbers    []int
	Stars      []int
	CreatedAt  time.Time
}

// Draw is a persisted historical draw.
type Draw struct {
	ID      int64
	Date    time.Time
	Numbers []int
	Stars   []int
}

// TimestampLayout is the storage layout for timestamps.
const TimestampLayout = "2006-01-02 15:04:05.999999"

// DateLayout is the storage layout for draw dates.
const DateLayout = "2006-01-02"

// JoinInts serializes an int slice as a comma-separated string.
func JoinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// SplitInts parses a comma-separated string back into an int slice.
// An empty string yields an empty slice.
func SplitInts(s string) ([]int, error) {
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	values := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("parse value %q: %w", p, err)
		}
		values[i] = v
	}
	return values, nil
}
