// Package store provides the answer history interface and SQLite implementation.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/rcliao/aoc2018/internal/model"
)

var ErrNotFound = errors.New("answer not found")

// RecordParams holds parameters for recording an answer.
type RecordParams struct {
	Day       int
	Part      int
	Value     int
	InputHash string
	Elapsed   time.Duration
}

// ListParams holds parameters for listing answers. Zero Day or Part means any.
type ListParams struct {
	Day   int
	Part  int
	Limit int
}

// Store defines the answer history interface.
type Store interface {
	// Record appends an answer. Returns the created record.
	Record(ctx context.Context, p RecordParams) (*model.Answer, error)

	// Latest returns the most recent answer for day and part.
	Latest(ctx context.Context, day, part int) (*model.Answer, error)

	// List lists answers newest first.
	List(ctx context.Context, p ListParams) ([]model.Answer, error)

	// Close closes the store.
	Close() error
}
