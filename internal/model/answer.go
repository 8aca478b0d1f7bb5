// Package model defines the answer history types.
package model

import "time"

// Answer is one recorded solver result.
type Answer struct {
	ID        string    `json:"id"`
	Day       int       `json:"day"`
	Part      int       `json:"part"`
	Value     int       `json:"value"`
	InputHash string    `json:"input_hash,omitempty"`
	ElapsedNS int64     `json:"elapsed_ns"`
	CreatedAt time.Time `json:"created_at"`
}

// Elapsed is the recorded solve time.
func (a Answer) Elapsed() time.Duration {
	return time.Duration(a.ElapsedNS)
}

// ValidParts are the parts every day has.
var ValidParts = map[int]bool{
	1: true,
	2: true,
}
