package utils

import (
	"testing"
	"time"
)

func TestBeginningOfDay(t *testing.T) {
	input := time.Date(2025, time.March, 10, 14, 30, 45, 123, time.Local)
	got := BeginningOfDay(input)
	want := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("BeginningOfDay = %v, want %v", got, want)
	}
}

func TestEndOfDay(t *testing.T) {
	input := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local)
	got := EndOfDay(input)
	want := time.Date(2025, time.March, 10, 23, 59, 59, 999000000, time.Local)
	if !got.Equal(want) {
		t.Errorf("EndOfDay = %v, want %v", got, want)
	}
	// the whole day fits between the two bounds
	if !BeginningOfDay(input).Before(got) {
		t.Error("EndOfDay is not after BeginningOfDay")
	}
}
