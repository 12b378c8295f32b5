package main

import (
	"testing"
	"time"

	"github.com/vovakirdan/goat-climb/internal/storage"
)

func TestRunTimeFollowsTickRate(t *testing.T) {
	tests := []struct {
		entry storage.ScoreEntry
		want  string
	}{
		{storage.ScoreEntry{Ticks: 5400}, "1:30"},
		{storage.ScoreEntry{Ticks: 5400, TickRate: 60}, "1:30"},
		{storage.ScoreEntry{Ticks: 5400, TickRate: 30}, "3:00"},
		{storage.ScoreEntry{Ticks: 5400, TickRate: 120}, "0:45"},
	}

	for _, tt := range tests {
		if got := runTime(tt.entry.Duration()); got != tt.want {
			t.Errorf("runTime for %d ticks at %d fps = %q, want %q", tt.entry.Ticks, tt.entry.TickRate, got, tt.want)
		}
	}
	if got := runTime(59 * time.Second); got != "0:59" {
		t.Errorf("runTime(59s) = %q, want 0:59", got)
	}
}
