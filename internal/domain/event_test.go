package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyEventStatus(t *testing.T) {
	now := time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		startsAt time.Time
		want     EventStatus
	}{
		{
			name:     "future start is upcoming",
			startsAt: now.Add(time.Hour),
			want:     EventStatusUpcoming,
		},
		{
			name:     "elapsed start is past",
			startsAt: now.Add(-time.Minute),
			want:     EventStatusPast,
		},
		{
			// Tie-break: a start at exactly the current instant is PAST.
			name:     "start at exactly now is past",
			startsAt: now,
			want:     EventStatusPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyEventStatus(tt.startsAt, now))
		})
	}
}
