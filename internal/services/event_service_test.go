package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalclub/internal/domain"
	"legalclub/internal/lib/clubtime"
)

type recordingEventRepo struct {
	mockEventRepository
	createdStatus domain.EventStatus
	updatedStatus domain.EventStatus
}

func (r *recordingEventRepo) Create(ctx context.Context, event *domain.Event) error {
	event.ID = "e1"
	r.createdStatus = event.Status
	if r.events == nil {
		r.events = map[string]*domain.Event{}
	}
	r.events[event.ID] = event
	return nil
}

func (r *recordingEventRepo) Update(ctx context.Context, event *domain.Event) error {
	r.updatedStatus = event.Status
	r.events[event.ID] = event
	return nil
}

func TestEventService_CreateEvent_StatusSnapshot(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, clubtime.Location)

	tests := []struct {
		name       string
		date       string
		timeOfDay  string
		wantStatus domain.EventStatus
	}{
		{
			name:       "future event is upcoming",
			date:       "2026-02-15",
			timeOfDay:  "10:00",
			wantStatus: domain.EventStatusUpcoming,
		},
		{
			name:       "elapsed event is past",
			date:       "2026-02-01",
			timeOfDay:  "10:00",
			wantStatus: domain.EventStatusPast,
		},
		{
			name:       "event starting exactly now is past",
			date:       "2026-02-10",
			timeOfDay:  "12:00",
			wantStatus: domain.EventStatusPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &recordingEventRepo{}
			svc := NewEventService(repo, fixedClock(now), time.Second)

			event := &domain.Event{
				TitleUz: "Tadbir",
				TitleEn: "Event",
				Date:    tt.date,
				Time:    tt.timeOfDay,
			}
			require.NoError(t, svc.CreateEvent(context.Background(), event))
			assert.Equal(t, tt.wantStatus, repo.createdStatus)

			// Re-fetching returns the stored snapshot unchanged.
			got, err := svc.GetEventByID(context.Background(), "e1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestEventService_CreateEvent_MalformedPair(t *testing.T) {
	repo := &recordingEventRepo{}
	svc := NewEventService(repo, fixedClock(time.Now()), time.Second)

	event := &domain.Event{Date: "soon", Time: "10:00"}
	err := svc.CreateEvent(context.Background(), event)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEventService_UpdateEvent_RecomputesStatus(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, clubtime.Location)
	repo := &recordingEventRepo{}
	svc := NewEventService(repo, fixedClock(now), time.Second)

	event := &domain.Event{TitleUz: "Tadbir", TitleEn: "Event", Date: "2026-02-15", Time: "10:00"}
	require.NoError(t, svc.CreateEvent(context.Background(), event))
	require.Equal(t, domain.EventStatusUpcoming, repo.createdStatus)

	// Moving the date into the past flips the stored snapshot on write.
	updated := &domain.Event{ID: "e1", TitleUz: "Tadbir", TitleEn: "Event", Date: "2026-02-01", Time: "10:00"}
	_, err := svc.UpdateEvent(context.Background(), updated)
	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusPast, repo.updatedStatus)
}

func TestEventService_UpdateEvent_NotFound(t *testing.T) {
	repo := &recordingEventRepo{}
	svc := NewEventService(repo, fixedClock(time.Now()), time.Second)

	_, err := svc.UpdateEvent(context.Background(), &domain.Event{ID: "missing", Date: "2026-02-01", Time: "10:00"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
