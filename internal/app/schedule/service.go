package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/worklab-studio/Nextyoulinkedin/internal/domain"
	"github.com/worklab-studio/Nextyoulinkedin/internal/observability"
)

// ErrInvalidTime rejects times of day that are not "HH:MM".
var ErrInvalidTime = errors.New("time must be in HH:MM format")

// Service owns the publishing calendar: ID allocation, validation and
// logging in front of a swappable ScheduleStore backend.
type Service struct {
	store domain.ScheduleStore
	now   func() time.Time
}

func NewService(store domain.ScheduleStore) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// AddInput describes a draft to file on the calendar.
type AddInput struct {
	Content   string
	PersonaID domain.PersonaID
	Date      time.Time
	Time      string // "HH:MM"
	Notes     string
}

// Add files a draft against a calendar date and time. Given valid input it
// always succeeds; IDs are fresh UUIDs and never reused.
func (s *Service) Add(ctx context.Context, in AddInput) (*domain.ScheduledPost, error) {
	if in.Content == "" {
		return nil, errors.New("content is required")
	}
	persona, ok := domain.PersonaByID(in.PersonaID)
	if !ok {
		return nil, fmt.Errorf("unknown persona %q", in.PersonaID)
	}
	if err := validateTimeOfDay(in.Time); err != nil {
		return nil, err
	}

	post := &domain.ScheduledPost{
		ID:          domain.PostID(uuid.NewString()),
		Content:     in.Content,
		PersonaID:   persona.ID,
		PersonaName: persona.Name,
		Date:        domain.DayStart(in.Date),
		Time:        in.Time,
		Notes:       in.Notes,
		CreatedAt:   s.now(),
	}

	if err := s.store.SavePost(ctx, post); err != nil {
		return nil, fmt.Errorf("saving scheduled post: %w", err)
	}

	observability.LoggerFromContext(ctx).Info().
		Str("post_id", string(post.ID)).
		Str("persona", string(post.PersonaID)).
		Str("date", post.Date.Format("2006-01-02")).
		Str("time", post.Time).
		Msg("post scheduled")

	return post, nil
}

// Remove deletes a record. Removing an absent ID is a no-op, not an error.
func (s *Service) Remove(ctx context.Context, id domain.PostID) error {
	return s.store.DeletePost(ctx, id)
}

// Reschedule moves a record to a new date and time. Returns
// domain.ErrPostNotFound when the ID is absent.
func (s *Service) Reschedule(ctx context.Context, id domain.PostID, date time.Time, timeOfDay string) error {
	if err := validateTimeOfDay(timeOfDay); err != nil {
		return err
	}
	if err := s.store.ReschedulePost(ctx, id, domain.DayStart(date), timeOfDay); err != nil {
		return err
	}

	observability.LoggerFromContext(ctx).Info().
		Str("post_id", string(id)).
		Str("date", domain.DayStart(date).Format("2006-01-02")).
		Str("time", timeOfDay).
		Msg("post rescheduled")
	return nil
}

// PostsOn returns every record scheduled on the given calendar day.
func (s *Service) PostsOn(ctx context.Context, date time.Time) ([]*domain.ScheduledPost, error) {
	return s.store.PostsOn(ctx, date)
}

// PostsBetween returns every record scheduled within [from, to], inclusive.
// Feeds the month calendar view.
func (s *Service) PostsBetween(ctx context.Context, from, to time.Time) ([]*domain.ScheduledPost, error) {
	if to.Before(from) {
		return nil, errors.New("range end precedes start")
	}
	return s.store.PostsBetween(ctx, from, to)
}

// Count returns the total number of scheduled records.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.store.CountPosts(ctx)
}

func validateTimeOfDay(v string) error {
	if _, err := time.Parse("15:04", v); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTime, v)
	}
	return nil
}
