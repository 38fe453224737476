package domain

import (
	"context"
	"time"
)

// GenerationClient defines how the core application talks to a
// text-generation provider. The instruction is injected as the leading
// system directive; turns keep their original speakers.
//
// A call returns exactly one outcome: the generated text, or an error that
// callers can classify via AsGenerationError. The adapter never retries.
type GenerationClient interface {
	Generate(ctx context.Context, instruction string, turns []Turn) (string, error)
}

// ScheduleStore defines persistence for scheduled posts. Implementations
// exist for memory, SQLite and Firestore backends.
type ScheduleStore interface {
	SavePost(ctx context.Context, post *ScheduledPost) error
	// DeletePost is idempotent: deleting an absent ID is not an error.
	DeletePost(ctx context.Context, id PostID) error
	// ReschedulePost updates date and time in place.
	// Returns ErrPostNotFound when the ID is absent.
	ReschedulePost(ctx context.Context, id PostID, date time.Time, timeOfDay string) error
	// PostsOn returns every post scheduled on the given calendar day,
	// ignoring time-of-day.
	PostsOn(ctx context.Context, date time.Time) ([]*ScheduledPost, error)
	// PostsBetween returns every post whose date falls within [from, to],
	// inclusive on both calendar days.
	PostsBetween(ctx context.Context, from, to time.Time) ([]*ScheduledPost, error)
	CountPosts(ctx context.Context) (int, error)
}
