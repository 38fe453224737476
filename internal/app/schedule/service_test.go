package schedule_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memstore "github.com/worklab-studio/Nextyoulinkedin/internal/adapters/storage/memory"
	"github.com/worklab-studio/Nextyoulinkedin/internal/app/schedule"
	"github.com/worklab-studio/Nextyoulinkedin/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newService() *schedule.Service {
	return schedule.NewService(memstore.NewScheduleStore())
}

func TestAddRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	post, err := svc.Add(ctx, schedule.AddInput{
		Content:   "Post X",
		PersonaID: domain.PersonaSimmi,
		Date:      day(2025, time.March, 10),
		Time:      "09:00",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "Simmi Sen Roy", post.PersonaName)
	assert.False(t, post.CreatedAt.IsZero())

	posts, err := svc.PostsOn(ctx, day(2025, time.March, 10))
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Post X", posts[0].Content)
	assert.Equal(t, domain.PersonaSimmi, posts[0].PersonaID)
	assert.Equal(t, "09:00", posts[0].Time)

	posts, err = svc.PostsOn(ctx, day(2025, time.March, 11))
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestAddValidation(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.Add(ctx, schedule.AddInput{
		PersonaID: domain.PersonaSimmi,
		Date:      day(2025, time.March, 10),
		Time:      "09:00",
	})
	assert.Error(t, err, "content required")

	_, err = svc.Add(ctx, schedule.AddInput{
		Content:   "x",
		PersonaID: "ghost",
		Date:      day(2025, time.March, 10),
		Time:      "09:00",
	})
	assert.Error(t, err, "persona must exist")

	_, err = svc.Add(ctx, schedule.AddInput{
		Content:   "x",
		PersonaID: domain.PersonaSimmi,
		Date:      day(2025, time.March, 10),
		Time:      "25:99",
	})
	assert.ErrorIs(t, err, schedule.ErrInvalidTime)
}

func TestUniqueIDs(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	seen := make(map[domain.PostID]bool)
	for i := 0; i < 50; i++ {
		post, err := svc.Add(ctx, schedule.AddInput{
			Content:   "same slot, same day",
			PersonaID: domain.PersonaCompany,
			Date:      day(2025, time.June, 1),
			Time:      "09:00",
		})
		require.NoError(t, err)
		assert.False(t, seen[post.ID], "duplicate id %s", post.ID)
		seen[post.ID] = true
	}

	// Double-booking the same slot is permitted.
	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, count)
}

func TestRescheduleMovesBetweenDays(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	post, err := svc.Add(ctx, schedule.AddInput{
		Content:   "moving day",
		PersonaID: domain.PersonaAastha,
		Date:      day(2025, time.March, 10),
		Time:      "09:00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Reschedule(ctx, post.ID, day(2025, time.March, 12), "14:30"))

	old, err := svc.PostsOn(ctx, day(2025, time.March, 10))
	require.NoError(t, err)
	assert.Empty(t, old)

	moved, err := svc.PostsOn(ctx, day(2025, time.March, 12))
	require.NoError(t, err)
	require.Len(t, moved, 1)
	assert.Equal(t, post.ID, moved[0].ID)
	assert.Equal(t, "14:30", moved[0].Time)
}

func TestRescheduleMissingID(t *testing.T) {
	svc := newService()
	err := svc.Reschedule(context.Background(), "no-such-id", day(2025, time.March, 12), "10:00")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestRemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	post, err := svc.Add(ctx, schedule.AddInput{
		Content:   "short-lived",
		PersonaID: domain.PersonaSimmi,
		Date:      day(2025, time.March, 10),
		Time:      "09:00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, post.ID))
	require.NoError(t, svc.Remove(ctx, post.ID), "second remove must not fail")
	require.NoError(t, svc.Remove(ctx, "never-existed"))

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPostsBetween(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	for _, d := range []int{1, 5, 15, 28} {
		_, err := svc.Add(ctx, schedule.AddInput{
			Content:   "entry",
			PersonaID: domain.PersonaSimmi,
			Date:      day(2025, time.April, d),
			Time:      "09:00",
		})
		require.NoError(t, err)
	}

	posts, err := svc.PostsBetween(ctx, day(2025, time.April, 5), day(2025, time.April, 15))
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, err = svc.PostsBetween(ctx, day(2025, time.April, 1), day(2025, time.April, 30))
	require.NoError(t, err)
	assert.Len(t, posts, 4)

	_, err = svc.PostsBetween(ctx, day(2025, time.April, 30), day(2025, time.April, 1))
	assert.Error(t, err, "inverted range rejected")
}
