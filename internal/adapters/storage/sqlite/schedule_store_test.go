package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklab-studio/Nextyoulinkedin/internal/adapters/storage/sqlite"
	"github.com/worklab-studio/Nextyoulinkedin/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func openStore(t *testing.T) *sqlite.ScheduleStore {
	t.Helper()
	store, err := sqlite.NewScheduleStore(filepath.Join(t.TempDir(), "studio.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func post(id string, date time.Time, tod string) *domain.ScheduledPost {
	return &domain.ScheduledPost{
		ID:          domain.PostID(id),
		Content:     "content for " + id,
		PersonaID:   domain.PersonaAastha,
		PersonaName: "Aastha Tomar",
		Date:        date,
		Time:        tod,
		Notes:       "a note",
		CreatedAt:   time.Now().UTC(),
	}
}

func TestSaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	original := post("a", day(2025, time.March, 10), "09:00")
	require.NoError(t, store.SavePost(ctx, original))

	posts, err := store.PostsOn(ctx, day(2025, time.March, 10))
	require.NoError(t, err)
	require.Len(t, posts, 1)

	got := posts[0]
	assert.Equal(t, original.ID, got.ID)
	assert.Equal(t, original.Content, got.Content)
	assert.Equal(t, original.PersonaID, got.PersonaID)
	assert.Equal(t, original.PersonaName, got.PersonaName)
	assert.Equal(t, original.Time, got.Time)
	assert.Equal(t, original.Notes, got.Notes)
	assert.True(t, original.Date.Equal(got.Date))
	assert.True(t, original.CreatedAt.Equal(got.CreatedAt))
}

func TestSaveReplacesExistingRow(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	p := post("a", day(2025, time.March, 10), "09:00")
	require.NoError(t, store.SavePost(ctx, p))

	p.Content = "updated content"
	require.NoError(t, store.SavePost(ctx, p))

	n, err := store.CountPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	posts, err := store.PostsOn(ctx, day(2025, time.March, 10))
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "updated content", posts[0].Content)
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	require.NoError(t, store.SavePost(ctx, post("a", day(2025, time.March, 10), "09:00")))
	require.NoError(t, store.DeletePost(ctx, "a"))
	require.NoError(t, store.DeletePost(ctx, "a"))

	n, err := store.CountPosts(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRescheduleMovesPost(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	require.NoError(t, store.SavePost(ctx, post("a", day(2025, time.March, 10), "09:00")))
	require.NoError(t, store.ReschedulePost(ctx, "a", day(2025, time.March, 12), "14:30"))

	old, err := store.PostsOn(ctx, day(2025, time.March, 10))
	require.NoError(t, err)
	assert.Empty(t, old)

	moved, err := store.PostsOn(ctx, day(2025, time.March, 12))
	require.NoError(t, err)
	require.Len(t, moved, 1)
	assert.Equal(t, "14:30", moved[0].Time)
}

func TestRescheduleUnknownID(t *testing.T) {
	store := openStore(t)
	err := store.ReschedulePost(context.Background(), "ghost", day(2025, time.March, 12), "10:00")
	assert.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestPostsBetweenOrdered(t *testing.T) {
	ctx := context.Background()
	store := openStore(t)

	require.NoError(t, store.SavePost(ctx, post("c", day(2025, time.May, 20), "09:00")))
	require.NoError(t, store.SavePost(ctx, post("a", day(2025, time.May, 1), "09:00")))
	require.NoError(t, store.SavePost(ctx, post("b", day(2025, time.May, 10), "09:00")))

	posts, err := store.PostsBetween(ctx, day(2025, time.May, 1), day(2025, time.May, 31))
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, domain.PostID("a"), posts[0].ID)
	assert.Equal(t, domain.PostID("b"), posts[1].ID)
	assert.Equal(t, domain.PostID("c"), posts[2].ID)

	posts, err = store.PostsBetween(ctx, day(2025, time.May, 5), day(2025, time.May, 15))
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, domain.PostID("b"), posts[0].ID)
}

func TestStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "studio.db")

	store, err := sqlite.NewScheduleStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SavePost(ctx, post("a", day(2025, time.March, 10), "09:00")))
	require.NoError(t, store.Close())

	reopened, err := sqlite.NewScheduleStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	posts, err := reopened.PostsOn(ctx, day(2025, time.March, 10))
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, domain.PostID("a"), posts[0].ID)
}
