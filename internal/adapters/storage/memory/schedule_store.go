package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/worklab-studio/Nextyoulinkedin/internal/domain"
)

// ScheduleStore is an in-memory implementation of domain.ScheduleStore.
// Not persistent; suitable for development and tests.
type ScheduleStore struct {
	mu    sync.RWMutex
	posts map[domain.PostID]*domain.ScheduledPost
}

func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{
		posts: make(map[domain.PostID]*domain.ScheduledPost),
	}
}

func (s *ScheduleStore) SavePost(_ context.Context, post *domain.ScheduledPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *post
	s.posts[post.ID] = &cp
	return nil
}

func (s *ScheduleStore) DeletePost(_ context.Context, id domain.PostID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.posts, id)
	return nil
}

func (s *ScheduleStore) ReschedulePost(_ context.Context, id domain.PostID, date time.Time, timeOfDay string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return domain.ErrPostNotFound
	}
	post.Date = domain.DayStart(date)
	post.Time = timeOfDay
	return nil
}

func (s *ScheduleStore) PostsOn(_ context.Context, date time.Time) ([]*domain.ScheduledPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.ScheduledPost
	for _, post := range s.posts {
		if domain.SameDay(post.Date, date) {
			cp := *post
			out = append(out, &cp)
		}
	}
	sortPosts(out)
	return out, nil
}

func (s *ScheduleStore) PostsBetween(_ context.Context, from, to time.Time) ([]*domain.ScheduledPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := domain.DayStart(from)
	end := domain.DayStart(to)

	var out []*domain.ScheduledPost
	for _, post := range s.posts {
		day := domain.DayStart(post.Date)
		if day.Before(start) || day.After(end) {
			continue
		}
		cp := *post
		out = append(out, &cp)
	}
	sortPosts(out)
	return out, nil
}

func (s *ScheduleStore) CountPosts(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts), nil
}

// sortPosts gives callers a stable iteration order: date, then time of day,
// then creation time.
func sortPosts(posts []*domain.ScheduledPost) {
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.Before(posts[j].Date)
		}
		if posts[i].Time != posts[j].Time {
			return posts[i].Time < posts[j].Time
		}
		return posts[i].CreatedAt.Before(posts[j].CreatedAt)
	})
}
