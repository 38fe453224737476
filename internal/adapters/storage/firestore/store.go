package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/worklab-studio/Nextyoulinkedin/internal/domain"
)

const dayFormat = "2006-01-02"

// Store is a Firestore-backed domain.ScheduleStore. Posts live in one
// collection keyed by ID, with the calendar day denormalized into a
// YYYY-MM-DD field so day buckets and ranges are single-field queries.
type Store struct {
	client *firestore.Client
}

// NewStore creates a Firestore schedule store for the given project.
func NewStore(ctx context.Context, projectID string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) postsCol() *firestore.CollectionRef {
	return s.client.Collection("scheduled_posts")
}

func (s *Store) docRef(id domain.PostID) *firestore.DocumentRef {
	return s.postsCol().Doc(string(id))
}

type postDoc struct {
	Content     string    `firestore:"content"`
	PersonaID   string    `firestore:"persona_id"`
	PersonaName string    `firestore:"persona_name"`
	Day         string    `firestore:"day"`
	Time        string    `firestore:"time"`
	Notes       string    `firestore:"notes"`
	CreatedAt   time.Time `firestore:"created_at"`
}

func (s *Store) SavePost(ctx context.Context, post *domain.ScheduledPost) error {
	doc := postDoc{
		Content:     post.Content,
		PersonaID:   string(post.PersonaID),
		PersonaName: post.PersonaName,
		Day:         post.Date.Format(dayFormat),
		Time:        post.Time,
		Notes:       post.Notes,
		CreatedAt:   post.CreatedAt,
	}

	if _, err := s.docRef(post.ID).Set(ctx, doc); err != nil {
		return fmt.Errorf("firestore SavePost: %w", err)
	}
	return nil
}

func (s *Store) DeletePost(ctx context.Context, id domain.PostID) error {
	// Firestore deletes are already idempotent: deleting an absent
	// document succeeds.
	if _, err := s.docRef(id).Delete(ctx); err != nil {
		return fmt.Errorf("firestore DeletePost: %w", err)
	}
	return nil
}

func (s *Store) ReschedulePost(ctx context.Context, id domain.PostID, date time.Time, timeOfDay string) error {
	_, err := s.docRef(id).Update(ctx, []firestore.Update{
		{Path: "day", Value: date.Format(dayFormat)},
		{Path: "time", Value: timeOfDay},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return domain.ErrPostNotFound
		}
		return fmt.Errorf("firestore ReschedulePost: %w", err)
	}
	return nil
}

func (s *Store) PostsOn(ctx context.Context, date time.Time) ([]*domain.ScheduledPost, error) {
	q := s.postsCol().
		Where("day", "==", date.Format(dayFormat)).
		OrderBy("time", firestore.Asc)
	return s.queryPosts(ctx, q, "PostsOn")
}

func (s *Store) PostsBetween(ctx context.Context, from, to time.Time) ([]*domain.ScheduledPost, error) {
	q := s.postsCol().
		Where("day", ">=", from.Format(dayFormat)).
		Where("day", "<=", to.Format(dayFormat)).
		OrderBy("day", firestore.Asc).
		OrderBy("time", firestore.Asc)
	return s.queryPosts(ctx, q, "PostsBetween")
}

func (s *Store) CountPosts(ctx context.Context) (int, error) {
	docs, err := s.postsCol().Select().Documents(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("firestore CountPosts: %w", err)
	}
	return len(docs), nil
}

func (s *Store) queryPosts(ctx context.Context, q firestore.Query, op string) ([]*domain.ScheduledPost, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []*domain.ScheduledPost
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore %s: %w", op, err)
		}

		var doc postDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode postDoc: %w", err)
		}

		date, err := time.Parse(dayFormat, doc.Day)
		if err != nil {
			return nil, fmt.Errorf("parsing stored day %q: %w", doc.Day, err)
		}

		out = append(out, &domain.ScheduledPost{
			ID:          domain.PostID(snap.Ref.ID),
			Content:     doc.Content,
			PersonaID:   domain.PersonaID(doc.PersonaID),
			PersonaName: doc.PersonaName,
			Date:        date,
			Time:        doc.Time,
			Notes:       doc.Notes,
			CreatedAt:   doc.CreatedAt,
		})
	}
	return out, nil
}
