package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/worklab-studio/Nextyoulinkedin/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS scheduled_posts (
	id           TEXT PRIMARY KEY,
	content      TEXT NOT NULL,
	persona_id   TEXT NOT NULL,
	persona_name TEXT NOT NULL,
	date         TEXT NOT NULL, -- YYYY-MM-DD
	time         TEXT NOT NULL, -- HH:MM
	notes        TEXT NOT NULL DEFAULT '',
	created_at   TEXT NOT NULL -- RFC 3339
);
CREATE INDEX IF NOT EXISTS idx_scheduled_posts_date ON scheduled_posts(date);
`

const dayFormat = "2006-01-02"

// ScheduleStore is a SQLite-backed domain.ScheduleStore. Dates are stored
// as YYYY-MM-DD strings so the calendar-day bucket queries are plain
// equality and range comparisons.
type ScheduleStore struct {
	db *sql.DB
}

// NewScheduleStore opens (or creates) the database at path and initializes
// the schema.
func NewScheduleStore(path string) (*ScheduleStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying %s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &ScheduleStore{db: db}, nil
}

func (s *ScheduleStore) Close() error {
	return s.db.Close()
}

func (s *ScheduleStore) SavePost(ctx context.Context, post *domain.ScheduledPost) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO scheduled_posts
		 (id, content, persona_id, persona_name, date, time, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		string(post.ID), post.Content, string(post.PersonaID), post.PersonaName,
		post.Date.Format(dayFormat), post.Time, post.Notes,
		post.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("sqlite SavePost: %w", err)
	}
	return nil
}

func (s *ScheduleStore) DeletePost(ctx context.Context, id domain.PostID) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM scheduled_posts WHERE id = ?", string(id)); err != nil {
		return fmt.Errorf("sqlite DeletePost: %w", err)
	}
	return nil
}

func (s *ScheduleStore) ReschedulePost(ctx context.Context, id domain.PostID, date time.Time, timeOfDay string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE scheduled_posts SET date = ?, time = ? WHERE id = ?",
		date.Format(dayFormat), timeOfDay, string(id),
	)
	if err != nil {
		return fmt.Errorf("sqlite ReschedulePost: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite ReschedulePost: %w", err)
	}
	if affected == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (s *ScheduleStore) PostsOn(ctx context.Context, date time.Time) ([]*domain.ScheduledPost, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content, persona_id, persona_name, date, time, notes, created_at
		 FROM scheduled_posts WHERE date = ?
		 ORDER BY time, created_at`,
		date.Format(dayFormat),
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite PostsOn: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (s *ScheduleStore) PostsBetween(ctx context.Context, from, to time.Time) ([]*domain.ScheduledPost, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content, persona_id, persona_name, date, time, notes, created_at
		 FROM scheduled_posts WHERE date >= ? AND date <= ?
		 ORDER BY date, time, created_at`,
		from.Format(dayFormat), to.Format(dayFormat),
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite PostsBetween: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (s *ScheduleStore) CountPosts(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM scheduled_posts").Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlite CountPosts: %w", err)
	}
	return n, nil
}

func scanPosts(rows *sql.Rows) ([]*domain.ScheduledPost, error) {
	var out []*domain.ScheduledPost
	for rows.Next() {
		var id, content, personaID, personaName, day, tod, notes, created string
		if err := rows.Scan(&id, &content, &personaID, &personaName, &day, &tod, &notes, &created); err != nil {
			return nil, fmt.Errorf("scanning scheduled post: %w", err)
		}
		date, err := time.Parse(dayFormat, day)
		if err != nil {
			return nil, fmt.Errorf("parsing stored date %q: %w", day, err)
		}
		createdAt, err := time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parsing stored timestamp %q: %w", created, err)
		}
		out = append(out, &domain.ScheduledPost{
			ID:          domain.PostID(id),
			Content:     content,
			PersonaID:   domain.PersonaID(personaID),
			PersonaName: personaName,
			Date:        date,
			Time:        tod,
			Notes:       notes,
			CreatedAt:   createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scheduled posts: %w", err)
	}
	return out, nil
}
