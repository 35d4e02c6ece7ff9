// Package draft keeps composed messages whose commit failed so a later run
// can retry them without prompting again.
package draft

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"czjira/internal/core"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("draft not found")

// timeLayout is fixed width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type Draft struct {
	ID        string
	Repo      string
	Message   string
	Answers   core.AnswerSet
	Reason    string
	CreatedAt time.Time
}

type Store struct {
	db  *sql.DB
	now func() time.Time
}

func Open(path string) (*Store, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores message for repo and fills in ID and CreatedAt.
func (s *Store) Save(ctx context.Context, d *Draft) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = s.now().UTC()
	}

	answers, err := json.Marshal(d.Answers)
	if err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}

	query := `INSERT INTO drafts (id, repo, message, answers, reason, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	_, err = s.db.ExecContext(ctx, query,
		d.ID,
		d.Repo,
		d.Message,
		string(answers),
		d.Reason,
		d.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting draft: %w", err)
	}
	return nil
}

// Latest returns the newest draft for repo.
func (s *Store) Latest(ctx context.Context, repo string) (*Draft, error) {
	drafts, err := s.List(ctx, repo, 1)
	if err != nil {
		return nil, err
	}
	if len(drafts) == 0 {
		return nil, ErrNotFound
	}
	return drafts[0], nil
}

// List returns the drafts for repo, newest first. A limit <= 0 returns all.
func (s *Store) List(ctx context.Context, repo string, limit int) ([]*Draft, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT id, repo, message, answers, reason, created_at
		FROM drafts WHERE repo = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, repo, limit)
	if err != nil {
		return nil, fmt.Errorf("listing drafts: %w", err)
	}
	defer rows.Close()

	var drafts []*Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}
	return drafts, rows.Err()
}

func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Clear removes every draft for repo and reports how many were removed.
func (s *Store) Clear(ctx context.Context, repo string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE repo = ?`, repo)
	if err != nil {
		return 0, fmt.Errorf("clearing drafts: %w", err)
	}
	return res.RowsAffected()
}

func scanDraft(rows *sql.Rows) (*Draft, error) {
	var (
		d         Draft
		answers   string
		createdAt string
	)
	if err := rows.Scan(&d.ID, &d.Repo, &d.Message, &answers, &d.Reason, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning draft: %w", err)
	}
	if err := json.Unmarshal([]byte(answers), &d.Answers); err != nil {
		return nil, fmt.Errorf("decoding answers of draft %s: %w", d.ID, err)
	}
	t, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at of draft %s: %w", d.ID, err)
	}
	d.CreatedAt = t
	return &d, nil
}
