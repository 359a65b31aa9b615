package question

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/dupecheck/internal/domain"
	domq "github.com/kailas-cloud/dupecheck/internal/domain/question"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS questions (
	seq        INTEGER PRIMARY KEY AUTOINCREMENT,
	id         TEXT    NOT NULL UNIQUE,
	text       TEXT    NOT NULL,
	created_at INTEGER NOT NULL
)`

// The capacity check and the insert are one statement, so concurrent inserts
// cannot overshoot the limit.
const insertSQL = `
INSERT INTO questions (id, text, created_at)
SELECT ?, ?, ?
WHERE ? <= 0 OR (SELECT COUNT(*) FROM questions) < ?`

// sqlStore is the consumer interface for the SQL repository (*sql.DB satisfies it).
type sqlStore interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLRepo implements usecase/question.Repository on SQLite.
type SQLRepo struct {
	db sqlStore
}

// NewSQL creates a SQL-backed question repository.
func NewSQL(db sqlStore) *SQLRepo {
	return &SQLRepo{db: db}
}

// Migrate creates the questions table if it does not exist.
func (r *SQLRepo) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("migrate questions: %w", err)
	}
	return nil
}

// Insert stores q unless the corpus already holds capacity questions (0 = unbounded).
func (r *SQLRepo) Insert(ctx context.Context, q *domq.Question, capacity int) error {
	res, err := r.db.ExecContext(ctx, insertSQL,
		q.ID(), q.Text(), q.CreatedAt().UnixNano(), capacity, capacity)
	if err != nil {
		return fmt.Errorf("insert question %s: %w", q.ID(), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert question %s: %w", q.ID(), err)
	}
	if n == 0 {
		return domain.NewCapacityExceeded(capacity)
	}
	return nil
}

// Get returns a question by ID.
func (r *SQLRepo) Get(ctx context.Context, id string) (domq.Question, error) {
	var (
		text  string
		nanos int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT text, created_at FROM questions WHERE id = ?`, id).Scan(&text, &nanos)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domq.Question{}, domain.ErrQuestionNotFound
		}
		return domq.Question{}, fmt.Errorf("get question %s: %w", id, err)
	}
	return domq.Reconstruct(id, text, time.Unix(0, nanos).UTC()), nil
}

// Delete removes a question. Unknown ids yield ErrQuestionNotFound.
func (r *SQLRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete question %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete question %s: %w", id, err)
	}
	if n == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

// Count returns the corpus size.
func (r *SQLRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

// List returns a snapshot of the corpus in insertion order.
func (r *SQLRepo) List(ctx context.Context) ([]domq.Question, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, text, created_at FROM questions ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domq.Question
	for rows.Next() {
		var (
			id, text string
			nanos    int64
		)
		if err := rows.Scan(&id, &text, &nanos); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		out = append(out, domq.Reconstruct(id, text, time.Unix(0, nanos).UTC()))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return out, nil
}
