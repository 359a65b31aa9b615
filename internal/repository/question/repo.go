package question

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/kailas-cloud/dupecheck/internal/db"
	"github.com/kailas-cloud/dupecheck/internal/domain"
	domq "github.com/kailas-cloud/dupecheck/internal/domain/question"
)

// DefaultKeyPrefix is used when no key prefix is configured.
const DefaultKeyPrefix = "dupecheck:"

// store is the consumer interface for questions (ISP).
type store interface {
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	ZCard(ctx context.Context, key string) (int64, error)
	EvalInt(ctx context.Context, script *db.Script, keys, args []string) (int64, error)
	EvalStrings(ctx context.Context, script *db.Script, keys, args []string) ([]string, error)
}

// Repo implements usecase/question.Repository on Redis or Valkey.
//
// Layout: a sorted set of ids scored by insertion sequence, an INCR counter for the
// sequence and one hash per question. All keys share the {questions} hash tag so
// the scripts touch a single cluster slot.
type Repo struct {
	store  store
	prefix string
}

// New creates a Redis-backed question repository.
func New(s store, keyPrefix string) *Repo {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &Repo{store: s, prefix: keyPrefix + "{questions}:"}
}

// Insert stores q unless the corpus already holds capacity questions (0 = unbounded).
func (r *Repo) Insert(ctx context.Context, q *domq.Question, capacity int) error {
	keys := []string{r.orderKey(), r.seqKey(), r.questionKey(q.ID())}
	args := []string{
		strconv.Itoa(capacity),
		q.ID(),
		q.Text(),
		strconv.FormatInt(q.CreatedAt().UnixNano(), 10),
	}

	seq, err := r.store.EvalInt(ctx, insertScript, keys, args)
	if err != nil {
		return fmt.Errorf("insert question %s: %w", q.ID(), err)
	}
	if seq == 0 {
		return domain.NewCapacityExceeded(capacity)
	}
	return nil
}

// Get returns a question by ID.
func (r *Repo) Get(ctx context.Context, id string) (domq.Question, error) {
	key := r.questionKey(id)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domq.Question{}, domain.ErrQuestionNotFound
		}
		return domq.Question{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	return domq.Reconstruct(id, m["text"], parseNanos(m["created_at"])), nil
}

// Delete removes a question. Unknown ids yield ErrQuestionNotFound.
func (r *Repo) Delete(ctx context.Context, id string) error {
	keys := []string{r.orderKey(), r.questionKey(id)}
	removed, err := r.store.EvalInt(ctx, deleteScript, keys, []string{id})
	if err != nil {
		return fmt.Errorf("delete question %s: %w", id, err)
	}
	if removed == 0 {
		return domain.ErrQuestionNotFound
	}
	return nil
}

// Count returns the corpus size.
func (r *Repo) Count(ctx context.Context) (int, error) {
	n, err := r.store.ZCard(ctx, r.orderKey())
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return int(n), nil
}

// List returns a snapshot of the corpus in insertion order.
func (r *Repo) List(ctx context.Context) ([]domq.Question, error) {
	flat, err := r.store.EvalStrings(ctx, listScript, []string{r.orderKey()}, []string{r.prefix + "q:"})
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	if len(flat)%3 != 0 {
		return nil, fmt.Errorf("list questions: malformed reply of %d elements", len(flat))
	}

	out := make([]domq.Question, 0, len(flat)/3)
	for i := 0; i < len(flat); i += 3 {
		out = append(out, domq.Reconstruct(flat[i], flat[i+1], parseNanos(flat[i+2])))
	}
	return out, nil
}

func (r *Repo) orderKey() string { return r.prefix + "order" }

func (r *Repo) seqKey() string { return r.prefix + "seq" }

func (r *Repo) questionKey(id string) string { return r.prefix + "q:" + id }

func parseNanos(s string) time.Time {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}
