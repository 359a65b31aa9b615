package redis

import (
	"context"
	"fmt"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/dupecheck/internal/db"
)

// EvalInt runs a script that returns an integer reply.
func (s *Store) EvalInt(ctx context.Context, script *db.Script, keys, args []string) (int64, error) {
	n, err := s.lua(script).Exec(ctx, s.client, keys, args).AsInt64()
	if err != nil {
		return 0, &db.Error{Op: db.OpEval, Err: fmt.Errorf("%s: %w", script.Name, err)}
	}
	return n, nil
}

// EvalStrings runs a script that returns an array of bulk strings.
func (s *Store) EvalStrings(ctx context.Context, script *db.Script, keys, args []string) ([]string, error) {
	out, err := s.lua(script).Exec(ctx, s.client, keys, args).AsStrSlice()
	if err != nil {
		return nil, &db.Error{Op: db.OpEval, Err: fmt.Errorf("%s: %w", script.Name, err)}
	}
	return out, nil
}

// lua returns the cached rueidis script handle; EVALSHA falls back to EVAL on NOSCRIPT.
func (s *Store) lua(script *db.Script) *rueidis.Lua {
	if l, ok := s.scripts.Load(script.Name); ok {
		return l.(*rueidis.Lua)
	}
	l, _ := s.scripts.LoadOrStore(script.Name, rueidis.NewLuaScript(script.Source))
	return l.(*rueidis.Lua)
}
