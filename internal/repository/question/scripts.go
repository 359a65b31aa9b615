package question

import "github.com/kailas-cloud/dupecheck/internal/db"

// insertScript adds a question unless the corpus is full.
// KEYS: order zset, sequence counter, question hash.
// ARGV: capacity (0 = unbounded), id, text, created_at.
// Returns the insertion sequence number, or 0 when the corpus is full.
var insertScript = &db.Script{
	Name: "question_insert",
	Source: `
local capacity = tonumber(ARGV[1])
if capacity > 0 and redis.call('ZCARD', KEYS[1]) >= capacity then
  return 0
end
local seq = redis.call('INCR', KEYS[2])
redis.call('HSET', KEYS[3], 'text', ARGV[3], 'created_at', ARGV[4])
redis.call('ZADD', KEYS[1], seq, ARGV[2])
return seq
`,
}

// deleteScript removes a question from the order set and drops its hash.
// KEYS: order zset, question hash. ARGV: id.
// Returns 1 when removed, 0 when the id is unknown.
var deleteScript = &db.Script{
	Name: "question_delete",
	Source: `
if redis.call('ZREM', KEYS[1], ARGV[1]) == 0 then
  return 0
end
redis.call('DEL', KEYS[2])
return 1
`,
}

// listScript reads the whole corpus in insertion order as one atomic snapshot.
// KEYS: order zset. ARGV: question hash key prefix.
// Returns a flat array of id, text, created_at triples.
var listScript = &db.Script{
	Name: "question_list",
	Source: `
local ids = redis.call('ZRANGE', KEYS[1], 0, -1)
local out = {}
for _, id in ipairs(ids) do
  local f = redis.call('HMGET', ARGV[1] .. id, 'text', 'created_at')
  if f[1] then
    out[#out + 1] = id
    out[#out + 1] = f[1]
    out[#out + 1] = f[2] or '0'
  end
end
return out
`,
}
