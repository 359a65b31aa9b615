// Package dupecheck provides a Go client for the dupecheck question corpus
// backed by Valkey, Redis, SQLite or process memory.
//
// The corpus holds at most a configured number of questions. Two detectors
// compare a candidate text against it:
//
//   - the sequence detector reports stored questions whose character-level
//     similarity ratio exceeds the threshold (0.6 by default)
//   - the word detector reports stored questions sharing whitespace-separated
//     words with the candidate, case-insensitively
//
// # Usage
//
//	client, _ := dupecheck.New(ctx, dupecheck.WithSQLite("data/corpus.db"))
//	defer client.Close()
//
//	q, err := client.Questions().Create(ctx, "How do I reset my password?")
//	if errors.Is(err, dupecheck.ErrCapacityExceeded) {
//	    // corpus is full, delete something first
//	}
//
//	res, _ := client.Similarity().CheckSimilarity(ctx, "how do i reset my password")
//	for _, m := range res.Matches {
//	    fmt.Println(m.ID, m.Score)
//	}
package dupecheck
