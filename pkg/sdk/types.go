package dupecheck

import "time"

// Question is a stored corpus item.
type Question struct {
	ID        string
	Text      string
	CreatedAt time.Time
}

// QuestionPage is a window of the corpus in insertion order.
type QuestionPage struct {
	Questions []Question
	Total     int
	HasMore   bool
}

// SimilarQuestion is a stored question reported by the sequence detector.
type SimilarQuestion struct {
	ID    string
	Text  string
	Score float64 // percentage, rounded to 2 decimals
}

// SimilarityResult lists sequence matches in corpus insertion order.
type SimilarityResult struct {
	Matches []SimilarQuestion
	Count   int
}

// WordMatch is a stored question reported by the word detector.
type WordMatch struct {
	ID          string
	Text        string
	CommonWords []string
}

// WordResult lists word-overlap matches in corpus insertion order.
type WordResult struct {
	Matches []WordMatch
	Count   int
}
