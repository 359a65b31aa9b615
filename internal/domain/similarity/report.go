package similarity

// SequenceMatch is a stored question classified as similar by the sequence detector.
type SequenceMatch struct {
	questionID string
	text       string
	score      float64
}

// NewSequenceMatch creates a sequence match. score is a percentage in [0,100].
func NewSequenceMatch(questionID, text string, score float64) SequenceMatch {
	return SequenceMatch{questionID: questionID, text: text, score: score}
}

// QuestionID returns the matched question identifier.
func (m SequenceMatch) QuestionID() string { return m.questionID }

// Text returns the original text of the matched question.
func (m SequenceMatch) Text() string { return m.text }

// Score returns the similarity as a percentage rounded to 2 decimals.
func (m SequenceMatch) Score() float64 { return m.score }

// WordMatch is a stored question sharing words with the candidate.
type WordMatch struct {
	questionID string
	text       string
	words      []string
}

// NewWordMatch creates a word-overlap match.
func NewWordMatch(questionID, text string, words []string) WordMatch {
	return WordMatch{questionID: questionID, text: text, words: words}
}

// QuestionID returns the matched question identifier.
func (m WordMatch) QuestionID() string { return m.questionID }

// Text returns the original text of the matched question.
func (m WordMatch) Text() string { return m.text }

// Words returns the shared lower-cased tokens, sorted.
func (m WordMatch) Words() []string { return m.words }

// SequenceReport lists sequence matches in corpus insertion order.
type SequenceReport struct {
	Matches []SequenceMatch
}

// Count returns the number of matches.
func (r SequenceReport) Count() int { return len(r.Matches) }

// WordReport lists word-overlap matches in corpus insertion order.
type WordReport struct {
	Matches []WordMatch
}

// Count returns the number of matches.
func (r WordReport) Count() int { return len(r.Matches) }
