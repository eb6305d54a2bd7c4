package models

// Question is the ephemeral per-user quiz state: the word being asked, its
// correct translation and three wrong options. It lives in the process-local
// cache between askQuestion and a correct answer and is never persisted.
type Question struct {
	UserID      int64
	WordID      int64
	Native      string
	Correct     string
	Distractors []string
}

// Options returns the correct translation and the distractors in one slice.
// Shuffling is up to the renderer.
func (q Question) Options() []string {
	options := make([]string, 0, len(q.Distractors)+1)
	options = append(options, q.Correct)
	options = append(options, q.Distractors...)
	return options
}

type AnswerOutcome string

const (
	AnswerCorrect    AnswerOutcome = "correct"
	AnswerIncorrect  AnswerOutcome = "incorrect"
	AnswerNoQuestion AnswerOutcome = "no_active_question"
)

type AnswerResult struct {
	Outcome  AnswerOutcome
	Question Question
}
