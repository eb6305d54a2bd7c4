package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ekovalev/drillbot.git/internal/models"
)

// WordsR is the global dictionary. Append-only: words are inserted once and
// never removed, even when every user drops them from their personal list.
type WordsR struct {
	db QueryI
}

func NewWordsRepository(db QueryI) *WordsR {
	return &WordsR{db: db}
}

// WordByNative looks up a word by its lowercase native text.
func (w *WordsR) WordByNative(ctx context.Context, native string) (models.Word, error) {
	query := `SELECT id, native_word, english_word FROM words WHERE native_word = $1`

	var word models.Word
	err := w.db.GetContext(ctx, &word, query, native)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Word{}, models.ErrWordNotFound
		}
		return models.Word{}, fmt.Errorf("database error: %w", err)
	}
	return word, nil
}

// InsertIfAbsent upserts a word. When two callers race on the same native
// text the first insert wins and both observe the same row; the no-op DO
// UPDATE keeps RETURNING populated on conflict.
func (w *WordsR) InsertIfAbsent(ctx context.Context, native, english string) (models.Word, error) {
	query := `
		INSERT INTO words (native_word, english_word)
		VALUES ($1, $2)
		ON CONFLICT (native_word) DO UPDATE SET english_word = words.english_word
		RETURNING id, native_word, english_word
	`

	var word models.Word
	if err := w.db.GetContext(ctx, &word, query, native, english); err != nil {
		return models.Word{}, fmt.Errorf("failed to insert word %q: %w", native, err)
	}
	return word, nil
}

// SampleDistractors draws up to n random words with pairwise-distinct
// translations, excluding the target word and anything that translates the
// same way it does.
func (w *WordsR) SampleDistractors(ctx context.Context, excludeWordID int64, excludeEnglish string, n int) ([]models.Word, error) {
	query := `
		SELECT id, native_word, english_word
		FROM (
			SELECT DISTINCT ON (english_word) id, native_word, english_word
			FROM words
			WHERE id <> $1 AND english_word <> $2
		) AS candidates
		ORDER BY RANDOM()
		LIMIT $3
	`

	words := make([]models.Word, 0, n)
	if err := w.db.SelectContext(ctx, &words, query, excludeWordID, excludeEnglish, n); err != nil {
		return nil, fmt.Errorf("failed to sample distractors: %w", err)
	}
	return words, nil
}

// SeedWords returns the oldest words in creation order, used to pre-populate
// a new user's personal list.
func (w *WordsR) SeedWords(ctx context.Context, limit int) ([]models.Word, error) {
	query := `SELECT id, native_word, english_word FROM words ORDER BY id LIMIT $1`

	var words []models.Word
	if err := w.db.SelectContext(ctx, &words, query, limit); err != nil {
		return nil, fmt.Errorf("failed to load seed words: %w", err)
	}
	return words, nil
}

func (w *WordsR) TotalWords(ctx context.Context) (int, error) {
	var total int
	if err := w.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM words`); err != nil {
		return 0, fmt.Errorf("failed to count words: %w", err)
	}
	return total, nil
}
