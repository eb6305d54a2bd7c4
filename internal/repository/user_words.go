package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ekovalev/drillbot.git/internal/models"
)

// UserWordsR manages the per-user word links and their mastery counters.
type UserWordsR struct {
	db QueryI
}

func NewUserWordsRepository(db QueryI) *UserWordsR {
	return &UserWordsR{db: db}
}

// LinkWord attaches an existing word to the user's personal list. Returns
// false when the link was already there.
func (u *UserWordsR) LinkWord(ctx context.Context, userID, wordID int64) (bool, error) {
	query := `
		INSERT INTO user_words (user_id, word_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, word_id) DO NOTHING
	`

	res, err := u.db.ExecContext(ctx, query, userID, wordID)
	if err != nil {
		return false, fmt.Errorf("failed to link word %d to user %d: %w", wordID, userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// InsertWordWithLink creates the dictionary word and the user's link to it
// in one statement: both rows commit or neither does. If the word slipped in
// concurrently, its existing row is linked instead.
func (u *UserWordsR) InsertWordWithLink(ctx context.Context, userID int64, native, english string) (models.Word, error) {
	query := `
		WITH w AS (
			INSERT INTO words (native_word, english_word)
			VALUES ($2, $3)
			ON CONFLICT (native_word) DO UPDATE SET english_word = words.english_word
			RETURNING id, native_word, english_word
		), link AS (
			INSERT INTO user_words (user_id, word_id)
			SELECT $1, id FROM w
			ON CONFLICT (user_id, word_id) DO NOTHING
		)
		SELECT id, native_word, english_word FROM w
	`

	var word models.Word
	if err := u.db.GetContext(ctx, &word, query, userID, native, english); err != nil {
		return models.Word{}, fmt.Errorf("failed to insert word %q for user %d: %w", native, userID, err)
	}
	return word, nil
}

// UnlinkWord removes a word from the user's personal list. The dictionary
// row stays. Returns false when there was no link to remove.
func (u *UserWordsR) UnlinkWord(ctx context.Context, userID, wordID int64) (bool, error) {
	query := `DELETE FROM user_words WHERE user_id = $1 AND word_id = $2`

	res, err := u.db.ExecContext(ctx, query, userID, wordID)
	if err != nil {
		return false, fmt.Errorf("failed to unlink word %d from user %d: %w", wordID, userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// RandomPersonalWord picks a uniformly random word from the user's list.
func (u *UserWordsR) RandomPersonalWord(ctx context.Context, userID int64) (models.Word, error) {
	query := `
		SELECT w.id, w.native_word, w.english_word
		FROM words w
		JOIN user_words uw ON uw.word_id = w.id
		WHERE uw.user_id = $1
		ORDER BY RANDOM()
		LIMIT 1
	`

	var word models.Word
	err := u.db.GetContext(ctx, &word, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Word{}, models.ErrEmptyVocabulary
		}
		return models.Word{}, fmt.Errorf("database error: %w", err)
	}
	return word, nil
}

func (u *UserWordsR) PersonalWords(ctx context.Context, userID int64) ([]models.Word, error) {
	query := `
		SELECT w.id, w.native_word, w.english_word
		FROM words w
		JOIN user_words uw ON uw.word_id = w.id
		WHERE uw.user_id = $1
		ORDER BY w.id
	`

	var words []models.Word
	if err := u.db.SelectContext(ctx, &words, query, userID); err != nil {
		return nil, fmt.Errorf("failed to load words for user %d: %w", userID, err)
	}
	return words, nil
}

func (u *UserWordsR) WordCount(ctx context.Context, userID int64) (int, error) {
	var count int
	err := u.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM user_words WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count words for user %d: %w", userID, err)
	}
	return count, nil
}

// IncrementMastery bumps the correct-answer counter by one. Returns false
// when the link no longer exists (deleted between question and answer).
func (u *UserWordsR) IncrementMastery(ctx context.Context, userID, wordID int64) (bool, error) {
	query := `UPDATE user_words SET count = count + 1 WHERE user_id = $1 AND word_id = $2`

	res, err := u.db.ExecContext(ctx, query, userID, wordID)
	if err != nil {
		return false, fmt.Errorf("failed to increment count for user %d word %d: %w", userID, wordID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// MasteryCount reads the counter for one (user, word) pair.
func (u *UserWordsR) MasteryCount(ctx context.Context, userID, wordID int64) (int, error) {
	var count int
	err := u.db.GetContext(ctx, &count, `SELECT count FROM user_words WHERE user_id = $1 AND word_id = $2`, userID, wordID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, models.ErrAssociationMissing
		}
		return 0, fmt.Errorf("database error: %w", err)
	}
	return count, nil
}
