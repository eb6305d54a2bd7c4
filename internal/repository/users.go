package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ekovalev/drillbot.git/internal/models"
)

type UsersR struct {
	db QueryI
}

func NewUsersRepository(db QueryI) *UsersR {
	return &UsersR{db: db}
}

func (u *UsersR) UserByTelegramID(ctx context.Context, telegramID int64) (models.User, error) {
	query := `SELECT id, telegram_id, name FROM users WHERE telegram_id = $1`

	var user models.User
	err := u.db.GetContext(ctx, &user, query, telegramID)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, models.ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("database error: %w", err)
	}
	return user, nil
}

type createdUser struct {
	ID          int64 `db:"id"`
	WordsSeeded int   `db:"words_seeded"`
}

// CreateUserWithSeed inserts the user row and one personal link per seed
// word (oldest words first) in a single statement, so the signup either
// fully commits or not at all. A concurrent duplicate insert seeds nothing
// and reports created=false.
func (u *UsersR) CreateUserWithSeed(ctx context.Context, telegramID int64, name string, seedLimit int) (models.User, int, error) {
	query := `
		WITH new_user AS (
			INSERT INTO users (telegram_id, name)
			VALUES ($1, $2)
			ON CONFLICT (telegram_id) DO NOTHING
			RETURNING id
		), seeded AS (
			INSERT INTO user_words (user_id, word_id)
			SELECT new_user.id, w.id
			FROM new_user, (SELECT id FROM words ORDER BY id LIMIT $3) AS w
			RETURNING word_id
		)
		SELECT COALESCE((SELECT id FROM new_user), 0)  AS id,
		       (SELECT COUNT(*) FROM seeded)           AS words_seeded
	`

	var row createdUser
	if err := u.db.GetContext(ctx, &row, query, telegramID, name, seedLimit); err != nil {
		return models.User{}, 0, fmt.Errorf("failed to create user %d: %w", telegramID, err)
	}

	if row.ID == 0 {
		// Lost the insert race; the existing row wins.
		existing, err := u.UserByTelegramID(ctx, telegramID)
		if err != nil {
			return models.User{}, 0, err
		}
		return existing, 0, nil
	}

	return models.User{ID: row.ID, TelegramID: telegramID, Name: name}, row.WordsSeeded, nil
}
