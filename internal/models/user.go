package models

// User is keyed by the Telegram account id. Created on first interaction,
// never deleted.
type User struct {
	ID         int64  `db:"id"`
	TelegramID int64  `db:"telegram_id"`
	Name       string `db:"name"`
}
