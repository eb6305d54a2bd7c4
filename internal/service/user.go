package service

import (
	"context"
	"errors"

	"github.com/ekovalev/drillbot.git/internal/audit"
	"github.com/ekovalev/drillbot.git/internal/models"
	"go.uber.org/zap"
)

// UserS is the account registry: create-if-absent with the default word
// seed, plus personal list reads.
type UserS struct {
	users     UserRI
	userWords UserWordRI
	audit     audit.Recorder
	seedLimit int
	log       *zap.Logger
}

func NewUserService(users UserRI, userWords UserWordRI, rec audit.Recorder, seedLimit int, log *zap.Logger) *UserS {
	return &UserS{
		users:     users,
		userWords: userWords,
		audit:     rec,
		seedLimit: seedLimit,
		log:       log,
	}
}

// CreateUserIfAbsent registers the account on first contact and seeds its
// personal list with the oldest dictionary words. An already-known account
// is returned untouched.
func (u *UserS) CreateUserIfAbsent(ctx context.Context, telegramID int64, name string) (models.User, bool, error) {
	user, err := u.users.UserByTelegramID(ctx, telegramID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return models.User{}, false, serviceFault(err)
	}

	user, seeded, err := u.users.CreateUserWithSeed(ctx, telegramID, name, u.seedLimit)
	if err != nil {
		return models.User{}, false, serviceFault(err)
	}

	u.audit.Record(audit.Event{
		Action:      "create_user",
		AccountID:   telegramID,
		Outcome:     "created",
		WordsSeeded: seeded,
	})
	u.log.Info("user created",
		zap.Int64("telegram_id", telegramID),
		zap.Int("words_seeded", seeded))

	return user, true, nil
}

// WordCount reports the size of the user's personal list.
func (u *UserS) WordCount(ctx context.Context, telegramID int64) (int, error) {
	user, err := u.users.UserByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return 0, err
		}
		return 0, serviceFault(err)
	}

	count, err := u.userWords.WordCount(ctx, user.ID)
	if err != nil {
		return 0, serviceFault(err)
	}
	return count, nil
}

// PersonalWords lists the user's vocabulary in dictionary order.
func (u *UserS) PersonalWords(ctx context.Context, telegramID int64) ([]models.Word, error) {
	user, err := u.users.UserByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, err
		}
		return nil, serviceFault(err)
	}

	words, err := u.userWords.PersonalWords(ctx, user.ID)
	if err != nil {
		return nil, serviceFault(err)
	}
	return words, nil
}
