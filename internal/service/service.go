package service

import (
	"context"
	"fmt"

	"github.com/ekovalev/drillbot.git/internal/audit"
	"github.com/ekovalev/drillbot.git/internal/config"
	"github.com/ekovalev/drillbot.git/internal/models"
	"github.com/ekovalev/drillbot.git/internal/storage/cache"
	"go.uber.org/zap"
)

// TranslatorAPII is the external translation gateway. An empty translation
// with a nil error means the dictionary has no entry for the word.
type TranslatorAPII interface {
	Translate(ctx context.Context, text string) (string, error)
}

// WordRI is the append-only global dictionary.
type WordRI interface {
	WordByNative(ctx context.Context, native string) (models.Word, error)
	InsertIfAbsent(ctx context.Context, native, english string) (models.Word, error)
	SampleDistractors(ctx context.Context, excludeWordID int64, excludeEnglish string, n int) ([]models.Word, error)
	SeedWords(ctx context.Context, limit int) ([]models.Word, error)
	TotalWords(ctx context.Context) (int, error)
}

// UserRI is the account registry.
type UserRI interface {
	UserByTelegramID(ctx context.Context, telegramID int64) (models.User, error)
	CreateUserWithSeed(ctx context.Context, telegramID int64, name string, seedLimit int) (models.User, int, error)
}

// UserWordRI manages personal word lists and mastery counters.
type UserWordRI interface {
	LinkWord(ctx context.Context, userID, wordID int64) (bool, error)
	InsertWordWithLink(ctx context.Context, userID int64, native, english string) (models.Word, error)
	UnlinkWord(ctx context.Context, userID, wordID int64) (bool, error)
	RandomPersonalWord(ctx context.Context, userID int64) (models.Word, error)
	PersonalWords(ctx context.Context, userID int64) ([]models.Word, error)
	WordCount(ctx context.Context, userID int64) (int, error)
	IncrementMastery(ctx context.Context, userID, wordID int64) (bool, error)
	MasteryCount(ctx context.Context, userID, wordID int64) (int, error)
}

type RepositoryI interface {
	WordRI
	UserRI
	UserWordRI
}

type Service struct {
	*UserS
	*WordS
	*QuizS
}

func InitServices(api TranslatorAPII, repo RepositoryI, cache *cache.Cache, rec audit.Recorder, cfg config.QuizConfig, log *zap.Logger) *Service {
	return &Service{
		UserS: NewUserService(repo, repo, rec, cfg.SeedWordLimit, log),
		WordS: NewWordService(api, repo, repo, repo, rec, log),
		QuizS: NewQuizService(repo, repo, repo, cache, cfg.DistractorCount, log),
	}
}

// serviceFault wraps a store or gateway failure so every caller sees one
// recoverable condition instead of driver internals.
func serviceFault(err error) error {
	return fmt.Errorf("%w: %v", models.ErrServiceUnavailable, err)
}
