package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ekovalev/drillbot.git/internal/audit"
	"github.com/ekovalev/drillbot.git/internal/models"
	"go.uber.org/zap"
)

// WordS curates personal word lists: adding a word resolves its translation
// through the gateway and deduplicates against the global dictionary,
// removing one only drops the personal link.
type WordS struct {
	translator TranslatorAPII
	words      WordRI
	users      UserRI
	userWords  UserWordRI
	audit      audit.Recorder
	log        *zap.Logger
}

func NewWordService(api TranslatorAPII, words WordRI, users UserRI, userWords UserWordRI, rec audit.Recorder, log *zap.Logger) *WordS {
	return &WordS{
		translator: api,
		words:      words,
		users:      users,
		userWords:  userWords,
		audit:      rec,
		log:        log,
	}
}

func normalizeWord(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// AddWord puts a native word on the user's personal list. The translation
// gateway is always consulted first so the reply can show a fresh display
// translation even for words the dictionary already knows.
func (w *WordS) AddWord(ctx context.Context, telegramID int64, nativeText string) (models.AddWordResult, error) {
	user, err := w.users.UserByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.AddWordResult{}, err
		}
		return models.AddWordResult{}, serviceFault(err)
	}

	native := normalizeWord(nativeText)

	translation, err := w.translator.Translate(ctx, strings.TrimSpace(nativeText))
	gatewayDown := err != nil
	if gatewayDown {
		w.log.Warn("translation gateway failed",
			zap.String("word", native), zap.Error(err))
	}

	word, err := w.words.WordByNative(ctx, native)
	switch {
	case err == nil:
		// Known globally; only the personal link may be missing.
		display := translation
		if display == "" {
			display = word.English
		}

		created, err := w.userWords.LinkWord(ctx, user.ID, word.ID)
		if err != nil {
			return models.AddWordResult{}, serviceFault(err)
		}

		outcome := models.AddOutcomeAlreadyPresent
		if created {
			outcome = models.AddOutcomeAdded
		}
		return w.finishAdd(ctx, user, native, display, outcome), nil

	case errors.Is(err, models.ErrWordNotFound):
		if gatewayDown {
			// Cannot mint a new word without a translation source.
			return models.AddWordResult{}, serviceFault(errors.New("translation gateway unavailable"))
		}
		if translation == "" {
			return w.finishAdd(ctx, user, native, "", models.AddOutcomeTranslationUnavailable), nil
		}

		if _, err := w.userWords.InsertWordWithLink(ctx, user.ID, native, strings.ToLower(translation)); err != nil {
			return models.AddWordResult{}, serviceFault(err)
		}
		return w.finishAdd(ctx, user, native, translation, models.AddOutcomeAdded), nil

	default:
		return models.AddWordResult{}, serviceFault(err)
	}
}

func (w *WordS) finishAdd(ctx context.Context, user models.User, native, translation string, outcome models.AddWordOutcome) models.AddWordResult {
	w.audit.Record(audit.Event{
		Action:    "add_word",
		AccountID: user.TelegramID,
		Word:      native,
		Outcome:   string(outcome),
	})
	w.log.Info("add word",
		zap.Int64("telegram_id", user.TelegramID),
		zap.String("word", native),
		zap.String("outcome", string(outcome)))

	count, err := w.userWords.WordCount(ctx, user.ID)
	if err != nil {
		// Display-only read; the mutation is already committed.
		w.log.Warn("failed to count user words", zap.Int64("user_id", user.ID), zap.Error(err))
	}

	return models.AddWordResult{
		Outcome:     outcome,
		Native:      native,
		Translation: translation,
		WordCount:   count,
	}
}

// DeleteWord drops the word from the user's personal list. The global
// dictionary row is never touched.
func (w *WordS) DeleteWord(ctx context.Context, telegramID int64, nativeText string) (models.DeleteWordResult, error) {
	native := normalizeWord(nativeText)

	word, err := w.words.WordByNative(ctx, native)
	if err != nil {
		if errors.Is(err, models.ErrWordNotFound) {
			w.recordDelete(telegramID, native, models.DeleteOutcomeWordUnknown)
			return models.DeleteWordResult{Outcome: models.DeleteOutcomeWordUnknown, Native: native}, nil
		}
		return models.DeleteWordResult{}, serviceFault(err)
	}

	user, err := w.users.UserByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.DeleteWordResult{}, err
		}
		return models.DeleteWordResult{}, serviceFault(err)
	}

	removed, err := w.userWords.UnlinkWord(ctx, user.ID, word.ID)
	if err != nil {
		return models.DeleteWordResult{}, serviceFault(err)
	}

	outcome := models.DeleteOutcomeNotInList
	if removed {
		outcome = models.DeleteOutcomeDeleted
	}
	w.recordDelete(telegramID, native, outcome)

	count, err := w.userWords.WordCount(ctx, user.ID)
	if err != nil {
		w.log.Warn("failed to count user words", zap.Int64("user_id", user.ID), zap.Error(err))
	}

	return models.DeleteWordResult{
		Outcome:   outcome,
		Native:    native,
		English:   word.English,
		WordCount: count,
	}, nil
}

func (w *WordS) recordDelete(telegramID int64, native string, outcome models.DeleteWordOutcome) {
	w.audit.Record(audit.Event{
		Action:    "delete_word",
		AccountID: telegramID,
		Word:      native,
		Outcome:   string(outcome),
	})
	w.log.Info("delete word",
		zap.Int64("telegram_id", telegramID),
		zap.String("word", native),
		zap.String("outcome", string(outcome)))
}

// SeedDictionary bootstraps the global dictionary from a fixed word list,
// translating each entry and skipping words the gateway cannot resolve.
// Safe to re-run: known words are left alone.
func (w *WordS) SeedDictionary(ctx context.Context, words []string) (int, int, error) {
	var inserted, skipped int

	for _, raw := range words {
		native := normalizeWord(raw)

		if _, err := w.words.WordByNative(ctx, native); err == nil {
			skipped++
			continue
		} else if !errors.Is(err, models.ErrWordNotFound) {
			return inserted, skipped, serviceFault(err)
		}

		translation, err := w.translator.Translate(ctx, native)
		if err != nil {
			w.log.Warn("seed: translation failed", zap.String("word", native), zap.Error(err))
			skipped++
			continue
		}
		if translation == "" {
			w.log.Info("seed: no translation", zap.String("word", native))
			skipped++
			continue
		}

		if _, err := w.words.InsertIfAbsent(ctx, native, strings.ToLower(translation)); err != nil {
			return inserted, skipped, serviceFault(err)
		}
		inserted++
	}

	total, err := w.words.TotalWords(ctx)
	if err != nil {
		w.log.Warn("seed: failed to count dictionary", zap.Error(err))
	} else {
		w.log.Info("dictionary seeded",
			zap.Int("inserted", inserted),
			zap.Int("skipped", skipped),
			zap.Int("total", total))
	}

	return inserted, skipped, nil
}
