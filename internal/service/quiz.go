package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ekovalev/drillbot.git/internal/models"
	"github.com/ekovalev/drillbot.git/internal/storage/cache"
	"go.uber.org/zap"
)

// QuizS drives the drill loop. Per user the engine is a two-state machine:
// no pending question, or one question awaiting its answer. The pending
// question lives in the process-local cache and a new AskQuestion always
// replaces it.
type QuizS struct {
	words           WordRI
	users           UserRI
	userWords       UserWordRI
	state           *cache.Cache
	distractorCount int
	log             *zap.Logger
}

func NewQuizService(words WordRI, users UserRI, userWords UserWordRI, state *cache.Cache, distractorCount int, log *zap.Logger) *QuizS {
	return &QuizS{
		words:           words,
		users:           users,
		userWords:       userWords,
		state:           state,
		distractorCount: distractorCount,
		log:             log,
	}
}

// AskQuestion picks a random word from the user's personal list, samples
// wrong options from the rest of the dictionary and parks the question until
// it is answered correctly.
func (q *QuizS) AskQuestion(ctx context.Context, telegramID int64) (models.Question, error) {
	user, err := q.users.UserByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return models.Question{}, err
		}
		return models.Question{}, serviceFault(err)
	}

	target, err := q.userWords.RandomPersonalWord(ctx, user.ID)
	if err != nil {
		if errors.Is(err, models.ErrEmptyVocabulary) {
			return models.Question{}, err
		}
		return models.Question{}, serviceFault(err)
	}

	distractors, err := q.words.SampleDistractors(ctx, target.ID, target.English, q.distractorCount)
	if err != nil {
		return models.Question{}, serviceFault(err)
	}
	if len(distractors) < q.distractorCount {
		return models.Question{}, models.ErrInsufficientVocabulary
	}

	options := make([]string, 0, len(distractors))
	for _, d := range distractors {
		options = append(options, d.English)
	}

	question := models.Question{
		UserID:      user.ID,
		WordID:      target.ID,
		Native:      target.Native,
		Correct:     target.English,
		Distractors: options,
	}

	q.state.SetQuestion(telegramID, question)

	q.log.Info("question asked",
		zap.Int64("telegram_id", telegramID),
		zap.String("word", target.Native))

	return question, nil
}

// SubmitAnswer checks the candidate against the pending question. A correct
// answer bumps the word's mastery counter and clears the question; a wrong
// one leaves the question pending so the user can retry.
func (q *QuizS) SubmitAnswer(ctx context.Context, telegramID int64, candidate string) (models.AnswerResult, error) {
	question, exists := q.state.Question(telegramID)
	if !exists {
		return models.AnswerResult{Outcome: models.AnswerNoQuestion}, nil
	}

	if !strings.EqualFold(strings.TrimSpace(candidate), question.Correct) {
		q.log.Info("wrong answer",
			zap.Int64("telegram_id", telegramID),
			zap.String("word", question.Native))
		return models.AnswerResult{Outcome: models.AnswerIncorrect, Question: question}, nil
	}

	bumped, err := q.userWords.IncrementMastery(ctx, question.UserID, question.WordID)
	if err != nil {
		return models.AnswerResult{}, serviceFault(err)
	}

	q.state.DeleteQuestion(telegramID)

	if !bumped {
		// The user removed the word between question and answer. The answer
		// still counts as handled, there is just nothing left to credit.
		q.log.Warn("word link vanished before crediting the answer",
			zap.Int64("telegram_id", telegramID),
			zap.String("word", question.Native))
		return models.AnswerResult{}, models.ErrAssociationMissing
	}

	q.log.Info("correct answer",
		zap.Int64("telegram_id", telegramID),
		zap.String("word", question.Native))

	return models.AnswerResult{Outcome: models.AnswerCorrect, Question: question}, nil
}

// MasteryCount reports how many times the user has answered the word
// correctly.
func (q *QuizS) MasteryCount(ctx context.Context, telegramID int64, nativeText string) (int, error) {
	user, err := q.users.UserByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return 0, err
		}
		return 0, serviceFault(err)
	}

	word, err := q.words.WordByNative(ctx, normalizeWord(nativeText))
	if err != nil {
		if errors.Is(err, models.ErrWordNotFound) {
			return 0, err
		}
		return 0, serviceFault(err)
	}

	count, err := q.userWords.MasteryCount(ctx, user.ID, word.ID)
	if err != nil {
		if errors.Is(err, models.ErrAssociationMissing) {
			return 0, err
		}
		return 0, serviceFault(err)
	}
	return count, nil
}
