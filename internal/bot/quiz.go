package bot

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/ekovalev/drillbot.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type QuizSI interface {
	AskQuestion(ctx context.Context, telegramID int64) (models.Question, error)
	SubmitAnswer(ctx context.Context, telegramID int64, candidate string) (models.AnswerResult, error)
}

// QuizT renders questions as a reply keyboard: four translation options in
// shuffled order plus the add/delete/next controls.
type QuizT struct {
	bot     BotSender
	service QuizSI
	rng     *rand.Rand
}

func NewQuizTAPI(bot BotSender, service QuizSI, rng *rand.Rand) *QuizT {
	return &QuizT{
		bot:     bot,
		service: service,
		rng:     rng,
	}
}

func (t *QuizT) sendQuestion(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	question, err := t.service.AskQuestion(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyVocabulary):
			sendMessage(t.bot, tgbotapi.NewMessage(chatID,
				"Твой словарь пуст. Добавь слово кнопкой '"+ButtonAddWord+"'."))
		case errors.Is(err, models.ErrUserNotFound):
			sendMessage(t.bot, tgbotapi.NewMessage(chatID, "Сначала зарегистрируйся: /start"))
		default:
			log.Printf("failed to build question for user %d: %v", userID, err)
			sendMessage(t.bot, tgbotapi.NewMessage(chatID, "❌ Ошибка при подготовке вопроса. Попробуй позже."))
		}
		return
	}

	options := question.Options()
	t.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	buttons := make([]tgbotapi.KeyboardButton, 0, len(options)+3)
	for _, option := range options {
		buttons = append(buttons, tgbotapi.NewKeyboardButton(title(option)))
	}
	buttons = append(buttons,
		tgbotapi.NewKeyboardButton(ButtonAddWord),
		tgbotapi.NewKeyboardButton(ButtonDeleteWord),
		tgbotapi.NewKeyboardButton(ButtonNext),
	)

	var rows [][]tgbotapi.KeyboardButton
	for i := 0; i < len(buttons); i += 2 {
		end := i + 2
		if end > len(buttons) {
			end = len(buttons)
		}
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(buttons[i:end]...))
	}

	keyboard := tgbotapi.NewReplyKeyboard(rows...)
	keyboard.ResizeKeyboard = true

	msg := tgbotapi.NewMessage(chatID, "Выбери перевод слова:\n🇷🇺 "+title(question.Native))
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *QuizT) processAnswer(message *tgbotapi.Message, userID int64, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := t.service.SubmitAnswer(ctx, userID, text)
	if err != nil {
		if errors.Is(err, models.ErrAssociationMissing) {
			sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID,
				"Ой, похоже что-то пошло не так... Попробуем начать сначала."))
			t.sendQuestion(message.Chat.ID, userID)
			return
		}
		log.Printf("failed to check answer for user %d: %v", userID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Ошибка при проверке ответа. Попробуй позже."))
		return
	}

	switch result.Outcome {
	case models.AnswerCorrect:
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "🎉 Правильно! Переходим к следующему слову."))
		t.sendQuestion(message.Chat.ID, userID)
	case models.AnswerIncorrect:
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❗ Ошибка! Попробуйте еще раз."))
	case models.AnswerNoQuestion:
		t.sendQuestion(message.Chat.ID, userID)
	}
}
