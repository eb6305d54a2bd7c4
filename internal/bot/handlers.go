package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"github.com/ekovalev/drillbot.git/internal/models"
	"github.com/ekovalev/drillbot.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	ButtonAddWord    = `Добавить слово "+"`
	ButtonDeleteWord = `Удалить слово "-"`
	ButtonNext       = "Дальше ⏭"
)

type UserSI interface {
	CreateUserIfAbsent(ctx context.Context, telegramID int64, name string) (models.User, bool, error)
	WordCount(ctx context.Context, telegramID int64) (int, error)
	PersonalWords(ctx context.Context, telegramID int64) ([]models.Word, error)
}

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "words":
		t.handleWordsCommand(message)
	case "help":
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Неизвестная команда. Используй /start")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}
	userID := message.From.ID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := t.user.WordCount(ctx, userID)
	if errors.Is(err, models.ErrUserNotFound) {
		welcome := "Привет 👋\n\nДавай попрактикуемся в английском языке!\n\n" +
			"Тренировки можешь проходить в удобном для себя темпе.\n\n" +
			"Ты можешь собирать свою собственную базу для обучения. Для этого воспользуйся инструментами:\n" +
			"- добавить слово ➕\n" +
			"- удалить слово ❌\n\n" +
			"Ну что, начнём? Как тебя зовут?"

		t.cache.SetPending(userID, cache.PendingName)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, welcome))
		return
	}
	if err != nil {
		log.Printf("Failed to check user %d: %v", userID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Что-то пошло не так. Попробуй позже."))
		return
	}

	user, _, err := t.user.CreateUserIfAbsent(ctx, userID, strings.TrimSpace(message.From.FirstName))
	if err != nil {
		log.Printf("Failed to load user %d: %v", userID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Что-то пошло не так. Попробуй позже."))
		return
	}

	greeting := fmt.Sprintf("Hello, %s, let's continue learning English...", title(user.Name))
	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, greeting))

	t.quiz.sendQuestion(message.Chat.ID, userID)
}

func (t *TelegramAPI) finishSignup(message *tgbotapi.Message, name string) {
	userID := message.From.ID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, _, err := t.user.CreateUserIfAbsent(ctx, userID, title(name))
	if err != nil {
		log.Printf("Failed to create user %d: %v", userID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Не удалось зарегистрироваться. Попробуй /start ещё раз."))
		return
	}

	greeting := fmt.Sprintf("Nice to meet you, %s! Let's start learning English...", title(user.Name))
	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, greeting))

	t.quiz.sendQuestion(message.Chat.ID, userID)
}

func (t *TelegramAPI) handleWordsCommand(message *tgbotapi.Message) {
	if message.From == nil {
		return
	}
	userID := message.From.ID

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	words, err := t.user.PersonalWords(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "Сначала зарегистрируйся: /start"))
			return
		}
		log.Printf("Failed to list words for user %d: %v", userID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Ошибка загрузки слов"))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📚 Всего слов в твоём словаре: %d\n\n", len(words)))
	for i, word := range words {
		sb.WriteString(fmt.Sprintf("%d. %s — %s\n", i+1, title(word.Native), title(word.English)))
	}

	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, sb.String()))
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Доступные команды:
/start — запустить бота
/words — мой словарь
/help — это сообщение

🎯 Используй кнопки:
• варианты перевода — выбери правильный
• "Добавить слово" — пополни свой словарь
• "Удалить слово" — убери слово из словаря
• "Дальше" — следующий вопрос
`

	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, helpText))
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}
	userID := message.From.ID
	text := strings.TrimSpace(message.Text)

	switch t.cache.TakePending(userID) {
	case cache.PendingName:
		t.finishSignup(message, text)
		return
	case cache.PendingAddWord:
		t.word.processAddWord(message, userID, text)
		t.quiz.sendQuestion(message.Chat.ID, userID)
		return
	case cache.PendingDeleteWord:
		t.word.processDeleteWord(message, userID, text)
		t.quiz.sendQuestion(message.Chat.ID, userID)
		return
	}

	switch text {
	case ButtonAddWord:
		t.word.promptAddWord(message, userID)
	case ButtonDeleteWord:
		t.word.promptDeleteWord(message, userID)
	case ButtonNext:
		t.quiz.sendQuestion(message.Chat.ID, userID)
	default:
		t.quiz.processAnswer(message, userID, text)
	}
}

// title upper-cases the first letter for display, the way word lists and
// greetings are rendered.
func title(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToTitle(runes[0])
	return string(runes)
}
