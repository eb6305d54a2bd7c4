package bot

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ekovalev/drillbot.git/internal/models"
	"github.com/ekovalev/drillbot.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type WordSI interface {
	AddWord(ctx context.Context, telegramID int64, nativeText string) (models.AddWordResult, error)
	DeleteWord(ctx context.Context, telegramID int64, nativeText string) (models.DeleteWordResult, error)
}

// WordT handles the add/delete dialogs: a prompt message, then the next
// free-text message is taken as the word to add or remove.
type WordT struct {
	bot     BotSender
	cache   *cache.Cache
	service WordSI
}

func NewWordTAPI(bot BotSender, cache *cache.Cache, service WordSI) *WordT {
	return &WordT{
		bot:     bot,
		cache:   cache,
		service: service,
	}
}

func (t *WordT) promptAddWord(message *tgbotapi.Message, userID int64) {
	t.cache.SetPending(userID, cache.PendingAddWord)
	msg := tgbotapi.NewMessage(message.Chat.ID, "Введите русское слово, которое хотите добавить в словарь:")
	sendMessage(t.bot, msg)
}

func (t *WordT) processAddWord(message *tgbotapi.Message, userID int64, word string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := t.service.AddWord(ctx, userID, word)
	if err != nil {
		log.Printf("failed to add word %q for user %d: %v", word, userID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Не удалось добавить слово. Попробуй позже."))
		return
	}

	var text string
	switch result.Outcome {
	case models.AddOutcomeAdded:
		text = fmt.Sprintf("Слово '%s / %s' успешно добавлено. Всего слов в вашем словаре: %d",
			title(result.Native), title(result.Translation), result.WordCount)
	case models.AddOutcomeAlreadyPresent:
		text = fmt.Sprintf("Слово '%s / %s' уже есть в вашем словаре.",
			title(result.Native), title(result.Translation))
	case models.AddOutcomeTranslationUnavailable:
		text = fmt.Sprintf("Перевод слова '%s' не найден. Добавить такое слово не получится.",
			title(result.Native))
	}

	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, text))
}

func (t *WordT) promptDeleteWord(message *tgbotapi.Message, userID int64) {
	t.cache.SetPending(userID, cache.PendingDeleteWord)
	msg := tgbotapi.NewMessage(message.Chat.ID, "Введите русское слово, которое хотите удалить из словаря:")
	sendMessage(t.bot, msg)
}

func (t *WordT) processDeleteWord(message *tgbotapi.Message, userID int64, word string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := t.service.DeleteWord(ctx, userID, word)
	if err != nil {
		log.Printf("failed to delete word %q for user %d: %v", word, userID, err)
		sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "❌ Не удалось удалить слово. Попробуй позже."))
		return
	}

	var text string
	switch result.Outcome {
	case models.DeleteOutcomeDeleted:
		text = fmt.Sprintf("Слово '%s / %s' успешно удалено. Всего слов в Вашем словаре: %d",
			title(result.Native), title(result.English), result.WordCount)
	case models.DeleteOutcomeWordUnknown:
		text = fmt.Sprintf("Cлова '%s' нет в Вашем словаре", title(result.Native))
	case models.DeleteOutcomeNotInList:
		text = fmt.Sprintf("Слова '%s / %s' не было в Вашем словаре.",
			title(result.Native), title(result.English))
	}

	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, text))
}
