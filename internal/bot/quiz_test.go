package bot

import (
	"math/rand"
	"testing"

	mock_bot "github.com/ekovalev/drillbot.git/internal/bot/mock"
	"github.com/ekovalev/drillbot.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuizTMock(ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI, *mock_bot.MockBot)) *QuizT {
	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	return NewQuizTAPI(mockBot, mockService, rand.New(rand.NewSource(1)))
}

func keyboardButtons(t *testing.T, msg tgbotapi.MessageConfig) []string {
	t.Helper()

	keyboard, ok := msg.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
	require.True(t, ok)

	var texts []string
	for _, row := range keyboard.Keyboard {
		require.LessOrEqual(t, len(row), 2)
		for _, button := range row {
			texts = append(texts, button.Text)
		}
	}
	return texts
}

func TestQuizT_sendQuestion(t *testing.T) {
	t.Parallel()

	question := models.Question{
		UserID:      1,
		WordID:      1,
		Native:      "кот",
		Correct:     "cat",
		Distractors: []string{"dog", "fish", "bird"},
	}

	tests := []struct {
		name       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "success: sends question with shuffled options and controls",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().AskQuestion(gomock.Any(), int64(456)).Return(question, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg, ok := mb.SentMessages[0].(tgbotapi.MessageConfig)
				require.True(t, ok)
				assert.Equal(t, "Выбери перевод слова:\n🇷🇺 Кот", msg.Text)

				assert.ElementsMatch(t,
					[]string{"Cat", "Dog", "Fish", "Bird", ButtonAddWord, ButtonDeleteWord, ButtonNext},
					keyboardButtons(t, msg))
			},
		},
		{
			name: "empty vocabulary",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().AskQuestion(gomock.Any(), int64(456)).Return(models.Question{}, models.ErrEmptyVocabulary)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "Твой словарь пуст. Добавь слово кнопкой '"+ButtonAddWord+"'.", msg.Text)
			},
		},
		{
			name: "unknown user",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().AskQuestion(gomock.Any(), int64(456)).Return(models.Question{}, models.ErrUserNotFound)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "Сначала зарегистрируйся: /start", msg.Text)
			},
		},
		{
			name: "error: AskQuestion fails",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().AskQuestion(gomock.Any(), int64(456)).Return(models.Question{}, assert.AnError)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ Ошибка при подготовке вопроса. Попробуй позже.", msg.Text)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT := newQuizTMock(ctrl, tt.f)
			mb, _ := quizT.bot.(*mock_bot.MockBot)

			mock_bot.ClearSentMessages(mb)
			quizT.sendQuestion(123, 456)

			if tt.assertFunc != nil {
				tt.assertFunc(t, mb)
			}
		})
	}
}

func TestQuizT_processAnswer(t *testing.T) {
	t.Parallel()

	message := &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 123},
		From: &tgbotapi.User{ID: 456},
	}
	question := models.Question{
		UserID:      1,
		WordID:      1,
		Native:      "кот",
		Correct:     "cat",
		Distractors: []string{"dog", "fish", "bird"},
	}

	tests := []struct {
		name       string
		text       string
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "correct answer moves to the next word",
			text: "Cat",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), int64(456), "Cat").
					Return(models.AnswerResult{Outcome: models.AnswerCorrect, Question: question}, nil)
				ms.EXPECT().AskQuestion(gomock.Any(), int64(456)).Return(question, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 2, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "🎉 Правильно! Переходим к следующему слову.", msg.Text)
				next := mb.SentMessages[1].(tgbotapi.MessageConfig)
				assert.Contains(t, next.Text, "Выбери перевод слова:")
			},
		},
		{
			name: "wrong answer asks to retry",
			text: "Dog",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), int64(456), "Dog").
					Return(models.AnswerResult{Outcome: models.AnswerIncorrect, Question: question}, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❗ Ошибка! Попробуйте еще раз.", msg.Text)
			},
		},
		{
			name: "no pending question just asks one",
			text: "Cat",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), int64(456), "Cat").
					Return(models.AnswerResult{Outcome: models.AnswerNoQuestion}, nil)
				ms.EXPECT().AskQuestion(gomock.Any(), int64(456)).Return(question, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "Выбери перевод слова:")
			},
		},
		{
			name: "word vanished mid-question restarts the drill",
			text: "Cat",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), int64(456), "Cat").
					Return(models.AnswerResult{}, models.ErrAssociationMissing)
				ms.EXPECT().AskQuestion(gomock.Any(), int64(456)).Return(question, nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 2, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "Ой, похоже что-то пошло не так... Попробуем начать сначала.", msg.Text)
			},
		},
		{
			name: "error: SubmitAnswer fails",
			text: "Cat",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SubmitAnswer(gomock.Any(), int64(456), "Cat").
					Return(models.AnswerResult{}, assert.AnError)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Equal(t, 1, len(mb.SentMessages))
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "❌ Ошибка при проверке ответа. Попробуй позже.", msg.Text)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizT := newQuizTMock(ctrl, tt.f)
			mb, _ := quizT.bot.(*mock_bot.MockBot)

			mock_bot.ClearSentMessages(mb)
			quizT.processAnswer(message, 456, tt.text)

			if tt.assertFunc != nil {
				tt.assertFunc(t, mb)
			}
		})
	}
}
