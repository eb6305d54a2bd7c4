package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ekovalev/drillbot.git/internal/models"
	mock_service "github.com/ekovalev/drillbot.git/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newWordServiceMock(t *testing.T, ctrl *gomock.Controller, rec *recorderStub, setupMock func(*mock_service.MockRepositoryI, *mock_service.MockTranslatorAPII)) *WordS {
	repo := mock_service.NewMockRepositoryI(ctrl)
	api := mock_service.NewMockTranslatorAPII(ctrl)
	if setupMock != nil {
		setupMock(repo, api)
	}

	return &WordS{
		translator: api,
		words:      repo,
		users:      repo,
		userWords:  repo,
		audit:      rec,
		log:        zap.NewNop(),
	}
}

func TestWordS_AddWord(t *testing.T) {
	t.Parallel()

	user := models.User{ID: 1, TelegramID: 100500, Name: "Анна"}
	catWord := models.Word{ID: 7, Native: "кот", English: "cat"}

	tests := []struct {
		name        string
		input       string
		f           func(*mock_service.MockRepositoryI, *mock_service.MockTranslatorAPII)
		want        models.AddWordResult
		wantOutcome string
		wantErr     error
	}{
		{
			name:  "new word added",
			input: "Новое",
			f: func(mri *mock_service.MockRepositoryI, ma *mock_service.MockTranslatorAPII) {
				mri.EXPECT().UserByTelegramID(gomock.Any(), int64(100500)).Return(user, nil)
				ma.EXPECT().Translate(gomock.Any(), "Новое").Return("New", nil)
				mri.EXPECT().WordByNative(gomock.Any(), "новое").Return(models.Word{}, models.ErrWordNotFound)
				mri.EXPECT().InsertWordWithLink(gomock.Any(), int64(1), "новое", "new").
					Return(models.Word{ID: 8, Native: "новое", English: "new"}, nil)
				mri.EXPECT().WordCount(gomock.Any(), int64(1)).Return(112, nil)
			},
			want: models.AddWordResult{
				Outcome:     models.AddOutcomeAdded,
				Native:      "новое",
				Translation: "New",
				WordCount:   112,
			},
			wantOutcome: "added",
		},
		{
			name:  "known word linked",
			input: "кот",
			f: func(mri *mock_service.MockRepositoryI, ma *mock_service.MockTranslatorAPII) {
				mri.EXPECT().UserByTelegramID(gomock.Any(), int64(100500)).Return(user, nil)
				ma.EXPECT().Translate(gomock.Any(), "кот").Return("cat", nil)
				mri.EXPECT().WordByNative(gomock.Any(), "кот").Return(catWord, nil)
				mri.EXPECT().LinkWord(gomock.Any(), int64(1), int64(7)).Return(true, nil)
				mri.EXPECT().WordCount(gomock.Any(), int64(1)).Return(112, nil)
			},
			want: models.AddWordResult{
				Outcome:     models.AddOutcomeAdded,
				Native:      "кот",
				Translation: "cat",
				WordCount:   112,
			},
			wantOutcome: "added",
		},
		{
			name:  "already on the list",
			input: "кот",
			f: func(mri *mock_service.MockRepositoryI, ma *mock_service.MockTranslatorAPII) {
				mri.EXPECT().UserByTelegramID(gomock.Any(), int64(100500)).Return(user, nil)
				ma.EXPECT().Translate(gomock.Any(), "кот").Return("cat", nil)
				mri.EXPECT().WordByNative(gomock.Any(), "кот").Return(catWord, nil)
				mri.EXPECT().LinkWord(gomock.Any(), int64(1), int64(7)).Return(false, nil)
				mri.EXPECT().WordCount(gomock.Any(), int64(1)).Return(111, nil)
			},
			want: models.AddWordResult{
				Outcome:     models.AddOutcomeAlreadyPresent,
				Native:      "кот",
				Translation: "cat",
				WordCount:   111,
			},
			wantOutcome: "already_exists",
		},
		{
			name:  "no translation for a new word",
			input: "новое",
			f: func(mri *mock_service.MockRepositoryI, ma *mock_service.MockTranslatorAPII) {
				mri.EXPECT().UserByTelegramID(gomock.Any(), int64(100500)).Return(user, nil)
				ma.EXPECT().Translate(gomock.Any(), "новое").Return("", nil)
				mri.EXPECT().WordByNative(gomock.Any(), "новое").Return(models.Word{}, models.ErrWordNotFound)
				mri.EXPECT().WordCount(gomock.Any(), int64(1)).Return(111, nil)
			},
			want: models.AddWordResult{
				Outcome:   models.AddOutcomeTranslationUnavailable,
				Native:    "новое",
				WordCount: 111,
			},
			wantOutcome: "translation_failed",
		},
		{
			name:  "gateway miss on a known word falls back to stored translation",
			input: "кот",
			f: func(mri *mock_service.MockRepositoryI, ma *mock_service.MockTranslatorAPII) {
				mri.EXPECT().UserByTelegramID(gomock.Any(), int64(100500)).Return(user, nil)
				ma.EXPECT().Translate(gomock.Any(), "кот").Return("", errors.New("timeout"))
				mri.EXPECT().WordByNative(gomock.Any(), "кот").Return(catWord, nil)
				mri.EXPECT().LinkWord(gomock.Any(), int64(1), int64(7)).Return(false, nil)
				mri.EXPECT().WordCount(gomock.Any(), int64(1)).Return(111, nil)
			},
			want: models.AddWordResult{
				Outcome:     models.AddOutcomeAlreadyPresent,
				Native:      "кот",
				Translation: "cat",
				WordCount:   111,
			},
			wantOutcome: "already_exists",
		},
		{
			name:  "gateway down on a new word",
			input: "новое",
			f: func(mri *mock_service.MockRepositoryI, ma *mock_service.MockTranslatorAPII) {
				mri.EXPECT().UserByTelegramID(gomock.Any(), int64(100500)).Return(user, nil)
				ma.EXPECT().Translate(gomock.Any(), "новое").Return("", errors.New("timeout"))
				mri.EXPECT().WordByNative(gomock.Any(), "новое").Return(models.Word{}, models.ErrWordNotFound)
			},
			wantErr: models.ErrServiceUnavailable,
		},
		{
			name:  "unknown user is a precondition failure",
			input: "кот",
			f: func(mri *mock_service.MockRepositoryI, ma *mock_service.MockTranslatorAPII) {
				mri.EXPECT().UserByTelegramID(gomock.Any(), int64(100500)).Return(models.User{}, models.ErrUserNotFound)
			},
			wantErr: models.ErrUserNotFound,
		},
		{
			name:  "store fault",
			input: "кот",
			f: func(mri *mock_service.MockRepositoryI, ma *mock_service.MockTranslatorAPII) {
				mri.EXPECT().UserByTelegramID(gomock.Any(), int64(100500)).Return(user, nil)
				ma.EXPECT().Translate(gomock.Any(), "кот").Return("cat", nil)
				mri.EXPECT().WordByNative(gomock.Any(), "кот").Return(models.Word{}, errors.New("db down"))
			},
			wantErr: models.ErrServiceUnavailable,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rec := &recorderStub{}
			svc := newWordServiceMock(t, ctrl, rec, tt.f)

			got, err := svc.AddWord(context.Background(), 100500, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, rec.events)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.Len(t, rec.events, 1)
			assert.Equal(t, "add_word", rec.events[0].Action)
			assert.Equal(t, tt.wantOutcome, rec.events[0].Outcome)
			assert.Equal(t, int64(100500), rec.events[0].AccountID)
		})
	}
}

// Calling AddWord twice for the same word yields Added then AlreadyPresent.
func TestWordS_AddWord_Idempotence(t *testing.T) {
	t.Parallel()

	user := models.User{ID: 1, TelegramID: 100500}
	word := models.Word{ID: 7, Native: "кот", English: "cat"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := &recorderStub{}
	svc := newWordServiceMock(t, ctrl, rec, func(mri *mock_service.MockRepositoryI, ma *mock_service.MockTranslatorAPII) {
		mri.EXPECT().UserByTelegramID(gomock.Any(), int64(100500)).Return(user, nil).Times(2)
		ma.EXPECT().Translate(gomock.Any(), "кот").Return("cat", nil).Times(2)

		first := mri.EXPECT().WordByNative(gomock.Any(), "кот").Return(models.Word{}, models.ErrWordNotFound)
		mri.EXPECT().InsertWordWithLink(gomock.Any(), int64(1), "кот", "cat").Return(word, nil)
		mri.EXPECT().WordByNative(gomock.Any(), "кот").Return(word, nil).After(first)
		mri.EXPECT().LinkWord(gomock.Any(), int64(1), int64(7)).Return(false, nil)

		mri.EXPECT().WordCount(gomock.Any(), int64(1)).Return(1, nil).Times(2)
	})

	firstResult, err := svc.AddWord(context.Background(), 100500, "кот")
	require.NoError(t, err)
	assert.Equal(t, models.AddOutcomeAdded, firstResult.Outcome)

	secondResult, err := svc.AddWord(context.Background(), 100500, "кот")
	require.NoError(t, err)
	assert.Equal(t, models.AddOutcomeAlreadyPresent, secondResult.Outcome)
}

// Adding a word and then deleting it leaves the personal list as it was:
// a second delete reports the word is no longer on the list.
func TestWordS_AddDeleteRoundTrip(t *testing.T) {
	t.Parallel()

	user := models.User{ID: 1, TelegramID: 100500}
	word := models.Word{ID: 7, Native: "кот", English: "cat"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := &recorderStub{}
	svc := newWordServiceMock(t, ctrl, rec, func(mri *mock_service.MockRepositoryI, ma *mock_service.MockTranslatorAPII) {
		mri.EXPECT().UserByTelegramID(gomock.Any(), int64(100500)).Return(user, nil).Times(3)
		ma.EXPECT().Translate(gomock.Any(), "кот").Return("cat", nil)
		mri.EXPECT().WordByNative(gomock.Any(), "кот").Return(word, nil).Times(3)
		mri.EXPECT().LinkWord(gomock.Any(), int64(1), int64(7)).Return(true, nil)

		first := mri.EXPECT().UnlinkWord(gomock.Any(), int64(1), int64(7)).Return(true, nil)
		mri.EXPECT().UnlinkWord(gomock.Any(), int64(1), int64(7)).Return(false, nil).After(first)

		mri.EXPECT().WordCount(gomock.Any(), int64(1)).Return(111, nil).AnyTimes()
	})

	added, err := svc.AddWord(context.Background(), 100500, "кот")
	require.NoError(t, err)
	assert.Equal(t, models.AddOutcomeAdded, added.Outcome)

	deleted, err := svc.DeleteWord(context.Background(), 100500, "кот")
	require.NoError(t, err)
	assert.Equal(t, models.DeleteOutcomeDeleted, deleted.Outcome)

	again, err := svc.DeleteWord(context.Background(), 100500, "кот")
	require.NoError(t, err)
	assert.Equal(t, models.DeleteOutcomeNotInList, again.Outcome)

	require.Len(t, rec.events, 3)
	assert.Equal(t, "add_word", rec.events[0].Action)
	assert.Equal(t, "delete_word", rec.events[1].Action)
	assert.Equal(t, "not_in_user_dict", rec.events[2].Outcome)
}

func TestWordS_DeleteWord(t *testing.T) {
	t.Parallel()

	user := models.User{ID: 1, TelegramID: 100500}
	catWord := models.Word{ID: 7, Native: "кот", English: "cat"}

	tests := []struct {
		name        string
		input       string
		f           func(*mock_service.MockRepositoryI, *mock_service.MockTranslatorAPII)
		want        models.DeleteWordResult
		wantOutcome string
		wantErr     error
	}{
		{
			name:  "deleted",
			input: "Кот",
			f: func(mri *mock_service.MockRepositoryI, ma *mock_service.MockTranslatorAPII) {
				mri.EXPECT().WordByNative(gomock.Any(), "кот").Return(catWord, nil)
				mri.EXPECT().UserByTelegramID(gomock.Any(), int64(100500)).Return(user, nil)
				mri.EXPECT().UnlinkWord(gomock.Any(), int64(1), int64(7)).Return(true, nil)
				mri.EXPECT().WordCount(gomock.Any(), int64(1)).Return(110, nil)
			},
			want: models.DeleteWordResult{
				Outcome:   models.DeleteOutcomeDeleted,
				Native:    "кот",
				English:   "cat",
				WordCount: 110,
			},
			wantOutcome: "deleted",
		},
		{
			name:  "word unknown globally",
			input: "слово_не_существует",
			f: func(mri *mock_service.MockRepositoryI, ma *mock_service.MockTranslatorAPII) {
				mri.EXPECT().WordByNative(gomock.Any(), "слово_не_существует").Return(models.Word{}, models.ErrWordNotFound)
			},
			want: models.DeleteWordResult{
				Outcome: models.DeleteOutcomeWordUnknown,
				Native:  "слово_не_существует",
			},
			wantOutcome: "word_not_found",
		},
		{
			name:  "not on the personal list",
			input: "кот",
			f: func(mri *mock_service.MockRepositoryI, ma *mock_service.MockTranslatorAPII) {
				mri.EXPECT().WordByNative(gomock.Any(), "кот").Return(catWord, nil)
				mri.EXPECT().UserByTelegramID(gomock.Any(), int64(100500)).Return(user, nil)
				mri.EXPECT().UnlinkWord(gomock.Any(), int64(1), int64(7)).Return(false, nil)
				mri.EXPECT().WordCount(gomock.Any(), int64(1)).Return(110, nil)
			},
			want: models.DeleteWordResult{
				Outcome:   models.DeleteOutcomeNotInList,
				Native:    "кот",
				English:   "cat",
				WordCount: 110,
			},
			wantOutcome: "not_in_user_dict",
		},
		{
			name:  "store fault",
			input: "кот",
			f: func(mri *mock_service.MockRepositoryI, ma *mock_service.MockTranslatorAPII) {
				mri.EXPECT().WordByNative(gomock.Any(), "кот").Return(models.Word{}, errors.New("db down"))
			},
			wantErr: models.ErrServiceUnavailable,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rec := &recorderStub{}
			svc := newWordServiceMock(t, ctrl, rec, tt.f)

			got, err := svc.DeleteWord(context.Background(), 100500, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, rec.events)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			require.Len(t, rec.events, 1)
			assert.Equal(t, "delete_word", rec.events[0].Action)
			assert.Equal(t, tt.wantOutcome, rec.events[0].Outcome)
		})
	}
}

func TestWordS_SeedDictionary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		words        []string
		f            func(*mock_service.MockRepositoryI, *mock_service.MockTranslatorAPII)
		wantInserted int
		wantSkipped  int
	}{
		{
			name:  "mix of new, known and untranslatable words",
			words: []string{"кот", "пёс", "рыба"},
			f: func(mri *mock_service.MockRepositoryI, ma *mock_service.MockTranslatorAPII) {
				mri.EXPECT().WordByNative(gomock.Any(), "кот").Return(models.Word{ID: 1, Native: "кот", English: "cat"}, nil)

				mri.EXPECT().WordByNative(gomock.Any(), "пёс").Return(models.Word{}, models.ErrWordNotFound)
				ma.EXPECT().Translate(gomock.Any(), "пёс").Return("dog", nil)
				mri.EXPECT().InsertIfAbsent(gomock.Any(), "пёс", "dog").Return(models.Word{ID: 2, Native: "пёс", English: "dog"}, nil)

				mri.EXPECT().WordByNative(gomock.Any(), "рыба").Return(models.Word{}, models.ErrWordNotFound)
				ma.EXPECT().Translate(gomock.Any(), "рыба").Return("", nil)

				mri.EXPECT().TotalWords(gomock.Any()).Return(2, nil)
			},
			wantInserted: 1,
			wantSkipped:  2,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newWordServiceMock(t, ctrl, &recorderStub{}, tt.f)

			inserted, skipped, err := svc.SeedDictionary(context.Background(), tt.words)
			require.NoError(t, err)
			assert.Equal(t, tt.wantInserted, inserted)
			assert.Equal(t, tt.wantSkipped, skipped)
		})
	}
}
