package models

// Word is a row of the global dictionary. The native (Russian) text is the
// unique key and is stored lowercase; rows are never deleted.
type Word struct {
	ID      int64  `db:"id"`
	Native  string `db:"native_word"`
	English string `db:"english_word"`
}

// UserWord links a user to a word from the global dictionary. Count holds
// the number of correct quiz answers the user gave for that word.
type UserWord struct {
	ID     int64 `db:"id"`
	UserID int64 `db:"user_id"`
	WordID int64 `db:"word_id"`
	Count  int   `db:"count"`
}

type AddWordOutcome string

const (
	AddOutcomeAdded                  AddWordOutcome = "added"
	AddOutcomeAlreadyPresent         AddWordOutcome = "already_exists"
	AddOutcomeTranslationUnavailable AddWordOutcome = "translation_failed"
)

type AddWordResult struct {
	Outcome     AddWordOutcome
	Native      string
	Translation string
	WordCount   int
}

type DeleteWordOutcome string

const (
	DeleteOutcomeDeleted     DeleteWordOutcome = "deleted"
	DeleteOutcomeWordUnknown DeleteWordOutcome = "word_not_found"
	DeleteOutcomeNotInList   DeleteWordOutcome = "not_in_user_dict"
)

type DeleteWordResult struct {
	Outcome   DeleteWordOutcome
	Native    string
	English   string
	WordCount int
}
