package models

import "errors"

var (
	// ErrUserNotFound: the caller skipped account creation. A precondition
	// violation, fatal to the request only.
	ErrUserNotFound = errors.New("user not found")

	// ErrWordNotFound: no global dictionary entry for the native word.
	ErrWordNotFound = errors.New("word not found")

	// ErrEmptyVocabulary: the user's personal list has no words to drill.
	ErrEmptyVocabulary = errors.New("user vocabulary is empty")

	// ErrInsufficientVocabulary: fewer than 4 distinct words exist globally,
	// so a question with 3 distractors cannot be built.
	ErrInsufficientVocabulary = errors.New("not enough words for distractors")

	// ErrAssociationMissing: the personal word link vanished between the
	// question and the answer (the user deleted the word in between).
	ErrAssociationMissing = errors.New("user word association missing")

	// ErrServiceUnavailable wraps store and gateway faults at the service
	// boundary so callers see one recoverable outcome instead of a crash.
	ErrServiceUnavailable = errors.New("service unavailable")
)
