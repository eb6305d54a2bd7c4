package cache

import (
	"sync"

	"github.com/ekovalev/drillbot.git/internal/models"
)

// PendingInput marks what the next free-text message from a user means.
type PendingInput int

const (
	PendingNone PendingInput = iota
	PendingName
	PendingAddWord
	PendingDeleteWord
)

// Cache holds per-user conversational state: the question awaiting an answer
// and the pending free-text input mode. Everything here is disposable; a
// restart just means the user gets asked a fresh question.
type Cache struct {
	mu        sync.Mutex
	questions map[int64]models.Question
	pending   map[int64]PendingInput
}

func NewCache() *Cache {
	return &Cache{
		questions: make(map[int64]models.Question),
		pending:   make(map[int64]PendingInput),
	}
}

func (c *Cache) SetQuestion(userID int64, q models.Question) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.questions[userID] = q
}

func (c *Cache) Question(userID int64) (models.Question, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	q, exists := c.questions[userID]
	return q, exists
}

func (c *Cache) DeleteQuestion(userID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.questions, userID)
}

func (c *Cache) SetPending(userID int64, p PendingInput) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[userID] = p
}

// TakePending returns the pending input mode and clears it.
func (c *Cache) TakePending(userID int64) PendingInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := c.pending[userID]
	delete(c.pending, userID)
	return p
}
