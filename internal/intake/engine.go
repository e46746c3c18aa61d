package intake

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"actbot/internal/acts"
)

var (
	ErrNoSession = errors.New("no intake session")
	ErrPersist   = errors.New("failed to persist act")
)

// Outcome describes what an answer did to the session.
type Outcome struct {
	Session   Session
	Prompt    string
	Completed bool
	Act       acts.Act
}

// Engine keeps at most one open session per submitter. Sessions live only in
// memory; an abandoned one leaves nothing behind.
type Engine struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	store    acts.Store
	now      func() time.Time
}

func NewEngine(store acts.Store) *Engine {
	return &Engine{
		sessions: make(map[int64]*Session),
		store:    store,
		now:      time.Now,
	}
}

// Start opens a fresh session for userID, replacing any open one.
func (e *Engine) Start(userID int64) Session {
	s := &Session{
		ID:          uuid.NewString(),
		SubmitterID: userID,
		State:       AwaitingDate,
		StartedAt:   e.now().UTC(),
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sessions[userID] = s
	return *s
}

func (e *Engine) Active(userID int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.sessions[userID]
	return ok
}

// Abandon drops the open session of userID and reports whether there was one.
func (e *Engine) Abandon(userID int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.sessions[userID]; !ok {
		return false
	}
	delete(e.sessions, userID)
	return true
}

// Open returns the number of sessions in progress.
func (e *Engine) Open() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.sessions)
}

// Answer feeds one text reply into the session of userID. The fourth answer
// writes the act to the store and closes the session whether or not the
// write succeeds.
func (e *Engine) Answer(ctx context.Context, userID int64, name, text string) (Outcome, error) {
	e.mu.Lock()
	cur, ok := e.sessions[userID]
	if !ok {
		e.mu.Unlock()
		return Outcome{}, ErrNoSession
	}
	next := Step(*cur, text)
	if next.State != Completed {
		*cur = next
		e.mu.Unlock()
		return Outcome{Session: next, Prompt: Prompt(next.State)}, nil
	}
	delete(e.sessions, userID)
	e.mu.Unlock()

	act := acts.Act{
		SubmitterID:   userID,
		SubmitterName: name,
		Date:          next.Answers.Date,
		Time:          next.Answers.Time,
		Location:      next.Answers.Location,
		Description:   next.Answers.Description,
	}
	if err := e.store.Insert(ctx, act); err != nil {
		return Outcome{Session: next}, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return Outcome{Session: next, Completed: true, Act: act}, nil
}
