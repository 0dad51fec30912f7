package flashcard

import (
	"strings"
	"sync"
	"time"
)

// EditSession is the snapshot taken when a card enters edit mode.
// A card is editing exactly when the store holds a session for it.
type EditSession struct {
	Original  Fields
	StartedAt time.Time
}

// Edit carries the values submitted when saving an edit.
// Difficulty 0 means "no difficulty".
type Edit struct {
	Term       string
	Definition string
	Hint       string
	Difficulty int
}

// Store is the ordered in-memory card collection.
type Store struct {
	mu       sync.RWMutex
	cards    []Flashcard
	index    map[string]int
	sessions map[string]EditSession
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		index:    make(map[string]int),
		sessions: make(map[string]EditSession),
		now:      time.Now,
	}
}

// ReplaceAll discards the collection, including open edit sessions.
func (s *Store) ReplaceAll(cards []Flashcard) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cards = make([]Flashcard, 0, len(cards))
	s.index = make(map[string]int, len(cards))
	s.sessions = make(map[string]EditSession)
	s.appendLocked(cards)
}

// Append adds cards after the existing ones.
func (s *Store) Append(cards []Flashcard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendLocked(cards)
}

func (s *Store) appendLocked(cards []Flashcard) {
	for _, card := range cards {
		if _, ok := s.index[card.ID]; ok {
			continue
		}
		s.index[card.ID] = len(s.cards)
		s.cards = append(s.cards, card)
	}
}

// List returns a copy of the collection in order.
func (s *Store) List() []Flashcard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Flashcard, len(s.cards))
	copy(result, s.cards)
	return result
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cards)
}

func (s *Store) Get(id string) (Flashcard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return Flashcard{}, false
	}
	return s.cards[i], true
}

func (s *Store) IsEditing(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[id]
	return ok
}

// EditSession returns the open session for id, if any.
func (s *Store) EditSession(id string) (EditSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// BeginEdit snapshots the card's fields. It is a no-op returning false when
// the id is unknown or the card is already editing.
func (s *Store) BeginEdit(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return false
	}
	if _, editing := s.sessions[id]; editing {
		return false
	}
	s.sessions[id] = EditSession{
		Original:  s.cards[i].Fields,
		StartedAt: s.now(),
	}
	return true
}

// CommitEdit writes edit to the card and closes its session. It returns
// false without error when the card is not editing. A blank term or
// definition yields a *ValidationError and leaves the session open.
func (s *Store) CommitEdit(id string, edit Edit) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return false, nil
	}
	if _, editing := s.sessions[id]; !editing {
		return false, nil
	}

	fields, err := edit.validate()
	if err != nil {
		return false, err
	}

	s.cards[i].Fields = fields
	delete(s.sessions, id)
	return true, nil
}

// CancelEdit restores the snapshot and closes the session. It is a no-op
// returning false when the card is not editing.
func (s *Store) CancelEdit(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, editing := s.sessions[id]
	if !editing {
		return false
	}
	s.cards[s.index[id]].Fields = session.Original
	delete(s.sessions, id)
	return true
}

func (edit Edit) validate() (Fields, error) {
	term := strings.TrimSpace(edit.Term)
	if term == "" {
		return Fields{}, &ValidationError{Field: "term", Message: "term and definition cannot be empty"}
	}
	definition := strings.TrimSpace(edit.Definition)
	if definition == "" {
		return Fields{}, &ValidationError{Field: "definition", Message: "term and definition cannot be empty"}
	}

	difficulty := None[Difficulty]()
	if edit.Difficulty != 0 {
		difficulty = DifficultyOf(edit.Difficulty)
		if !difficulty.Present() {
			return Fields{}, &ValidationError{Field: "difficulty_level", Message: "difficulty level must be 1, 2 or 3"}
		}
	}

	return Fields{
		Term:       term,
		Definition: definition,
		Hint:       HintOf(edit.Hint),
		Difficulty: difficulty,
	}, nil
}
