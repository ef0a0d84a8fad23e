package session

import (
	"sync"

	"pedezap/internal/domain/entities"
	"pedezap/internal/usecase/interfaces"
)

// MemoryStore keeps customer sessions in process memory, keyed by phone.
//
// Correctness contract: each turn is a read-modify-write of one session, so
// WithLock serializes all work for a single phone while leaving other phones
// free to proceed. The inner map mutex only guards map access and is never
// held across a turn.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*entities.CustomerSession
	locks    map[string]*sync.Mutex
}

var _ interfaces.ISessionStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*entities.CustomerSession),
		locks:    make(map[string]*sync.Mutex),
	}
}

func (s *MemoryStore) Get(phone string) (*entities.CustomerSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[phone]
	return sess, ok
}

func (s *MemoryStore) Save(session *entities.CustomerSession) {
	if session == nil || session.Phone == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Phone] = session
}

func (s *MemoryStore) Clear(phone string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, phone)
}

// WithLock runs fn while holding the per-phone lock. Phone locks are created
// on first use and kept for the life of the process; abandoned phones cost
// one mutex each.
func (s *MemoryStore) WithLock(phone string, fn func() error) error {
	s.mu.Lock()
	lock, ok := s.locks[phone]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[phone] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	return fn()
}
