package interfaces

import "pedezap/internal/domain/entities"

// ISessionStore holds per-customer conversation sessions, keyed by phone.
//
// Sessions are single-process, in-memory state. Each turn is a
// read-modify-write of one session, so messages from the same phone must be
// serialized: callers wrap the whole turn in WithLock for that phone.
// Different phones never contend.

type ISessionStore interface {
	Get(phone string) (*entities.CustomerSession, bool)
	Save(session *entities.CustomerSession)
	Clear(phone string)
	WithLock(phone string, fn func() error) error
}
