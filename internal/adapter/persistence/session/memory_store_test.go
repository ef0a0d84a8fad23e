package session

import (
	"sync"
	"testing"
	"time"

	"pedezap/internal/domain/entities"
)

func TestMemoryStore_SaveGetClear(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()

	if _, ok := store.Get("5511999990000"); ok {
		t.Fatalf("expected no session for unknown phone")
	}

	sess := entities.NewCustomerSession("5511999990000", now)
	store.Save(sess)

	got, ok := store.Get("5511999990000")
	if !ok || got.Phone != "5511999990000" {
		t.Fatalf("expected saved session, got %+v", got)
	}

	store.Clear("5511999990000")
	if _, ok := store.Get("5511999990000"); ok {
		t.Fatalf("expected session cleared")
	}
}

func TestMemoryStore_SaveIgnoresInvalid(t *testing.T) {
	store := NewMemoryStore()
	store.Save(nil)
	store.Save(&entities.CustomerSession{})
	if _, ok := store.Get(""); ok {
		t.Fatalf("expected nothing stored")
	}
}

func TestMemoryStore_WithLockSerializesPerPhone(t *testing.T) {
	store := NewMemoryStore()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.WithLock("5511999990000", func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	if counter != 100 {
		t.Fatalf("expected 100 serialized increments, got %d", counter)
	}
}

func TestMemoryStore_WithLockIndependentPhones(t *testing.T) {
	store := NewMemoryStore()

	release := make(chan struct{})
	holding := make(chan struct{})
	go func() {
		_ = store.WithLock("phone-a", func() error {
			close(holding)
			<-release
			return nil
		})
	}()
	<-holding

	// A different phone must not block behind phone-a's lock.
	done := make(chan struct{})
	go func() {
		_ = store.WithLock("phone-b", func() error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("phone-b blocked behind phone-a's lock")
	}
	close(release)
}
