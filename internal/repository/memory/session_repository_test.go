package memory

import (
	"testing"
	"time"

	"project-nexus-be/pkg/store"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	now := time.Now()
	session := store.NewShopperSession("sess-1", "user-1", now)

	repo.Save(session)

	got, found := repo.Get("sess-1")
	if !found {
		t.Fatal("expected session to be found")
	}
	if got.UserID != "user-1" {
		t.Errorf("UserID = %q, want %q", got.UserID, "user-1")
	}

	byUser, found := repo.GetByUser("user-1")
	if !found {
		t.Fatal("expected session lookup by user to succeed")
	}
	if byUser.ID != "sess-1" {
		t.Errorf("session ID = %q, want %q", byUser.ID, "sess-1")
	}

	repo.Delete("sess-1")
	if _, found := repo.Get("sess-1"); found {
		t.Error("expected session to be gone after delete")
	}
}

func TestSessionRepositoryMissingSession(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	if _, found := repo.Get("nope"); found {
		t.Error("expected miss for unknown session id")
	}
	if _, found := repo.GetByUser("nobody"); found {
		t.Error("expected miss for unknown user id")
	}
}

func TestSessionRepositoryExpiry(t *testing.T) {
	repo := NewSessionRepository(10 * time.Millisecond)
	repo.Save(store.NewShopperSession("sess-2", "user-2", time.Now()))

	time.Sleep(30 * time.Millisecond)

	if _, found := repo.Get("sess-2"); found {
		t.Error("expected session to expire")
	}
}
