package middleware

import (
	"testing"
	"time"
)

func TestSessionStoreIssueAndValidate(t *testing.T) {
	sessions := NewSessionStore(time.Hour)

	token := sessions.Issue()
	if token == "" {
		t.Fatal("Issue() returned an empty token")
	}
	if !sessions.Valid(token) {
		t.Error("Valid() = false for a freshly issued token")
	}
	if sessions.Valid("never-issued") {
		t.Error("Valid() = true for an unknown token")
	}

	other := sessions.Issue()
	if other == token {
		t.Error("Issue() returned the same token twice")
	}
}

func TestSessionStoreExpiry(t *testing.T) {
	sessions := NewSessionStore(time.Minute)

	current := time.Now()
	sessions.now = func() time.Time { return current }

	token := sessions.Issue()
	if !sessions.Valid(token) {
		t.Fatal("token invalid before expiry")
	}

	current = current.Add(2 * time.Minute)
	if sessions.Valid(token) {
		t.Error("Valid() = true after expiry")
	}

	// Expired tokens are pruned, not just rejected.
	sessions.mu.Lock()
	_, still := sessions.tokens[token]
	sessions.mu.Unlock()
	if still {
		t.Error("expired token was not pruned from the store")
	}
}
