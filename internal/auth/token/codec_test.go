package token

import (
	"errors"
	"testing"
	"time"

	"jobtracker-backend/internal/apperr"
)

func newTestCodec() *Codec {
	return NewCodec([]byte("test-signing-key"), time.Hour)
}

func TestIssueAndParse_RoundTrip(t *testing.T) {
	t.Parallel()

	c := newTestCodec()

	tok, err := c.Issue("alice@example.com", map[string]any{"role": "USER"}, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := c.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	sub, err := c.Subject(claims)
	if err != nil {
		t.Fatalf("Subject error: %v", err)
	}
	if sub != "alice@example.com" {
		t.Errorf("subject = %q, want %q", sub, "alice@example.com")
	}
	if role, _ := claims["role"].(string); role != "USER" {
		t.Errorf("role claim = %v, want USER", claims["role"])
	}
	if _, ok := claims["iat"]; !ok {
		t.Error("iat claim missing")
	}
	if c.IsExpired(claims) {
		t.Error("fresh token reported as expired")
	}
}

func TestIssue_ExtraClaimsCannotOverrideSubject(t *testing.T) {
	t.Parallel()

	c := newTestCodec()

	tok, err := c.Issue("real@example.com", map[string]any{"sub": "fake@example.com"}, time.Hour)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	claims, err := c.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	sub, _ := c.Subject(claims)
	if sub != "real@example.com" {
		t.Errorf("subject = %q, want real@example.com", sub)
	}
}

func TestParse_WrongKey(t *testing.T) {
	t.Parallel()

	c := newTestCodec()
	other := NewCodec([]byte("a-different-key"), time.Hour)

	tok, err := c.IssueAccess("alice@example.com")
	if err != nil {
		t.Fatalf("IssueAccess error: %v", err)
	}

	_, err = other.Parse(tok)
	if !errors.Is(err, apperr.ErrInvalidToken) {
		t.Fatalf("Parse with wrong key: got %v, want ErrInvalidToken", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	c := newTestCodec()

	for _, tok := range []string{"", "garbage", "not.a.jwt", "a.b"} {
		if _, err := c.Parse(tok); !errors.Is(err, apperr.ErrInvalidToken) {
			t.Errorf("Parse(%q): got %v, want ErrInvalidToken", tok, err)
		}
	}
}

func TestIsExpired_PastTokensAlwaysExpired(t *testing.T) {
	t.Parallel()

	c := newTestCodec()

	// Expired is expired no matter how far in the past.
	for _, age := range []time.Duration{time.Second, time.Hour, 24 * 365 * time.Hour} {
		tok, err := c.Issue("alice@example.com", nil, -age)
		if err != nil {
			t.Fatalf("Issue error: %v", err)
		}

		// Signature verification still succeeds; only expiry fails.
		claims, err := c.Parse(tok)
		if err != nil {
			t.Fatalf("Parse of expired token failed: %v", err)
		}
		if !c.IsExpired(claims) {
			t.Errorf("token expired %v ago not reported as expired", age)
		}
	}
}

func TestIsExpired_MissingExpFailsClosed(t *testing.T) {
	t.Parallel()

	c := newTestCodec()
	if !c.IsExpired(map[string]any{"sub": "alice@example.com"}) {
		t.Error("claims without exp must count as expired")
	}
}

func TestIssueRefresh_LongerLived(t *testing.T) {
	t.Parallel()

	c := newTestCodec()

	access, err := c.IssueAccess("alice@example.com")
	if err != nil {
		t.Fatalf("IssueAccess error: %v", err)
	}
	refresh, err := c.IssueRefresh("alice@example.com")
	if err != nil {
		t.Fatalf("IssueRefresh error: %v", err)
	}

	accessClaims, err := c.Parse(access)
	if err != nil {
		t.Fatalf("Parse access error: %v", err)
	}
	refreshClaims, err := c.Parse(refresh)
	if err != nil {
		t.Fatalf("Parse refresh error: %v", err)
	}

	accessExp, _ := accessClaims.GetExpirationTime()
	refreshExp, _ := refreshClaims.GetExpirationTime()
	if !refreshExp.Time.After(accessExp.Time) {
		t.Errorf("refresh exp %v not after access exp %v", refreshExp.Time, accessExp.Time)
	}

	// Same claim shape: nothing marks a refresh token as special.
	if _, ok := refreshClaims["typ"]; ok {
		t.Error("refresh token must not carry a type claim")
	}
}
