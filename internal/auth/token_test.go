package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	issuer := NewIssuer(testSecret, 24*time.Hour)
	verifier := NewVerifier(testSecret)

	token, err := issuer.Issue(42, "admin", "admin")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, int64(86400), claims.ExpireAt-claims.IssuedAt)
}

func TestIssueRejectsIncompleteIdentity(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)

	_, err := issuer.Issue(1, "", "user")
	assert.ErrorIs(t, err, ErrInvalidClaim)

	_, err = issuer.Issue(1, "bob", "")
	assert.ErrorIs(t, err, ErrInvalidClaim)
}

func TestIssueHeaderIsHS256(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)
	token, err := issuer.Issue(1, "bob", "user")
	require.NoError(t, err)

	headerRaw, err := base64.RawURLEncoding.DecodeString(strings.Split(token, ".")[0])
	require.NoError(t, err)

	var header struct {
		Alg string `json:"alg"`
		Typ string `json:"typ"`
	}
	require.NoError(t, json.Unmarshal(headerRaw, &header))
	assert.Equal(t, "HS256", header.Alg)
	assert.Equal(t, "JWT", header.Typ)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewIssuer("secret-one", time.Hour)
	token, err := issuer.Issue(7, "alice", "user")
	require.NoError(t, err)

	_, err = NewVerifier("secret-two").Verify(token)
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewIssuer(testSecret, time.Hour).WithClock(func() time.Time { return issued })

	token, err := issuer.Issue(7, "alice", "user")
	require.NoError(t, err)

	verifier := NewVerifier(testSecret)

	// Still valid just before expiry.
	verifier.WithClock(func() time.Time { return issued.Add(time.Hour - time.Second) })
	_, err = verifier.Verify(token)
	assert.NoError(t, err)

	// Expiry instant itself is already invalid.
	verifier.WithClock(func() time.Time { return issued.Add(time.Hour) })
	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	issuer := NewIssuer(testSecret, time.Hour)
	verifier := NewVerifier(testSecret)

	token, err := issuer.Issue(7, "alice", "user")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	payload := []byte(parts[1])
	for i := range payload {
		flipped := make([]byte, len(payload))
		copy(flipped, payload)
		if flipped[i] == 'A' {
			flipped[i] = 'B'
		} else {
			flipped[i] = 'A'
		}
		tampered := parts[0] + "." + string(flipped) + "." + parts[2]
		if tampered == token {
			continue
		}
		_, err := verifier.Verify(tampered)
		assert.Errorf(t, err, "tampering byte %d went undetected", i)
	}
}

func TestVerifyRejectsMalformedTokens(t *testing.T) {
	verifier := NewVerifier(testSecret)

	for _, token := range []string{
		"",
		"only-one-segment",
		"two.segments",
		"a.b.c.d",
		"!!!.???.***",
	} {
		_, err := verifier.Verify(token)
		assert.Error(t, err, "token %q should not verify", token)
	}
}

func TestVerifyRejectsClaimsWithoutTimestamps(t *testing.T) {
	// Hand-build a correctly signed token whose payload lacks iat/exp.
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"user_id":1,"username":"x","role":"user"}`))
	input := header + "." + payload
	sig := base64.RawURLEncoding.EncodeToString(sign([]byte(input), []byte(testSecret)))

	_, err := NewVerifier(testSecret).Verify(input + "." + sig)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}
