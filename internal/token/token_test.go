package token

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	iss := NewIssuer([]byte("test-secret"), time.Hour)

	raw, err := iss.Issue("user-123", "PROFESSIONAL")
	require.NoError(t, err)

	claims, err := iss.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.Subject)
	require.Equal(t, "PROFESSIONAL", claims.Role)
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	iss := NewIssuer([]byte("test-secret"), time.Hour)

	raw, err := iss.Issue("user-123", "PATIENT")
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)

	// flip one byte of the signature segment
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = iss.Verify(tampered)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	iss := NewIssuer([]byte("test-secret"), time.Hour)
	other := NewIssuer([]byte("other-secret"), time.Hour)

	raw, err := iss.Issue("user-123", "PATIENT")
	require.NoError(t, err)

	_, err = other.Verify(raw)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyRejectsExpired(t *testing.T) {
	iss := NewIssuer([]byte("test-secret"), -time.Minute)

	raw, err := iss.Issue("user-123", "PATIENT")
	require.NoError(t, err)

	_, err = iss.Verify(raw)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	iss := NewIssuer([]byte("test-secret"), time.Hour)

	_, err := iss.Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalid)
}
