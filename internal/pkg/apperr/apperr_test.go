package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	err := New(KindBadCredentials, "Incorrect email or password.")
	require.Equal(t, KindBadCredentials, KindOf(err))

	wrapped := fmt.Errorf("login: %w", err)
	require.Equal(t, KindBadCredentials, KindOf(wrapped))

	require.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	require.Equal(t, KindUnknown, KindOf(nil))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(KindConnectivity, "Please check your internet connection.", cause)

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "Please check your internet connection.")
	require.Contains(t, err.Error(), "connection refused")
}

func TestIsMatchesByKind(t *testing.T) {
	a := New(KindDataUnavailable, "profile missing")
	b := New(KindDataUnavailable, "different message")

	require.ErrorIs(t, a, b)
	require.NotErrorIs(t, a, New(KindNotFound, "profile missing"))
}
