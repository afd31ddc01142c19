package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/aminnizamdev/obex/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorIsKind(t *testing.T) {
	err := errors.New(errors.KindTicketRootMismatch, "root %x != %x", 1, 2)
	require.True(t, stderrors.Is(err, errors.KindTicketRootMismatch))
	require.False(t, stderrors.Is(err, errors.KindPartRootMismatch))
}

func TestWrapNilIsNil(t *testing.T) {
	require.NoError(t, errors.Wrap(errors.KindMerkleMismatch, nil))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := errors.Wrap(errors.KindVrfVerifyFailed, cause)
	require.True(t, stderrors.Is(err, errors.KindVrfVerifyFailed))
	require.ErrorIs(t, err, cause)
}
