package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := ArgumentError("auto_home", "x", "expected bool")
	require.Equal(t, "[CATALOG_ARGUMENT] operation 'auto_home': argument 'x': expected bool", err.Error())
	require.Equal(t, "auto_home", err.Op)
	require.Equal(t, "x", err.Param)
}

func TestWrapUnwrap(t *testing.T) {
	err := SinkWriteError(io.ErrShortWrite)
	require.ErrorIs(t, err, io.ErrShortWrite)
	require.Contains(t, err.Error(), "short write")
	require.True(t, IsSink(err))
	require.False(t, IsCatalog(err))
}

func TestIsFollowsChain(t *testing.T) {
	inner := UnknownOpError("bogus")
	outer := ProgramStepError(3, inner)
	wrapped := fmt.Errorf("run: %w", outer)

	require.True(t, Is(wrapped, ErrProgramStep))
	require.True(t, Is(wrapped, ErrCatalogUnknownOp))
	require.True(t, IsCatalog(wrapped))
	require.True(t, IsProgram(wrapped))
	require.False(t, Is(wrapped, ErrSinkWrite))
	require.Contains(t, outer.Error(), "step 3")

	var e *Error
	require.True(t, stderrors.As(wrapped, &e))
	require.Equal(t, 3, e.Step)
}

func TestIsPlainError(t *testing.T) {
	require.False(t, Is(io.EOF, ErrConfig))
	require.False(t, Is(nil, ErrConfig))
}

func TestRootCode(t *testing.T) {
	err := fmt.Errorf("run: %w", ProgramStepError(2, ArgumentError("auto_home", "x", "expected flag, got int")))
	require.Equal(t, ErrCatalogArgument, RootCode(err))
	require.Equal(t, ErrSinkWrite, RootCode(SinkWriteError(io.ErrClosedPipe)))
	require.Equal(t, ErrorCode(""), RootCode(io.EOF))
}
