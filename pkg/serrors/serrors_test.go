package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dhakseshr/tds-project1/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestWith_MatchesKind(t *testing.T) {
	err := serrors.With(serrors.ErrValidation, "brief must not be empty")

	require.ErrorIs(t, err, serrors.ErrValidation)
	require.NotErrorIs(t, err, serrors.ErrGeneration)
	require.Equal(t, "brief must not be empty", err.Error())
}

func TestWrap_MatchesKindAndCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := serrors.Wrap(serrors.ErrGeneration, cause, "completion call failed")

	require.ErrorIs(t, err, serrors.ErrGeneration)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "completion call failed: connection refused", err.Error())
	require.Equal(t, cause, err.Cause())
}

func TestWrap_NestedStageAndTransportKinds(t *testing.T) {
	// A publish failure wrapping an upstream conflict should match both kinds.
	conflict := serrors.With(serrors.ErrConflict, "repository already exists")
	err := serrors.Wrap(serrors.ErrPublish, conflict, "could not create repository")

	require.ErrorIs(t, err, serrors.ErrPublish)
	require.ErrorIs(t, err, serrors.ErrConflict)
	require.NotErrorIs(t, err, serrors.ErrValidation)
}

func TestKindOnly_ErrorString(t *testing.T) {
	err := serrors.KindOnly(serrors.ErrPublish)

	require.Equal(t, "PUBLISH", err.Error())
	require.Equal(t, serrors.ErrPublish, err.Kind())
	require.Empty(t, err.Message())
}

func TestError_SurvivesFmtWrapping(t *testing.T) {
	err := fmt.Errorf("pipeline failed: %w",
		serrors.With(serrors.ErrGeneration, "empty completion"))

	require.ErrorIs(t, err, serrors.ErrGeneration)

	var sem *serrors.Error
	require.ErrorAs(t, err, &sem)
	require.Equal(t, serrors.ErrGeneration, sem.Kind())
}

func TestAs_KindExtraction(t *testing.T) {
	err := serrors.With(serrors.ErrRateLimited, "slow down")

	var k serrors.Kind
	require.ErrorAs(t, err, &k)
	require.Equal(t, "RATE_LIMITED", k.Error())
}
