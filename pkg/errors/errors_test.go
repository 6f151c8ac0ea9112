package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mingzhangyang/bond-lab/pkg/errors"
)

func TestNew_FieldsAreSetCorrectly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		code    errors.ErrorCode
		message string
	}{
		{"internal error", errors.CodeInternal, "unexpected failure"},
		{"atom not found", errors.ErrCodeAtomNotFound, "atom 7f3c not found"},
		{"self bond", errors.ErrCodeSelfBond, "cannot bond atom to itself"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ae := errors.New(tc.code, tc.message)
			require.NotNil(t, ae)
			assert.Equal(t, tc.code, ae.Code)
			assert.Equal(t, tc.message, ae.Message)
			assert.Empty(t, ae.Detail)
			assert.Nil(t, ae.Cause)
		})
	}
}

func TestAppError_ErrorFormat(t *testing.T) {
	t.Parallel()

	ae := errors.New(errors.ErrCodeDuplicateBond, "atoms are already bonded")
	assert.Equal(t, "[GRAPH_004] atoms are already bonded", ae.Error())

	withDetail := ae.WithDetail("a=1 b=2")
	assert.Equal(t, "[GRAPH_004] atoms are already bonded: a=1 b=2", withDetail.Error())
	assert.Empty(t, ae.Detail, "WithDetail must not mutate the receiver")
}

func TestAppError_NilReceiverBuilders(t *testing.T) {
	t.Parallel()

	var ae *errors.AppError
	assert.Nil(t, ae.WithDetail("x"))
	assert.Nil(t, ae.WithCause(stderrors.New("x")))
}

func TestWrap_NilErrReturnsNil(t *testing.T) {
	t.Parallel()

	assert.Nil(t, errors.Wrap(nil, errors.CodeInternal, "should not matter"))
}

func TestWrap_CauseChainIsPreserved(t *testing.T) {
	t.Parallel()

	root := stderrors.New("disk full")
	wrapped := errors.Wrap(root, errors.ErrCodeConfigInvalid, "cannot read config")

	require.NotNil(t, wrapped)
	assert.True(t, stderrors.Is(wrapped, root))
	assert.Equal(t, root, stderrors.Unwrap(wrapped))
}

func TestWrap_UnknownCodePreservesOriginal(t *testing.T) {
	t.Parallel()

	inner := errors.New(errors.ErrCodeBondNotFound, "bond missing")
	outer := errors.Wrap(inner, errors.CodeUnknown, "remove bond")

	assert.Equal(t, errors.ErrCodeBondNotFound, outer.Code)
}

func TestIsCode_TraversesStdlibWrapping(t *testing.T) {
	t.Parallel()

	inner := errors.New(errors.ErrCodeInvalidBondOrder, "order 4")
	outer := fmt.Errorf("add bond: %w", inner)

	assert.True(t, errors.IsCode(outer, errors.ErrCodeInvalidBondOrder))
	assert.False(t, errors.IsCode(outer, errors.ErrCodeSelfBond))
	assert.False(t, errors.IsCode(nil, errors.ErrCodeSelfBond))
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, errors.IsNotFound(errors.New(errors.ErrCodeAtomNotFound, "x")))
	assert.True(t, errors.IsNotFound(errors.New(errors.ErrCodeUnknownPreset, "x")))
	assert.True(t, errors.IsNotFound(errors.NotFound("x")))
	assert.False(t, errors.IsNotFound(errors.Conflict("x")))
	assert.False(t, errors.IsNotFound(stderrors.New("plain")))
}

func TestGetCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeUnknown, errors.GetCode(stderrors.New("plain")))
	assert.Equal(t, errors.CodeInvalidParam, errors.GetCode(errors.InvalidParam("bad")))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(errors.Internal("boom")))
}

func TestAs(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("outer: %w", errors.New(errors.ErrCodeAtomNotFound, "atom not found").WithDetail("a1"))
	ae, ok := errors.As(wrapped)
	require.True(t, ok)
	assert.Equal(t, "a1", ae.Detail)

	_, ok = errors.As(stderrors.New("plain"))
	assert.False(t, ok)
}

func TestNewf(t *testing.T) {
	t.Parallel()

	ae := errors.Newf(errors.ErrCodeUnknownElement, "unknown element %q", "Xx")
	assert.Equal(t, `unknown element "Xx"`, ae.Message)
}

//Personal.AI order the ending
