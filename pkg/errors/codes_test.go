package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusForCode(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrCodeAtomNotFound:     http.StatusNotFound,
		ErrCodeSelfBond:         http.StatusBadRequest,
		ErrCodeDuplicateBond:    http.StatusConflict,
		ErrCodeInvalidBondOrder: http.StatusBadRequest,
		ErrCodeUnknownPreset:    http.StatusNotFound,
		ErrorCode("NOPE_999"):   http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatusForCode(code), "code %s", code)
	}
}

func TestDefaultMessageForCode(t *testing.T) {
	assert.Equal(t, "atom not found", DefaultMessageForCode(ErrCodeAtomNotFound))
	assert.Equal(t, "unknown error", DefaultMessageForCode(ErrorCode("X")))
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(ErrCodeSelfBond))
	assert.False(t, IsClientError(ErrCodeInternal))
}

func TestModuleForCode(t *testing.T) {
	assert.Equal(t, "GRAPH", ModuleForCode(ErrCodeBondNotFound))
	assert.Equal(t, "SIM", ModuleForCode(ErrCodeUnknownPreset))
	assert.Equal(t, "UNKNOWN", ModuleForCode(ErrorCode("OK")))
}

func TestEveryCodeHasStatusAndMessage(t *testing.T) {
	for code := range ErrorCodeHTTPStatus {
		_, ok := ErrorCodeMessage[code]
		assert.True(t, ok, "missing message for %s", code)
	}
}

//Personal.AI order the ending
