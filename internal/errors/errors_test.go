package errors_test

import (
	"errors"
	"testing"

	dnderr "github.com/KirkDiggler/dice-dungeon/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesCodeAndMeta(t *testing.T) {
	base := dnderr.NotFound("run not found").WithMeta("run_id", "run-1")

	wrapped := dnderr.Wrap(base, "failed to load run")

	assert.True(t, dnderr.IsNotFound(wrapped))
	assert.Equal(t, "run-1", dnderr.GetMeta(wrapped)["run_id"])
	assert.Equal(t, "failed to load run: run not found", wrapped.Error())
	assert.True(t, errors.Is(wrapped, base))
}

func TestWrap_ForeignErrorIsUnknown(t *testing.T) {
	wrapped := dnderr.Wrap(errors.New("boom"), "redis get")

	assert.Equal(t, dnderr.CodeUnknown, dnderr.GetCode(wrapped))
	assert.Nil(t, dnderr.Wrap(nil, "nothing"))
}

func TestWrapWithCode(t *testing.T) {
	wrapped := dnderr.WrapWithCode(errors.New("bad json"), dnderr.CodeInternal, "decode player")

	assert.True(t, dnderr.IsInternal(wrapped))
	assert.False(t, dnderr.IsNotFound(wrapped))
}

func TestFailedPrecondition(t *testing.T) {
	err := dnderr.FailedPreconditionf("battle %s is over", "b-1")

	assert.True(t, dnderr.IsFailedPrecondition(err))
	assert.Equal(t, "battle b-1 is over", err.Error())
	assert.False(t, dnderr.Is(errors.New("plain"), dnderr.CodeFailedPrecondition))
}
