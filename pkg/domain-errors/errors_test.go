package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodedErrors(t *testing.T) {
	t.Run("new carries code and message", func(t *testing.T) {
		err := New(CodeNotFound, "format not registered")
		assert.True(t, HasCode(err, CodeNotFound))
		assert.False(t, HasCode(err, CodeInternal))
		assert.Equal(t, "not_found: format not registered", err.Error())
	})

	t.Run("wrap keeps the cause reachable", func(t *testing.T) {
		cause := errors.New("boom")
		err := Wrap(cause, CodeInternal, "catalogue build failed")
		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.True(t, Is(err, CodeInternal))
	})

	t.Run("wrap of nil is nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, CodeInternal, "unused"))
	})

	t.Run("code survives fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("lookup: %w", New(CodeValidation, "country is required"))
		de, ok := As(err)
		require.True(t, ok)
		assert.Equal(t, CodeValidation, de.Code)
	})

	t.Run("plain errors have no code", func(t *testing.T) {
		assert.False(t, HasCode(errors.New("x"), CodeInternal))
	})
}
