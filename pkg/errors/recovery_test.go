package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecover(t *testing.T) {
	t.Run("panic becomes PanicError", func(t *testing.T) {
		run := func() (err error) {
			defer Recover(&err, "Predict")
			panic("index out of range")
		}

		err := run()
		require.Error(t, err)

		var panicErr *PanicError
		require.True(t, errors.As(err, &panicErr))
		assert.Equal(t, "Predict", panicErr.Operation)
		assert.Equal(t, "index out of range", panicErr.PanicValue)
		assert.NotEmpty(t, panicErr.StackTrace)
		assert.Equal(t, "panic in Predict: index out of range", panicErr.Error())
		assert.Contains(t, panicErr.String(), "Stack trace:")
	})

	t.Run("no panic leaves error untouched", func(t *testing.T) {
		run := func() (err error) {
			defer Recover(&err, "Predict")
			return nil
		}
		assert.NoError(t, run())
	})

	t.Run("existing error is wrapped", func(t *testing.T) {
		original := fmt.Errorf("original error")
		run := func() (err error) {
			defer Recover(&err, "Predict")
			err = original
			panic("after error")
		}

		err := run()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "panic in Predict")
		assert.True(t, errors.Is(err, original))
	})
}

func TestSafeExecute(t *testing.T) {
	assert.NoError(t, SafeExecute("ok", func() error { return nil }))

	original := fmt.Errorf("function error")
	assert.Same(t, original, SafeExecute("fails", func() error { return original }))

	err := SafeExecute("panics", func() error {
		var neighbors []string
		_ = neighbors[0]
		return nil
	})
	var panicErr *PanicError
	require.True(t, errors.As(err, &panicErr))
	assert.Equal(t, "panics", panicErr.Operation)
}

func BenchmarkSafeExecute_NoPanic(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = SafeExecute("bench", func() error { return nil })
	}
}
