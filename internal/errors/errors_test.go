package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpusError(t *testing.T) {
	t.Run("message includes code, quiz, and path", func(t *testing.T) {
		err := NewParseError(ErrCodeMetadataParse, "decoding metadata", stderrors.New("bad yaml")).
			WithQuiz(4).WithLocale("ja").WithPath("4-easy-pick/info.ja.yml")

		msg := err.Error()
		assert.Contains(t, msg, ErrCodeMetadataParse)
		assert.Contains(t, msg, "quiz:4")
		assert.Contains(t, msg, "locale:ja")
		assert.Contains(t, msg, "info.ja.yml")
		assert.Contains(t, msg, "bad yaml")
	})

	t.Run("unwraps the cause", func(t *testing.T) {
		cause := stderrors.New("root cause")
		err := NewIOError(ErrCodeWriteFailed, "writing", cause)

		assert.Equal(t, cause, stderrors.Unwrap(err))
		assert.True(t, stderrors.Is(err, cause))
	})

	t.Run("matches on type and code", func(t *testing.T) {
		err := ErrMissingTarget("some/README.md")
		assert.True(t, stderrors.Is(err, ErrMissingTarget("other/README.md")))
	})
}

func TestRecoverability(t *testing.T) {
	t.Run("only cache errors are fatal", func(t *testing.T) {
		fatal := ErrSnapshotCorrupt("snapshot.json", stderrors.New("bad json"))
		require.True(t, IsFatal(fatal))
		assert.False(t, IsRecoverable(fatal))

		for _, recoverable := range []error{
			ErrMissingTarget("x"),
			NewParseError(ErrCodeMetadataParse, "m", nil),
			ErrLocaleGap(4, "ja"),
			NewIOError(ErrCodeWriteFailed, "m", nil),
		} {
			assert.True(t, IsRecoverable(recoverable), "%v", recoverable)
			assert.False(t, IsFatal(recoverable), "%v", recoverable)
		}
	})

	t.Run("plain errors default to recoverable", func(t *testing.T) {
		err := stderrors.New("unknown")
		assert.True(t, IsRecoverable(err))
		assert.False(t, IsFatal(err))
	})
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrMissingTarget("x")))
	assert.False(t, IsNotFound(ErrLocaleGap(1, "ja")))
	assert.False(t, IsNotFound(stderrors.New("plain")))
}
