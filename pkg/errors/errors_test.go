package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeDatasetUnreadable, "source unavailable")
	require.NotNil(t, err)
	assert.Equal(t, ErrCodeDatasetUnreadable, err.Code)
	assert.Equal(t, "[INGEST_001] source unavailable", err.Error())
	assert.NotEmpty(t, err.Stack)
}

func TestError_WithDetail(t *testing.T) {
	base := NotFound("area not found")
	detailed := base.WithDetail("area=12345")

	assert.Equal(t, "[COMMON_003] area not found: area=12345", detailed.Error())
	// The original must not be mutated.
	assert.Empty(t, base.Detail)

	var nilErr *AppError
	assert.Nil(t, nilErr.WithDetail("x"))
}

func TestWrap(t *testing.T) {
	t.Run("nil cause yields nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
	})

	t.Run("wraps and unwraps", func(t *testing.T) {
		cause := fmt.Errorf("read /data/print.csv: no such file")
		err := Wrap(cause, ErrCodeDatasetUnreadable, "cannot open dataset")
		require.NotNil(t, err)
		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, IsCode(err, ErrCodeDatasetUnreadable))
	})

	t.Run("CodeUnknown preserves inner code", func(t *testing.T) {
		inner := New(ErrCodeSnapshotNotReady, "no snapshot published")
		outer := Wrap(inner, CodeUnknown, "query failed")
		assert.Equal(t, ErrCodeSnapshotNotReady, outer.Code)
	})
}

func TestChainInspection(t *testing.T) {
	inner := New(ErrCodeSnapshotNotReady, "no snapshot")
	outer := Wrap(inner, ErrCodeInternal, "refresh")

	assert.True(t, IsCode(outer, ErrCodeSnapshotNotReady))
	assert.True(t, IsNotFound(outer))
	assert.False(t, IsValidation(outer))

	assert.Equal(t, CodeOK, GetCode(nil))
	assert.Equal(t, CodeUnknown, GetCode(fmt.Errorf("plain")))
	assert.Equal(t, ErrCodeInternal, GetCode(outer))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(InvalidParam("bad selection")))
	assert.True(t, IsValidation(NewValidation("missing logger")))
	assert.False(t, IsValidation(Internal("boom")))
}
