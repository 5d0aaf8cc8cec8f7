package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, CodeInternal, "boom"))
		assert.NoError(t, WrapWithContext(nil, CodeInternal, "boom", nil))
	})

	t.Run("message includes cause", func(t *testing.T) {
		cause := stderrors.New("disk on fire")
		err := Wrap(cause, CodeArchitectureLoadFailed, "unable to load architecture")

		require.Error(t, err)
		assert.Equal(t, "unable to load architecture: disk on fire", err.Error())
		assert.True(t, Is(err, cause))
		assert.Equal(t, CodeArchitectureLoadFailed, GetCode(err))
	})

	t.Run("context is copied", func(t *testing.T) {
		ctx := map[string]interface{}{"path": "a.yml"}
		err := WrapWithContext(stderrors.New("x"), CodeParseFailed, "parse", ctx)
		ctx["path"] = "b.yml"

		assert.Equal(t, "a.yml", GetContext(err)["path"])
	})
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "platform error",
			err:  New(CodeDuplicateID, "duplicate"),
			want: CodeDuplicateID,
		},
		{
			name: "wrapped by fmt",
			err:  fmt.Errorf("outer: %w", New(CodeNotFound, "missing")),
			want: CodeNotFound,
		},
		{
			name: "plain error",
			err:  stderrors.New("plain"),
			want: CodeUnknown,
		},
		{
			name: "nil",
			err:  nil,
			want: CodeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestHasCode(t *testing.T) {
	inner := New(CodeNotFound, "branch does not exist")
	outer := Wrap(inner, CodeGitLoadFailed, "unable to load branch")

	assert.True(t, HasCode(outer, CodeGitLoadFailed))
	assert.True(t, HasCode(outer, CodeNotFound))
	assert.False(t, HasCode(outer, CodeParseFailed))
	assert.False(t, HasCode(stderrors.New("plain"), CodeNotFound))
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidInput, "bad id %q", "x")
	assert.Equal(t, `bad id "x"`, err.Error())
	assert.Equal(t, CodeInvalidInput, GetCode(err))
}
