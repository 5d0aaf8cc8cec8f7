package validation

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleErrors() []Error {
	return []Error{
		{Type: ErrInvalidDeletedComponentReference, Stage: StageTDD, Description: `Deleted component id "99" is invalid.`},
		{Type: ErrInvalidTddReferenceInStory, Stage: StageStory, Description: `Feature story "A" contains TDD reference "T1" that does not exist.`},
		{Type: ErrInvalidDeletedComponentReference, Stage: StageTDD, Description: `Deleted component id "98" is invalid.`},
	}
}

func TestReporterText(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, FormatText, "master")

	require.NoError(t, r.Report(sampleErrors()))

	want := "INVALID_DELETED_COMPONENT_REFERENCE:\n" +
		"    Deleted component id \"99\" is invalid. (Checked architecture in \"master\" branch.)\n" +
		"    Deleted component id \"98\" is invalid. (Checked architecture in \"master\" branch.)\n" +
		"INVALID_TDD_REFERENCE_IN_STORY:\n" +
		"    Feature story \"A\" contains TDD reference \"T1\" that does not exist.\n"
	assert.Equal(t, want, buf.String())
}

func TestReporterTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatText, "master").Report(nil))
	assert.Empty(t, buf.String())
}

func TestReporterJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, FormatJSON, "main")

	require.NoError(t, r.Report(sampleErrors()[:1]))

	var out struct {
		BaseBranch string  `json:"baseBranch"`
		Errors     []Error `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "main", out.BaseBranch)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, ErrInvalidDeletedComponentReference, out.Errors[0].Type)
	assert.Equal(t, StageTDD, out.Errors[0].Stage)
}

func TestReporterJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf, FormatJSON, "").Report(nil))
	assert.JSONEq(t, `{"errors": []}`, buf.String())
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "text", want: FormatText},
		{in: "", want: FormatText},
		{in: "JSON", want: FormatJSON},
		{in: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}

func TestResultErrorsByStage(t *testing.T) {
	r := &Result{errors: sampleErrors()}

	assert.Len(t, r.Errors(), 3)
	assert.Len(t, r.Errors(StageTDD), 2)
	assert.Len(t, r.Errors(StageStory), 1)
	assert.Len(t, r.Errors(StageTDD, StageStory), 3)
	assert.False(t, r.IsValid(StageStory))

	empty := &Result{}
	assert.True(t, empty.IsValid())
	assert.Empty(t, empty.Errors(StageTDD))
}
