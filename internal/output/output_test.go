package output

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/pathlist/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type result struct {
	Count int      `json:"count" yaml:"count"`
	Items []string `json:"items" yaml:"items"`
}

func TestResult(t *testing.T) {
	v := result{Count: 2, Items: []string{"a", "b"}}

	t.Run("text", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, New(&out, &bytes.Buffer{}, FormatText).Result("(#2) [a, b]", v))
		assert.Equal(t, "(#2) [a, b]\n", out.String())
	})

	t.Run("json", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, New(&out, &bytes.Buffer{}, FormatJSON).Result("ignored", v))
		assert.JSONEq(t, `{"count": 2, "items": ["a", "b"]}`, out.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, New(&out, &bytes.Buffer{}, FormatYAML).Result("ignored", v))
		assert.Equal(t, "count: 2\nitems:\n  - a\n  - b\n", out.String())
	})
}

func TestError_Text(t *testing.T) {
	var errOut bytes.Buffer
	p := New(&bytes.Buffer{}, &errOut, FormatText)

	err := errors.WrapFS(&fs.PathError{Op: "stat", Path: "/missing", Err: fs.ErrNotExist}, "stat", "/missing")
	p.Error(err)

	out := errOut.String()
	assert.Contains(t, out, "[NOT_FOUND] stat /missing")
	assert.Contains(t, out, "op: stat")
	assert.Contains(t, out, "path: /missing")
	assert.Contains(t, out, "cause: file does not exist")
}

func TestError_StandardError(t *testing.T) {
	var errOut bytes.Buffer
	New(&bytes.Buffer{}, &errOut, FormatText).Error(stderrors.New("plain failure"))

	assert.Contains(t, errOut.String(), "[UNKNOWN] plain failure")
	assert.NotContains(t, errOut.String(), "cause:")
}

func TestError_JSON(t *testing.T) {
	var errOut bytes.Buffer
	p := New(&bytes.Buffer{}, &errOut, FormatJSON)

	p.Error(errors.WithContext(errors.New(errors.CodeConflict, "directory is not empty"), "path", "/d"))

	var got struct {
		Error errors.ErrorResponse `json:"error"`
	}
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &got))
	assert.Equal(t, "CONFLICT", got.Error.Code)
	assert.Equal(t, "directory is not empty", got.Error.Message)
	assert.Equal(t, "/d", got.Error.Context["path"])
}

func TestError_YAML(t *testing.T) {
	var errOut bytes.Buffer
	New(&bytes.Buffer{}, &errOut, FormatYAML).Error(errors.New(errors.CodeInvalidInput, "bad depth"))

	var got struct {
		Error errors.ErrorResponse `yaml:"error"`
	}
	require.NoError(t, yaml.Unmarshal(errOut.Bytes(), &got))
	assert.Equal(t, "INVALID_INPUT", got.Error.Code)
	assert.Equal(t, "bad depth", got.Error.Message)
}

func TestError_Nil(t *testing.T) {
	var errOut bytes.Buffer
	New(&bytes.Buffer{}, &errOut, FormatText).Error(nil)
	assert.Empty(t, errOut.String())
}

func TestInfo(t *testing.T) {
	var out, errOut bytes.Buffer
	p := New(&out, &errOut, FormatText)

	p.Info("Loaded config: pathlist.yaml")
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Loaded config: pathlist.yaml")
}
