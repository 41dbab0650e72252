package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/validoc/pkg/render"
	"github.com/dmitrymomot/validoc/pkg/validator"
	"github.com/dmitrymomot/validoc/pkg/validoc"
)

func ptr(s string) *string { return &s }

func sampleDocument() render.Document {
	return render.Document{
		Validator: "CustomerValidator",
		Language:  "en",
		Nested:    true,
		Members: []validoc.RuleDescriptor{
			{
				MemberName: "Last Name",
				Path:       "LastName",
				Rules: []validoc.RuleDescription{
					{
						MemberName:        "Last Name",
						Path:              "LastName",
						ValidatorName:     "NotEmpty",
						FailureSeverity:   validator.SeverityError,
						OnFailure:         validator.Continue,
						ValidationMessage: ptr("'Last Name' should not be empty."),
					},
					{
						MemberName:        "Last Name",
						Path:              "LastName",
						ValidatorName:     "Matches",
						FailureSeverity:   validator.SeverityWarning,
						OnFailure:         validator.Continue,
						ValidationMessage: ptr("a|b <script>"),
					},
				},
			},
			{
				MemberName: "Address",
				Path:       "Address",
				Rules: []validoc.RuleDescription{
					{
						MemberName:    "Address",
						Path:          "Address",
						ValidatorName: "AddressValidator",
						OnFailure:     validator.StopOnFirstFailure,
						Delegation:    true,
					},
				},
			},
			{
				MemberName: "Line1",
				Path:       "Address.Line1",
				Rules: []validoc.RuleDescription{
					{
						MemberName:        "Line1",
						Path:              "Address.Line1",
						ValidatorName:     "NotEmpty",
						FailureSeverity:   validator.SeverityError,
						ValidationMessage: ptr("'Line1' should not be empty."),
						Depth:             1,
					},
				},
			},
		},
	}
}

func TestNew(t *testing.T) {
	for _, f := range render.Formats() {
		formatter, err := render.New(f)
		require.NoError(t, err, f)
		assert.NotEmpty(t, formatter.ContentType())
	}

	md, err := render.New("MD")
	require.NoError(t, err)
	assert.IsType(t, &render.MarkdownFormatter{}, md)

	_, err = render.New("pdf")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&render.JSONFormatter{Indent: true}).Format(&buf, sampleDocument()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "CustomerValidator", decoded["validator"])

	members := decoded["members"].([]any)
	require.Len(t, members, 3)
	first := members[0].(map[string]any)["rules"].([]any)[0].(map[string]any)
	assert.Equal(t, "Error", first["failure_severity"])
	assert.Equal(t, "Continue", first["on_failure"])

	delegation := members[1].(map[string]any)["rules"].([]any)[0].(map[string]any)
	assert.Nil(t, delegation["validation_message"])
	assert.Equal(t, "", delegation["failure_severity"])
	assert.Equal(t, "StopOnFirstFailure", delegation["on_failure"])
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&render.YAMLFormatter{}).Format(&buf, sampleDocument()))

	out := buf.String()
	assert.Contains(t, out, "validator: CustomerValidator")
	assert.Contains(t, out, "validator_name: AddressValidator")
	assert.Contains(t, out, "validation_message: null")

	var decoded struct {
		Members []struct {
			Path  string `yaml:"path"`
			Rules []struct {
				OnFailure string `yaml:"on_failure"`
			} `yaml:"rules"`
		} `yaml:"members"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Members, 3)
	assert.Equal(t, "Address.Line1", decoded.Members[2].Path)
	assert.Equal(t, "StopOnFirstFailure", decoded.Members[1].Rules[0].OnFailure)
}

func TestMarkdownFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&render.MarkdownFormatter{}).Format(&buf, sampleDocument()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# CustomerValidator\n\n## Last Name\n"))
	assert.Contains(t, out, "| NotEmpty | Error | Continue | 'Last Name' should not be empty. |")
	assert.Contains(t, out, `| Matches | Warning | Continue | a\|b <script> |`)
	assert.Contains(t, out, "| AddressValidator |  | StopOnFirstFailure |  |")
	assert.Contains(t, out, "### Line1 (`Address.Line1`)")
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&render.TextFormatter{}).Format(&buf, sampleDocument()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "CustomerValidator", lines[0])
	assert.True(t, strings.HasPrefix(lines[2], "MEMBER"))
	assert.True(t, strings.HasPrefix(lines[3], "Last Name"))
	assert.True(t, strings.HasPrefix(lines[4], " "))
	assert.Contains(t, lines[4], "Matches")
	assert.True(t, strings.HasPrefix(lines[6], "  Line1"))
}

func TestHTMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&render.HTMLFormatter{}).Format(&buf, sampleDocument()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>CustomerValidator</title>")
	assert.Contains(t, out, "a|b &lt;script&gt;")
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, `data-path="Address.Line1" data-depth="1"`)
	assert.Contains(t, out, "&#39;Last Name&#39; should not be empty.")
}
