package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertBody_RTF(t *testing.T) {
	raw := []byte(`{\rtf1{\info{\title Notes}}Hello \b World\b0 \par}`)

	body, err := ConvertBody("rtf", raw)
	require.NoError(t, err)

	assert.Equal(t, "<p>Hello <strong>World</strong></p>", body.HTML)
	assert.Equal(t, "Notes", body.Title)
	assert.Empty(t, body.Warnings)
	assert.Equal(t, raw, body.Raw)
}

func TestConvertBody_UnknownFormatTreatedAsRTF(t *testing.T) {
	body, err := ConvertBody("", []byte(`}plain <text>`))
	require.NoError(t, err)

	assert.Equal(t, "<p>plain &lt;text&gt;</p>", body.HTML)
	assert.Len(t, body.Warnings, 1)
}

func TestConvertBody_Markdown(t *testing.T) {
	body, err := ConvertBody("markdown", []byte("Hello **World**"))
	require.NoError(t, err)

	assert.Equal(t, "<p>Hello <strong>World</strong></p>", body.HTML)
	assert.Empty(t, body.Title)
}

func TestRenderer_RenderBody(t *testing.T) {
	body := &Body{
		Raw:  []byte(`{\rtf1 Hello \b World\b0}`),
		HTML: "<p>Hello <strong>World</strong></p>",
	}

	tests := []struct {
		name string
		mode BodyMode
		want string
	}{
		{"markdown", BodyMarkdown, "Hello **World**"},
		{"default is markdown", "", "Hello **World**"},
		{"html", BodyHTML, "<p>Hello <strong>World</strong></p>"},
		{"raw", BodyRaw, `{\rtf1 Hello \b World\b0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewRenderer(FormatTable, true)
			r.SetWriter(&buf)

			r.RenderBody(body, tt.mode)
			assert.Equal(t, tt.want, strings.TrimSpace(buf.String()))
		})
	}
}

func TestRenderer_RenderBody_Empty(t *testing.T) {
	for _, mode := range []BodyMode{BodyMarkdown, BodyHTML} {
		var buf bytes.Buffer
		r := NewRenderer(FormatTable, true)
		r.SetWriter(&buf)

		r.RenderBody(&Body{}, mode)
		assert.Equal(t, "(No content)", strings.TrimSpace(buf.String()), "mode %s", mode)
	}
}
