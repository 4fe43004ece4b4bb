package printing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrintParams(t *testing.T) {
	r := &ChromedpRenderer{config: &ChromedpConfig{}}

	p := r.buildPrintParams(&RenderRequest{HTML: "<p>x</p>", Margins: DefaultMargins()})
	assert.InDelta(t, mmToInches(210), p.paperWidth, 0.001)
	assert.InDelta(t, mmToInches(297), p.paperHeight, 0.001)
	assert.False(t, p.landscape)
	assert.False(t, p.displayHeaderFooter)

	p = r.buildPrintParams(&RenderRequest{HTML: "<p>x</p>", Landscape: true, FooterHTML: "<div>f</div>"})
	assert.True(t, p.landscape)
	assert.True(t, p.displayHeaderFooter)
	assert.InDelta(t, mmToInches(15), p.marginBottom, 0.001)
}

func TestBuildCompleteHTML(t *testing.T) {
	r := &ChromedpRenderer{config: &ChromedpConfig{}}

	full := "<!DOCTYPE html><html><body>x</body></html>"
	assert.Equal(t, full, r.buildCompleteHTML(&RenderRequest{HTML: full}))

	wrapped := r.buildCompleteHTML(&RenderRequest{HTML: "<p>x</p>", Title: "Bonus"})
	assert.Contains(t, wrapped, "<title>Bonus</title>")
	assert.Contains(t, wrapped, "<body><p>x</p></body>")
}

func TestRender_RejectsEmptyHTML(t *testing.T) {
	r, err := NewChromedpRenderer(nil)
	require.NoError(t, err)
	defer r.Close()

	_, err = r.Render(context.Background(), &RenderRequest{HTML: "  "})
	var re *RenderError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, ErrCodeInvalidHTML, re.Code)

	_, err = r.Render(context.Background(), nil)
	require.ErrorAs(t, err, &re)
}

func TestCountPages(t *testing.T) {
	pdf := []byte("<< /Type /Pages /Count 2 >> << /Type /Page >> << /Type /Page >>")
	assert.Equal(t, 2, countPages(pdf))
	assert.Equal(t, 1, countPages([]byte("garbage")))
}
