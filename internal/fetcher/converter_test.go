package fetcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertExtractsTitleAndContent(t *testing.T) {
	htmlDoc := []byte(`<html>
<head><title>The Dram Room - Whiskey Menu</title><style>body{color:red}</style></head>
<body>
<script>trackVisit();</script>
<h1>Whiskey Menu</h1>
<table>
<tr><th>Whiskey</th><th>Price</th></tr>
<tr><td>Lagavulin 16</td><td>$18</td></tr>
<tr><td>Buffalo Trace</td><td>$9</td></tr>
</table>
</body></html>`)

	c := NewConverter()
	res, err := c.Convert(htmlDoc)
	require.NoError(t, err)

	assert.Equal(t, "The Dram Room - Whiskey Menu", res.Title)
	assert.Contains(t, res.Markdown, "Lagavulin 16")
	assert.Contains(t, res.Markdown, "Buffalo Trace")
	assert.NotContains(t, res.Markdown, "trackVisit")
	assert.NotContains(t, res.Markdown, "color:red")
}

func TestConvertKeepsMenuClassedContent(t *testing.T) {
	// Bar sites put the actual drink list under "menu" classes; they must
	// survive conversion.
	htmlDoc := []byte(`<html><body><div class="menu"><ul><li>Redbreast 12 — $14</li></ul></div></body></html>`)

	c := NewConverter()
	res, err := c.Convert(htmlDoc)
	require.NoError(t, err)
	assert.Contains(t, res.Markdown, "Redbreast 12")
}

func TestConvertMalformedHTML(t *testing.T) {
	c := NewConverter()
	res, err := c.Convert([]byte("<div><p>Ardbeg 10 $12<div Oban"))
	require.NoError(t, err)
	assert.Contains(t, res.Markdown, "Ardbeg 10")
}
