package bouncer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinks(t *testing.T) {
	page := `<html><body>
<h1>Products</h1>
<ul>
  <li><a href="/?product=firefox-latest">firefox-latest</a></li>
  <li><a name="anchor">no href</a></li>
  <li><a href="/?product=firefox-nightly-latest">firefox-nightly-latest</a></li>
</ul>
</body></html>`

	doc, err := ParseHTML(strings.NewReader(page))
	require.NoError(t, err)

	assert.Equal(t, []string{"/?product=firefox-latest", "/?product=firefox-nightly-latest"}, Links(doc))
}

func TestLinksEmpty(t *testing.T) {
	doc, err := ParseHTML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, Links(doc))
	assert.Empty(t, Links(nil))
}
