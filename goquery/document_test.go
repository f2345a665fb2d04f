package goquery_test

import (
	"testing"

	"github.com/fwojciec/alaskavn"
	"github.com/fwojciec/alaskavn/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("rejects an invalid base URL", func(t *testing.T) {
		t.Parallel()
		_, err := goquery.Parse("<html></html>", "://bad")
		require.Error(t, err)
		assert.Equal(t, alaskavn.EINVALID, alaskavn.ErrorCode(err))
	})

	t.Run("tolerates non-HTML input without error", func(t *testing.T) {
		t.Parallel()
		doc, err := goquery.Parse("not html at all {{{", alaskavn.BaseURL)
		require.NoError(t, err)
		assert.Empty(t, goquery.ExtractProductURLs(doc))
	})
}

func TestDocumentText(t *testing.T) {
	t.Parallel()

	t.Run("breaks lines at block boundaries", func(t *testing.T) {
		t.Parallel()
		doc, err := goquery.Parse("<div>Kích thước: 600x500x800 mm</div><div>Trọng lượng: 45 kg</div>", alaskavn.BaseURL)
		require.NoError(t, err)

		text := doc.Text()
		assert.Contains(t, text, "Kích thước: 600x500x800 mm\n")
		assert.Contains(t, text, "\nTrọng lượng: 45 kg")
	})

	t.Run("excludes script and style content", func(t *testing.T) {
		t.Parallel()
		doc, err := goquery.Parse("<p>visible</p><script>var hidden = 1;</script><style>.x{}</style>", alaskavn.BaseURL)
		require.NoError(t, err)

		assert.Contains(t, doc.Text(), "visible")
		assert.NotContains(t, doc.Text(), "hidden")
		assert.NotContains(t, doc.Text(), ".x{}")
	})
}

func TestDocumentNormalizedText(t *testing.T) {
	t.Parallel()

	doc, err := goquery.Parse("<p>  one  \n two </p><p>three</p>", alaskavn.BaseURL)
	require.NoError(t, err)
	assert.Equal(t, "one two three", doc.NormalizedText())
}

func TestDocumentResolveURL(t *testing.T) {
	t.Parallel()

	doc, err := goquery.Parse("<html></html>", "https://alaska.vn")
	require.NoError(t, err)

	assert.Equal(t, "https://alaska.vn/tu-mat-lc-535c/", doc.ResolveURL("/tu-mat-lc-535c/"))
	assert.Equal(t, "https://other.example/x", doc.ResolveURL("https://other.example/x"))
	assert.True(t, doc.IsInternalURL("https://alaska.vn/lien-he/"))
	assert.False(t, doc.IsInternalURL("https://facebook.com/alaska"))
}
