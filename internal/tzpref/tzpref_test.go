package tzpref

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alex65536/breakdown/internal/localize"
	"github.com/alex65536/breakdown/internal/surface/htmldoc"
)

func TestFromCookie(t *testing.T) {
	sel, ok := FromCookie("session=abc; tz=America/Los_Angeles; theme=dark", "")
	require.True(t, ok)
	require.Equal(t, localize.Zone("America/Los_Angeles"), sel)

	sel, ok = FromCookie(`bad cookie; zone="Europe/Paris"`, "zone")
	require.True(t, ok)
	require.Equal(t, "Europe/Paris", sel.Name())

	_, ok = FromCookie("session=abc; tz=", "")
	require.False(t, ok)
	_, ok = FromCookie("", "")
	require.False(t, ok)
}

func TestFromPage(t *testing.T) {
	doc, err := htmldoc.ParseString(`<div class="breakdown-page" data-timezone="Asia/Tokyo"></div>`)
	require.NoError(t, err)
	sel, ok := FromPage(doc)
	require.True(t, ok)
	require.Equal(t, "Asia/Tokyo", sel.Name())

	doc, err = htmldoc.ParseString(`<div class="breakdown-page"></div>`)
	require.NoError(t, err)
	sel, ok = FromPage(doc)
	require.False(t, ok)
	require.True(t, sel.IsDefault())
}

func TestChoosePrecedence(t *testing.T) {
	doc, err := htmldoc.ParseString(`<body class="breakdown-page" data-timezone="Asia/Tokyo"></body>`)
	require.NoError(t, err)

	sel, src := Choose(Candidates{Flag: "UTC", Cookie: "tz=Europe/Paris", Page: doc})
	require.Equal(t, SourceFlag, src)
	require.Equal(t, "UTC", sel.Name())

	sel, src = Choose(Candidates{Cookie: "tz=Europe/Paris", Page: doc})
	require.Equal(t, SourceCookie, src)
	require.Equal(t, "Europe/Paris", sel.Name())

	sel, src = Choose(Candidates{Cookie: "other=1", Page: doc})
	require.Equal(t, SourcePage, src)
	require.Equal(t, "Asia/Tokyo", sel.Name())

	sel, src = Choose(Candidates{})
	require.Equal(t, SourceEnvironment, src)
	require.Equal(t, localize.Default, sel)
	require.Equal(t, "environment", src.String())
}
