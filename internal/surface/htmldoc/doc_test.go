package htmldoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<table>
<tr><td class="contributors-table-date" currentUTC="1700000000000">raw</td>
<td class="contributors-table-time full-date" colspan="3">raw <b>bold</b></td></tr>
</table>
<ul class="funnel-tabs"><li class="uk-active">A</li><li>B</li></ul>
</body></html>`

func TestByClassAndAttrs(t *testing.T) {
	d, err := ParseString(page)
	require.NoError(t, err)

	dates := d.ByClass("contributors-table-date")
	require.Len(t, dates, 1)
	require.Equal(t, "td", dates[0].Tag())
	v, ok := dates[0].Attr("currentUTC")
	require.True(t, ok)
	require.Equal(t, "1700000000000", v)
	_, ok = dates[0].Attr("colspan")
	require.False(t, ok)

	times := d.ByClass("contributors-table-time")
	require.Len(t, times, 1)
	require.True(t, times[0].HasClass("full-date"))
	require.Equal(t, "raw bold", times[0].Text())

	require.Empty(t, d.ByClass("contributors"))
}

func TestSetText(t *testing.T) {
	d, err := ParseString(page)
	require.NoError(t, err)
	el := d.ByClass("contributors-table-time")[0]
	el.SetText("14:13:20 <script>")
	require.Equal(t, "14:13:20 <script>", el.Text())
	require.Contains(t, d.String(), "14:13:20 &lt;script&gt;</td>")
}

func TestClassesAndAttrs(t *testing.T) {
	d, err := ParseString(page)
	require.NoError(t, err)
	el := d.ByClass("contributors-table-time")[0]

	el.ToggleClass("hidden")
	require.True(t, el.HasClass("hidden"))
	require.Len(t, d.ByClass("hidden"), 1)
	el.ToggleClass("hidden")
	require.False(t, el.HasClass("hidden"))
	el.AddClass("full-date")
	cls, _ := el.Attr("class")
	require.Equal(t, "contributors-table-time full-date", cls)

	el.RemoveClass("contributors-table-time")
	el.RemoveClass("full-date")
	_, ok := el.Attr("class")
	require.False(t, ok)

	el.SetAttr("colspan", "2")
	v, _ := el.Attr("colspan")
	require.Equal(t, "2", v)
	el.RemoveAttr("COLSPAN")
	_, ok = el.Attr("colspan")
	require.False(t, ok)
}

func TestSetStyle(t *testing.T) {
	d, err := ParseString(`<div class="c" style="color: red; background-color:#fff">x</div>`)
	require.NoError(t, err)
	el := d.ByClass("c")[0]
	el.SetStyle("background-color", "#ff0000")
	s, _ := el.Attr("style")
	require.Equal(t, "color: red; background-color: #ff0000", s)

	d, err = ParseString(`<div class="c">x</div>`)
	require.NoError(t, err)
	el = d.ByClass("c")[0]
	el.SetStyle("background-color", "#0000ff")
	s, _ = el.Attr("style")
	require.Equal(t, "background-color: #0000ff", s)
}

func TestFind(t *testing.T) {
	d, err := ParseString(page)
	require.NoError(t, err)
	tabs := d.ByClass("funnel-tabs")
	require.Len(t, tabs, 1)
	items := tabs[0].Find("li")
	require.Len(t, items, 2)
	require.Equal(t, "A", items[0].Text())
	require.True(t, items[0].HasClass("uk-active"))
	require.Equal(t, "B", items[1].Text())
}

func TestRenderRoundTrip(t *testing.T) {
	d, err := ParseString(page)
	require.NoError(t, err)
	var b strings.Builder
	require.NoError(t, d.Render(&b))
	d2, err := ParseString(b.String())
	require.NoError(t, err)
	require.Equal(t, b.String(), d2.String())
}
