package htmldoc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/alex65536/breakdown/internal/surface"
)

type Document struct {
	root *html.Node
}

var _ surface.Document = (*Document)(nil)

func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{root: root}, nil
}

func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

func (d *Document) String() string {
	var b strings.Builder
	_ = d.Render(&b)
	return b.String()
}

func (d *Document) ByClass(class string) []surface.Element {
	var res []surface.Element
	walk(d.root, func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, class) {
			res = append(res, &Element{n: n})
		}
	})
	return res
}

func walk(n *html.Node, f func(n *html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		f(c)
		walk(c, f)
	}
}
