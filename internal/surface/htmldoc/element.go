package htmldoc

import (
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/alex65536/breakdown/internal/surface"
)

type Element struct {
	n *html.Node
}

var _ surface.Element = (*Element)(nil)

func (e *Element) Tag() string { return e.n.Data }

func (e *Element) attrIndex(name string) int {
	for i, a := range e.n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			return i
		}
	}
	return -1
}

func (e *Element) Attr(name string) (string, bool) {
	i := e.attrIndex(name)
	if i < 0 {
		return "", false
	}
	return e.n.Attr[i].Val, true
}

func (e *Element) SetAttr(name, value string) {
	if i := e.attrIndex(name); i >= 0 {
		e.n.Attr[i].Val = value
		return
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: strings.ToLower(name), Val: value})
}

func (e *Element) RemoveAttr(name string) {
	if i := e.attrIndex(name); i >= 0 {
		e.n.Attr = slices.Delete(e.n.Attr, i, i+1)
	}
}

func (e *Element) Text() string {
	var b strings.Builder
	walk(e.n, func(n *html.Node) {
		if n.Type == html.TextNode {
			_, _ = b.WriteString(n.Data)
		}
	})
	return b.String()
}

func (e *Element) SetText(text string) {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		c = next
	}
	e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func classes(n *html.Node) []string {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, "class") {
			return strings.Fields(a.Val)
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	return slices.Contains(classes(n), class)
}

func (e *Element) setClasses(cs []string) {
	if len(cs) == 0 {
		e.RemoveAttr("class")
		return
	}
	e.SetAttr("class", strings.Join(cs, " "))
}

func (e *Element) HasClass(class string) bool {
	return hasClass(e.n, class)
}

func (e *Element) AddClass(class string) {
	cs := classes(e.n)
	if slices.Contains(cs, class) {
		return
	}
	e.setClasses(append(cs, class))
}

func (e *Element) RemoveClass(class string) {
	cs := classes(e.n)
	if !slices.Contains(cs, class) {
		return
	}
	e.setClasses(slices.DeleteFunc(cs, func(c string) bool { return c == class }))
}

func (e *Element) ToggleClass(class string) {
	if e.HasClass(class) {
		e.RemoveClass(class)
	} else {
		e.AddClass(class)
	}
}

// SetStyle replaces prop in the inline style attribute, keeping the other declarations in place.
func (e *Element) SetStyle(prop, value string) {
	style, _ := e.Attr("style")
	var decls []string
	found := false
	for _, d := range strings.Split(style, ";") {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		name, _, _ := strings.Cut(d, ":")
		if strings.EqualFold(strings.TrimSpace(name), prop) {
			if found {
				continue
			}
			found = true
			d = prop + ": " + value
		}
		decls = append(decls, d)
	}
	if !found {
		decls = append(decls, prop+": "+value)
	}
	e.SetAttr("style", strings.Join(decls, "; "))
}

func (e *Element) Find(tag string) []surface.Element {
	var res []surface.Element
	walk(e.n, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			res = append(res, &Element{n: n})
		}
	})
	return res
}
