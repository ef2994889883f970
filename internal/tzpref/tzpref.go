// Package tzpref finds out which timezone the viewer wants the page rendered in.
package tzpref

import (
	"net/http"
	"strings"

	"github.com/alex65536/breakdown/internal/localize"
	"github.com/alex65536/breakdown/internal/surface"
)

const (
	DefaultCookie = "tz"
	PageClass     = "breakdown-page"
	PageAttr      = "data-timezone"
)

type Source int

const (
	SourceEnvironment Source = iota
	SourceFlag
	SourceCookie
	SourcePage
)

func (s Source) String() string {
	switch s {
	case SourceEnvironment:
		return "environment"
	case SourceFlag:
		return "flag"
	case SourceCookie:
		return "cookie"
	case SourcePage:
		return "page"
	default:
		return "unknown"
	}
}

// FromCookie looks up the preference in the value of a Cookie header. Malformed pairs are skipped.
func FromCookie(header, name string) (localize.Selection, bool) {
	if name == "" {
		name = DefaultCookie
	}
	for _, part := range strings.Split(header, ";") {
		cookies, err := http.ParseCookie(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		for _, c := range cookies {
			if c.Name == name && c.Value != "" {
				return localize.Zone(c.Value), true
			}
		}
	}
	return localize.Default, false
}

// FromPage returns the page-global preference, stored on the first element marked with PageClass.
func FromPage(doc surface.Document) (localize.Selection, bool) {
	for _, el := range doc.ByClass(PageClass) {
		if v, ok := el.Attr(PageAttr); ok && strings.TrimSpace(v) != "" {
			return localize.Zone(v), true
		}
	}
	return localize.Default, false
}

type Candidates struct {
	Flag   string
	Cookie string
	// CookieName defaults to DefaultCookie.
	CookieName string
	Page       surface.Document
}

// Choose picks the preference in order: explicit flag, cookie, page. Without any of them, the
// environment default is used.
func Choose(c Candidates) (localize.Selection, Source) {
	if flag := strings.TrimSpace(c.Flag); flag != "" {
		return localize.Zone(flag), SourceFlag
	}
	if c.Cookie != "" {
		if sel, ok := FromCookie(c.Cookie, c.CookieName); ok {
			return sel, SourceCookie
		}
	}
	if c.Page != nil {
		if sel, ok := FromPage(c.Page); ok {
			return sel, SourcePage
		}
	}
	return localize.Default, SourceEnvironment
}
