// Package surface describes the parts of a rendered page that the breakdown behaviors touch.
package surface

type Element interface {
	Tag() string
	Attr(name string) (string, bool)
	SetAttr(name, value string)
	RemoveAttr(name string)
	Text() string
	SetText(text string)
	HasClass(class string) bool
	AddClass(class string)
	RemoveClass(class string)
	ToggleClass(class string)
	SetStyle(prop, value string)
	// Find returns the descendants with the given tag, in document order.
	Find(tag string) []Element
}

type Document interface {
	// ByClass returns the elements carrying the class, in document order.
	ByClass(class string) []Element
}
