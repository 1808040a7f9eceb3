package svg

import (
	"strings"
)

// Attr is a single element attribute. Attributes keep their insertion
// order so serialization is deterministic.
type Attr struct {
	Key   string
	Value string
}

// Element is a node in the drawing tree. Elements are write-only: the
// session appends them to a document or group and never mutates them
// afterwards.
type Element struct {
	name     string
	attrs    []Attr
	children []*Element
	text     string
}

// NewElement creates an element with the given tag name.
func NewElement(name string) *Element {
	return &Element{name: name}
}

// Name returns the tag name.
func (e *Element) Name() string { return e.name }

// Set sets a string attribute, replacing any existing value for the key.
// It returns the element for chaining.
func (e *Element) Set(key, value string) *Element {
	for i := range e.attrs {
		if e.attrs[i].Key == key {
			e.attrs[i].Value = value
			return e
		}
	}
	e.attrs = append(e.attrs, Attr{Key: key, Value: value})
	return e
}

// SetFloat sets a numeric attribute using shortest-form formatting.
func (e *Element) SetFloat(key string, v float64) *Element {
	return e.Set(key, formatFloat(v))
}

// Get returns the value of an attribute, and whether it was set.
func (e *Element) Get(key string) (string, bool) {
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns the attributes in insertion order.
func (e *Element) Attrs() []Attr { return e.attrs }

// Append adds a child node.
func (e *Element) Append(child *Element) {
	e.children = append(e.children, child)
}

// Children returns the child nodes in append order.
func (e *Element) Children() []*Element { return e.children }

// SetText sets the element's text content.
func (e *Element) SetText(text string) *Element {
	e.text = text
	return e
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func (e *Element) render(b *strings.Builder, indent string, depth int) {
	pretty := indent != ""
	if pretty {
		b.WriteString(strings.Repeat(indent, depth))
	}
	b.WriteByte('<')
	b.WriteString(e.name)
	for _, a := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(attrEscaper.Replace(a.Value))
		b.WriteByte('"')
	}

	if len(e.children) == 0 && e.text == "" {
		b.WriteString(" />")
		if pretty {
			b.WriteByte('\n')
		}
		return
	}

	b.WriteByte('>')
	if e.text != "" {
		b.WriteString(textEscaper.Replace(e.text))
	}
	if len(e.children) > 0 {
		if pretty {
			b.WriteByte('\n')
		}
		for _, c := range e.children {
			c.render(b, indent, depth+1)
		}
		if pretty {
			b.WriteString(strings.Repeat(indent, depth))
		}
	}
	b.WriteString("</")
	b.WriteString(e.name)
	b.WriteByte('>')
	if pretty {
		b.WriteByte('\n')
	}
}
