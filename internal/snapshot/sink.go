package snapshot

import (
	"errors"
	"fmt"
)

// ErrDuplicate indicates an attribute name was written twice into one group.
var ErrDuplicate = errors.New("snapshot: attribute already written")

// Kind discriminates attribute value types.
type Kind string

const (
	KindFloat  Kind = "float"
	KindInt    Kind = "int"
	KindString Kind = "string"
)

// Attr is one named scalar attribute of a snapshot group.
type Attr struct {
	Name  string `json:"name"`
	Kind  Kind   `json:"kind"`
	Value any    `json:"value"`
}

// AsFloat returns the attribute value as a float64.
func (a Attr) AsFloat() (float64, bool) {
	v, ok := a.Value.(float64)
	return v, ok && a.Kind == KindFloat
}

// AsInt returns the attribute value as an int.
func (a Attr) AsInt() (int, bool) {
	v, ok := a.Value.(int)
	return v, ok && a.Kind == KindInt
}

// AsString returns the attribute value as a string.
func (a Attr) AsString() (string, bool) {
	v, ok := a.Value.(string)
	return v, ok && a.Kind == KindString
}

// Display renders the value for humans.
func (a Attr) Display() string {
	switch a.Kind {
	case KindFloat:
		return fmt.Sprintf("%g", a.Value)
	case KindInt:
		return fmt.Sprintf("%d", a.Value)
	default:
		return fmt.Sprintf("%v", a.Value)
	}
}

// AttributeWriter is an open snapshot group accepting named scalar
// attribute writes. Implementations reject duplicate names.
type AttributeWriter interface {
	WriteFloat(name string, value float64) error
	WriteInt(name string, value int) error
	WriteString(name string, value string) error
}

// Group is a named attribute set read back from a sink.
type Group struct {
	Name  string `json:"name"`
	Attrs []Attr `json:"attributes"`
}

// Lookup finds an attribute by name.
func (g Group) Lookup(name string) (Attr, bool) {
	for _, a := range g.Attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attr{}, false
}
