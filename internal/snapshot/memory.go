package snapshot

import "fmt"

// MemGroup is an in-memory attribute group preserving write order.
type MemGroup struct {
	attrs []Attr
	index map[string]int
}

// NewMemGroup returns an empty in-memory group.
func NewMemGroup() *MemGroup {
	return &MemGroup{index: make(map[string]int)}
}

func (g *MemGroup) write(a Attr) error {
	if _, ok := g.index[a.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, a.Name)
	}
	g.index[a.Name] = len(g.attrs)
	g.attrs = append(g.attrs, a)
	return nil
}

// WriteFloat records a floating-point attribute.
func (g *MemGroup) WriteFloat(name string, value float64) error {
	return g.write(Attr{Name: name, Kind: KindFloat, Value: value})
}

// WriteInt records an integer attribute.
func (g *MemGroup) WriteInt(name string, value int) error {
	return g.write(Attr{Name: name, Kind: KindInt, Value: value})
}

// WriteString records a string attribute.
func (g *MemGroup) WriteString(name string, value string) error {
	return g.write(Attr{Name: name, Kind: KindString, Value: value})
}

// Len returns the number of attributes written.
func (g *MemGroup) Len() int { return len(g.attrs) }

// Attrs returns the attributes in write order.
func (g *MemGroup) Attrs() []Attr {
	out := make([]Attr, len(g.attrs))
	copy(out, g.attrs)
	return out
}

// Lookup finds an attribute by name.
func (g *MemGroup) Lookup(name string) (Attr, bool) {
	i, ok := g.index[name]
	if !ok {
		return Attr{}, false
	}
	return g.attrs[i], true
}
