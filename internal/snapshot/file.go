package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// File collects attribute groups and writes them as a JSON snapshot
// metadata header when closed. Nothing touches the disk before Close.
type File struct {
	path   string
	order  []string
	groups map[string]*MemGroup
}

type fileDoc struct {
	Created time.Time `json:"created"`
	Groups  []Group   `json:"groups"`
}

// Create prepares a header file at path.
func Create(path string) *File {
	return &File{path: path, groups: make(map[string]*MemGroup)}
}

// Group returns the named attribute group, creating it on first use.
func (f *File) Group(name string) *MemGroup {
	if g, ok := f.groups[name]; ok {
		return g
	}
	g := NewMemGroup()
	f.groups[name] = g
	f.order = append(f.order, name)
	return g
}

// Close writes the header to disk.
func (f *File) Close() error {
	doc := fileDoc{Created: time.Now().UTC()}
	for _, name := range f.order {
		doc.Groups = append(doc.Groups, Group{Name: name, Attrs: f.groups[name].Attrs()})
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	out, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("create snapshot header: %w", err)
	}
	defer out.Close()

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode snapshot header: %w", err)
	}
	return nil
}

// Contents is a header file read back from disk.
type Contents struct {
	Created time.Time
	Groups  []Group
}

// Group finds a group by name.
func (c *Contents) Group(name string) (Group, bool) {
	for _, g := range c.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}

// Open reads a header file written by Close.
func Open(path string) (*Contents, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc fileDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot header %s: %w", path, err)
	}
	for gi := range doc.Groups {
		for ai, a := range doc.Groups[gi].Attrs {
			doc.Groups[gi].Attrs[ai] = normalize(a)
		}
	}
	return &Contents{Created: doc.Created, Groups: doc.Groups}, nil
}

// normalize undoes JSON's number erasure: integer attributes come back as
// float64 and must be coerced to int again.
func normalize(a Attr) Attr {
	if a.Kind == KindInt {
		if f, ok := a.Value.(float64); ok {
			a.Value = int(f)
		}
	}
	return a
}
