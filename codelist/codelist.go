package codelist

import (
	"fmt"
	"strings"

	"github.com/khaeru/iamc-sdmx-demo/errors"
)

// Separator delimits hierarchy levels in variable labels.
const Separator = "|"

// Code is one entry in a code list. Codes with a nil Parent are top-level.
// The same ID may appear under different parents ("Coal" under both
// "Primary Energy" and "Secondary Energy|Electricity"); the full Path is
// what identifies a code.
type Code struct {
	ID       string
	Name     string
	Parent   *Code
	Children []*Code
}

// Path returns the full pipe-delimited label for the code, from the
// top-level ancestor down.
func (c *Code) Path() string {
	if c.Parent == nil {
		return c.ID
	}
	return c.Parent.Path() + Separator + c.ID
}

// child returns the direct child with the given ID.
func (c *Code) child(id string) *Code {
	for _, ch := range c.Children {
		if ch.ID == id {
			return ch
		}
	}
	return nil
}

// Codelist is a set of codes with a derived hierarchy, keyed by full path.
// Top-level codes keep their insertion order.
type Codelist struct {
	ID     string
	byPath map[string]*Code
	byID   map[string][]*Code
	top    []*Code
}

// New returns an empty code list.
func New(id string) *Codelist {
	return &Codelist{
		ID:     id,
		byPath: make(map[string]*Code),
		byID:   make(map[string][]*Code),
	}
}

// Build constructs a code list from a variable vocabulary. Each label is
// split on the separator and walked segment by segment, so "A|B|C"
// registers A as top-level, B under A, and C under B. Segments already
// registered at the same position are reused, which means a label and its
// prefixes share codes and intermediate codes exist even when the
// vocabulary never lists them as variables of their own.
func Build(id string, variables []string) (*Codelist, error) {
	cl := New(id)

	for _, label := range variables {
		var parent *Code
		for _, seg := range strings.Split(label, Separator) {
			code, err := cl.setdefault(seg, parent)
			if err != nil {
				return nil, errors.WrapSemantic(err, "Codelist", "Build", fmt.Sprintf("register %q", label))
			}
			parent = code
		}
	}

	return cl, nil
}

// setdefault returns the existing code with the given ID under parent, or
// registers a new one there.
func (cl *Codelist) setdefault(id string, parent *Code) (*Code, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty code ID", errors.ErrUnknownCode)
	}

	path := id
	if parent != nil {
		path = parent.Path() + Separator + id
	}
	if existing, ok := cl.byPath[path]; ok {
		return existing, nil
	}

	code := &Code{ID: id, Name: id, Parent: parent}
	cl.byPath[path] = code
	cl.byID[id] = append(cl.byID[id], code)
	if parent == nil {
		cl.top = append(cl.top, code)
	} else {
		parent.Children = append(parent.Children, code)
	}
	return code, nil
}

// Lookup returns the code with the given full pipe-delimited path.
func (cl *Codelist) Lookup(path string) (*Code, bool) {
	c, ok := cl.byPath[path]
	return c, ok
}

// ByID returns every code registered with the given ID, at any level.
func (cl *Codelist) ByID(id string) []*Code {
	out := make([]*Code, len(cl.byID[id]))
	copy(out, cl.byID[id])
	return out
}

// Top returns the top-level codes in insertion order.
func (cl *Codelist) Top() []*Code {
	out := make([]*Code, len(cl.top))
	copy(out, cl.top)
	return out
}

// Len returns the total number of codes, at every level.
func (cl *Codelist) Len() int {
	return len(cl.byPath)
}

// Resolve walks a pipe-delimited label down the hierarchy and returns the
// code for its final segment. It fails with an unknown-code error when a
// segment appears nowhere in the list, or a hierarchy error when the
// segment exists but not at the position the label claims.
func (cl *Codelist) Resolve(label string) (*Code, error) {
	segments := strings.Split(label, Separator)

	code, ok := cl.byPath[segments[0]]
	if !ok {
		return nil, cl.resolveErr(segments[0], nil, label)
	}

	for _, seg := range segments[1:] {
		child := code.child(seg)
		if child == nil {
			return nil, cl.resolveErr(seg, code, label)
		}
		code = child
	}

	return code, nil
}

// resolveErr distinguishes a segment that exists elsewhere in the list from
// one that is entirely unknown.
func (cl *Codelist) resolveErr(seg string, parent *Code, label string) error {
	var err error
	switch {
	case len(cl.byID[seg]) == 0:
		err = fmt.Errorf("%w: %q in %q", errors.ErrUnknownCode, seg, label)
	case parent == nil:
		err = fmt.Errorf("%w: %q is not a top-level code in %q",
			errors.ErrHierarchyViolation, seg, label)
	default:
		err = fmt.Errorf("%w: %q is not a child of %q in %q",
			errors.ErrHierarchyViolation, seg, parent.ID, label)
	}
	return errors.WrapSemantic(err, "Codelist", "Resolve", "walk hierarchy")
}

// Paths returns the full label of every code, walking the hierarchy
// depth-first from the top-level codes.
func (cl *Codelist) Paths() []string {
	var out []string
	var walk func(c *Code)
	walk = func(c *Code) {
		out = append(out, c.Path())
		for _, ch := range c.Children {
			walk(ch)
		}
	}
	for _, c := range cl.top {
		walk(c)
	}
	return out
}
