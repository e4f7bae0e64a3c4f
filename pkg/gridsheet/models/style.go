package models

import (
	"errors"
	"fmt"
)

// ErrUnknownStyle indicates a reference to a style that was never defined.
var ErrUnknownStyle = errors.New("unknown style")

// ErrDuplicateStyle indicates a style name defined twice.
var ErrDuplicateStyle = errors.New("duplicate style")

// Style is a named collection of style properties. It can extend a style
// defined earlier, inheriting the properties it does not override.
type Style struct {
	// Name identifies the style; cells reference it by name.
	Name string `json:"name"`
	// Properties maps property keys (e.g. "bold") to values.
	Properties map[string]interface{} `json:"properties,omitempty"`
	// Extends is the name of the parent style (optional).
	Extends string `json:"extends,omitempty"`
}

// Stylesheet holds named styles in definition order.
type Stylesheet struct {
	styles map[string]*Style
	order  []string
}

// NewStylesheet creates an empty stylesheet.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{styles: make(map[string]*Style)}
}

// Add registers s. Its parent, if any, must already be registered.
func (ss *Stylesheet) Add(s *Style) error {
	if _, ok := ss.styles[s.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateStyle, s.Name)
	}
	if s.Extends != "" {
		if _, ok := ss.styles[s.Extends]; !ok {
			return fmt.Errorf("style %q extends %q: %w", s.Name, s.Extends, ErrUnknownStyle)
		}
	}
	ss.styles[s.Name] = s
	ss.order = append(ss.order, s.Name)
	return nil
}

// Lookup returns the style registered under name.
func (ss *Stylesheet) Lookup(name string) (*Style, bool) {
	s, ok := ss.styles[name]
	return s, ok
}

// Names returns the style names in definition order.
func (ss *Stylesheet) Names() []string {
	return append([]string(nil), ss.order...)
}

// Resolve returns the effective properties of the named style. Properties
// of a style override those inherited from its ancestors.
func (ss *Stylesheet) Resolve(name string) (map[string]interface{}, error) {
	var chain []*Style
	for n := name; n != ""; {
		s, ok := ss.styles[n]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, n)
		}
		chain = append(chain, s)
		n = s.Extends
	}

	props := make(map[string]interface{})
	for i := len(chain) - 1; i >= 0; i-- {
		for k, v := range chain[i].Properties {
			props[k] = v
		}
	}
	return props, nil
}
