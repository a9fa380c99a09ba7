//go:generate go run ./internal/cmd/gentable -o html5_gen.go

// Package entity holds the named character reference tables and the
// prefix tree used to match them one byte at a time.
package entity

import (
	"github.com/pkg/errors"
)

var (
	ErrDuplicateEntry = errors.New("duplicate entity name")
	ErrEmptyName      = errors.New("entity name is empty")
	ErrEmptyValue     = errors.New("entity value is empty")
	ErrInvalidName    = errors.New("invalid entity name")
)

// Definition maps an entity name to its replacement text. The name is
// everything between '&' and the end of the reference, so "amp" and
// "amp;" are two different definitions.
type Definition struct {
	Name  string
	Value string
}

// HTML5Definitions returns a copy of the WHATWG named character reference
// table, including the legacy names that are recognized without a
// trailing semicolon.
func HTML5Definitions() []Definition {
	defs := make([]Definition, len(html5Definitions))
	copy(defs, html5Definitions)
	return defs
}

// XMLDefinitions returns the five entities predefined by XML 1.0.
func XMLDefinitions() []Definition {
	return []Definition{
		{Name: "lt;", Value: "<"},
		{Name: "gt;", Value: ">"},
		{Name: "amp;", Value: "&"},
		{Name: "apos;", Value: "'"},
		{Name: "quot;", Value: `"`},
	}
}

// IsFirstNameChar reports whether c may start an entity name.
func IsFirstNameChar(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// IsNameChar reports whether c may appear after the first character of an
// entity name. The semicolon is allowed so that the terminated and the
// legacy form of a name can both live in one table.
func IsNameChar(c byte) bool {
	return IsFirstNameChar(c) || (c >= '0' && c <= '9') || c == ';'
}

func validate(def Definition) error {
	if def.Name == "" {
		return ErrEmptyName
	}
	if def.Value == "" {
		return errors.Wrapf(ErrEmptyValue, "%q", def.Name)
	}
	if !IsFirstNameChar(def.Name[0]) {
		return errors.Wrapf(ErrInvalidName, "%q must start with an ASCII letter", def.Name)
	}
	for i := 1; i < len(def.Name); i++ {
		if !IsNameChar(def.Name[i]) {
			return errors.Wrapf(ErrInvalidName, "%q contains %q", def.Name, def.Name[i])
		}
	}
	return nil
}
