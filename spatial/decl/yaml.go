package decl

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidKind is returned by ReadYAML for a method with an unknown kind.
var ErrInvalidKind = errors.New("decl: invalid method kind")

var kinds = map[Kind]bool{
	Constructor: true,
	Static:      true,
	Instance:    true,
	Getter:      true,
	Setter:      true,
	Operator:    true,
	InPlace:     true,
}

// WriteYAML encodes m to w.
func WriteYAML(w io.Writer, m Module) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("decl: encode %s: %w", m.Name, err)
	}
	return enc.Close()
}

// ReadYAML decodes a module written by WriteYAML. Unknown fields and
// method kinds are rejected.
func ReadYAML(r io.Reader) (Module, error) {
	var m Module
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return Module{}, fmt.Errorf("decl: decode: %w", err)
	}

	check := func(owner string, meth Method) error {
		if !kinds[meth.Kind] {
			return fmt.Errorf("%w: %s.%s has kind %q", ErrInvalidKind, owner, meth.Name, meth.Kind)
		}
		return nil
	}
	for _, c := range m.Classes {
		for _, meth := range c.Methods {
			if err := check(c.Name, meth); err != nil {
				return Module{}, err
			}
		}
	}
	for _, f := range m.Functions {
		if err := check(m.Name, f); err != nil {
			return Module{}, err
		}
	}

	return m, nil
}
