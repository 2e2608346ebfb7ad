package decl

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by lookups for an unknown class or method.
var ErrNotFound = errors.New("decl: not found")

// Kind classifies a method.
type Kind string

const (
	Constructor Kind = "constructor"
	Static      Kind = "static"
	Instance    Kind = "instance"
	Getter      Kind = "getter"
	Setter      Kind = "setter"
	Operator    Kind = "operator"
	InPlace     Kind = "inplace"
)

// Host type names used in Param.Type, Method.Returns and Method.Operands.
const (
	TypeFloat  = "float"
	TypeInt    = "int"
	TypeDVec3  = "DVec3"
	TypeVec3   = "Vec3"
	TypeDQuat  = "DQuat"
	TypeQuat   = "Quat"
	TypeString = "str"
	TypeNone   = "None"
	TypeTuple3 = "tuple[float, float, float]"
)

// Error names used in Method.Raises.
const (
	RaisesUnsupportedOperand = "UnsupportedOperand"
	RaisesInvalidArgument    = "InvalidArgument"
)

// Module is the top-level declaration unit.
type Module struct {
	Name      string   `yaml:"name"`
	Doc       string   `yaml:"doc,omitempty"`
	Classes   []Class  `yaml:"classes"`
	Functions []Method `yaml:"functions,omitempty"`
}

// Class declares one exported type.
type Class struct {
	Name      string   `yaml:"name"`
	Doc       string   `yaml:"doc,omitempty"`
	Precision int      `yaml:"precision"`
	Methods   []Method `yaml:"methods"`
}

// Method declares a constructor, accessor, operator or plain method.
// Symbol is the host operator spelling for Operator and InPlace kinds.
type Method struct {
	Name     string   `yaml:"name"`
	Kind     Kind     `yaml:"kind"`
	Symbol   string   `yaml:"symbol,omitempty"`
	Doc      string   `yaml:"doc,omitempty"`
	Params   []Param  `yaml:"params,omitempty"`
	Returns  string   `yaml:"returns"`
	Raises   []string `yaml:"raises,omitempty"`
	Operands []string `yaml:"operands,omitempty"`
}

// Param declares one method parameter. Default is the host literal used
// when an optional parameter is omitted.
type Param struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Optional bool   `yaml:"optional,omitempty"`
	Default  string `yaml:"default,omitempty"`
}

// Class returns the class declaration named name.
func (m Module) Class(name string) (Class, error) {
	for _, c := range m.Classes {
		if c.Name == name {
			return c, nil
		}
	}
	return Class{}, fmt.Errorf("%w: class %s in module %s", ErrNotFound, name, m.Name)
}

// Function returns the free function declaration named name.
func (m Module) Function(name string) (Method, error) {
	for _, f := range m.Functions {
		if f.Name == name {
			return f, nil
		}
	}
	return Method{}, fmt.Errorf("%w: function %s in module %s", ErrNotFound, name, m.Name)
}

// Method returns the method declaration named name.
func (c Class) Method(name string) (Method, error) {
	for _, meth := range c.Methods {
		if meth.Name == name {
			return meth, nil
		}
	}
	return Method{}, fmt.Errorf("%w: method %s.%s", ErrNotFound, c.Name, name)
}

// Accepts reports whether typ is in the method's operand set.
func (meth Method) Accepts(typ string) bool {
	for _, o := range meth.Operands {
		if o == typ {
			return true
		}
	}
	return false
}

// Union joins host type names into a union annotation.
func Union(types ...string) string {
	return strings.Join(types, " | ")
}
