// Package decl describes the exported surface of package spatial in a
// host-neutral form: classes, their methods, parameter types, optional
// parameters, raised errors and the operand set each operator accepts.
//
// Declaration generators for other languages consume the metadata either
// directly through [Spatial] or as YAML produced by [WriteYAML].
package decl
