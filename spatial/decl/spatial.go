package decl

const moduleDoc = "Double- and single-precision 3D vectors and quaternions."

var (
	scalarOperands = []string{TypeFloat, TypeInt}
	vectorOperands = []string{TypeDVec3, TypeVec3}
	quatOperands   = []string{TypeDQuat, TypeQuat}
)

// Spatial returns the declaration metadata for package spatial.
func Spatial() Module {
	return Module{
		Name: "spatial",
		Doc:  moduleDoc,
		Classes: []Class{
			vectorClass(TypeDVec3, 64),
			vectorClass(TypeVec3, 32),
			quatClass(TypeDQuat, TypeDVec3, 64),
			quatClass(TypeQuat, TypeVec3, 32),
		},
		Functions: []Method{
			{Name: "RandUnitDVec3", Kind: Static, Returns: TypeDVec3, Doc: "Random unit vector from per-axis uniform samples."},
			{Name: "RandUnitVec3", Kind: Static, Returns: TypeVec3, Doc: "Random unit vector from per-axis uniform samples."},
		},
	}
}

func vectorClass(name string, precision int) Class {
	arith := append(append([]string(nil), scalarOperands...), vectorOperands...)

	methods := []Method{
		{
			Name: "Make" + name,
			Kind: Constructor,
			Doc:  "Builds a vector from x, y, z; passing only x broadcasts it to all axes.",
			Params: []Param{
				{Name: "x", Type: TypeFloat},
				{Name: "y", Type: Union(TypeFloat, TypeNone), Optional: true, Default: TypeNone},
				{Name: "z", Type: Union(TypeFloat, TypeNone), Optional: true, Default: TypeNone},
			},
			Returns: name,
			Raises:  []string{RaisesInvalidArgument},
		},
		{Name: "Tuple", Kind: Instance, Returns: TypeTuple3},
		{Name: "String", Kind: Instance, Symbol: "repr", Returns: TypeString},
		{Name: "Neg", Kind: Operator, Symbol: "-", Returns: name},
		{Name: "Length", Kind: Instance, Returns: TypeFloat},
		{Name: "Normalize", Kind: Instance, Returns: name},
		{Name: "Dot", Kind: Instance, Returns: TypeFloat, Params: rhs(vectorOperands), Raises: unsupported(), Operands: vectorOperands},
		{Name: "Cross", Kind: Instance, Returns: name, Params: rhs(vectorOperands), Raises: unsupported(), Operands: vectorOperands},
	}
	methods = append(methods, accessors("x", "y", "z")...)

	for _, op := range []struct{ name, symbol string }{
		{"Add", "+"}, {"Sub", "-"}, {"Mul", "*"}, {"Div", "/"},
	} {
		methods = append(methods,
			Method{Name: op.name, Kind: Operator, Symbol: op.symbol, Params: rhs(arith), Returns: name, Raises: unsupported(), Operands: arith},
			Method{Name: "R" + op.name, Kind: Operator, Symbol: op.symbol, Params: lhs(arith), Returns: name, Raises: unsupported(), Operands: arith},
			Method{Name: op.name + "InPlace", Kind: InPlace, Symbol: op.symbol + "=", Params: rhs(arith), Returns: TypeNone, Raises: unsupported(), Operands: arith},
		)
	}

	return Class{Name: name, Doc: vectorDoc(precision), Precision: precision, Methods: methods}
}

func quatClass(name, vec string, precision int) Class {
	operands := append(append([]string(nil), quatOperands...), vectorOperands...)

	methods := []Method{
		{
			Name: "New" + name,
			Kind: Constructor,
			Params: []Param{
				{Name: "x", Type: TypeFloat},
				{Name: "y", Type: TypeFloat},
				{Name: "z", Type: TypeFloat},
				{Name: "w", Type: TypeFloat},
			},
			Returns: name,
		},
		{Name: name + "Identity", Kind: Static, Returns: name},
		{
			Name:    name + "FromAxisAngle",
			Kind:    Static,
			Doc:     "Rotation of angle radians about a unit axis.",
			Params:  []Param{{Name: "axis", Type: vec}, {Name: "angle", Type: TypeFloat}},
			Returns: name,
		},
		{
			Name:    name + "FromRotationArc",
			Kind:    Static,
			Doc:     "Shortest rotation taking unit vector from onto unit vector to.",
			Params:  []Param{{Name: "from", Type: vec}, {Name: "to", Type: vec}},
			Returns: name,
		},
		{Name: "String", Kind: Instance, Symbol: "repr", Returns: TypeString},
		{
			Name:     "Mul",
			Kind:     Operator,
			Symbol:   "*",
			Doc:      "Quaternion operands compose (q * rhs); vector operands are rotated.",
			Params:   rhs(operands),
			Returns:  Union(name, vec),
			Raises:   unsupported(),
			Operands: operands,
		},
		{
			Name:     "RMul",
			Kind:     Operator,
			Symbol:   "*",
			Doc:      "Quaternion operands compose (lhs * q); vector operands are rotated as in Mul.",
			Params:   lhs(operands),
			Returns:  Union(name, vec),
			Raises:   unsupported(),
			Operands: operands,
		},
		{Name: "MulQuat", Kind: Instance, Params: []Param{{Name: "o", Type: name}}, Returns: name},
		{Name: "Mul" + vec, Kind: Instance, Params: []Param{{Name: "v", Type: vec}}, Returns: vec},
		{Name: "Length", Kind: Instance, Returns: TypeFloat},
		{Name: "Normalize", Kind: Instance, Returns: name},
		{Name: "Conjugate", Kind: Instance, Returns: name},
		{Name: "ToAxisAngle", Kind: Instance, Returns: "tuple[" + vec + ", float]"},
	}
	methods = append(methods, accessors("x", "y", "z", "w")...)

	return Class{Name: name, Doc: quatDoc(precision), Precision: precision, Methods: methods}
}

func accessors(fields ...string) []Method {
	out := make([]Method, 0, 2*len(fields))
	for _, f := range fields {
		upper := string(f[0] - 'a' + 'A')
		out = append(out,
			Method{Name: upper, Kind: Getter, Returns: TypeFloat},
			Method{Name: "Set" + upper, Kind: Setter, Params: []Param{{Name: f, Type: TypeFloat}}, Returns: TypeNone},
		)
	}
	return out
}

func rhs(operands []string) []Param { return []Param{{Name: "rhs", Type: Union(operands...)}} }
func lhs(operands []string) []Param { return []Param{{Name: "lhs", Type: Union(operands...)}} }

func unsupported() []string { return []string{RaisesUnsupportedOperand} }

func vectorDoc(precision int) string {
	if precision == 64 {
		return "3D vector with float64 components."
	}
	return "3D vector with float32 components."
}

func quatDoc(precision int) string {
	if precision == 64 {
		return "Rotation quaternion with float64 components stored as x, y, z, w."
	}
	return "Rotation quaternion with float32 components stored as x, y, z, w."
}
