package symbols

// Type is the closed set of type variants a Veny expression can carry:
// a builtin, a class, an interface, an array or a callable signature.
type Type interface {
	Name() string
	// IsAssignableFrom reports whether a value of type other can be
	// assigned to a location of this type.
	IsAssignableFrom(other Type) bool
}

// BuiltinKind enumerates the primitive and sentinel types that do not
// correspond to a user-declared class or interface.
type BuiltinKind int

const (
	Int BuiltinKind = iota
	Float
	Bool
	Text
	Void
	Null
	// ErrorType marks an expression whose type could not be computed
	// because an earlier error was already reported. It is assignable
	// to and from everything so a single mistake does not cascade into
	// a wall of unrelated diagnostics.
	ErrorType
	// Unknown marks a deliberately untyped location, such as a
	// for-loop variable, whose type the analyzer does not attempt to
	// infer. Every builtin type accepts a value of type Unknown.
	Unknown
)

func (k BuiltinKind) String() string {
	switch k {
	case Int:
		return "Int"
	case Float:
		return "Float"
	case Bool:
		return "Bool"
	case Text:
		return "Text"
	case Void:
		return "Void"
	case Null:
		return "Null"
	case ErrorType:
		return "<error>"
	case Unknown:
		return "<unknown>"
	default:
		return "<invalid>"
	}
}

// BuiltinType is a primitive or sentinel type.
type BuiltinType struct{ Kind BuiltinKind }

func (t BuiltinType) Name() string { return t.Kind.String() }

func (t BuiltinType) IsAssignableFrom(other Type) bool {
	if t.Kind == ErrorType {
		return true
	}
	if ob, ok := other.(BuiltinType); ok {
		if ob.Kind == ErrorType || ob.Kind == Unknown {
			return true
		}
		return t.Kind == ob.Kind
	}
	return false
}

// ClassType wraps a user-declared class.
type ClassType struct{ Class *ClassSymbol }

func (t ClassType) Name() string { return t.Class.FQCN() }

func (t ClassType) IsAssignableFrom(other Type) bool {
	if isNull(other) {
		return true
	}
	oc, ok := other.(ClassType)
	if !ok {
		return false
	}
	for c := oc.Class; c != nil; c = c.Parent {
		if c == t.Class {
			return true
		}
	}
	return false
}

// InterfaceType wraps a user-declared interface.
type InterfaceType struct{ Interface *InterfaceSymbol }

func (t InterfaceType) Name() string { return t.Interface.FQCN() }

func (t InterfaceType) IsAssignableFrom(other Type) bool {
	if isNull(other) {
		return true
	}
	switch o := other.(type) {
	case ClassType:
		return classImplements(o.Class, t.Interface)
	case InterfaceType:
		return interfaceExtends(o.Interface, t.Interface)
	}
	return false
}

func classImplements(c *ClassSymbol, iface *InterfaceSymbol) bool {
	for cur := c; cur != nil; cur = cur.Parent {
		for _, i := range cur.Interfaces {
			if i == iface || interfaceExtends(i, iface) {
				return true
			}
		}
	}
	return false
}

func interfaceExtends(i, target *InterfaceSymbol) bool {
	if i == target {
		return true
	}
	for _, p := range i.Parents {
		if interfaceExtends(p, target) {
			return true
		}
	}
	return false
}

// ArrayType is a homogeneous array of Elem.
type ArrayType struct{ Elem Type }

func (t ArrayType) Name() string { return "[" + t.Elem.Name() + "]" }

func (t ArrayType) IsAssignableFrom(other Type) bool {
	if isNull(other) {
		return true
	}
	oa, ok := other.(ArrayType)
	if !ok {
		return false
	}
	return t.Elem.Name() == oa.Elem.Name()
}

// CallableType is the signature of a method value.
type CallableType struct {
	Params []Type
	Return Type
}

func (t CallableType) Name() string {
	s := "("
	for i, p := range t.Params {
		if i > 0 {
			s += ", "
		}
		s += p.Name()
	}
	return s + ") -> " + t.Return.Name()
}

func (t CallableType) IsAssignableFrom(other Type) bool {
	oc, ok := other.(CallableType)
	if !ok || len(oc.Params) != len(t.Params) {
		return false
	}
	for i := range t.Params {
		if t.Params[i].Name() != oc.Params[i].Name() {
			return false
		}
	}
	return t.Return.Name() == oc.Return.Name()
}

func isNull(t Type) bool {
	b, ok := t.(BuiltinType)
	return ok && b.Kind == Null
}
