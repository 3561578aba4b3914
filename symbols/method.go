package symbols

// MethodSymbol is both a Symbol, resolved by name from its owning
// class or interface, and a Scope: it keeps parameters and locals in
// separate member sets but resolves through both before delegating to
// its enclosing class scope.
type MethodSymbol struct {
	baseSymbol
	Visibility Visibility
	Params     orderedMembers
	Locals     orderedMembers
	ParamTypes []Type
	ReturnType Type
	IsEntry    bool
	enclosing  Scope
}

// NewMethodSymbol returns a method symbol of signature (params) -> ret,
// nested inside the scope of its declaring class or interface.
func NewMethodSymbol(name string, ret Type, enclosing Scope) *MethodSymbol {
	m := &MethodSymbol{
		Params:    newOrderedMembers(),
		Locals:    newOrderedMembers(),
		enclosing: enclosing,
	}
	m.name = name
	m.ReturnType = ret
	return m
}

func (m *MethodSymbol) Type() Type {
	return CallableType{Params: m.ParamTypes, Return: m.ReturnType}
}

// DefineParam adds a parameter to the method's signature.
func (m *MethodSymbol) DefineParam(v *VariableSymbol) error {
	v.IsParameter = true
	v.IsImmutable = true
	if err := m.Params.define(v); err != nil {
		return err
	}
	m.ParamTypes = append(m.ParamTypes, v.Type())
	return nil
}

// Define adds a local variable to the method body's outermost scope.
func (m *MethodSymbol) Define(sym Symbol) error {
	v, ok := sym.(*VariableSymbol)
	if !ok {
		return m.Locals.define(sym)
	}
	return m.Locals.define(v)
}

func (m *MethodSymbol) Resolve(name string) (Symbol, bool) {
	if s, ok := m.ResolveLocal(name); ok {
		return s, true
	}
	if m.enclosing != nil {
		return m.enclosing.Resolve(name)
	}
	return nil, false
}

func (m *MethodSymbol) ResolveLocal(name string) (Symbol, bool) {
	if s, ok := m.Locals.get(name); ok {
		return s, true
	}
	return m.Params.get(name)
}

func (m *MethodSymbol) Enclosing() Scope  { return m.enclosing }
func (m *MethodSymbol) ScopeName() string { return m.name }
func (m *MethodSymbol) Symbols() []Symbol {
	out := m.Params.symbols()
	return append(out, m.Locals.symbols()...)
}
