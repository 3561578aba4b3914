package symbols

import "testing"

func TestGlobalScopeDuplicateDefine(t *testing.T) {
	g := NewGlobalScope()
	c := NewClassSymbol("a", "Foo", g)
	if err := g.Define(c); err != nil {
		t.Fatalf("first Define: %v", err)
	}
	if err := g.Define(NewClassSymbol("a", "Foo", g)); err == nil {
		t.Fatal("expected duplicate define error")
	}
}

func TestClassFieldInheritance(t *testing.T) {
	g := NewGlobalScope()
	base := NewClassSymbol("a", "Base", g)
	base.DefineField(NewVariableSymbol("x", BuiltinType{Kind: Int}, false))
	sub := NewClassSymbol("a", "Sub", g)
	sub.Parent = base

	sym, ok := sub.Resolve("x")
	if !ok {
		t.Fatal("expected to resolve inherited field x")
	}
	if sym.Name() != "x" {
		t.Errorf("got %q", sym.Name())
	}
}

func TestMethodScopeResolvesParamsLocalsThenClass(t *testing.T) {
	g := NewGlobalScope()
	class := NewClassSymbol("a", "Foo", g)
	class.DefineField(NewVariableSymbol("field", BuiltinType{Kind: Text}, false))

	method := NewMethodSymbol("run", BuiltinType{Kind: Void}, class)
	method.DefineParam(NewVariableSymbol("p", BuiltinType{Kind: Int}, true))
	method.Define(NewVariableSymbol("local", BuiltinType{Kind: Bool}, false))

	for _, name := range []string{"p", "local", "field"} {
		if _, ok := method.Resolve(name); !ok {
			t.Errorf("expected to resolve %q", name)
		}
	}
	if _, ok := method.ResolveLocal("field"); ok {
		t.Error("ResolveLocal should not see class fields")
	}
}

func TestLocalScopeShadowing(t *testing.T) {
	g := NewGlobalScope()
	outer := NewLocalScope(g)
	outer.Define(NewVariableSymbol("x", BuiltinType{Kind: Int}, false))
	inner := NewLocalScope(outer)
	inner.Define(NewVariableSymbol("x", BuiltinType{Kind: Text}, false))

	sym, _ := inner.Resolve("x")
	v := sym.(*VariableSymbol)
	if v.Type().Name() != "Text" {
		t.Errorf("inner scope shadow failed, got %v", v.Type().Name())
	}

	sym, _ = outer.Resolve("x")
	v = sym.(*VariableSymbol)
	if v.Type().Name() != "Int" {
		t.Errorf("outer scope unaffected, got %v", v.Type().Name())
	}
}

func TestBuiltinAssignability(t *testing.T) {
	intT := BuiltinType{Kind: Int}
	floatT := BuiltinType{Kind: Float}
	if intT.IsAssignableFrom(floatT) {
		t.Error("Int should not accept Float without conversion")
	}
	if !intT.IsAssignableFrom(BuiltinType{Kind: ErrorType}) {
		t.Error("error type should be assignable to anything")
	}
}

func TestNullAssignableToReferenceTypes(t *testing.T) {
	g := NewGlobalScope()
	class := NewClassSymbol("a", "Foo", g)
	classType := ClassType{Class: class}
	nullType := BuiltinType{Kind: Null}
	if !classType.IsAssignableFrom(nullType) {
		t.Error("null should be assignable to a class type")
	}

	arrType := ArrayType{Elem: BuiltinType{Kind: Int}}
	if !arrType.IsAssignableFrom(nullType) {
		t.Error("null should be assignable to an array type")
	}
}

func TestClassImplementsInterfaceTransitively(t *testing.T) {
	g := NewGlobalScope()
	parentIface := NewInterfaceSymbol("a", "Parent", g)
	childIface := NewInterfaceSymbol("a", "Child", g)
	childIface.Parents = []*InterfaceSymbol{parentIface}

	class := NewClassSymbol("a", "Impl", g)
	class.Interfaces = []*InterfaceSymbol{childIface}

	parentType := InterfaceType{Interface: parentIface}
	if !parentType.IsAssignableFrom(ClassType{Class: class}) {
		t.Error("class implementing Child should satisfy Parent transitively")
	}
}
