package jsvalidate

import "testing"

func TestOM_PreservesInsertionOrder(t *testing.T) {
	om := NewOM()
	om.Set("z", 1)
	om.Set("a", 2)
	om.Set("z", 3) // overwrite, should not move
	keys := omKeys(om)
	if len(keys) != 2 || keys[0] != "z" || keys[1] != "a" {
		t.Fatalf("expected insertion order [z a], got %v", keys)
	}
	v, ok := om.Get("z")
	if !ok || v != 3 {
		t.Fatalf("expected overwritten value 3, got %v", v)
	}
}

func TestJsonEqual_ObjectOrderIrrelevant(t *testing.T) {
	a := NewOM()
	a.Set("x", 1.0)
	a.Set("y", 2.0)
	b := NewOM()
	b.Set("y", 2.0)
	b.Set("x", 1.0)
	if !jsonEqual(a, b) {
		t.Fatalf("expected objects with same members in different order to be equal")
	}
}

func TestJsonEqual_ArrayOrderMatters(t *testing.T) {
	if jsonEqual([]any{1.0, 2.0}, []any{2.0, 1.0}) {
		t.Fatalf("array element order should matter")
	}
}

func TestJsonEqual_NumericCrossType(t *testing.T) {
	if !jsonEqual(float64(1), 1) {
		t.Fatalf("expected 1.0 to equal int 1 under JSON structural equality")
	}
}
