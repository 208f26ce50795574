package store

import (
	"math"
	"testing"
)

func TestShallowEqual_Primitives(t *testing.T) {
	cases := []struct {
		name string
		a, b any
		want bool
	}{
		{"equal strings", "x", "x", true},
		{"different strings", "x", "y", false},
		{"equal ints", 3, 3, true},
		{"int vs int64", 3, int64(3), false},
		{"nan never equals itself", math.NaN(), math.NaN(), false},
		{"both nil", nil, nil, true},
		{"nil vs value", nil, 1, false},
	}
	for _, tc := range cases {
		if got := shallowEqual(tc.a, tc.b); got != tc.want {
			t.Errorf("%s: shallowEqual(%v, %v) = %v, want %v", tc.name, tc.a, tc.b, got, tc.want)
		}
	}
}

func TestShallowEqual_Slices(t *testing.T) {
	base := []string{"a", "b"}

	if !shallowEqual(base, base) {
		t.Error("slice should equal itself")
	}
	if !shallowEqual([]string{"a", "b"}, []string{"a", "b"}) {
		t.Error("fresh slices with equal comparable elements should be equal")
	}
	if shallowEqual([]string{"a"}, []string{"a", "b"}) {
		t.Error("slices of different length should differ")
	}
	if shallowEqual([]string{"a"}, []string{"b"}) {
		t.Error("slices with different elements should differ")
	}
	if shallowEqual([]string(nil), []string{}) {
		t.Error("nil and empty slice should differ")
	}

	// nested composites compare by identity, not contents
	inner := []string{"x"}
	if !shallowEqual([][]string{inner}, [][]string{inner}) {
		t.Error("shared nested slice should be identical")
	}
	if shallowEqual([][]string{{"x"}}, [][]string{{"x"}}) {
		t.Error("freshly built nested slices should differ even with equal contents")
	}
}

func TestShallowEqual_Maps(t *testing.T) {
	if !shallowEqual(map[string]int{"a": 1}, map[string]int{"a": 1}) {
		t.Error("maps with equal comparable values should be equal")
	}
	if shallowEqual(map[string]int{"a": 1}, map[string]int{"a": 2}) {
		t.Error("maps with different values should differ")
	}
	// key-count mismatch short-circuits
	if shallowEqual(map[string]int{"a": 1}, map[string]int{"a": 1, "b": 2}) {
		t.Error("maps with different key counts should differ")
	}
	if shallowEqual(map[string]int{"a": 1}, map[string]int{"b": 1}) {
		t.Error("maps with different keys should differ")
	}
}

func TestShallowEqual_Structs(t *testing.T) {
	type flat struct {
		Name  string
		Count int
	}
	if !shallowEqual(flat{"a", 1}, flat{"a", 1}) {
		t.Error("flat structs with equal fields should be equal")
	}
	if shallowEqual(flat{"a", 1}, flat{"a", 2}) {
		t.Error("flat structs with different fields should differ")
	}

	type holder struct {
		Items []string
	}
	shared := []string{"x"}
	if !shallowEqual(holder{Items: shared}, holder{Items: shared}) {
		t.Error("structs sharing a slice field should be equal")
	}
	if shallowEqual(holder{Items: []string{"x"}}, holder{Items: []string{"x"}}) {
		t.Error("structs with freshly built slice fields should differ")
	}
}

func TestShallowEqual_Pointers(t *testing.T) {
	type node struct{ V int }
	a := &node{V: 1}
	b := &node{V: 1}
	if !shallowEqual(a, a) {
		t.Error("pointer should equal itself")
	}
	if shallowEqual(a, b) {
		t.Error("distinct pointers should differ regardless of contents")
	}
}
