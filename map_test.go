package njson5

import (
	"encoding/json"
	"testing"
)

func TestMapInsertionOrder(t *testing.T) {
	m := NewMap()
	m.SetKey("z", 1)
	m.SetKey("a", 2)
	m.SetKey("m", 3)

	want := []string{"z", "a", "m"}
	got := m.Keys()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected order %v, got %v", want, got)
		}
	}
}

func TestMapDuplicateKeepsPosition(t *testing.T) {
	m := NewMap()
	m.SetKey("a", 1)
	m.SetKey("b", 2)
	m.SetKey("a", 3)

	keys := m.Keys()
	if len(keys) != 2 || keys[0] != "a" {
		t.Fatalf("Expected [a b], got %v", keys)
	}
	if m.Get("a") != 3 {
		t.Errorf("Expected overwrite, got %v", m.Get("a"))
	}
}

func TestMapZeroValueUsable(t *testing.T) {
	var m Map
	m.SetKey("k", "v")
	if !m.Has("k") || m.Get("k") != "v" {
		t.Error("Zero-value Map should accept inserts")
	}
}

func TestMapHasStoredNil(t *testing.T) {
	m := NewMap()
	m.SetKey("n", nil)
	if !m.Has("n") {
		t.Error("Has should report a stored nil")
	}
	if m.Has("missing") {
		t.Error("Has should not report a missing key")
	}
}

func TestMapRangeEarlyStop(t *testing.T) {
	m := NewMap()
	m.SetKey("a", 1)
	m.SetKey("b", 2)
	m.SetKey("c", 3)

	var seen []string
	m.Range(func(key string, _ any) bool {
		seen = append(seen, key)
		return key != "b"
	})
	if len(seen) != 2 || seen[1] != "b" {
		t.Errorf("Expected range to stop at b, saw %v", seen)
	}
}

func TestMapKeysIsCopy(t *testing.T) {
	m := NewMap()
	m.SetKey("a", 1)
	keys := m.Keys()
	keys[0] = "mutated"
	if m.Keys()[0] != "a" {
		t.Error("Keys must return a copy")
	}
}

func TestMapMarshalJSONOrdered(t *testing.T) {
	m, err := Parse(`{b:2, a:1, c:[true, null]}`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	want := `{"b":2,"a":1,"c":[true,null]}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}
}

func TestListAccessors(t *testing.T) {
	l := NewList()
	l.Append(1)
	l.Append("two")

	if l.Len() != 2 {
		t.Fatalf("Expected 2, got %d", l.Len())
	}
	if l.At(0) != 1 || l.At(1) != "two" {
		t.Errorf("Unexpected elements: %v", l.Values())
	}
	if l.At(-1) != nil || l.At(2) != nil {
		t.Error("Out-of-range At should be nil")
	}

	values := l.Values()
	values[0] = "mutated"
	if l.At(0) != 1 {
		t.Error("Values must return a copy")
	}
}
