package types

import "testing"

func TestOptionsGet(t *testing.T) {
	opts := Options{{Key: "size", Value: "L"}, {Key: "color", Value: "red"}}

	if v, ok := opts.Get("color"); !ok || v != "red" {
		t.Errorf("Get(color) = %q, %v", v, ok)
	}
	if _, ok := opts.Get("missing"); ok {
		t.Error("Get(missing) reported present")
	}
}

func TestOptionsCanonical(t *testing.T) {
	a := Options{{Key: "size", Value: "L"}, {Key: "color", Value: "red"}}
	b := Options{{Key: "color", Value: "red"}, {Key: "size", Value: "L"}}

	if a.canonical() != b.canonical() {
		t.Errorf("canonical not order-independent: %q vs %q", a.canonical(), b.canonical())
	}
	if want := "color=red;size=L"; a.canonical() != want {
		t.Errorf("canonical = %q, want %q", a.canonical(), want)
	}
	if (Options)(nil).canonical() != "" {
		t.Error("canonical of nil options not empty")
	}
}

func TestOptionsSortedPreservesOriginal(t *testing.T) {
	opts := Options{{Key: "size", Value: "L"}, {Key: "color", Value: "red"}}
	sorted := opts.Sorted()

	if sorted[0].Key != "color" {
		t.Errorf("Sorted()[0].Key = %q, want color", sorted[0].Key)
	}
	// Display order of the original bag must survive.
	if opts[0].Key != "size" {
		t.Errorf("original order mutated: %+v", opts)
	}
}
