package configtree

import (
	"errors"
	"reflect"
	"testing"
)

// sampleTree возвращает дерево, похожее на конфигурацию сайта
func sampleTree() Tree {
	return Tree{
		"theme": map[string]any{
			"primaryColor":   "#3b82f6",
			"secondaryColor": "#1f2937",
		},
		"pages": []any{
			map[string]any{
				"id":    "home",
				"title": "Home",
				"sections": map[string]any{
					"hero": map[string]any{"enabled": true, "title": "Welcome"},
				},
			},
		},
		"products": []any{
			map[string]any{"id": "p1", "price": 10.0},
			map[string]any{"id": "p2", "price": 20.0},
		},
	}
}

func TestApply_ReplacesValue(t *testing.T) {
	tests := []struct {
		name  string
		path  Path
		value any
	}{
		{"top-level field", P(Field("theme")), map[string]any{"primaryColor": "#000"}},
		{"nested field", P(Field("theme"), Field("primaryColor")), "#ff0000"},
		{"sequence element", P(Field("products"), Index(1)), map[string]any{"id": "p2", "price": 25.0}},
		{"field inside sequence element", P(Field("products"), Index(0), Field("price")), 12.5},
		{"deep section toggle", P(Field("pages"), Index(0), Field("sections"), Field("hero"), Field("enabled")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := sampleTree()
			next, err := Apply(tree, tt.path, tt.value)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}

			got, err := Get(next, tt.path)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.value) {
				t.Errorf("Get() = %v, want %v", got, tt.value)
			}
		})
	}
}

func TestApply_DoesNotMutateOriginal(t *testing.T) {
	tree := sampleTree()
	original := Clone(tree)

	_, err := Apply(tree, P(Field("pages"), Index(0), Field("sections"), Field("hero"), Field("title")), "Changed")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if !reflect.DeepEqual(tree, original) {
		t.Error("Apply() mutated the original tree")
	}
}

func TestApply_DisjointPathsUnchanged(t *testing.T) {
	tree := sampleTree()
	next, err := Apply(tree, P(Field("theme"), Field("primaryColor")), "#fff")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	before, _ := Get(tree, P(Field("products"), Index(1), Field("price")))
	after, _ := Get(next, P(Field("products"), Index(1), Field("price")))
	if !reflect.DeepEqual(before, after) {
		t.Errorf("disjoint path changed: before %v, after %v", before, after)
	}
}

func TestApply_InvalidPath(t *testing.T) {
	tests := []struct {
		name string
		path Path
	}{
		{"empty path", P()},
		{"missing field", P(Field("missing"), Field("x"))},
		{"missing container before terminal", P(Field("theme"), Field("colors"), Field("accent"))},
		{"index on mapping", P(Field("theme"), Index(0))},
		{"field on sequence", P(Field("products"), Field("first"))},
		{"index out of range", P(Field("products"), Index(5))},
		{"negative index", P(Field("products"), Index(-1))},
		{"descend into scalar", P(Field("theme"), Field("primaryColor"), Field("r"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := sampleTree()
			original := Clone(tree)

			_, err := Apply(tree, tt.path, "value")
			if !errors.Is(err, ErrInvalidPath) {
				t.Errorf("Apply() error = %v, want ErrInvalidPath", err)
			}

			// Неудачное обновление не трогает дерево
			if !reflect.DeepEqual(tree, original) {
				t.Error("failed Apply() mutated the original tree")
			}
		})
	}
}

func TestApply_ValueIsCopied(t *testing.T) {
	tree := sampleTree()
	value := map[string]any{"primaryColor": "#123456"}

	next, err := Apply(tree, P(Field("theme")), value)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	value["primaryColor"] = "#654321"

	got, _ := Get(next, P(Field("theme"), Field("primaryColor")))
	if got != "#123456" {
		t.Errorf("tree observed caller mutation: got %v", got)
	}
}

func TestGet_Invalid(t *testing.T) {
	tree := sampleTree()
	if _, err := Get(tree, P(Field("nope"))); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("Get() error = %v, want ErrInvalidPath", err)
	}
	if _, err := Get(tree, P()); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("Get() empty path error = %v, want ErrInvalidPath", err)
	}
}

func TestClone_Deep(t *testing.T) {
	tree := sampleTree()
	copied := Clone(tree)

	copied["theme"].(map[string]any)["primaryColor"] = "#000000"
	copied["products"].([]any)[0].(map[string]any)["price"] = 99.0

	if tree["theme"].(map[string]any)["primaryColor"] != "#3b82f6" {
		t.Error("Clone() shares nested mapping with original")
	}
	if tree["products"].([]any)[0].(map[string]any)["price"] != 10.0 {
		t.Error("Clone() shares sequence elements with original")
	}
}

func TestPath_String(t *testing.T) {
	p := P(Field("pages"), Index(0), Field("sections"), Field("hero"))
	if got := p.String(); got != "pages[0].sections.hero" {
		t.Errorf("Path.String() = %q", got)
	}
}
