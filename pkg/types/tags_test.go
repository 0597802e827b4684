package types

import (
	"encoding/json"
	"testing"
)

func TestTagSetDeduplicates(t *testing.T) {
	tags := NewTagSet("rust", "rust", "go")
	if len(tags) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(tags))
	}
	if !tags.Has("rust") || !tags.Has("go") {
		t.Fatalf("missing expected tags in %s", tags)
	}
}

func TestTagSetJSON(t *testing.T) {
	t.Run("marshals as sorted array", func(t *testing.T) {
		data, err := json.Marshal(NewTagSet("zig", "ada", "go"))
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != `["ada","go","zig"]` {
			t.Fatalf("unexpected encoding: %s", data)
		}
	})

	t.Run("unmarshal collapses duplicates", func(t *testing.T) {
		var tags TagSet
		if err := json.Unmarshal([]byte(`["go","go","rust"]`), &tags); err != nil {
			t.Fatal(err)
		}
		if len(tags) != 2 {
			t.Fatalf("expected 2 tags, got %d", len(tags))
		}
	})

	t.Run("unmarshal rejects non-array", func(t *testing.T) {
		var tags TagSet
		if err := json.Unmarshal([]byte(`"go"`), &tags); err == nil {
			t.Fatal("expected error for non-array tags")
		}
	})
}

func TestTagSetMerge(t *testing.T) {
	a := NewTagSet("rust")
	b := NewTagSet("go", "rust")
	a.Merge(b)
	if !a.Equal(NewTagSet("rust", "go")) {
		t.Fatalf("unexpected merge result: %s", a)
	}
}

func TestTagSetClone(t *testing.T) {
	a := NewTagSet("rust")
	b := a.Clone()
	b.Add("go")
	if a.Has("go") {
		t.Fatal("clone must be independent of the original")
	}
}

func TestTagSetEqual(t *testing.T) {
	if !NewTagSet("a", "b").Equal(NewTagSet("b", "a")) {
		t.Fatal("order must not matter")
	}
	if NewTagSet("a").Equal(NewTagSet("a", "b")) {
		t.Fatal("different sizes must not be equal")
	}
	if NewTagSet("a", "c").Equal(NewTagSet("a", "b")) {
		t.Fatal("different members must not be equal")
	}
}

func TestNormalizeTag(t *testing.T) {
	if got := NormalizeTag("  RuSt "); got != "rust" {
		t.Fatalf("expected rust, got %q", got)
	}
}

func TestValidTag(t *testing.T) {
	tests := []struct {
		tag  string
		want bool
	}{
		{"rust", true},
		{"c++", true},
		{"", false},
		{"two words", false},
		{"tab\tseparated", false},
	}
	for _, tt := range tests {
		if got := ValidTag(tt.tag); got != tt.want {
			t.Errorf("ValidTag(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}
