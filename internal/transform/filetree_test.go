package transform_test

import (
	"testing"

	"github.com/JagjeevanAK/fumadocs-transpiler/internal/transform"
)

func TestParseFileTree(t *testing.T) {
	t.Parallel()

	content := "src/\n  components/\n    button.tsx\n  index.ts\nREADME.md"

	roots := transform.ParseFileTree(content)
	if len(roots) != 2 {
		t.Fatalf("root count = %d, want 2", len(roots))
	}

	src := roots[0]
	if src.Name != "src" || src.IsFile || src.Level != 0 {
		t.Errorf("src node = %+v", src)
	}
	if len(src.Children) != 2 {
		t.Fatalf("src child count = %d, want 2", len(src.Children))
	}

	components := src.Children[0]
	if components.Name != "components" || components.IsFile || components.Level != 1 {
		t.Errorf("components node = %+v", components)
	}
	if len(components.Children) != 1 {
		t.Fatalf("components child count = %d, want 1", len(components.Children))
	}
	if button := components.Children[0]; button.Name != "button.tsx" || !button.IsFile || button.Level != 2 {
		t.Errorf("button node = %+v", button)
	}

	if index := src.Children[1]; index.Name != "index.ts" || !index.IsFile || index.Level != 1 {
		t.Errorf("index node = %+v", index)
	}

	readme := roots[1]
	if readme.Name != "README.md" || !readme.IsFile || readme.Level != 0 {
		t.Errorf("readme node = %+v", readme)
	}
}

func TestParseFileTree_EmptyDirectoryHasChildren(t *testing.T) {
	t.Parallel()

	roots := transform.ParseFileTree("empty/")
	if len(roots) != 1 {
		t.Fatalf("root count = %d, want 1", len(roots))
	}
	if roots[0].IsFile {
		t.Error("trailing slash should mark a directory")
	}
	if roots[0].Children == nil {
		t.Error("directory Children should be non-nil")
	}
	if len(roots[0].Children) != 0 {
		t.Errorf("child count = %d, want 0", len(roots[0].Children))
	}
}

func TestParseFileTree_SiblingAfterDeepNesting(t *testing.T) {
	t.Parallel()

	// b/ at level 0 must pop the whole a/ chain off the stack.
	roots := transform.ParseFileTree("a/\n  deep/\n    leaf.ts\nb/\n  other.ts")
	if len(roots) != 2 {
		t.Fatalf("root count = %d, want 2", len(roots))
	}
	if roots[1].Name != "b" {
		t.Errorf("second root = %q, want %q", roots[1].Name, "b")
	}
	if len(roots[1].Children) != 1 || roots[1].Children[0].Name != "other.ts" {
		t.Errorf("b children = %+v", roots[1].Children)
	}
}

func TestParseFileTree_Empty(t *testing.T) {
	t.Parallel()

	if roots := transform.ParseFileTree("\n\n"); len(roots) != 0 {
		t.Errorf("root count = %d, want 0", len(roots))
	}
}
