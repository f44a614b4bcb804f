package transform_test

import (
	"testing"

	"github.com/JagjeevanAK/fumadocs-transpiler/internal/scanner"
	"github.com/JagjeevanAK/fumadocs-transpiler/internal/transform"
)

func TestParseTabs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		content    string
		wantItems  []transform.TabItem
		wantErrors int
	}{
		{
			name:    "two tabs",
			content: "npm|npm install pkg\nyarn|yarn add pkg",
			wantItems: []transform.TabItem{
				{Title: "npm", Content: "npm install pkg"},
				{Title: "yarn", Content: "yarn add pkg"},
			},
		},
		{
			name:    "whitespace around separator",
			content: "  npm  |  npm install pkg  ",
			wantItems: []transform.TabItem{
				{Title: "npm", Content: "npm install pkg"},
			},
		},
		{
			name:    "blank lines skipped",
			content: "\na|one\n\nb|two\n",
			wantItems: []transform.TabItem{
				{Title: "a", Content: "one"},
				{Title: "b", Content: "two"},
			},
		},
		{
			name:    "missing separator kept as label-less item",
			content: "no separator here",
			wantItems: []transform.TabItem{
				{Title: "", Content: "no separator here"},
			},
			wantErrors: 1,
		},
		{
			name:    "content may contain further pipes",
			content: "shell|echo a | grep b",
			wantItems: []transform.TabItem{
				{Title: "shell", Content: "echo a | grep b"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			items, errs := transform.ParseTabs(tt.content, 1)
			if len(errs) != tt.wantErrors {
				t.Errorf("error count = %d, want %d", len(errs), tt.wantErrors)
			}
			if len(items) != len(tt.wantItems) {
				t.Fatalf("item count = %d, want %d", len(items), len(tt.wantItems))
			}
			for i, want := range tt.wantItems {
				if items[i] != want {
					t.Errorf("item %d = %+v, want %+v", i, items[i], want)
				}
			}
		})
	}
}

func TestParseTabs_ErrorNamesTypeAndLine(t *testing.T) {
	t.Parallel()

	_, errs := transform.ParseTabs("broken line", 12)
	if len(errs) != 1 {
		t.Fatalf("error count = %d, want 1", len(errs))
	}
	if errs[0].Line != 12 {
		t.Errorf("error line = %d, want 12", errs[0].Line)
	}
	if errs[0].Kind != scanner.KindError {
		t.Errorf("error kind = %q, want %q", errs[0].Kind, scanner.KindError)
	}
	if errs[0].AnnotationType != "tabs" {
		t.Errorf("AnnotationType = %q, want %q", errs[0].AnnotationType, "tabs")
	}
}

func TestParseSteps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []transform.StepItem
	}{
		{
			name:    "numbered steps",
			content: "Step 1: Install it\nStep 2: Configure it",
			want: []transform.StepItem{
				{Title: "Step 1", Content: "Install it"},
				{Title: "Step 2", Content: "Configure it"},
			},
		},
		{
			name:    "case insensitive prefix",
			content: "step 3: lower case",
			want: []transform.StepItem{
				{Title: "Step 3", Content: "lower case"},
			},
		},
		{
			name:    "unmatched line falls back to bare title",
			content: "Just do the thing",
			want: []transform.StepItem{
				{Title: "Step", Content: "Just do the thing"},
			},
		},
		{
			name:    "mixed and blank lines",
			content: "Step 1: First\n\nthen something else",
			want: []transform.StepItem{
				{Title: "Step 1", Content: "First"},
				{Title: "Step", Content: "then something else"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			items := transform.ParseSteps(tt.content)
			if len(items) != len(tt.want) {
				t.Fatalf("item count = %d, want %d", len(items), len(tt.want))
			}
			for i, want := range tt.want {
				if items[i] != want {
					t.Errorf("item %d = %+v, want %+v", i, items[i], want)
				}
			}
		})
	}
}

func TestParseAccordion(t *testing.T) {
	t.Parallel()

	items, errs := transform.ParseAccordion("What is it?|A tool.\nWhy?|Because.", 1)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(items) != 2 {
		t.Fatalf("item count = %d, want 2", len(items))
	}
	if items[0].Title != "What is it?" || items[0].Content != "A tool." {
		t.Errorf("item 0 = %+v", items[0])
	}
	if items[1].Title != "Why?" || items[1].Content != "Because." {
		t.Errorf("item 1 = %+v", items[1])
	}
}
