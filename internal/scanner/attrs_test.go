package scanner_test

import (
	"testing"

	"github.com/JagjeevanAK/fumadocs-transpiler/internal/scanner"
)

func TestParseAttributes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{
			name: "quoted value with spaces",
			raw:  `title="My Example" lang="ts"`,
			want: map[string]string{"title": "My Example", "lang": "ts"},
		},
		{
			name: "bare value",
			raw:  `type=info`,
			want: map[string]string{"type": "info"},
		},
		{
			name: "mixed quoted and bare",
			raw:  `lang=go title="Quick Start"`,
			want: map[string]string{"lang": "go", "title": "Quick Start"},
		},
		{
			name: "duplicate key last wins",
			raw:  `lang=ts lang=go`,
			want: map[string]string{"lang": "go"},
		},
		{
			name: "empty remainder",
			raw:  "",
			want: map[string]string{},
		},
		{
			name: "empty quoted value",
			raw:  `title=""`,
			want: map[string]string{"title": ""},
		},
		{
			name: "hyphenated key",
			raw:  `data-kind=note`,
			want: map[string]string{"data-kind": "note"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := scanner.ParseAttributes(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("attribute count = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for key, want := range tt.want {
				if got[key] != want {
					t.Errorf("attrs[%q] = %q, want %q", key, got[key], want)
				}
			}
		})
	}
}
