package transform_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/JagjeevanAK/fumadocs-transpiler/internal/transform"
)

func TestReverse_RoundTrip(t *testing.T) {
	t.Parallel()

	// reverse(forward(x)) reproduces the annotated source for documents
	// whose constructs survive both directions.
	docs := []struct {
		name string
		text string
	}{
		{
			name: "callout and tabs",
			text: "# Guide\n" +
				"\n" +
				":::callout-info\n" +
				"Read this first.\n" +
				":::\n" +
				"\n" +
				":::tabs\n" +
				"npm|npm install pkg\n" +
				"yarn|yarn add pkg\n" +
				":::",
		},
		{
			name: "steps",
			text: "# Steps Doc\n" +
				"\n" +
				":::steps\n" +
				"Step 1: Install\n" +
				"Step 2: Configure\n" +
				":::",
		},
		{
			name: "files",
			text: "# Layout\n" +
				"\n" +
				":::files\n" +
				"src/\n" +
				"  index.ts\n" +
				"README.md\n" +
				":::",
		},
		{
			name: "code block with explicit title",
			text: "# Code\n" +
				"\n" +
				":::code-block lang=ts title=config.ts\n" +
				"const a = 1\n" +
				":::",
		},
		{
			name: "accordion and banner",
			text: "# FAQ\n" +
				"\n" +
				":::banner type=warn\n" +
				"Heads up.\n" +
				":::\n" +
				"\n" +
				":::accordion\n" +
				"What is it?|A tool.\n" +
				":::",
		},
		{
			name: "enhanced fence title stripped again",
			text: "# Guide\n" +
				"\n" +
				"## Installation\n" +
				"\n" +
				"```bash\n" +
				"npm i\n" +
				"```",
		},
	}

	for _, tt := range docs {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := transform.Options{EnhanceCodeTitles: true}
			forward := transform.Forward(tt.text, opts)
			if !forward.Success() {
				t.Fatalf("forward errors: %v", forward.Errors)
			}

			back := transform.Reverse(forward.Content, opts)
			if back.Content != tt.text {
				t.Errorf("round trip:\n got %q\nwant %q", back.Content, tt.text)
			}
		})
	}
}

func TestReverse_Callout(t *testing.T) {
	t.Parallel()

	input := "<Callout type=\"warn\">\n\nBe careful.\n\n</Callout>"

	result := transform.Reverse(input, transform.Options{})
	want := ":::callout-warn\nBe careful.\n:::"
	if result.Content != want {
		t.Errorf("Content = %q, want %q", result.Content, want)
	}
}

func TestReverse_CalloutDefaultType(t *testing.T) {
	t.Parallel()

	result := transform.Reverse("<Callout>\nhi\n</Callout>", transform.Options{})
	if !strings.HasPrefix(result.Content, ":::callout-info") {
		t.Errorf("Content = %q, want the info default", result.Content)
	}
}

func TestReverse_StripsOwnImportsOnly(t *testing.T) {
	t.Parallel()

	input := "import { Callout } from 'fumadocs-ui/components/callout';\n" +
		"import { Other } from 'some-library';\n" +
		"\n" +
		"body"

	result := transform.Reverse(input, transform.Options{})
	if strings.Contains(result.Content, "fumadocs-ui") {
		t.Errorf("Content = %q, want the component import removed", result.Content)
	}
	if !strings.Contains(result.Content, "some-library") {
		t.Errorf("Content = %q, want the foreign import kept", result.Content)
	}
}

func TestReverse_StripsConfiguredCustomImports(t *testing.T) {
	t.Parallel()

	opts := transform.Options{
		CustomImports: map[string]string{
			"demo": "import { Demo } from '@/components/demo';",
		},
	}

	input := "import { Demo } from '@/components/demo';\n\nbody"
	result := transform.Reverse(input, opts)
	if strings.Contains(result.Content, "Demo") {
		t.Errorf("Content = %q, want the custom import removed", result.Content)
	}
}

func TestReverse_FrontmatterTitleBecomesHeading(t *testing.T) {
	t.Parallel()

	input := "---\ntitle: \"My Page\"\ndescription: \"dropped\"\n---\n\nbody text"

	result := transform.Reverse(input, transform.Options{})
	want := "# My Page\n\nbody text"
	if result.Content != want {
		t.Errorf("Content = %q, want %q", result.Content, want)
	}
}

func TestReverse_NestedSameNameTags(t *testing.T) {
	t.Parallel()

	// An inner Tabs element must stay inside the outer one instead of
	// closing it early.
	input := "<Tabs items={['outer']}>\n" +
		"<Tab value=\"outer\">\n" +
		"<Tabs items={['inner']}>\n" +
		"<Tab value=\"inner\">\n" +
		"x\n" +
		"</Tab>\n" +
		"</Tabs>\n" +
		"</Tab>\n" +
		"</Tabs>"

	result := transform.Reverse(input, transform.Options{})

	if n := strings.Count(result.Content, ":::tabs"); n != 1 {
		t.Errorf("tabs annotation count = %d, want 1:\n%s", n, result.Content)
	}
	if !strings.Contains(result.Content, "outer|") {
		t.Errorf("Content = %q, want the outer tab label", result.Content)
	}
}

func TestReverse_TagInsideFenceIgnored(t *testing.T) {
	t.Parallel()

	input := "<Callout type=\"info\">\n" +
		"```text\n" +
		"</Callout>\n" +
		"```\n" +
		"real body\n" +
		"</Callout>"

	result := transform.Reverse(input, transform.Options{})

	if !strings.HasPrefix(result.Content, ":::callout-info") {
		t.Fatalf("Content = %q", result.Content)
	}
	if !strings.Contains(result.Content, "real body") {
		t.Errorf("Content = %q, want the body after the fence kept", result.Content)
	}
	if !strings.Contains(result.Content, "</Callout>") {
		t.Errorf("Content = %q, want the fenced closer preserved as text", result.Content)
	}
}

func TestReverse_CodeBlockTitleHeuristic(t *testing.T) {
	t.Parallel()

	t.Run("heading-like title collapses to a plain fence", func(t *testing.T) {
		t.Parallel()

		input := "<CodeBlock lang=\"bash\" title=\"Installation\">\n" +
			"```bash\n" +
			"npm i\n" +
			"```\n" +
			"</CodeBlock>"

		result := transform.Reverse(input, transform.Options{})
		want := "```bash\nnpm i\n```"
		if result.Content != want {
			t.Errorf("Content = %q, want %q", result.Content, want)
		}
	})

	t.Run("file-like title survives as an annotation", func(t *testing.T) {
		t.Parallel()

		input := "<CodeBlock lang=\"bash\" title=\"install.sh\">\n" +
			"```bash\n" +
			"npm i\n" +
			"```\n" +
			"</CodeBlock>"

		result := transform.Reverse(input, transform.Options{})
		want := ":::code-block lang=bash title=install.sh\nnpm i\n:::"
		if result.Content != want {
			t.Errorf("Content = %q, want %q", result.Content, want)
		}
	})

	t.Run("configured patterns replace the default table", func(t *testing.T) {
		t.Parallel()

		opts := transform.Options{
			TitlePatterns: []*regexp.Regexp{regexp.MustCompile(`^custom-rule$`)},
		}

		input := "<CodeBlock lang=\"bash\" title=\"Installation\">\n" +
			"```bash\n" +
			"npm i\n" +
			"```\n" +
			"</CodeBlock>"

		// Under the custom table "Installation" is no longer
		// heading-derived, so the title survives.
		result := transform.Reverse(input, opts)
		if !strings.Contains(result.Content, ":::code-block") {
			t.Fatalf("Content = %q, want an annotation block", result.Content)
		}
		if !strings.Contains(result.Content, "title=Installation") {
			t.Errorf("Content = %q, want the title kept", result.Content)
		}
	})
}

func TestReverse_StepsWithoutNumberedHeading(t *testing.T) {
	t.Parallel()

	input := "<Steps>\n" +
		"<Step>\n" +
		"## Step\n" +
		"just do it\n" +
		"</Step>\n" +
		"</Steps>"

	result := transform.Reverse(input, transform.Options{})
	want := ":::steps\njust do it\n:::"
	if result.Content != want {
		t.Errorf("Content = %q, want %q", result.Content, want)
	}
}

func TestReverse_MultilineTabBodyJoined(t *testing.T) {
	t.Parallel()

	input := "<Tabs items={['a']}>\n" +
		"<Tab value=\"a\">\n" +
		"first line\n" +
		"\n" +
		"second line\n" +
		"</Tab>\n" +
		"</Tabs>"

	result := transform.Reverse(input, transform.Options{})
	if !strings.Contains(result.Content, "a|first line second line") {
		t.Errorf("Content = %q, want the body joined onto one line", result.Content)
	}
}
