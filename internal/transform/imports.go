package transform

import "sort"

// componentNamespace identifies import declarations owned by this system;
// the reverse direction strips any import line referencing it.
const componentNamespace = "fumadocs-ui/components/"

var defaultImports = map[string]string{
	"callout":    "import { Callout } from 'fumadocs-ui/components/callout';",
	"tabs":       "import { Tab, Tabs } from 'fumadocs-ui/components/tabs';",
	"steps":      "import { Step, Steps } from 'fumadocs-ui/components/steps';",
	"accordion":  "import { Accordion, Accordions } from 'fumadocs-ui/components/accordion';",
	"code-block": "import { CodeBlock } from 'fumadocs-ui/components/codeblock';",
	"files":      "import { File, Files, Folder } from 'fumadocs-ui/components/files';",
	"banner":     "import { Banner } from 'fumadocs-ui/components/banner';",
}

// importSet accumulates the declarations needed by the component types
// used in one transform call. It is created fresh per call and returned
// as part of the result, never shared across calls.
type importSet map[string]struct{}

func (s importSet) add(decl string) {
	if decl != "" {
		s[decl] = struct{}{}
	}
}

// sorted returns the accumulated declarations in lexicographic order so
// assembled output is byte-stable.
func (s importSet) sorted() []string {
	if len(s) == 0 {
		return nil
	}

	out := make([]string, 0, len(s))
	for decl := range s {
		out = append(out, decl)
	}
	sort.Strings(out)
	return out
}

// importFor resolves the declaration for a built-in component family,
// honoring configured overrides.
func (opts Options) importFor(family string) string {
	if decl, ok := opts.CustomImports[family]; ok {
		return decl
	}
	return defaultImports[family]
}
