package scanner

import "regexp"

// Attribute tokens are key="quoted value" or key=bare-token, separated by
// whitespace. Quoted values may contain whitespace, bare values may not.
var attrTokenRegex = regexp.MustCompile(`([A-Za-z][A-Za-z0-9_-]*)=(?:"([^"]*)"|(\S+))`)

// ParseAttributes parses the remainder of an opener line into a map.
// Duplicate keys are tolerated, last occurrence wins. An empty or
// all-whitespace remainder yields an empty, non-nil map.
func ParseAttributes(raw string) map[string]string {
	attrs := map[string]string{}

	for _, m := range attrTokenRegex.FindAllStringSubmatch(raw, -1) {
		value := m[2]
		if value == "" && m[3] != "" {
			value = m[3]
		}
		attrs[m[1]] = value
	}

	return attrs
}
