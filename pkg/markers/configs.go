package markers

import (
	"regexp"
	"strings"

	"github.com/HumanBot000/BoilerGen/pkg/types"
)

var configRe = regexp.MustCompile(
	`boilergen:config\s*\|\s*` +
		`([^\s|]+)` + // identifier
		`(?:\s*\|\s*` +
		`([^"']*(?:"[^"]*"|'[^']*'[^"']*)*)` + // value, may hold quoted strings
		`)?`)

// quotedSpan is a quoted literal within one line. start and end index the
// opening and closing quote characters.
type quotedSpan struct {
	start int
	end   int
	quote byte
}

// ExtractConfigs returns every config marker of content in file order.
// Markers are only recognised inside a quoted literal. Offsets are byte
// offsets into content and cover the marker, not its surrounding quotes.
func ExtractConfigs(content string) []*types.ValueConfig {
	var configs []*types.ValueConfig
	offset := 0

	for _, line := range strings.SplitAfter(content, "\n") {
		for _, span := range quotedSpans(line) {
			inner := line[span.start+1 : span.end]
			base := offset + span.start + 1

			for _, m := range configRe.FindAllStringSubmatchIndex(inner, -1) {
				var raw *string
				if m[4] >= 0 {
					v := inner[m[4]:m[5]]
					raw = &v
				}
				configs = append(configs, &types.ValueConfig{
					Identifier:       strings.TrimSpace(inner[m[2]:m[3]]),
					ReplacementStart: base + m[0],
					ReplacementEnd:   base + m[1],
					InTemplateValue:  InterpretValue(raw, rune(span.quote)),
				})
			}
		}
		offset += len(line)
	}

	return configs
}

// quotedSpans scans a line for '...' and "..." literals. A backslash skips
// the following character. An unterminated literal is dropped.
func quotedSpans(line string) []quotedSpan {
	var spans []quotedSpan

	for i := 0; i < len(line); i++ {
		c := line[i]
		if c != '"' && c != '\'' {
			continue
		}
		start := i
		i++
		for i < len(line) && line[i] != c {
			if line[i] == '\\' {
				i += 2
			} else {
				i++
			}
		}
		if i < len(line) {
			spans = append(spans, quotedSpan{start: start, end: i, quote: c})
		}
	}

	return spans
}

// InterpretValue turns the raw value text of a marker into a Value.
// nil is absent; anything else is trimmed, and the empty string stays a
// defined empty value. A value that carries its own matching quotes inside
// the outer literal (like 'True' or "0.0.0.0") keeps those quotes. The
// outer quote character does not change the result; the generator decides
// which quotes to clip.
func InterpretValue(raw *string, _ rune) types.Value {
	if raw == nil {
		return types.Absent()
	}
	return types.Defined(strings.TrimSpace(*raw))
}
