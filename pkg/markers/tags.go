package markers

import (
	"regexp"
	"strings"

	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/HumanBot000/BoilerGen/pkg/types"
)

const identifierPattern = `[A-Za-z0-9_.\-]+`

var (
	openTagRe  = regexp.MustCompile(`<<boilergen:(` + identifierPattern + `)`)
	closeTagRe = regexp.MustCompile(`boilergen:(` + identifierPattern + `)>>`)
)

// ExtractTags returns the tag regions of content ordered by opening line.
// Regions of different ids may nest, and a region may open and close on
// one line (LineStart == LineEnd). A closing marker without an open tag,
// an id opened twice, or a tag left open fail with ErrTagInvalid.
func ExtractTags(content string) ([]types.Tag, error) {
	var tags []types.Tag
	open := make(map[string]int)

	for i, line := range strings.Split(content, "\n") {
		lineNo := i + 1

		if loc := openTagRe.FindStringSubmatchIndex(line); loc != nil {
			id := line[loc[2]:loc[3]]
			if _, already := open[id]; already {
				return nil, errors.Newf(errors.ErrTagInvalid, "tag '%s' opened again on line %d before it was closed", id, lineNo).
					WithDetail("tag", id).
					WithDetail("line", lineNo)
			}
			tag := types.Tag{Identifier: id, LineStart: lineNo}
			if c := closeTagRe.FindStringSubmatch(line[loc[1]:]); c != nil && c[1] == id {
				tag.LineEnd = lineNo
			} else {
				open[id] = len(tags)
			}
			tags = append(tags, tag)
			continue
		}

		if m := closeTagRe.FindStringSubmatch(line); m != nil {
			id := m[1]
			idx, ok := open[id]
			if !ok {
				return nil, errors.Newf(errors.ErrTagInvalid, "closing marker for tag '%s' on line %d has no opening marker", id, lineNo).
					WithDetail("tag", id).
					WithDetail("line", lineNo)
			}
			tags[idx].LineEnd = lineNo
			delete(open, id)
		}
	}

	for _, tag := range tags {
		if tag.LineEnd == 0 {
			return nil, errors.Newf(errors.ErrTagInvalid, "tag '%s' opened on line %d is never closed", tag.Identifier, tag.LineStart).
				WithDetail("tag", tag.Identifier).
				WithDetail("line", tag.LineStart)
		}
	}

	return tags, nil
}
