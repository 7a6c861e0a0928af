// Package deps orders template packages by their declared requirements.
package deps

import (
	"sort"
	"strings"

	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/HumanBot000/BoilerGen/pkg/logging"
	"github.com/HumanBot000/BoilerGen/pkg/types"
)

// Sort returns templates so that every template comes after the templates
// it requires. Only that partial order is guaranteed.
//
// In strict mode a requirement that is not part of templates fails with
// ErrMissingDependency; otherwise the edge is dropped. A cycle fails with
// ErrCyclicDependency.
func Sort(templates []types.Template, strict bool) ([]types.Template, error) {
	logger := logging.GetLogger("deps")

	index := make(map[string]int, len(templates))
	for i, t := range templates {
		if _, dup := index[t.ID]; dup {
			return nil, errors.Newf(errors.ErrDuplicateTemplate, "template '%s' selected more than once", t.ID).
				WithDetail("id", t.ID)
		}
		index[t.ID] = i
	}

	// dependents[i] lists the templates that require templates[i]
	dependents := make([][]int, len(templates))
	inDegree := make([]int, len(templates))

	for i, t := range templates {
		for _, dep := range t.Requires {
			j, ok := index[dep]
			if !ok {
				if strict {
					return nil, errors.Newf(errors.ErrMissingDependency,
						"missing dependency '%s' required by template '%s'", dep, t.ID).
						WithDetail("dependency", dep).
						WithDetail("template", t.ID)
				}
				logger.Warn().Str("template", t.ID).Str("dependency", dep).Msg("Ignoring missing dependency")
				continue
			}
			dependents[j] = append(dependents[j], i)
			inDegree[i]++
		}
	}

	queue := make([]int, 0, len(templates))
	for i := range templates {
		if inDegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	sorted := make([]types.Template, 0, len(templates))
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		sorted = append(sorted, templates[current])

		for _, next := range dependents[current] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(sorted) != len(templates) {
		var stuck []string
		for i, t := range templates {
			if inDegree[i] > 0 {
				stuck = append(stuck, t.ID)
			}
		}
		return nil, errors.Newf(errors.ErrCyclicDependency,
			"cyclic dependency detected among templates: %s", strings.Join(stuck, ", ")).
			WithDetail("templates", stuck)
	}

	logger.Debug().Int("count", len(sorted)).Msg("Templates ordered by dependency")
	return sorted, nil
}

// Closure extends selected with every template reachable through requires.
// It returns the full id list (selected first, then additions in discovery
// order) and the ids that were added. Requirements missing from the catalog
// are left for Sort to report.
func Closure(selected []string, catalog map[string]types.Template) (all []string, added []string) {
	seen := make(map[string]bool, len(selected))
	for _, id := range selected {
		if seen[id] {
			continue
		}
		seen[id] = true
		all = append(all, id)
	}

	for i := 0; i < len(all); i++ {
		t, ok := catalog[all[i]]
		if !ok {
			continue
		}
		for _, dep := range t.Requires {
			if seen[dep] {
				continue
			}
			if _, known := catalog[dep]; !known {
				continue
			}
			seen[dep] = true
			all = append(all, dep)
			added = append(added, dep)
		}
	}

	return all, added
}

// Dependents returns the ids in catalog that directly require id, sorted
func Dependents(id string, catalog map[string]types.Template) []string {
	var out []string
	for _, t := range catalog {
		for _, dep := range t.Requires {
			if dep == id {
				out = append(out, t.ID)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}
