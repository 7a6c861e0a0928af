package templates

import (
	"path/filepath"
	"sort"

	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/HumanBot000/BoilerGen/pkg/logging"
	"github.com/HumanBot000/BoilerGen/pkg/types"
	"github.com/spf13/afero"
)

// Catalog indexes every template package below a root directory
type Catalog struct {
	Root string

	byID  map[string]*types.Template
	order []string
}

// Discover walks root and loads every template package. Groups are
// descended into; template packages are not.
func Discover(fs afero.Fs, root string) (*Catalog, error) {
	logger := logging.GetLogger("templates")

	info, err := fs.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "template directory '%s' does not exist", root).
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "'%s' is not a directory", root).
			WithDetail("path", root)
	}

	c := &Catalog{Root: root, byID: make(map[string]*types.Template)}
	if err := c.walk(fs, root); err != nil {
		return nil, err
	}

	logger.Debug().Str("root", root).Int("templates", len(c.order)).Msg("Discovered templates")
	return c, nil
}

func (c *Catalog) walk(fs afero.Fs, dir string) error {
	listing, err := List(fs, dir)
	if err != nil {
		return err
	}

	for _, name := range listing.Templates {
		tmpl, err := Load(fs, filepath.Join(dir, name))
		if err != nil {
			return err
		}
		if existing, dup := c.byID[tmpl.ID]; dup {
			return errors.Newf(errors.ErrDuplicateTemplate, "template id '%s' used by %s and %s", tmpl.ID, existing.Path, tmpl.Path).
				WithDetail("id", tmpl.ID)
		}
		c.byID[tmpl.ID] = tmpl
		c.order = append(c.order, tmpl.ID)
	}

	for _, name := range listing.Groups {
		if err := c.walk(fs, filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the template with the given id
func (c *Catalog) Get(id string) (types.Template, bool) {
	t, ok := c.byID[id]
	if !ok {
		return types.Template{}, false
	}
	return *t, true
}

// ByPath returns the template rooted at path
func (c *Catalog) ByPath(path string) (types.Template, bool) {
	path = filepath.Clean(path)
	for _, id := range c.order {
		if filepath.Clean(c.byID[id].Path) == path {
			return *c.byID[id], true
		}
	}
	return types.Template{}, false
}

// All returns every template in discovery order
func (c *Catalog) All() []types.Template {
	out := make([]types.Template, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.byID[id])
	}
	return out
}

// IDs returns every template id, sorted
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	sort.Strings(ids)
	return ids
}

// Map returns the catalog as id to template
func (c *Catalog) Map() map[string]types.Template {
	out := make(map[string]types.Template, len(c.byID))
	for id, t := range c.byID {
		out[id] = *t
	}
	return out
}

// Select resolves ids to templates, preserving order
func (c *Catalog) Select(ids []string) ([]types.Template, error) {
	out := make([]types.Template, 0, len(ids))
	for _, id := range ids {
		t, ok := c.Get(id)
		if !ok {
			return nil, errors.Newf(errors.ErrTemplateNotFound, "template '%s' not found in %s", id, c.Root).
				WithDetail("id", id)
		}
		out = append(out, t)
	}
	return out, nil
}
