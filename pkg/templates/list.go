package templates

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/HumanBot000/BoilerGen/pkg/types"
	"github.com/spf13/afero"
)

// Listing is the content of one directory of the template root
type Listing struct {
	// Groups are subdirectories without a template.yaml
	Groups []string
	// Templates are subdirectories holding a template.yaml
	Templates []string
}

// List returns the sorted groups and templates directly under dir.
// A missing dir yields an empty listing.
func List(fs afero.Fs, dir string) (Listing, error) {
	var listing Listing

	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return listing, nil
		}
		return listing, errors.Wrapf(err, errors.ErrFileAccess, "failed to list %s", dir)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		ok, err := IsTemplate(fs, filepath.Join(dir, entry.Name()))
		if err != nil {
			return listing, err
		}
		if ok {
			listing.Templates = append(listing.Templates, entry.Name())
		} else {
			listing.Groups = append(listing.Groups, entry.Name())
		}
	}

	sort.Strings(listing.Groups)
	sort.Strings(listing.Templates)
	return listing, nil
}

// IsTemplate reports whether dir holds a template.yaml
func IsTemplate(fs afero.Fs, dir string) (bool, error) {
	ok, err := afero.Exists(fs, filepath.Join(dir, types.DescriptorFile))
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", dir)
	}
	return ok, nil
}
