package templates

import (
	"os"
	"path/filepath"

	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/HumanBot000/BoilerGen/pkg/logging"
	"github.com/HumanBot000/BoilerGen/pkg/markers"
	"github.com/HumanBot000/BoilerGen/pkg/types"
	"github.com/HumanBot000/BoilerGen/pkg/values"
	"github.com/spf13/afero"
)

// Files prepares every file under the package's template/ directory for
// generation below outputRoot. Markers are parsed and package defaults
// applied. Files come back in lexical path order.
func Files(fs afero.Fs, tmpl types.Template, outputRoot string) ([]*types.TemplateFile, error) {
	logger := logging.GetLogger("templates")
	root := tmpl.FilesPath()

	if _, err := fs.Stat(root); err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("template", tmpl.ID).Msg("Template has no files directory")
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to access %s", root)
	}

	var files []*types.TemplateFile
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		file, err := prepare(fs, tmpl, path, filepath.Join(outputRoot, rel))
		if err != nil {
			return err
		}
		files = append(files, file)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "failed to prepare template '%s'", tmpl.ID).
			WithDetail("template", tmpl.ID)
	}

	logger.Debug().Str("template", tmpl.ID).Int("files", len(files)).Msg("Prepared template files")
	return files, nil
}

func prepare(fs afero.Fs, tmpl types.Template, path, dest string) (*types.TemplateFile, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}
	content := string(data)

	tags, err := markers.ExtractTags(content)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTagInvalid, "in %s", path).WithDetail("path", path)
	}

	configs := markers.ExtractConfigs(content)
	if err := values.ApplyDefaults(configs, tmpl.Descriptor.Config); err != nil {
		return nil, err
	}

	return &types.TemplateFile{
		TemplateID:      tmpl.ID,
		SourcePath:      path,
		Content:         content,
		Tags:            tags,
		Configs:         configs,
		DestinationPath: dest,
	}, nil
}
