// Package testutil provides utilities for testing boilergen components.
//
// Key components:
//   - TemplateRoot: builds a template root with groups and packages on an
//     afero filesystem, in memory by default
//   - TestTemplate: one package with its descriptor, template/ files and
//     injection fragments
//   - file assertions against afero filesystems
//
// All test data should be defined inline, not in external files.
package testutil
