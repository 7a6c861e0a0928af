// Package types defines the data shared by the boilergen packages: template
// packages and their descriptors, the files they generate with their tag
// regions and config markers, and the injections one package declares into
// another.
package types
