// Package store reads the manifest and build configuration files of a
// project directory and rewrites declaration files in place.
package store
