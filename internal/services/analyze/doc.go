// Package analyze runs the advisory checklist over a package's manifest,
// build configuration and generated declaration files.
package analyze
