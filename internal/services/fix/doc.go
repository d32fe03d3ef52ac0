// Package fix rewrites generated declaration files in place, disabling the
// triple-slash reference directives the analyzer warns about.
package fix
