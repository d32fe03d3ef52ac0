// Package declarations locates generated .d.ts files and handles the
// triple-slash reference directives found inside them.
package declarations
