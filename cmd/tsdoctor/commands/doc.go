// Package commands defines the tsdoctor CLI.
//
// Modes
//
//   - default         Analyze the package and print advisory hints
//   - --fix-typings   Rewrite declaration files, disabling reference directives
//
// # Implementation
//
// The root command builds the reporter and the dependency graph (store and
// services) before running, then dispatches on the fix flag. Fatal errors
// carry their own exit code, which main passes to os.Exit.
package commands
