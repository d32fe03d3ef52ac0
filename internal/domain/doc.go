// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (manifest, build config, registry) and contracts only.
package domain
