package app

import (
	"tsdoctor/internal/domain"
	analyzesvc "tsdoctor/internal/services/analyze"
	fixsvc "tsdoctor/internal/services/fix"
	"tsdoctor/internal/store"
)

// Wire bundles the store and services for the CLI.
type Wire struct {
	Project  domain.ProjectFiles
	Analyzer *analyzesvc.Service
	Fixer    *fixsvc.Service
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	project := store.NewProjectStore(cfg.Dir)
	return &Wire{
		Project:  project,
		Analyzer: analyzesvc.New(project, cfg.Reporter),
		Fixer:    fixsvc.New(project, cfg.Reporter),
	}
}
