package project

import (
	"path/filepath"
	"strings"
)

// ProjectType names a supported project template.
type ProjectType string

// Supported project types.
const (
	TypeReact ProjectType = "React"
	TypeVue   ProjectType = "Vue"
)

// ProjectTypes lists the selectable project types in prompt order.
func ProjectTypes() []ProjectType {
	return []ProjectType{TypeReact, TypeVue}
}

// ParseProjectType matches s against the supported types, ignoring case.
func ParseProjectType(s string) (ProjectType, bool) {
	for _, t := range ProjectTypes() {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, true
		}
	}
	return "", false
}

// ProjectConfig is the resolved configuration of a scaffolded project.
// It is created once per init run and never mutated afterwards.
type ProjectConfig struct {
	Name         string      `json:"name" validate:"required"`
	ProjectType  ProjectType `json:"projectType" validate:"required,oneof=React Vue"`
	ComponentDir string      `json:"componentDir" validate:"required,projectdir"`
	ModelDir     string      `json:"modelDir" validate:"required,projectdir"`
	ServiceDir   string      `json:"serviceDir" validate:"required,projectdir"`
	GraphQLDir   string      `json:"graphQLDir" validate:"required,projectdir"`
}

// Dir resolves a configured directory against the project root. Configured
// directories are project-relative even when written with a leading slash
// ("/src/components").
func Dir(projectDir, configured string) string {
	rel := strings.TrimLeft(configured, `/\`)
	return filepath.Join(projectDir, filepath.FromSlash(rel))
}

// WithinProject reports whether a configured directory stays inside the
// project once resolved by Dir.
func WithinProject(configured string) bool {
	rel := filepath.Clean(filepath.FromSlash(strings.TrimLeft(configured, `/\`)))
	if filepath.IsAbs(rel) || filepath.VolumeName(rel) != "" {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
