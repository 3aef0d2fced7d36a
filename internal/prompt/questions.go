// Package prompt collects the init configuration values that were not given
// on the command line. Questions are declared as data and filtered by the
// set of already-known fields before anything is asked.
package prompt

import (
	"context"
	"fmt"
)

// Field names a configuration value gathered by init.
type Field string

// Fields in the order they are asked.
const (
	FieldName         Field = "name"
	FieldProjectType  Field = "projectType"
	FieldComponentDir Field = "componentDir"
	FieldModelDir     Field = "modelDir"
	FieldServiceDir   Field = "serviceDir"
	FieldGraphQLDir   Field = "graphQLDir"
)

// Kind selects how a question is answered.
type Kind int

const (
	// Input accepts any text; an empty answer takes the default.
	Input Kind = iota
	// Select accepts one of Choices; the first choice is the default.
	Select
)

// Question is one entry of the declarative question list.
type Question struct {
	Field   Field
	Kind    Kind
	Message string
	Default string
	Choices []string
}

// Answers maps fields to the values the user gave.
type Answers map[Field]string

// Known holds values already supplied via flags. Empty strings count as
// unknown.
type Known map[Field]string

// Has reports whether f was supplied.
func (k Known) Has(f Field) bool {
	return k[f] != ""
}

// Defaults are the suggested answers for free-text questions.
type Defaults struct {
	Name         string
	ComponentDir string
	ModelDir     string
	ServiceDir   string
	GraphQLDir   string
}

// Asker presents questions and returns their answers.
type Asker interface {
	Ask(ctx context.Context, questions []Question) (Answers, error)
}

// Questions returns the ordered questions for every field not in known.
func Questions(defaults Defaults, projectTypes []string, known Known) []Question {
	all := []Question{
		{Field: FieldName, Kind: Input, Message: "What is the name of the project?", Default: defaults.Name},
		{Field: FieldProjectType, Kind: Select, Message: "What type of project?", Choices: projectTypes},
		{Field: FieldComponentDir, Kind: Input, Message: "Specify directory to store components", Default: defaults.ComponentDir},
		{Field: FieldModelDir, Kind: Input, Message: "Specify directory to store objection models", Default: defaults.ModelDir},
		{Field: FieldServiceDir, Kind: Input, Message: "Specify directory to store services", Default: defaults.ServiceDir},
		{Field: FieldGraphQLDir, Kind: Input, Message: "Specify directory to store graphQL schemas", Default: defaults.GraphQLDir},
	}

	out := make([]Question, 0, len(all))
	for _, q := range all {
		if known.Has(q.Field) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Collect asks the questions for every field missing from known and returns
// the answers merged with known. Known values always win.
func Collect(ctx context.Context, asker Asker, defaults Defaults, projectTypes []string, known Known) (Answers, error) {
	questions := Questions(defaults, projectTypes, known)

	answers := make(Answers, len(questions)+len(known))
	if len(questions) > 0 {
		asked, err := asker.Ask(ctx, questions)
		if err != nil {
			return nil, fmt.Errorf("collecting answers: %w", err)
		}
		for f, v := range asked {
			answers[f] = v
		}
	}
	for f, v := range known {
		if v != "" {
			answers[f] = v
		}
	}
	return answers, nil
}
