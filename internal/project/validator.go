package project

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/jcli.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)

	structValidator = newStructValidator()
)

// ValidationIssue represents a single problem found in a manifest.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/componentDir")
	Message string // Human-readable error message
	Keyword string // Schema keyword or struct tag that failed
}

// ValidationError is returned when a ProjectConfig or manifest document
// breaks the manifest rules.
type ValidationError struct {
	Issues []ValidationIssue
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path == "" {
			parts = append(parts, issue.Message)
			continue
		}
		parts = append(parts, issue.Path+": "+issue.Message)
	}
	return "invalid project manifest: " + strings.Join(parts, "; ")
}

// Validate checks a ProjectConfig against its struct rules: every field is
// required and the project type must be one of the supported templates.
func Validate(cfg ProjectConfig) error {
	err := structValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating project config: %w", err)
	}

	issues := make([]ValidationIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, ValidationIssue{
			Path:    "/" + jsonFieldName(fe.StructField()),
			Message: describeTag(fe),
			Keyword: fe.Tag(),
		})
	}
	return &ValidationError{Issues: issues}
}

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("projectdir", func(fl validator.FieldLevel) bool {
		return WithinProject(fl.Field().String())
	})
	return v
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "projectdir":
		return fmt.Sprintf("must stay inside the project directory, got %q", fe.Value())
	case "required":
		return "must not be empty"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

func jsonFieldName(structField string) string {
	switch structField {
	case "ProjectType":
		return "projectType"
	case "GraphQLDir":
		return "graphQLDir"
	}
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("jcli.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("jcli.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// ValidateDocument validates raw manifest JSON against the embedded schema.
// A *ValidationError is returned for schema violations; any other error is a
// parse or schema compilation failure.
func ValidateDocument(data []byte) error {
	schema, err := getSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parsing manifest JSON: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("unexpected validation error type: %w", err)
	}
	return &ValidationError{Issues: extractIssues(ve)}
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	return deduplicateIssues(issues)
}

func collectValidationIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		msg := ""
		if ve.ErrorKind != nil {
			if kwPath := ve.ErrorKind.KeywordPath(); len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Container keywords carry no useful detail on their own.
		if keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, ValidationIssue{
			Path:    path,
			Message: msg,
			Keyword: keyword,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectValidationIssues(cause, issues)
	}
}

func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
