// Package scaffold generates boilerplate source files (components, models,
// services, GraphQL schemas) from embedded templates. It powers the
// component, model, service and schema commands; output locations come from
// the project's jcli.json and existing files are never overwritten.
package scaffold
