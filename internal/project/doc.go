// Package project defines the ProjectConfig written by `jcli init` and
// persists it as the jcli.json manifest in the project directory. Manifests
// are validated twice: struct rules before writing and the embedded JSON
// schema when reading back.
package project
