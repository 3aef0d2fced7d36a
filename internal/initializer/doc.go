// Package initializer implements the `jcli init` workflow.
//
// The workflow runs in a fixed order:
//
//  1. collect the missing configuration values (prompt)
//  2. resolve the template directory for the chosen project type
//  3. write jcli.json to the working directory
//  4. run the setup steps: copy template files, git init, install dependencies
//
// Template resolution happens before anything is written, so an unknown
// project type leaves the working directory untouched. Steps after the
// manifest is written are not rolled back when a later step fails.
package initializer
