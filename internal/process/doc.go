// Package process runs the external tools invoked during project setup:
// git for repository initialization and the project's package manager for
// dependency installation. All invocations go through the Runner interface
// so the init workflow can be exercised without real processes.
package process
