// Package toolchain checks the external programs jcli shells out to (git and
// the Node.js package tooling) against minimum versions. It backs the
// `jcli doctor` command.
package toolchain
