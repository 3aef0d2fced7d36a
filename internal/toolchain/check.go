package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Requirement names a program and the oldest version jcli supports.
type Requirement struct {
	Name     string
	Args     []string // arguments that print the version
	Minimum  string
	Optional bool // missing optional tools are reported but not fatal
}

// Defaults lists the programs used by `jcli init`.
var Defaults = []Requirement{
	{Name: "git", Args: []string{"--version"}, Minimum: "2.0.0"},
	{Name: "node", Args: []string{"--version"}, Minimum: "14.0.0"},
	{Name: "npm", Args: []string{"--version"}, Minimum: "6.0.0"},
	{Name: "yarn", Args: []string{"--version"}, Minimum: "1.0.0", Optional: true},
	{Name: "pnpm", Args: []string{"--version"}, Minimum: "6.0.0", Optional: true},
}

// Status is the outcome of one check.
type Status string

const (
	StatusOK       Status = "ok"
	StatusOutdated Status = "outdated"
	StatusMissing  Status = "missing"
	StatusUnknown  Status = "unknown"
)

// Result reports one checked program.
type Result struct {
	Requirement
	Path    string
	Version string
	Status  Status
	Err     error
}

// Healthy reports whether the result should not fail the overall check.
func (r Result) Healthy() bool {
	return r.Status == StatusOK || (r.Optional && r.Status == StatusMissing)
}

// Prober locates a program and returns its version output.
type Prober interface {
	LookPath(name string) (string, error)
	Output(ctx context.Context, path string, args ...string) (string, error)
}

// ExecProber probes programs on PATH.
type ExecProber struct{}

var _ Prober = ExecProber{}

// LookPath implements Prober.
func (ExecProber) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Output implements Prober.
func (ExecProber) Output(ctx context.Context, path string, args ...string) (string, error) {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return stdout.String(), nil
}

// Check probes every requirement in order.
func Check(ctx context.Context, p Prober, reqs []Requirement) []Result {
	results := make([]Result, 0, len(reqs))
	for _, req := range reqs {
		results = append(results, checkOne(ctx, p, req))
	}
	return results
}

func checkOne(ctx context.Context, p Prober, req Requirement) Result {
	res := Result{Requirement: req}

	path, err := p.LookPath(req.Name)
	if err != nil {
		res.Status = StatusMissing
		res.Err = err
		return res
	}
	res.Path = path

	out, err := p.Output(ctx, path, req.Args...)
	if err != nil {
		res.Status = StatusUnknown
		res.Err = fmt.Errorf("running %s: %w", req.Name, err)
		return res
	}

	version, err := ExtractVersion(out)
	if err != nil {
		res.Status = StatusUnknown
		res.Err = err
		return res
	}
	res.Version = version

	cmp, err := CompareVersions(version, req.Minimum)
	if err != nil {
		res.Status = StatusUnknown
		res.Err = err
		return res
	}
	if cmp < 0 {
		res.Status = StatusOutdated
		res.Err = fmt.Errorf("%s %s is older than the required %s", req.Name, version, req.Minimum)
		return res
	}
	res.Status = StatusOK
	return res
}

// ErrUnhealthy is returned by Verify when a required program fails its check.
var ErrUnhealthy = errors.New("toolchain check failed")

// Verify returns ErrUnhealthy, naming the failing programs, when any
// result is not healthy.
func Verify(results []Result) error {
	var failed []string
	for _, r := range results {
		if !r.Healthy() {
			failed = append(failed, r.Name)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%w: %v", ErrUnhealthy, failed)
	}
	return nil
}
