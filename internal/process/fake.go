package process

import (
	"context"
	"strings"
	"sync"
)

// Call records one invocation seen by a FakeRunner.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// String renders the call as a command line.
func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// FakeRunner records invocations instead of executing them. Failures maps
// an executable name to the error its invocation should return.
type FakeRunner struct {
	mu       sync.Mutex
	Calls    []Call
	Failures map[string]error
}

var _ Runner = (*FakeRunner)(nil)

// Run records the call and returns the configured failure, if any.
func (f *FakeRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, Call{Dir: dir, Name: name, Args: append([]string(nil), args...)})
	if err := ctx.Err(); err != nil {
		return err
	}
	if err, ok := f.Failures[name]; ok {
		return err
	}
	return nil
}

// Invoked reports whether name was run at least once.
func (f *FakeRunner) Invoked(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, c := range f.Calls {
		if c.Name == name {
			return true
		}
	}
	return false
}
