package msgnew

import "context"

// fakeRunner records every invocation and can fail selected calls. Tests
// never execute the real gettext utilities.
type fakeRunner struct {
	calls [][]string
	errs  map[int]error // call index -> injected failure
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	if err, ok := r.errs[len(r.calls)-1]; ok {
		return err
	}
	return nil
}
