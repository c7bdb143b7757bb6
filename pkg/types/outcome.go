package types

// Overrides holds resolved environment values keyed by variable name.
// It is passed explicitly from the seeding phase to the environment merger.
type Overrides map[string]string

// Merge returns a new Overrides with other layered on top of o.
func (o Overrides) Merge(other Overrides) Overrides {
	out := make(Overrides, len(o)+len(other))
	for k, v := range o {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Outcome is the terminal signal of a generation run.
type Outcome struct {
	Success   bool
	TargetDir string

	// Generated is set once every blueprint has been written. It stays true
	// when only the dependency installation fails.
	Generated bool

	// Phase is the last phase the run entered.
	Phase string
	Err   error

	// Written lists destination paths produced during materialization,
	// including those written before a failure.
	Written []string

	InstallSkipped bool
	InstallOutput  string
}

// InstallResult is what the dependency installer reports back.
type InstallResult struct {
	Stdout string
	Stderr string
	// ExitErr is the error the installer process exited with, if any.
	ExitErr error
}
