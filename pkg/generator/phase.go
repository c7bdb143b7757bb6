package generator

// Phase is a state of a generation run.
type Phase string

const (
	PhasePending       Phase = "pending"
	PhaseSeeding       Phase = "seeding"
	PhaseDiscovering   Phase = "discovering"
	PhaseMaterializing Phase = "materializing"
	PhaseInstalling    Phase = "installing"
	PhaseDone          Phase = "done"
	PhaseFailed        Phase = "failed"
)

// transitions lists the phases reachable from each phase. Failed is
// reachable from every non-terminal phase.
var transitions = map[Phase][]Phase{
	PhasePending:       {PhaseSeeding, PhaseDiscovering},
	PhaseSeeding:       {PhaseDiscovering},
	PhaseDiscovering:   {PhaseMaterializing},
	PhaseMaterializing: {PhaseInstalling},
	PhaseInstalling:    {PhaseDone},
}

// Terminal reports whether no further transition is possible.
func (p Phase) Terminal() bool {
	return p == PhaseDone || p == PhaseFailed
}

// CanTransition reports whether a run in phase p may move to next.
func (p Phase) CanTransition(next Phase) bool {
	if p.Terminal() {
		return false
	}
	if next == PhaseFailed {
		return true
	}
	for _, allowed := range transitions[p] {
		if allowed == next {
			return true
		}
	}
	return false
}
