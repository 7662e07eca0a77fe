package model

import "fmt"

// Phase is a pipeline state without its module cursor.
type Phase string

// Pipeline phases, in the order a successful run visits them. PhaseAborted
// is reachable from PhaseCleaning, PhaseProcessing and PhaseIndexing.
const (
	PhaseIdle       Phase = "idle"
	PhaseCleaning   Phase = "cleaning"
	PhaseProcessing Phase = "processing"
	PhaseIndexing   Phase = "indexing"
	PhaseDone       Phase = "done"
	PhaseAborted    Phase = "aborted"
)

// State is the orchestrator state. Index and Total are only meaningful in
// PhaseProcessing, and Module names the module being processed.
type State struct {
	Phase  Phase
	Index  int
	Total  int
	Module string
}

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s.Phase == PhaseDone || s.Phase == PhaseAborted
}

func (s State) String() string {
	if s.Phase == PhaseProcessing {
		return fmt.Sprintf("%s(%d/%d %s)", s.Phase, s.Index+1, s.Total, s.Module)
	}

	return string(s.Phase)
}
