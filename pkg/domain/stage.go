package domain

import "fmt"

// MaxDay is the last day of the defense calendar.
const MaxDay = 25

// Stage is one state of the defense process.
// The value is the name used in snapshots.
type Stage string

const (
	StagePreparation Stage = "PREPARATION" // Initial stage: write the thesis
	StageRevision    Stage = "REVISION"    // A checkpoint is due
	StageRehearsal   Stage = "REHEARSAL"   // Thesis accepted, prepare the defense
	StageDefense     Stage = "DEFENSE"     // Defense days
	StageAttestation Stage = "ATTESTATION" // Final grade pending
	StageFinished    Stage = "FINISHED"    // Terminal
)

// Stages lists every stage in process order.
var Stages = []Stage{
	StagePreparation,
	StageRevision,
	StageRehearsal,
	StageDefense,
	StageAttestation,
	StageFinished,
}

var stageDisplay = map[Stage]string{
	StagePreparation: "Preparation",
	StageRevision:    "Revision",
	StageRehearsal:   "Rehearsal",
	StageDefense:     "Defense",
	StageAttestation: "Attestation",
	StageFinished:    "Finished",
}

var stageActions = map[Stage][]ActionCode{
	StagePreparation: {ActionWorkThesis, ActionRest, ActionSendReview},
	StageRevision:    {ActionWorkThesis, ActionRest, ActionSubmitForInspection},
	StageRehearsal:   {ActionPrepareSlides, ActionRest, ActionRehearse},
	StageDefense:     {ActionPrepareSlides, ActionRest, ActionRehearse, ActionDefense},
	StageAttestation: {ActionAttestation},
	StageFinished:    {},
}

// ParseStage looks a stage up by its snapshot name.
func ParseStage(name string) (Stage, error) {
	s := Stage(name)
	if _, ok := stageDisplay[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStage, name)
	}
	return s, nil
}

// String returns the snapshot name.
func (s Stage) String() string { return string(s) }

// DisplayName returns the human-readable name ("Preparation", ...).
func (s Stage) DisplayName() string {
	if name, ok := stageDisplay[s]; ok {
		return name
	}
	return string(s)
}

// Actions returns the ordered actions offered in this stage.
// The returned slice is a copy.
func (s Stage) Actions() []ActionCode {
	return append([]ActionCode(nil), stageActions[s]...)
}

// IsTerminal reports whether no action can be performed in this stage.
func (s Stage) IsTerminal() bool {
	return s == StageFinished
}
