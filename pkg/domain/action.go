package domain

// ActionCode identifies one of the player actions.
type ActionCode string

const (
	ActionWorkThesis          ActionCode = "work_thesis"
	ActionRest                ActionCode = "rest"
	ActionSendReview          ActionCode = "send_review"
	ActionSubmitForInspection ActionCode = "submit_for_inspection"
	ActionPrepareSlides       ActionCode = "prepare_slides"
	ActionRehearse            ActionCode = "rehearse"
	ActionDefense             ActionCode = "defense"
	ActionAttestation         ActionCode = "attestation"
)

var actionLabels = map[ActionCode]string{
	ActionWorkThesis:          "Work on thesis",
	ActionRest:                "Rest",
	ActionSendReview:          "Send for review",
	ActionSubmitForInspection: "Submit for inspection",
	ActionPrepareSlides:       "Prepare presentation",
	ActionRehearse:            "Rehearse defense",
	ActionDefense:             "Go to defense",
	ActionAttestation:         "Get final grade",
}

// Label returns the menu label of the action.
// Unknown codes are returned verbatim.
func (c ActionCode) Label() string {
	if label, ok := actionLabels[c]; ok {
		return label
	}
	return string(c)
}

// Known reports whether c is one of the eight action codes.
func (c ActionCode) Known() bool {
	_, ok := actionLabels[c]
	return ok
}
