package domain

type SaveState string

const (
	SaveIdle              SaveState = "idle"
	SaveValidating        SaveState = "validating"
	SaveRejected          SaveState = "rejected"
	SaveBuilding          SaveState = "building"
	SaveSubmitting        SaveState = "submitting"
	SaveSucceeded         SaveState = "succeeded"
	SaveFailedAuthExpired SaveState = "failed_auth_expired"
	SaveFailed            SaveState = "failed"
)

var saveTransitions = map[SaveState][]SaveState{
	SaveIdle:       {SaveValidating},
	SaveValidating: {SaveRejected, SaveBuilding},
	SaveBuilding:   {SaveSubmitting},
	SaveSubmitting: {SaveSucceeded, SaveFailedAuthExpired, SaveFailed},
}

func (s SaveState) CanTransition(next SaveState) bool {
	for _, allowed := range saveTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// SaveAttempt records the states one save attempt went through.
type SaveAttempt struct {
	States []SaveState
	Err    error
}

func NewSaveAttempt() *SaveAttempt {
	return &SaveAttempt{States: []SaveState{SaveIdle}}
}

func (a *SaveAttempt) State() SaveState {
	return a.States[len(a.States)-1]
}

// Advance moves the attempt to next. Illegal transitions are ignored and
// reported as false.
func (a *SaveAttempt) Advance(next SaveState) bool {
	if !a.State().CanTransition(next) {
		return false
	}

	a.States = append(a.States, next)
	return true
}
