package sinphase

// State is the position of a context in the stage sequence: either the next
// stage expected to run, or Completed once the last stage has succeeded.
type State struct {
	next      StageID
	completed bool
}

// AtStage is the state expecting id to run next.
func AtStage(id StageID) State {
	return State{next: id}
}

// CompletedState is the terminal state reached after the last stage.
func CompletedState() State {
	return State{completed: true}
}

// Stage returns the expected stage and false when the pipeline is completed.
func (s State) Stage() (StageID, bool) {
	if s.completed {
		return Tokenization, false
	}
	return s.next, true
}

func (s State) Completed() bool {
	return s.completed
}

func (s State) String() string {
	if s.completed {
		return "completed"
	}
	return s.next.String()
}

// after returns the state following a successful run of id.
func after(id StageID) State {
	if int(id) == StageCount-1 {
		return CompletedState()
	}
	return AtStage(id + 1)
}
