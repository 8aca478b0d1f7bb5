package day04

import "fmt"

// Phase is the state machine's tag.
type Phase int

const (
	NoActiveGuard Phase = iota
	Awake
	Asleep
)

// State is the reconstructor's state between events. Guard is meaningful in
// Awake and Asleep; SleepStart only in Asleep.
type State struct {
	Phase      Phase
	Guard      int
	SleepStart int
}

func (s State) String() string {
	switch s.Phase {
	case Awake:
		return fmt.Sprintf("guard #%d awake", s.Guard)
	case Asleep:
		return fmt.Sprintf("guard #%d asleep since minute %d", s.Guard, s.SleepStart)
	}
	return "no guard on duty"
}

// SleepInterval is the half-open minute range [Start, End) during which
// Guard slept.
type SleepInterval struct {
	Guard int
	Start int
	End   int
}

// Minutes is the interval length.
func (iv SleepInterval) Minutes() int { return iv.End - iv.Start }

// Step applies ev to s. It returns the next state and, when ev closes a
// sleep, the completed interval.
func Step(s State, ev Event) (State, *SleepInterval, error) {
	switch ev.Kind {
	case ShiftStart:
		return State{Phase: Awake, Guard: ev.Guard}, nil, nil

	case SleepStart:
		if s.Phase != Awake {
			return s, nil, &TransitionError{Line: ev.Line, State: s, Event: ev}
		}
		return State{Phase: Asleep, Guard: s.Guard, SleepStart: ev.Time.Minute}, nil, nil

	case WakeUp:
		if s.Phase != Asleep {
			return s, nil, &TransitionError{Line: ev.Line, State: s, Event: ev}
		}
		if ev.Time.Minute <= s.SleepStart {
			return s, nil, &TransitionError{
				Line:  ev.Line,
				State: s,
				Event: ev,
				Msg:   "wake-up minute must be after the sleep minute",
			}
		}
		iv := &SleepInterval{Guard: s.Guard, Start: s.SleepStart, End: ev.Time.Minute}
		return State{Phase: Awake, Guard: s.Guard}, iv, nil
	}
	return s, nil, &TransitionError{Line: ev.Line, State: s, Event: ev, Msg: "unknown event kind"}
}

// Reconstruct walks time-ordered events and returns every completed sleep
// interval in the order the guards woke up.
func Reconstruct(events []Event) ([]SleepInterval, error) {
	var (
		state     State
		intervals []SleepInterval
	)
	for _, ev := range events {
		next, iv, err := Step(state, ev)
		if err != nil {
			return nil, err
		}
		if iv != nil {
			intervals = append(intervals, *iv)
		}
		state = next
	}
	return intervals, nil
}
