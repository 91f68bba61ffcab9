package prompts

import (
	"errors"
	"fmt"
)

// Kind selects the narrative skeleton of one tutoring phase.
type Kind string

const (
	KindGreeter        Kind = "greeter"
	KindIntroGiver     Kind = "introGiver"
	KindQuestionReader Kind = "questionReader"
	KindBrainStormer   Kind = "brainStormer"
	KindStepTutor      Kind = "stepTutor"
	KindCloser         Kind = "closer"
)

var ErrUnknownKind = errors.New("unknown prompt kind")

// Kinds returns every kind in session order.
func Kinds() []Kind {
	return []Kind{
		KindGreeter,
		KindIntroGiver,
		KindQuestionReader,
		KindBrainStormer,
		KindStepTutor,
		KindCloser,
	}
}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
