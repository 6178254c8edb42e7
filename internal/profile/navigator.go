package profile

// Navigator walks the fixed question sequence with the single conditional
// skip: a "Full body" focus bypasses the muscle-group step in both
// directions. The skip keys on the exact focus string; any other answer
// visits every step.
type Navigator struct {
	steps []QuestionStep
}

// NewNavigator builds a navigator over the fixed step sequence.
func NewNavigator() *Navigator {
	return &Navigator{steps: Steps()}
}

// Steps exposes the ordered step descriptors.
func (n *Navigator) Steps() []QuestionStep { return n.steps }

// Len returns the number of steps.
func (n *Navigator) Len() int { return len(n.steps) }

// Step returns the descriptor at index i.
func (n *Navigator) Step(i int) QuestionStep { return n.steps[i] }

// IsLast reports whether i is the final step index.
func (n *Navigator) IsLast(i int) bool { return i == len(n.steps)-1 }

// Advance returns the next step index from i. Stepping forward off the focus
// step jumps over the muscle step when the focus answer is "Full body".
// Advancing from the last step is a no-op.
func (n *Navigator) Advance(i int, raw RawAnswers) int {
	if i >= len(n.steps)-1 {
		return i
	}
	if i == 0 && raw.Focus == FocusFullBody {
		return i + 2
	}
	return i + 1
}

// Retreat returns the previous step index from i, mirroring the Advance
// skip so that the two are inverses on every path. Retreating from 0 is a
// no-op.
func (n *Navigator) Retreat(i int, raw RawAnswers) int {
	if i <= 0 {
		return i
	}
	if i == 2 && raw.Focus == FocusFullBody {
		return i - 2
	}
	return i - 1
}

// Numbering returns the visible "N." prefix for every step on the current
// path. When the muscle step is inactive, every later step shifts down by
// one so the user still sees a dense 1..8 sequence.
func (n *Navigator) Numbering(raw RawAnswers) map[StepKey]int {
	muscleActive := raw.Focus == FocusTargetMuscles
	nums := make(map[StepKey]int, len(n.steps))
	for i, step := range n.steps {
		num := i + 1
		if !muscleActive && i >= 2 {
			num--
		}
		nums[step.Key] = num
	}
	return nums
}
