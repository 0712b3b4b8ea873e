package trainer

import "fmt"

// Tally counts answers for the current session.
type Tally struct {
	Correct   int
	Incorrect int
	Invalid   int
}

// Total is the number of graded answers; invalid input is not graded.
func (t Tally) Total() int { return t.Correct + t.Incorrect }

// Accuracy is Correct/Total, or 0 before the first graded answer.
func (t Tally) Accuracy() float64 {
	if t.Total() == 0 {
		return 0
	}
	return float64(t.Correct) / float64(t.Total())
}

func (t Tally) String() string {
	s := fmt.Sprintf("%d/%d correct (%.0f%%)", t.Correct, t.Total(), t.Accuracy()*100)
	if t.Invalid > 0 {
		s += fmt.Sprintf(", %d invalid", t.Invalid)
	}
	return s
}
