package tracker

import "fmt"

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.0f%%", p)
}

// ratio computes consumed over goal as a Percent clamped to [0,100].
func ratio(consumed, goal Amount) Percent {
	if !goal.IsPositive() {
		return 0
	}
	p := Percent(consumed.Float() / goal.Float() * 100)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
