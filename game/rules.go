package game

import "rpsls/meta"

// Outcome is the result of comparing two symbols.
type Outcome int

const (
	Tie Outcome = iota
	FirstWins
	SecondWins
)

func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return "first"
	case SecondWins:
		return "second"
	default:
		return "tie"
	}
}

// Beats applies the dominance rule to a and b. Every symbol beats the symbols one
// and three positions ahead of it in the cycle and loses to the other two:
// rock beats lizard & scissors, lizard beats spock & paper, spock beats scissors &
// rock, scissors beats paper & lizard, paper beats rock & spock.
func Beats(a, b Symbol) Outcome {
	if a == b {
		return Tie
	}
	distance := ((int(b)-int(a))%meta.NUM_SYMBOLS + meta.NUM_SYMBOLS) % meta.NUM_SYMBOLS
	if distance%2 == 1 {
		return FirstWins
	}
	return SecondWins
}
