package game

import (
	"fmt"
	"rpsls/meta"
	"rpsls/utils"
	"strings"
)

// Symbol is one of the five playable moves. Its numeric value is its position
// in the fixed cycle, which both the dominance rule and the counter-pick rely on.
type Symbol int

const (
	Rock Symbol = iota
	Lizard
	Spock
	Scissors
	Paper
)

var labels = []string{"rock", "lizard", "spock", "scissors", "paper"}

// Symbols returns the fixed ordering of all symbols. The slice is a fresh copy.
func Symbols() []Symbol {
	symbols := make([]Symbol, meta.NUM_SYMBOLS)
	for i := range symbols {
		symbols[i] = Symbol(i)
	}
	return symbols
}

// ParseSymbol maps a label such as "Spock " to its Symbol.
func ParseSymbol(s string) (Symbol, error) {
	idx := utils.FindIndex(labels, strings.ToLower(strings.TrimSpace(s)))
	if idx < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, s)
	}
	return Symbol(idx), nil
}

func (s Symbol) Valid() bool {
	return s >= 0 && int(s) < meta.NUM_SYMBOLS
}

func (s Symbol) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
	return labels[s]
}

// Title returns the capitalized label, e.g. "Scissors".
func (s Symbol) Title() string {
	label := s.String()
	return strings.ToUpper(label[:1]) + label[1:]
}

// Counter returns the symbol two positions ahead in the cycle, which beats s.
func (s Symbol) Counter() Symbol {
	return Symbol((int(s) + 2) % meta.NUM_SYMBOLS)
}
