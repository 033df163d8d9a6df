package console

import (
	"bufio"
	"fmt"
	"io"
	"rpsls/game"
	"rpsls/gamemaster"
	"slices"
	"strings"
)

// Shell talks to a human over line-oriented text. It re-prompts until the
// input is valid and returns io.EOF once input runs out.
type Shell struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Shell {
	return &Shell{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (s *Shell) AskName() (string, error) {
	for {
		line, err := s.prompt("What's your name?")
		if err != nil {
			return "", err
		}
		if name := strings.TrimSpace(line); name != "" {
			return name, nil
		}
		s.say("Sorry, must enter a value.")
	}
}

func (s *Shell) Welcome(winningScore int) {
	s.say("Welcome to %s!", title())
	s.say("The first player to %d wins!", winningScore)
}

func (s *Shell) ChooseOpponent() (gamemaster.Kind, error) {
	for {
		line, err := s.prompt("Would you like to play against a smart computer (type 'smart') or a silly computer (type 'silly')?")
		if err != nil {
			return "", err
		}
		kind, err := gamemaster.ParseKind(line)
		if err == nil {
			return kind, nil
		}
		s.say("Sorry, invalid choice.")
	}
}

func (s *Shell) ChooseHumanMove(valid []game.Symbol) (game.Symbol, error) {
	options := make([]string, len(valid))
	for i, v := range valid {
		options[i] = v.String()
	}

	for {
		s.say("")
		line, err := s.prompt(fmt.Sprintf("Please enter choice from %s.", strings.Join(options, ", ")))
		if err != nil {
			return 0, err
		}
		move, err := game.ParseSymbol(line)
		if err == nil && slices.Contains(valid, move) {
			return move, nil
		}
		s.say("Sorry, invalid choice.")
	}
}

func (s *Shell) ReportRound(result game.RoundResult, names game.Names) {
	s.say("%s chose %s.", names.Human, result.Human)
	s.say("%s chose %s.", names.Computer, result.Computer)
	switch result.Winner {
	case game.HumanWinner:
		s.say("%s won that round!", names.Human)
	case game.ComputerWinner:
		s.say("%s won that round!", names.Computer)
	default:
		s.say("It's a tie!")
	}
}

func (s *Shell) ReportScore(score game.Score) {
	s.say("%s has %d points.", score.Human, score.HumanPoints)
	s.say("%s has %d points.", score.Computer, score.ComputerPoints)
}

func (s *Shell) ReportMatchWinner(name string) {
	s.say("%s won the match!", name)
}

func (s *Shell) AskPlayAgain() (bool, error) {
	for {
		line, err := s.prompt("Would you like to play again? (y/n)")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		s.say("Sorry, must be y or n.")
	}
}

func (s *Shell) Goodbye() {
	s.say("Thanks for playing %s. Good bye!", title())
}

func (s *Shell) prompt(question string) (string, error) {
	fmt.Fprintln(s.out, question)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

func (s *Shell) say(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

// title renders the symbols as "Rock, Lizard, Spock, Scissors, Paper".
func title() string {
	symbols := game.Symbols()
	names := make([]string, len(symbols))
	for i, sym := range symbols {
		names[i] = sym.Title()
	}
	return strings.Join(names, ", ")
}
