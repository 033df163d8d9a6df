package experiments

import "rpsls/game"

// Summary tallies the outcomes of one matchup.
type Summary struct {
	Matchup      int
	Human        string
	Opponent     string
	Games        int
	HumanWins    int
	ComputerWins int
	Undecided    int
	MeanRounds   float64
}

// HumanWinRate is the share of games the scripted human won.
func (s Summary) HumanWinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.HumanWins) / float64(s.Games)
}

// Summarize tallies a report per matchup, in matchup order.
func Summarize(report *Report) []Summary {
	summaries := make([]Summary, len(report.Matchups))
	index := map[int]int{}
	for i, m := range report.Matchups {
		summaries[i] = Summary{Matchup: m.ID, Human: m.Human, Opponent: m.Opponent}
		index[m.ID] = i
	}

	rounds := make([]int, len(summaries))
	for _, record := range report.Matches {
		i, ok := index[record.Matchup]
		if !ok {
			continue
		}
		s := &summaries[i]
		s.Games++
		rounds[i] += record.Rounds
		switch record.Winner {
		case game.HumanWinner:
			s.HumanWins++
		case game.ComputerWinner:
			s.ComputerWins++
		default:
			s.Undecided++
		}
	}
	for i := range summaries {
		if summaries[i].Games > 0 {
			summaries[i].MeanRounds = float64(rounds[i]) / float64(summaries[i].Games)
		}
	}
	return summaries
}
