package metrics

import (
	"rpsls/game"
	"time"
)

type RoundMetric struct {
	Round  int
	Result game.RoundResult
}

type MatchMetric struct {
	Opponent       string
	Winner         game.Winner
	HumanPoints    int
	ComputerPoints int
	Rounds         int
	Ties           int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	RoundMetrics   []RoundMetric
}

type Collector interface {
	Start(opponent string)
	AddRound(result game.RoundResult)
	Complete(score game.Score) MatchMetric
}

type collector struct {
	opponent  string
	startTime time.Time
	rounds    []RoundMetric
	ties      int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(opponent string) {
	m.opponent = opponent
	m.startTime = time.Now()
	m.rounds = nil
	m.ties = 0
}

func (m *collector) AddRound(result game.RoundResult) {
	m.rounds = append(m.rounds, RoundMetric{Round: len(m.rounds) + 1, Result: result})
	if result.IsTie() {
		m.ties++
	}
}

func (m *collector) Complete(score game.Score) MatchMetric {
	end := time.Now()
	return MatchMetric{
		Opponent:       m.opponent,
		Winner:         score.Leader(),
		HumanPoints:    score.HumanPoints,
		ComputerPoints: score.ComputerPoints,
		Rounds:         len(m.rounds),
		Ties:           m.ties,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		RoundMetrics:   m.rounds,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(opponent string)                 {}
func (m *dummyCollector) AddRound(result game.RoundResult)      {}
func (m *dummyCollector) Complete(score game.Score) MatchMetric { return MatchMetric{} }
