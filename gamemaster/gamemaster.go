package gamemaster

import (
	"errors"
	"fmt"
	"rpsls/player"
	"rpsls/strategy"
	"strings"

	"github.com/rs/zerolog/log"
)

// Kind is the opponent category the human asks for.
type Kind string

const (
	Smart Kind = "smart" // the adaptive opponent
	Silly Kind = "silly" // a random static profile
)

var (
	ErrUnknownKind    = errors.New("unknown opponent kind")
	ErrUnknownProfile = errors.New("unknown opponent profile")
)

// Kinds lists the accepted opponent kinds.
func Kinds() []Kind {
	return []Kind{Smart, Silly}
}

// ParseKind maps user input to a Kind.
func ParseKind(s string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range Kinds() {
		if kind == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

type Option func(r *Roster)

// WithPersistBelief keeps the adaptive opponent's belief across matches.
// Otherwise the belief is reset whenever the opponent is handed out again.
func WithPersistBelief(persist bool) Option {
	return func(r *Roster) {
		r.persist = persist
	}
}

// WithTuning sets the adaptive opponent's evidence multiplier.
func WithTuning(tuning float64) Option {
	return func(r *Roster) {
		r.tuning = tuning
	}
}

// WithProfiles replaces the static opponents.
func WithProfiles(profiles []strategy.Profile) Option {
	return func(r *Roster) {
		if len(profiles) > 0 {
			r.profiles = profiles
		}
	}
}

// Roster builds computer opponents. Every opponent gets its own sampler seeded
// from the roster, so a seeded roster replays the same games.
type Roster struct {
	sampler  *strategy.Sampler
	profiles []strategy.Profile
	persist  bool
	tuning   float64
	smart    *player.Computer
}

func NewRoster(seed uint64, options ...Option) *Roster {
	r := &Roster{
		sampler:  strategy.NewSampler(seed),
		profiles: strategy.Profiles(),
		tuning:   strategy.TuningParam,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Opponent returns a computer player of the given kind.
func (r *Roster) Opponent(kind Kind) (*player.Computer, error) {
	switch kind {
	case Smart:
		return r.adaptive(), nil
	case Silly:
		profile := r.profiles[r.sampler.Intn(len(r.profiles))]
		return r.static(profile)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Profile returns the opponent with the given name, static or adaptive.
func (r *Roster) Profile(name string) (*player.Computer, error) {
	if name == strategy.AdaptiveName {
		return r.adaptive(), nil
	}
	for _, p := range r.profiles {
		if p.Name == name {
			return r.static(p)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// Names lists every opponent the roster can build.
func (r *Roster) Names() []string {
	names := make([]string, 0, len(r.profiles)+1)
	for _, p := range r.profiles {
		names = append(names, p.Name)
	}
	return append(names, strategy.AdaptiveName)
}

func (r *Roster) adaptive() *player.Computer {
	if r.smart == nil {
		a := strategy.NewAdaptive(r.child(), strategy.WithTuning(r.tuning))
		r.smart = player.NewComputer(a)
		return r.smart
	}

	if r.persist {
		log.Debug().Floats64("belief", beliefOf(r.smart)).Msg("reusing adaptive opponent")
		r.smart.ResetPoints()
	} else {
		r.smart.Reset()
	}
	return r.smart
}

func (r *Roster) static(p strategy.Profile) (*player.Computer, error) {
	s, err := p.New(r.child())
	if err != nil {
		return nil, err
	}
	return player.NewComputer(s), nil
}

func (r *Roster) child() *strategy.Sampler {
	return strategy.NewSampler(r.sampler.Uint64())
}

func beliefOf(c *player.Computer) []float64 {
	a, ok := c.Strategy.(*strategy.Adaptive)
	if !ok {
		return nil
	}
	belief := a.Belief()
	return belief[:]
}
