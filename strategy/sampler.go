package strategy

import (
	"fmt"
	"rpsls/game"
	"rpsls/meta"
	"rpsls/utils"
	"time"

	"golang.org/x/exp/rand"
)

// Sampler draws symbols from weight vectors. A Sampler is not safe for
// concurrent use; give each goroutine its own.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a Sampler seeded with seed, or with the clock if seed is 0.
func NewSampler(seed uint64) *Sampler {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Tickets discretizes weights into a pool of meta.POOL_SIZE tickets. Each count
// is floored, so a small positive weight can end up with no tickets at all.
func Tickets(weights game.WeightVector) ([meta.NUM_SYMBOLS]int, error) {
	var tickets [meta.NUM_SYMBOLS]int
	normalized, err := weights.Normalize()
	if err != nil {
		return tickets, err
	}
	for i, p := range normalized {
		tickets[i] = int(p * meta.POOL_SIZE)
	}
	return tickets, nil
}

// Sample draws one symbol with probability proportional to its ticket count.
func (s *Sampler) Sample(weights game.WeightVector) (game.Symbol, error) {
	tickets, err := Tickets(weights)
	if err != nil {
		return 0, err
	}
	total := utils.Sum(tickets[:])
	if total == 0 {
		return 0, fmt.Errorf("%w: no symbol received a ticket", game.ErrInvalidWeightVector)
	}

	draw := s.rng.Intn(total)
	for i, n := range tickets {
		if draw < n {
			return game.Symbol(i), nil
		}
		draw -= n
	}
	panic("ticket draw out of range")
}

// Intn returns a uniform int in [0, n).
func (s *Sampler) Intn(n int) int {
	return s.rng.Intn(n)
}

// Uint64 returns a random value, used to seed child samplers.
func (s *Sampler) Uint64() uint64 {
	return s.rng.Uint64()
}
