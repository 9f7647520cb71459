package workout

import (
	"math/rand/v2"
	"time"
)

// Quotes are the motivation lines attached to finished sessions.
var Quotes = []string{
	"Stay Paws-itive! 🐾",
	"Purr-fect session! ✨",
	"You're doing clawsome! 😻",
	"Feline strong today! 💪",
	"Meow-velous progress! ⭐",
}

// Picker draws quotes from an injected random source.
type Picker struct {
	rng *rand.Rand
}

// NewPicker wraps rng. A nil rng is seeded from the clock.
func NewPicker(rng *rand.Rand) *Picker {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Picker{rng: rng}
}

// NewSeededPicker returns a picker whose sequence is fixed by seed.
func NewSeededPicker(seed uint64) *Picker {
	return NewPicker(rand.New(rand.NewPCG(seed, seed)))
}

// Pick returns one quote uniformly at random.
func (p *Picker) Pick() string {
	return Quotes[p.rng.IntN(len(Quotes))]
}
