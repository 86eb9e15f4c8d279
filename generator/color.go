package generator

import (
	"math/rand"
	"root/constant"
	"root/model"
	"time"
)

// ColorGenerator draws random channel values from one rand source.
// Instances are not safe for concurrent use; the package level
// functions below are.
type ColorGenerator struct {
	rng *rand.Rand
}

// NewColorGenerator seeds a generator from the wall clock
func NewColorGenerator() *ColorGenerator {
	s := rand.NewSource(time.Now().UnixNano())
	return &ColorGenerator{rng: rand.New(s)}
}

// NewSeededColorGenerator injects a rand source for deterministic output
func NewSeededColorGenerator(rng *rand.Rand) *ColorGenerator {
	return &ColorGenerator{rng: rng}
}

// Channel returns a uniform value in [0,255]
func (g *ColorGenerator) Channel() int {
	return g.rng.Intn(constant.ChannelMax + 1)
}

// Color draws the three channels independently
func (g *ColorGenerator) Color() model.Color {
	return model.Color{R: g.Channel(), G: g.Channel(), B: g.Channel()}
}

// RandomChannel samples one channel from the process-wide source
func RandomChannel() int {
	return rand.Intn(constant.ChannelMax + 1)
}

// RandomColor draws a full color from the process-wide source
func RandomColor() model.Color {
	return model.Color{R: RandomChannel(), G: RandomChannel(), B: RandomChannel()}
}
