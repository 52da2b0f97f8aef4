package engine

// The engine owns a single xorshift64* stream seeded at construction. All
// shuffles and deals consume it in a fixed order, so two games built with the
// same seed and fed the same operations stay bit-identical.

// nextRand advances the stream and returns the next value.
func (g *Game) nextRand() uint64 {
	x := g.RNG
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.RNG = x
	return x * 0x2545F4914F6CDD1D
}

// randN returns a value in [0, n). n must be > 0.
func (g *Game) randN(n uint64) uint64 {
	return g.nextRand() % n
}

// shuffleCards performs an in-place Fisher-Yates shuffle.
func (g *Game) shuffleCards(cards []CardID) {
	for i := len(cards) - 1; i > 0; i-- {
		j := int(g.randN(uint64(i + 1)))
		cards[i], cards[j] = cards[j], cards[i]
	}
}
