package round

import "time"

// Config holds optional settings for a Deck.
type Config struct {
	Seed *int64 // nil = seeded from the clock
}

// DefaultConfig returns a config with a clock-based seed.
func DefaultConfig() Config {
	return Config{
		Seed: nil,
	}
}

func (c Config) seed() int64 {
	if c.Seed != nil {
		return *c.Seed
	}
	return time.Now().UnixNano()
}
