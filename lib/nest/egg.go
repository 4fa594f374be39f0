package nest

import "time"

// Egg is one stored record. An Egg is immutable once laid; overwriting a
// key replaces the whole Egg, including its creation timestamp.
type Egg struct {
	Key       string
	Value     string
	CreatedAt time.Time
}

// NewEgg creates an Egg stamped with the current time.
func NewEgg(key, value string) Egg {
	return Egg{
		Key:       key,
		Value:     value,
		CreatedAt: time.Now(),
	}
}
