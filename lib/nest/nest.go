package nest

// Nest is the in-memory keyed collection of Eggs. A key maps to at most one
// Egg at any instant.
//
// Thread-safety: a Nest is NOT safe for concurrent use. All access must
// happen from the engine's processing loop.
type Nest struct {
	eggs map[string]Egg
}

// NewNest creates an empty Nest.
func NewNest() *Nest {
	return &Nest{
		eggs: make(map[string]Egg),
	}
}

// Set lays a fresh Egg for key, replacing any previous one wholesale.
func (n *Nest) Set(key, value string) {
	n.eggs[key] = NewEgg(key, value)
}

// Get returns the current Egg for key. The boolean indicates whether an
// Egg was found.
func (n *Nest) Get(key string) (Egg, bool) {
	egg, ok := n.eggs[key]
	return egg, ok
}

// Remove drops the Egg for key. Removing an absent key is a no-op.
func (n *Nest) Remove(key string) {
	delete(n.eggs, key)
}

// Len returns the number of Eggs currently in the Nest.
func (n *Nest) Len() int {
	return len(n.eggs)
}
