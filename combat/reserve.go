package combat

import (
	"github.com/lixenwraith/gunplay/item"
	"github.com/lixenwraith/gunplay/parameter"
)

// AmmoReserve is the carried ammunition per type; counts never go negative
type AmmoReserve struct {
	counts map[item.AmmoType]int
}

// NewAmmoReserve seeds the reserve, clamping negative seeds to zero
func NewAmmoReserve(seed map[item.AmmoType]int) *AmmoReserve {
	r := &AmmoReserve{counts: make(map[item.AmmoType]int, len(seed))}
	for t, n := range seed {
		r.counts[t] = max(n, 0)
	}
	return r
}

// DefaultReserve returns the spawn loadout
func DefaultReserve() *AmmoReserve {
	return NewAmmoReserve(map[item.AmmoType]int{
		item.Ammo9mm: parameter.CombatStartingAmmo9mm,
		item.AmmoAR:  parameter.CombatStartingAmmoAR,
	})
}

func (r *AmmoReserve) Count(t item.AmmoType) int {
	return r.counts[t]
}

// Has reports whether the type has an entry, even an empty one
func (r *AmmoReserve) Has(t item.AmmoType) bool {
	_, ok := r.counts[t]
	return ok
}

// Add merges n rounds, creating the entry when absent; negative n is ignored
func (r *AmmoReserve) Add(t item.AmmoType, n int) {
	if n < 0 {
		return
	}
	r.counts[t] += n
}

// Take removes up to n rounds and returns how many were removed
func (r *AmmoReserve) Take(t item.AmmoType, n int) int {
	if n <= 0 {
		return 0
	}
	have := r.counts[t]
	taken := min(n, have)
	if _, ok := r.counts[t]; ok {
		r.counts[t] = have - taken
	}
	return taken
}

// Snapshot copies the counts
func (r *AmmoReserve) Snapshot() map[item.AmmoType]int {
	out := make(map[item.AmmoType]int, len(r.counts))
	for t, n := range r.counts {
		out[t] = n
	}
	return out
}
