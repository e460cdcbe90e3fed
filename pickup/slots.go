package pickup

import (
	"github.com/lixenwraith/gunplay/parameter"
	"github.com/lixenwraith/gunplay/vmath"
)

// Slot is a camera-relative anchor items fly to, with the number of items headed there
type Slot struct {
	Offset vmath.Vec3F
	Count  int
}

// Slots are the interp anchors; index 0 is reserved for weapons
type Slots struct {
	slots []Slot
}

func NewSlots(offsets []vmath.Vec3F) *Slots {
	s := &Slots{slots: make([]Slot, len(offsets))}
	for i, off := range offsets {
		s.slots[i].Offset = off
	}
	return s
}

// DefaultSlotOffsets places the weapon slot ahead of and above the camera
// and fans the generic slots out below it
func DefaultSlotOffsets() []vmath.Vec3F {
	offsets := make([]vmath.Vec3F, parameter.PickupSlotCount)
	offsets[parameter.PickupWeaponSlot] = vmath.Vec3F{
		X: parameter.PickupCameraInterpDistance,
		Z: parameter.PickupCameraInterpElevation,
	}
	generic := parameter.PickupSlotCount - 1
	for i := 1; i < parameter.PickupSlotCount; i++ {
		lateral := (float64(i-1) - float64(generic-1)/2) * parameter.PickupSlotSpread
		offsets[i] = vmath.Vec3F{X: parameter.PickupCameraInterpDistance, Y: lateral}
	}
	return offsets
}

func (s *Slots) Len() int {
	return len(s.slots)
}

// Count returns occupancy, zero for out-of-range indices
func (s *Slots) Count(i int) int {
	if i < 0 || i >= len(s.slots) {
		return 0
	}
	return s.slots[i].Count
}

// Location resolves slot i in world space for the given camera
func (s *Slots) Location(i int, camera vmath.Transform) (vmath.Vec3F, bool) {
	if i < 0 || i >= len(s.slots) {
		return vmath.Vec3F{}, false
	}
	return camera.TransformPosition(s.slots[i].Offset), true
}

// Lowest returns the least occupied generic slot, ties to the lowest index
// Falls back to the weapon slot when no generic slots exist
func (s *Slots) Lowest() int {
	if len(s.slots) <= 1 {
		return parameter.PickupWeaponSlot
	}
	best := 1
	for i := 2; i < len(s.slots); i++ {
		if s.slots[i].Count < s.slots[best].Count {
			best = i
		}
	}
	return best
}

// Increment adjusts occupancy by +1 or -1; other amounts and bad indices are rejected
// Occupancy never drops below zero
func (s *Slots) Increment(i, amount int) bool {
	if amount != 1 && amount != -1 {
		return false
	}
	if i < 0 || i >= len(s.slots) {
		return false
	}
	if amount < 0 && s.slots[i].Count == 0 {
		return false
	}
	s.slots[i].Count += amount
	return true
}
