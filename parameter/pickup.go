package parameter

import (
	"time"
)

// Item acquisition
const (
	// PickupZCurveTime is the flight duration when no Z curve override is configured
	PickupZCurveTime = 700 * time.Millisecond

	// PickupInterpSpeed is the X/Y exponential interpolation rate toward the slot anchor
	PickupInterpSpeed = 30.0

	// PickupSoundResetTime is the cooldown between non-forced pickup or equip sounds
	PickupSoundResetTime = 200 * time.Millisecond

	// PickupSlotCount is one weapon slot plus five generic slots
	PickupSlotCount = 6

	// PickupWeaponSlot is reserved for weapons and never chosen by occupancy
	PickupWeaponSlot = 0
)

// Interp anchors relative to the camera, slot 0 first
const (
	// PickupCameraInterpDistance is how far in front of the camera the weapon slot sits
	PickupCameraInterpDistance = 250.0

	// PickupCameraInterpElevation lifts the weapon slot above the camera axis
	PickupCameraInterpElevation = 65.0

	// PickupSlotSpread is the lateral spacing between generic slots
	PickupSlotSpread = 60.0
)

// Drop and settle
const (
	// PickupThrowTime is how long a dropped weapon falls before returning to Pickup
	PickupThrowTime = 700 * time.Millisecond

	// PickupThrowImpulse scales the unit throw direction
	PickupThrowImpulse = 10000.0

	// PickupThrowTilt rotates the right vector about forward, degrees
	PickupThrowTilt = -20.0

	// PickupThrowSpreadMin and Max bound the random yaw about up, degrees
	PickupThrowSpreadMin = 10.0
	PickupThrowSpreadMax = 30.0
)

// Glow and outline
const (
	// PickupPulseCurveTime is the repeat period of the glow pulse while an item waits for pickup
	PickupPulseCurveTime = 5 * time.Second

	PickupGlowAmount             = 150.0
	PickupFresnelExponent        = 3.0
	PickupFresnelReflectFraction = 4.0
)
