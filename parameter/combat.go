package parameter

import (
	"time"
)

// Firing
const (
	// CombatShootTimeDuration is how long the shooting flag stays set after a shot, feeds crosshair bloom
	CombatShootTimeDuration = 50 * time.Millisecond

	// CombatDefaultFireRate is the fire interval for weapons without a table row
	CombatDefaultFireRate = 100 * time.Millisecond

	// CombatEquipDuration is the Equipping lock after a weapon lands in hand, zero disables the state
	CombatEquipDuration = 250 * time.Millisecond
)

// Ammo reserve seeded at spawn
const (
	CombatStartingAmmo9mm = 50
	CombatStartingAmmoAR  = 120
)

// Default weapon definition, applied when the weapon table has no row
const (
	CombatDefaultMagazineCapacity = 30
	CombatDefaultAmmo             = 30
	CombatDefaultReloadSection    = "Reload SMG"
	CombatDefaultClipBone         = "smg_clip"
)

// Animation montages and sections
const (
	CombatHipFireMontage = "HipFire"
	CombatHipFireSection = "StartFire"
	CombatReloadMontage  = "Reload"
	CombatEquipMontage   = "Equip"
	CombatEquipSection   = "Equip"

	// CombatReloadMontageLength is used by hosts that fake the reload notify with a timer
	CombatReloadMontageLength = 1200 * time.Millisecond
)

// Pistol slide recoil
const (
	// CombatSlideDisplacementTime is the length of the slide kick after a pistol shot
	CombatSlideDisplacementTime = 200 * time.Millisecond

	// CombatMaxSlideDisplacement is the peak slide travel in world units
	CombatMaxSlideDisplacement = 4.0

	// CombatMaxRecoilRotation is the peak muzzle climb in degrees
	CombatMaxRecoilRotation = 5.0
)

// Crosshair spread
const (
	CombatCrosshairBase = 0.5

	// CombatCrosshairWalkSpeedRange maps ground speed [0, range] to velocity factor [0, 1]
	CombatCrosshairWalkSpeedRange = 600.0

	CombatCrosshairInAirTarget = 2.25
	CombatCrosshairInAirRate   = 2.25
	CombatCrosshairLandRate    = 30.0
	CombatCrosshairAimTarget   = -0.5
	CombatCrosshairAimRate     = 5.0
	CombatCrosshairShootTarget = 0.4
	CombatCrosshairShootRate   = 60.0
)
