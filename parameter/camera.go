package parameter

// Field of view
const (
	CameraDefaultFOV = 90.0
	CameraZoomedFOV  = 30.0

	// CameraZoomInterpSpeed eases FOV toward its target
	CameraZoomInterpSpeed = 20.0
)

// Look rates in degrees per second, gamepad style input
const (
	CameraHipTurnRate   = 90.0
	CameraHipLookUpRate = 90.0
	CameraAimTurnRate   = 20.0
	CameraAimLookUpRate = 20.0
)

// Mouse sensitivity scale factors
const (
	CameraMouseHipTurnRate   = 1.0
	CameraMouseHipLookUpRate = 1.0
	CameraMouseAimTurnRate   = 0.6
	CameraMouseAimLookUpRate = 0.6
)

// Pitch limits
const (
	CameraMinPitch = -80.0
	CameraMaxPitch = 80.0
)

// Movement
const (
	CharacterBaseMovementSpeed   = 650.0
	CharacterCrouchMovementSpeed = 300.0

	// CharacterItemTraceDistance bounds the crosshair trace for items
	CharacterItemTraceDistance = 50000.0
)

// Crouch capsule and friction
const (
	CharacterStandingHalfHeight   = 88.0
	CharacterCrouchingHalfHeight  = 44.0
	CharacterHalfHeightInterp     = 20.0
	CharacterBaseGroundFriction   = 2.0
	CharacterCrouchGroundFriction = 100.0
)
