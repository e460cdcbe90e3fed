package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer, bounds latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMaxVoicesPerSound caps overlapping copies of one cue; forced plays bypass the cap
	AudioMaxVoicesPerSound = 4
)

// Gunshot
const (
	GunshotDuration = 120 * time.Millisecond
	GunshotAttack   = 2 * time.Millisecond
	GunshotHold     = 15 * time.Millisecond
)

// Pickup chime
const (
	PickupChimeDuration = 180 * time.Millisecond
	PickupChimeAttack   = 5 * time.Millisecond
	PickupChimeHold     = 30 * time.Millisecond
)

// Equip clack
const (
	EquipClackDuration = 90 * time.Millisecond
	EquipClackAttack   = 1 * time.Millisecond
	EquipClackHold     = 5 * time.Millisecond
)

// Reload
const (
	ReloadClickDuration = 60 * time.Millisecond
	ReloadClickGap      = 140 * time.Millisecond
)
