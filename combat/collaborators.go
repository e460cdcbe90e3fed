package combat

import (
	"github.com/lixenwraith/gunplay/core"
	"github.com/lixenwraith/gunplay/item"
)

// Audio plays sound cues; force bypasses host-side voice limits
type Audio interface {
	PlaySound(sound core.SoundType, force bool)
}

// Animator plays montage sections on the character mesh
type Animator interface {
	PlayMontage(montage, section string)
}

// Effects spawns muzzle flash and the bullet hit trace for a shot
type Effects interface {
	SendBullet(weapon *item.Item)
}

// SlideKicker starts the pistol slide animation, satisfied by item.World
type SlideKicker interface {
	StartSlide(weapon *item.Item)
}

type nopAudio struct{}

func (nopAudio) PlaySound(core.SoundType, bool) {}

type nopAnimator struct{}

func (nopAnimator) PlayMontage(string, string) {}

type nopEffects struct{}

func (nopEffects) SendBullet(*item.Item) {}

type nopSlide struct{}

func (nopSlide) StartSlide(*item.Item) {}
