package combat

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gunplay/core"
	"github.com/lixenwraith/gunplay/engine"
	"github.com/lixenwraith/gunplay/item"
	"github.com/lixenwraith/gunplay/parameter"
	"github.com/lixenwraith/gunplay/status"
)

// Settings are the tunables of the combat machine
type Settings struct {
	ShootDuration time.Duration
	EquipDuration time.Duration

	HipFireMontage string
	HipFireSection string
	ReloadMontage  string
	EquipMontage   string
	EquipSection   string
}

// DefaultSettings returns the stock combat tuning from parameter
func DefaultSettings() Settings {
	return Settings{
		ShootDuration:  parameter.CombatShootTimeDuration,
		EquipDuration:  parameter.CombatEquipDuration,
		HipFireMontage: parameter.CombatHipFireMontage,
		HipFireSection: parameter.CombatHipFireSection,
		ReloadMontage:  parameter.CombatReloadMontage,
		EquipMontage:   parameter.CombatEquipMontage,
		EquipSection:   parameter.CombatEquipSection,
	}
}

// Deps are the collaborators; nil entries fall back to no-ops
type Deps struct {
	Timers   *engine.Timers
	Audio    Audio
	Animator Animator
	Effects  Effects
	Slides   SlideKicker
	Status   *status.Registry
}

// Machine gates fire, reload and equip on one combat state and owns the ammo reserve
// All methods run on the simulation goroutine
type Machine struct {
	timers   *engine.Timers
	audio    Audio
	anim     Animator
	effects  Effects
	slides   SlideKicker
	settings Settings

	state   State
	weapon  *item.Item
	reserve *AmmoReserve

	fireButtonHeld bool
	aimButtonHeld  bool
	aiming         bool
	firingBullet   bool

	fireTimer  engine.TimerHandle
	shootTimer engine.TimerHandle
	equipTimer engine.TimerHandle

	statShots   *atomic.Int64
	statReloads *atomic.Int64
	statDry     *atomic.Int64
	statAiming  *atomic.Bool
}

// New creates a machine in Unoccupied; a nil reserve uses the default loadout
func New(deps Deps, settings Settings, reserve *AmmoReserve) *Machine {
	if deps.Timers == nil {
		deps.Timers = engine.NewTimers()
	}
	if deps.Audio == nil {
		deps.Audio = nopAudio{}
	}
	if deps.Animator == nil {
		deps.Animator = nopAnimator{}
	}
	if deps.Effects == nil {
		deps.Effects = nopEffects{}
	}
	if deps.Slides == nil {
		deps.Slides = nopSlide{}
	}
	if deps.Status == nil {
		deps.Status = status.NewRegistry()
	}
	if reserve == nil {
		reserve = DefaultReserve()
	}
	return &Machine{
		timers:      deps.Timers,
		audio:       deps.Audio,
		anim:        deps.Animator,
		effects:     deps.Effects,
		slides:      deps.Slides,
		settings:    settings,
		state:       StateUnoccupied,
		reserve:     reserve,
		statShots:   deps.Status.Ints.Get("combat.shots"),
		statReloads: deps.Status.Ints.Get("combat.reloads"),
		statDry:     deps.Status.Ints.Get("combat.dry_fires"),
		statAiming:  deps.Status.Bools.Get("combat.aiming"),
	}
}

// State returns the current combat state
func (m *Machine) State() State { return m.state }

// Weapon returns the equipped weapon, nil when unarmed
func (m *Machine) Weapon() *item.Item { return m.weapon }

// Reserve returns the ammo carried outside the magazine
func (m *Machine) Reserve() *AmmoReserve { return m.reserve }

func (m *Machine) Aiming() bool { return m.aiming }

func (m *Machine) AimButtonHeld() bool { return m.aimButtonHeld }

func (m *Machine) FireButtonHeld() bool { return m.fireButtonHeld }

// FiringBullet is true for ShootDuration after each shot
func (m *Machine) FiringBullet() bool { return m.firingBullet }

// WeaponHasAmmo reports loaded rounds in the equipped weapon
func (m *Machine) WeaponHasAmmo() bool {
	return m.weapon.IsWeapon() && m.weapon.Weapon.Ammo > 0
}

// CarryingAmmo reports reserve rounds for the equipped weapon's ammo type
func (m *Machine) CarryingAmmo() bool {
	if !m.weapon.IsWeapon() {
		return false
	}
	return m.reserve.Count(m.weapon.Weapon.AmmoType) > 0
}

// SetWeapon makes w the equipped weapon; an idle machine enters Equipping for EquipDuration
// A nil w clears the equipped weapon
func (m *Machine) SetWeapon(w *item.Item) {
	m.weapon = w
	if w == nil || m.state != StateUnoccupied || m.settings.EquipDuration <= 0 {
		return
	}

	m.state = StateEquipping
	m.anim.PlayMontage(m.settings.EquipMontage, m.settings.EquipSection)
	m.timers.Cancel(m.equipTimer)
	m.equipTimer = m.timers.Schedule(m.settings.EquipDuration, m.finishEquipping)
}

// finishEquipping returns to Unoccupied and replays what the window held back:
// aim, a held trigger, or the reload an empty weapon asked for
func (m *Machine) finishEquipping() {
	if m.state != StateEquipping {
		return
	}
	m.state = StateUnoccupied
	if m.aimButtonHeld {
		m.startAiming()
	}
	if m.WeaponHasAmmo() {
		if m.fireButtonHeld {
			m.FireWeapon()
		}
		return
	}
	m.ReloadWeapon()
}

func (m *Machine) FireButtonPressed() {
	m.fireButtonHeld = true
	m.FireWeapon()
}

func (m *Machine) FireButtonReleased() {
	m.fireButtonHeld = false
}

// FireWeapon shoots once if a loaded weapon is equipped and the machine is idle
func (m *Machine) FireWeapon() bool {
	if !m.weapon.IsWeapon() || m.state != StateUnoccupied {
		return false
	}
	w := m.weapon.Weapon
	if w.Ammo <= 0 {
		m.statDry.Add(1)
		m.audio.PlaySound(core.SoundDryFire, false)
		return false
	}

	m.audio.PlaySound(w.FireSound, false)
	m.effects.SendBullet(m.weapon)
	m.anim.PlayMontage(m.settings.HipFireMontage, m.settings.HipFireSection)
	m.startBulletFire()
	w.DecrementAmmo()
	m.startFireTimer(w.FireRate)
	if w.Type == item.WeaponPistol {
		m.slides.StartSlide(m.weapon)
	}
	m.statShots.Add(1)
	return true
}

func (m *Machine) startBulletFire() {
	m.firingBullet = true
	m.timers.Cancel(m.shootTimer)
	m.shootTimer = m.timers.Schedule(m.settings.ShootDuration, func() {
		m.firingBullet = false
	})
}

func (m *Machine) startFireTimer(rate time.Duration) {
	if rate <= 0 {
		rate = parameter.CombatDefaultFireRate
	}
	m.state = StateFireTimerInProgress
	m.timers.Cancel(m.fireTimer)
	m.fireTimer = m.timers.Schedule(rate, m.autoFireReset)
}

// autoFireReset ends the fire interval, chaining the next shot or an empty-magazine reload
func (m *Machine) autoFireReset() {
	if m.state == StateFireTimerInProgress {
		m.state = StateUnoccupied
	}
	if m.WeaponHasAmmo() {
		if m.fireButtonHeld {
			m.FireWeapon()
		}
		return
	}
	m.ReloadWeapon()
}

func (m *Machine) ReloadButtonPressed() {
	if m.weapon == nil {
		return
	}
	m.ReloadWeapon()
}

// ReloadWeapon starts a reload when idle, carrying ammo, and the magazine has room
func (m *Machine) ReloadWeapon() bool {
	if m.state != StateUnoccupied || !m.weapon.IsWeapon() {
		return false
	}
	if !m.CarryingAmmo() || m.weapon.Weapon.ClipIsFull() {
		return false
	}

	if m.aiming {
		m.stopAiming()
	}
	m.state = StateReloading
	m.anim.PlayMontage(m.settings.ReloadMontage, m.weapon.Weapon.ReloadSection)
	m.audio.PlaySound(core.SoundReload, false)
	return true
}

// FinishReloading moves reserve rounds into the magazine; driven by the reload animation end
func (m *Machine) FinishReloading() bool {
	if m.state != StateReloading {
		return false
	}
	m.state = StateUnoccupied
	if m.aimButtonHeld {
		m.startAiming()
	}

	if !m.weapon.IsWeapon() {
		return true
	}
	w := m.weapon.Weapon
	if !m.reserve.Has(w.AmmoType) {
		return true
	}
	loaded := m.reserve.Take(w.AmmoType, w.Empty())
	w.ReloadAmmo(loaded)
	m.statReloads.Add(1)
	return true
}

// GrabClip marks the magazine as held by the hand during a reload
func (m *Machine) GrabClip() {
	if m.weapon.IsWeapon() {
		m.weapon.Weapon.MovingClip = true
	}
}

func (m *Machine) ReleaseClip() {
	if m.weapon.IsWeapon() {
		m.weapon.Weapon.MovingClip = false
	}
}

func (m *Machine) AimButtonPressed() {
	m.aimButtonHeld = true
	if m.state != StateReloading {
		m.startAiming()
	}
}

func (m *Machine) AimButtonReleased() {
	m.aimButtonHeld = false
	m.stopAiming()
}

func (m *Machine) startAiming() {
	m.aiming = true
	m.statAiming.Store(true)
}

func (m *Machine) stopAiming() {
	m.aiming = false
	m.statAiming.Store(false)
}
