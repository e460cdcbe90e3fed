package item

import (
	"github.com/lixenwraith/gunplay/vmath"
)

// RecordingPresenter keeps the last presentation request per item
// Test helper shared by packages that drive items
type RecordingPresenter struct {
	Visible     map[ID]bool
	Physics     map[ID]bool
	Collision   map[ID]CollisionMode
	Widget      map[ID]bool
	CustomDepth map[ID]bool
	Glow        map[ID]Glow
	Attached    map[ID]string
	Impulses    map[ID][]vmath.Vec3F
	Detached    map[ID]int
}

func NewRecordingPresenter() *RecordingPresenter {
	return &RecordingPresenter{
		Visible:     make(map[ID]bool),
		Physics:     make(map[ID]bool),
		Collision:   make(map[ID]CollisionMode),
		Widget:      make(map[ID]bool),
		CustomDepth: make(map[ID]bool),
		Glow:        make(map[ID]Glow),
		Attached:    make(map[ID]string),
		Impulses:    make(map[ID][]vmath.Vec3F),
		Detached:    make(map[ID]int),
	}
}

func (r *RecordingPresenter) SetVisible(id ID, visible bool) { r.Visible[id] = visible }

func (r *RecordingPresenter) SetCollision(id ID, mode CollisionMode) { r.Collision[id] = mode }

func (r *RecordingPresenter) SetSimulatePhysics(id ID, simulate bool) { r.Physics[id] = simulate }

func (r *RecordingPresenter) ApplyImpulse(id ID, impulse vmath.Vec3F) {
	r.Impulses[id] = append(r.Impulses[id], impulse)
}

func (r *RecordingPresenter) AttachTo(id ID, socket string) { r.Attached[id] = socket }

func (r *RecordingPresenter) DetachFromWorld(id ID) {
	delete(r.Attached, id)
	r.Detached[id]++
}

func (r *RecordingPresenter) SetCustomDepth(id ID, enabled bool, _ int) { r.CustomDepth[id] = enabled }

func (r *RecordingPresenter) SetPickupWidgetVisible(id ID, visible bool) { r.Widget[id] = visible }

func (r *RecordingPresenter) SetGlow(id ID, glow Glow) { r.Glow[id] = glow }
