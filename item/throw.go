package item

import (
	"github.com/lixenwraith/gunplay/vmath"
)

// Drop detaches a held weapon and throws it; it settles back into Pickup after ThrowTime
func (w *World) Drop(it *Item) {
	w.presenter.DetachFromWorld(it.ID)
	w.SetState(it, StateFalling)
	w.Throw(it)
}

// ThrowImpulse computes the drop impulse for a yaw: the right vector tilted about
// forward, then swung by spreadDeg about world up
func (w *World) ThrowImpulse(yaw, spreadDeg float64) vmath.Vec3F {
	rot := vmath.Rotator{Yaw: yaw}
	dir := vmath.V3FRotateAngleAxis(rot.Right(), w.tuning.ThrowTilt, rot.Forward())
	dir = vmath.V3FRotateAngleAxis(dir, spreadDeg, vmath.AxisZ)
	return vmath.V3FScale(dir, w.tuning.ThrowImpulse)
}

// Throw levels the item to its yaw, applies the impulse and arms the settle timer
func (w *World) Throw(it *Item) {
	it.Transform.Rotation = it.Transform.Rotation.YawOnly()
	spread := w.rng.Range(w.tuning.ThrowSpreadMin, w.tuning.ThrowSpreadMax)
	w.presenter.ApplyImpulse(it.ID, w.ThrowImpulse(it.Transform.Rotation.Yaw, spread))

	w.statThrown.Add(1)

	w.timers.Cancel(it.throwTimer)
	id := it.ID
	it.throwTimer = w.timers.Schedule(w.tuning.ThrowTime, func() {
		w.stopFalling(id)
	})
}

func (w *World) stopFalling(id ID) {
	it, ok := w.items[id]
	if !ok {
		return
	}
	// Only an item still falling settles; a host may have moved it on
	if it.State != StateFalling {
		return
	}
	w.SetState(it, StatePickup)
	w.EnableGlow(it)
	w.StartPulse(it)
}
