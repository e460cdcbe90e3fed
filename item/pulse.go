package item

// StartPulse arms the repeating glow pulse while the item waits in Pickup
func (w *World) StartPulse(it *Item) {
	if it.State != StatePickup {
		return
	}
	w.timers.Cancel(it.pulseTimer)
	id := it.ID
	it.pulseTimer = w.timers.Schedule(w.tuning.PulsePeriod, func() {
		if cur, ok := w.items[id]; ok {
			w.StartPulse(cur)
		}
	})
}

// StopPulse cancels the pulse timer
func (w *World) StopPulse(it *Item) {
	w.timers.Cancel(it.pulseTimer)
	it.pulseTimer = 0
}

func (w *World) updatePulse(it *Item) {
	if !it.Glow.Enabled {
		return
	}

	var (
		curve  = w.tuning.PulseCurve
		handle = it.pulseTimer
	)
	switch it.State {
	case StatePickup:
	case StateEquipInterping:
		curve = w.tuning.InterpPulseCurve
		handle = it.InterpTimer
	default:
		return
	}

	elapsed, ok := w.timers.ElapsedSince(handle)
	if !ok {
		return
	}
	v := curve.Sample(elapsed.Seconds())
	it.Glow.Amount = v.X * w.tuning.GlowAmount
	it.Glow.FresnelExponent = v.Y * w.tuning.FresnelExponent
	it.Glow.FresnelReflectFraction = v.Z * w.tuning.FresnelReflectFraction
	w.presenter.SetGlow(it.ID, it.Glow)
}

// StartSlide kicks the pistol slide back for SlideTime
func (w *World) StartSlide(it *Item) {
	if it.Weapon == nil {
		return
	}
	s := &it.Weapon.Slide
	w.timers.Cancel(s.timer)
	s.Moving = true
	id := it.ID
	s.timer = w.timers.Schedule(w.tuning.SlideTime, func() {
		if cur, ok := w.items[id]; ok && cur.Weapon != nil {
			cur.Weapon.Slide.Moving = false
			cur.Weapon.Slide.Displacement = 0
			cur.Weapon.Slide.Recoil = 0
		}
	})
}

func (w *World) updateSlide(it *Item) {
	s := &it.Weapon.Slide
	elapsed, ok := w.timers.ElapsedSince(s.timer)
	if !ok {
		return
	}
	v := w.tuning.SlideCurve.Sample(elapsed.Seconds())
	s.Displacement = v * w.tuning.MaxSlide
	s.Recoil = v * w.tuning.MaxRecoil
}
