package character

func (c *Character) FireButtonPressed() { c.combat.FireButtonPressed() }

func (c *Character) FireButtonReleased() { c.combat.FireButtonReleased() }

func (c *Character) AimButtonPressed() { c.combat.AimButtonPressed() }

func (c *Character) AimButtonReleased() { c.combat.AimButtonReleased() }

func (c *Character) ReloadButtonPressed() { c.combat.ReloadButtonPressed() }

// FinishReloading is the reload animation end notify
func (c *Character) FinishReloading() { c.combat.FinishReloading() }

func (c *Character) GrabClip() { c.combat.GrabClip() }

func (c *Character) ReleaseClip() { c.combat.ReleaseClip() }

// TakeActionButtonPressed starts acquiring the item under the crosshair
func (c *Character) TakeActionButtonPressed() bool {
	if c.tracedItem == 0 {
		return false
	}
	return c.acquirer.Begin(c.tracedItem, false)
}

// CrouchButtonPressed toggles crouch; ignored in the air
func (c *Character) CrouchButtonPressed() {
	if c.body.IsFalling() {
		return
	}
	c.crouching = !c.crouching
	c.applyMovement()
}

// Jump stands up when crouched, otherwise jumps
func (c *Character) Jump() {
	if c.crouching {
		c.crouching = false
		c.applyMovement()
		return
	}
	c.body.Jump()
}
