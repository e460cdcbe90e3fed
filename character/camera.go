package character

import (
	"github.com/lixenwraith/gunplay/parameter"
	"github.com/lixenwraith/gunplay/vmath"
)

// CameraTransform is the follow camera placement, the origin of interp slots and traces
func (c *Character) CameraTransform() vmath.Transform {
	return c.camera
}

// SetCameraLocation is called by the host after moving the character
func (c *Character) SetCameraLocation(loc vmath.Vec3F) {
	c.camera.Location = loc
}

func (c *Character) FOV() float64 { return c.fov }

func (c *Character) TurnRate() float64 { return c.turnRate }

func (c *Character) LookUpRate() float64 { return c.lookUpRate }

func (c *Character) updateFOV(step float64) {
	target := c.settings.DefaultFOV
	if c.combat.Aiming() {
		target = c.settings.ZoomedFOV
	}
	if c.fov == target {
		return
	}
	c.fov = vmath.FInterpTo(c.fov, target, step, c.settings.ZoomSpeed)
}

func (c *Character) updateLookRates() {
	if c.combat.Aiming() {
		c.turnRate, c.lookUpRate = c.settings.AimTurnRate, c.settings.AimLookUpRate
		return
	}
	c.turnRate, c.lookUpRate = c.settings.HipTurnRate, c.settings.HipLookUpRate
}

// TurnAtRate applies stick yaw input in [-1, 1] scaled by the current turn rate
func (c *Character) TurnAtRate(rate, step float64) {
	c.addYaw(rate * c.turnRate * step)
}

func (c *Character) LookUpAtRate(rate, step float64) {
	c.addPitch(rate * c.lookUpRate * step)
}

// TurnByMouse applies raw mouse yaw, scaled down while aiming
func (c *Character) TurnByMouse(value float64) {
	scale := c.settings.MouseHipTurnRate
	if c.combat.Aiming() {
		scale = c.settings.MouseAimTurnRate
	}
	c.addYaw(value * scale)
}

func (c *Character) LookUpByMouse(value float64) {
	scale := c.settings.MouseHipLookUpRate
	if c.combat.Aiming() {
		scale = c.settings.MouseAimLookUpRate
	}
	c.addPitch(value * scale)
}

func (c *Character) addYaw(deg float64) {
	c.camera.Rotation.Yaw = vmath.NormalizeAxis(c.camera.Rotation.Yaw + deg)
}

func (c *Character) addPitch(deg float64) {
	c.camera.Rotation.Pitch = vmath.Clamp(c.camera.Rotation.Pitch+deg, parameter.CameraMinPitch, parameter.CameraMaxPitch)
}

// MoveForward feeds movement along the camera's yaw
func (c *Character) MoveForward(value float64) {
	if value == 0 {
		return
	}
	c.body.AddMovementInput(c.camera.Rotation.YawOnly().Forward(), value)
}

func (c *Character) MoveRight(value float64) {
	if value == 0 {
		return
	}
	c.body.AddMovementInput(c.camera.Rotation.YawOnly().Right(), value)
}
