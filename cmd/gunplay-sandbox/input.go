package main

import (
	"github.com/gdamore/tcell/v2"
)

// keyTurnStep is the stick deflection time one key press stands for, in seconds
const keyTurnStep = 0.25

// handleEvent applies one terminal event on the loop goroutine
// Terminals report presses only, so fire and aim toggle
func (sb *sandbox) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		sb.handleKey(ev)
	case *tcell.EventMouse:
		x, _ := ev.Position()
		if sb.hasMouse {
			sb.char.TurnByMouse(float64(x - sb.lastMouse))
		}
		sb.lastMouse, sb.hasMouse = x, true
	case *tcell.EventResize:
		if sb.screen != nil {
			sb.screen.Sync()
		}
	}
}

func (sb *sandbox) handleKey(ev *tcell.EventKey) {
	c := sb.char
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		sb.requestQuit()
		return
	case tcell.KeyLeft:
		c.TurnAtRate(-1, keyTurnStep)
		return
	case tcell.KeyRight:
		c.TurnAtRate(1, keyTurnStep)
		return
	case tcell.KeyUp:
		c.LookUpAtRate(1, keyTurnStep)
		return
	case tcell.KeyDown:
		c.LookUpAtRate(-1, keyTurnStep)
		return
	case tcell.KeyTab:
		sb.showStats = !sb.showStats
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'w':
		c.MoveForward(1)
	case 's':
		c.MoveForward(-1)
	case 'a':
		c.MoveRight(-1)
	case 'd':
		c.MoveRight(1)
	case ' ':
		if c.Combat().FireButtonHeld() {
			c.FireButtonReleased()
		} else {
			c.FireButtonPressed()
		}
	case 'z':
		if c.Combat().AimButtonHeld() {
			c.AimButtonReleased()
		} else {
			c.AimButtonPressed()
		}
	case 'r':
		c.ReloadButtonPressed()
	case 'e':
		c.TakeActionButtonPressed()
	case 'c':
		c.CrouchButtonPressed()
	case 'j':
		c.Jump()
	case 'g':
		c.DropWeapon()
	case 'n':
		sb.spawnRandom()
	case 'm':
		sb.player.ToggleMute()
	case 'p':
		if sb.loop == nil {
			return
		}
		if sb.loop.IsPaused() {
			sb.loop.Resume()
		} else {
			sb.loop.Pause()
		}
	case 'q':
		sb.requestQuit()
	}
}
