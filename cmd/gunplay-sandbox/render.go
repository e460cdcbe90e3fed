package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gunplay/item"
	"github.com/lixenwraith/gunplay/parameter"
	"github.com/lixenwraith/gunplay/vmath"
)

// World units per terminal cell; cells are about twice as tall as wide
const (
	unitsPerCol = 40.0
	unitsPerRow = 80.0
	hudLines    = 3
)

var (
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleTrace  = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleWidget = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

var weaponGlyphs = map[item.WeaponType]rune{
	item.WeaponSubmachineGun: 'S',
	item.WeaponAssaultRifle:  'A',
	item.WeaponPistol:        'P',
}

// facingGlyphs are indexed by yaw octant starting at +X, clockwise on screen
var facingGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

type view struct {
	w, h   int
	center vmath.Vec3F
}

func (v view) cell(p vmath.Vec3F) (int, int, bool) {
	x := v.w/2 + int(math.Round((p.X-v.center.X)/unitsPerCol))
	y := v.h/2 + int(math.Round((p.Y-v.center.Y)/unitsPerRow))
	return x, y, x >= 0 && x < v.w && y >= 0 && y < v.h
}

func (sb *sandbox) render() {
	scr := sb.screen
	scr.Clear()
	w, h := scr.Size()
	v := view{w: w, h: h - hudLines, center: sb.body.location}

	sb.drawBorder(v)
	if s := sb.fx.last; s != nil {
		sb.drawTrace(v, s.from, s.to)
	}
	sb.world.Each(func(it *item.Item) {
		sb.drawItem(v, it)
	})

	if x, y, ok := v.cell(sb.body.location); ok {
		scr.SetContent(x, y, '@', nil, stylePlayer)
		yaw := sb.char.CameraTransform().Rotation.Yaw
		oct := int(math.Round(vmath.NormalizeAxis(yaw)/45.0+8)) % 8
		dir := sb.char.CameraTransform().Rotation.YawOnly().Forward()
		if fx, fy, ok := v.cell(vmath.V3FAdd(sb.body.location, vmath.V3FScale(dir, unitsPerCol*2))); ok {
			scr.SetContent(fx, fy, facingGlyphs[oct], nil, stylePlayer)
		}
	}

	sb.drawHUD(h)
	if sb.showStats {
		sb.drawStats(w)
	}
	scr.Show()
}

func (sb *sandbox) drawBorder(v view) {
	corners := []vmath.Vec3F{{}, {X: arenaWidth}, {X: arenaWidth, Y: arenaHeight}, {Y: arenaHeight}}
	for i := range corners {
		sb.drawLine(v, corners[i], corners[(i+1)%len(corners)], '·', styleBorder)
	}
}

func (sb *sandbox) drawTrace(v view, from, to vmath.Vec3F) {
	sb.drawLine(v, from, to, '-', styleTrace)
}

func (sb *sandbox) drawLine(v view, from, to vmath.Vec3F, r rune, style tcell.Style) {
	d := vmath.V3FSub(to, from)
	steps := int(vmath.V3FMag2D(d)/unitsPerCol) + 1
	for i := 0; i <= steps; i++ {
		p := vmath.V3FAdd(from, vmath.V3FScale(d, float64(i)/float64(steps)))
		if x, y, ok := v.cell(p); ok {
			sb.screen.SetContent(x, y, r, nil, style)
		}
	}
}

func (sb *sandbox) drawItem(v view, it *item.Item) {
	p := sb.arena.items[it.ID]
	if p == nil || !p.visible || p.attached != "" {
		return
	}
	x, y, ok := v.cell(it.Transform.Location)
	if !ok {
		return
	}

	glyph := '='
	if it.IsWeapon() {
		glyph = weaponGlyphs[it.Weapon.Type]
	}
	style := tcell.StyleDefault.Foreground(glowColor(p.glow))
	if p.outline {
		style = style.Reverse(true)
	}
	if it.State == item.StateEquipInterping {
		style = style.Bold(true)
	}
	if it.State == item.StateFalling {
		style = style.Dim(true)
	}
	sb.screen.SetContent(x, y, glyph, nil, style)

	if p.widget && y > 0 {
		var label string
		if it.IsWeapon() {
			label = fmt.Sprintf("%s %d/%d %s", it.Name, it.Weapon.Ammo, it.Weapon.MagazineCapacity, stars(it))
		} else {
			label = fmt.Sprintf("%s x%d %s", it.Name, it.Count, stars(it))
		}
		drawText(sb.screen, x-len([]rune(label))/2, y-1, label, styleWidget)
	}
}

// glowColor is the rarity glow scaled by the pulsing glow amount
func glowColor(g item.Glow) tcell.Color {
	c := g.Color
	if c == (item.Color{}) {
		c = item.Color{R: 0.8, G: 0.8, B: 0.8, A: 1}
	}
	k := 0.6
	if g.Enabled {
		k = vmath.Clamp(0.5+0.5*g.Amount/parameter.PickupGlowAmount, 0.3, 1)
	}
	ch := func(f float64) int32 { return int32(vmath.Clamp(f*k, 0, 1) * 255) }
	return tcell.NewRGBColor(ch(c.R), ch(c.G), ch(c.B))
}

func stars(it *item.Item) string {
	var b strings.Builder
	for _, on := range it.ActiveStars {
		if on {
			b.WriteRune('★')
		} else {
			b.WriteRune('☆')
		}
	}
	return b.String()
}

func (sb *sandbox) drawHUD(h int) {
	c := sb.char
	weapon := "unarmed"
	if it := c.EquippedWeapon(); it.IsWeapon() {
		clip := ""
		if it.Weapon.MovingClip {
			clip = " [clip]"
		}
		weapon = fmt.Sprintf("%s %s %d/%d%s", it.Name, stars(it), it.Weapon.Ammo, it.Weapon.MagazineCapacity, clip)
	}
	reserve := c.Reserve().Snapshot()
	line1 := fmt.Sprintf(" %s | 9mm %d  AR %d | %s", weapon, reserve[item.Ammo9mm], reserve[item.AmmoAR], c.Combat().State())

	flags := []string{}
	if c.Combat().Aiming() {
		flags = append(flags, "aim")
	}
	if c.Crouching() {
		flags = append(flags, "crouch")
	}
	if c.Combat().FireButtonHeld() {
		flags = append(flags, "trigger")
	}
	if sb.player.IsMuted() {
		flags = append(flags, "muted")
	}
	if sb.loop != nil && sb.loop.IsPaused() {
		flags = append(flags, "paused")
	}
	traced := "-"
	if it, ok := sb.world.Get(c.TracedItem()); ok {
		traced = it.Name
	}
	line2 := fmt.Sprintf(" fov %.0f spread %.2f speed %.0f | near %d aim-at %s | flying %d | %s",
		c.FOV(), c.CrosshairSpread(), c.MaxWalkSpeed(), c.OverlappedItemCount(), traced,
		c.Acquirer().Active(), strings.Join(flags, " "))

	help := " wasd move  ←→↑↓ look  space trigger  z aim  r reload  e take  c crouch  j jump  g drop  n spawn  m mute  p pause  tab stats  q quit"

	drawText(sb.screen, 0, h-3, line1, styleHUD)
	drawText(sb.screen, 0, h-2, line2, styleHUD)
	drawText(sb.screen, 0, h-1, help, styleHelp)
}

func (sb *sandbox) drawStats(w int) {
	metrics := sb.reg.Snapshot()
	width := 0
	for _, m := range metrics {
		if n := len(m.Key) + len(m.Value) + 3; n > width {
			width = n
		}
	}
	for i, m := range metrics {
		drawText(sb.screen, w-width, i, fmt.Sprintf(" %s %s ", m.Key, m.Value), styleHUD.Reverse(true))
	}
}

func drawText(scr tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		scr.SetContent(x, y, r, nil, style)
		x++
	}
}
