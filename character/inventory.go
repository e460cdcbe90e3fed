package character

import (
	"log"

	"github.com/lixenwraith/gunplay/item"
)

// ResolvePickup receives a landed item: weapons are swapped in, ammo merges into the reserve
func (c *Character) ResolvePickup(it *item.Item) {
	if it == nil {
		log.Printf("character: resolve called without an item")
		return
	}
	c.gate.PlayEquip(it.EquipSound, false)
	c.statPickups.Add(1)

	switch it.Kind {
	case item.KindWeapon:
		c.SwapWeapon(it)
	case item.KindAmmo:
		c.pickupAmmo(it)
	}
}

// ClearInventoryHighlight resets the inventory bar highlight after a pickup
func (c *Character) ClearInventoryHighlight() {
	c.highlightCleared++
}

func (c *Character) pickupAmmo(it *item.Item) {
	if !it.IsAmmo() {
		log.Printf("character: ammo item %d has no ammo data", it.ID)
		c.world.Destroy(it.ID)
		return
	}
	ammoType := it.Ammo.Type
	c.combat.Reserve().Add(ammoType, it.Count)

	if w := c.combat.Weapon(); w.IsWeapon() && w.Weapon.AmmoType == ammoType && w.Weapon.Ammo == 0 {
		c.combat.ReloadWeapon()
	}
	c.world.Destroy(it.ID)
}

// EquipWeapon attaches w to the hand without dropping the current weapon
func (c *Character) EquipWeapon(w *item.Item) {
	if !w.IsWeapon() {
		log.Printf("character: equip called without a weapon")
		return
	}
	c.world.Attach(w)
	c.world.SetState(w, item.StateEquipped)
	c.combat.SetWeapon(w)
	c.followCamera()
}

// DropWeapon throws the held weapon; it returns to Pickup once it settles
func (c *Character) DropWeapon() {
	w := c.combat.Weapon()
	if w == nil {
		return
	}
	c.world.Drop(w)
	c.combat.SetWeapon(nil)
}

// SwapWeapon drops the current weapon, equips w and forgets traced items
func (c *Character) SwapWeapon(w *item.Item) {
	if w == c.combat.Weapon() {
		return
	}
	if !w.IsWeapon() {
		log.Printf("character: swap called without a weapon")
		return
	}
	c.DropWeapon()
	c.EquipWeapon(w)
	c.tracedItem = 0
	c.tracedLastFrame = 0
}
