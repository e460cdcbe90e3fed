package character

import (
	"github.com/lixenwraith/gunplay/item"
)

// IncrementOverlappedItemCount tracks pickup spheres the character stands in; tracing runs while positive
func (c *Character) IncrementOverlappedItemCount(amount int) {
	if c.overlappedItems+amount <= 0 {
		c.overlappedItems = 0
		c.shouldTrace = false
		return
	}
	c.overlappedItems += amount
	c.shouldTrace = true
}

func (c *Character) OverlappedItemCount() int { return c.overlappedItems }

// TracedItem is the item under the crosshair this frame, zero when none
func (c *Character) TracedItem() item.ID { return c.tracedItem }

// TraceForItems shows the widget and outline of the item under the crosshair
// and hides them on the item traced last frame when it changes
func (c *Character) TraceForItems() {
	if !c.shouldTrace {
		c.hideTraced(c.tracedLastFrame)
		c.tracedItem = 0
		c.tracedLastFrame = 0
		return
	}

	var hit *item.Item
	if id, ok := c.tracer.ItemUnderCrosshair(); ok {
		if it, found := c.world.Get(id); found && it.State == item.StatePickup {
			hit = it
		}
	}

	c.tracedItem = 0
	if hit != nil {
		c.tracedItem = hit.ID
		c.world.SetWidgetVisible(hit, true)
		c.world.EnableCustomDepth(hit)
	}
	if c.tracedLastFrame != 0 && c.tracedLastFrame != c.tracedItem {
		c.hideTraced(c.tracedLastFrame)
	}
	c.tracedLastFrame = c.tracedItem
}

func (c *Character) hideTraced(id item.ID) {
	if id == 0 {
		return
	}
	if it, ok := c.world.Get(id); ok {
		c.world.SetWidgetVisible(it, false)
		c.world.DisableCustomDepth(it)
	}
}
