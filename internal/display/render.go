package display

import (
	"fmt"
	"strings"

	"github.com/ChrisLebbano/embermud/internal/game"
)

// RenderEvent formats an outbound event as plain text for line-based
// transports. JSON transports ship the envelope untouched instead.
func RenderEvent(ev *game.Event) string {
	if ev.Snapshot != nil {
		return RenderRoom(ev.Snapshot)
	}
	return ev.Message
}

// RenderRoom formats a room snapshot the classic way: title, wrapped
// description, exits, then whoever else is here.
func RenderRoom(snap *game.RoomSnapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s [%s]\n", snap.RoomName, snap.ZoneName)
	b.WriteString(Wrap(snap.Description))
	b.WriteString("\n")

	if len(snap.Exits) > 0 {
		exits := make([]string, len(snap.Exits))
		for i, e := range snap.Exits {
			exits[i] = Title(e)
		}
		fmt.Fprintf(&b, "Exits: %s\n", strings.Join(exits, ", "))
	} else {
		b.WriteString("Exits: none\n")
	}

	for _, name := range snap.Players {
		if snap.Character != nil && name == snap.Character.Name {
			continue
		}
		fmt.Fprintf(&b, "%s is here.\n", name)
	}
	for _, name := range snap.NPCs {
		fmt.Fprintf(&b, "%s is here.\n", name)
	}

	if c := snap.Character; c != nil && c.Target != nil {
		fmt.Fprintf(&b, "Target: %s (%d/%d)\n", c.Target.Name, c.Target.CurrentHealth, c.Target.MaxHealth)
	}

	return strings.TrimRight(b.String(), "\n")
}

// CharacterSheet formats the requester's computed attributes.
func CharacterSheet(c *game.CharacterSnapshot) string {
	if c == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s, level %d %s %s\n", c.Name, c.Level, c.RaceName, c.ClassName)
	fmt.Fprintf(&b, "Health: %d/%d  Damage: %d  Delay: %.1fs\n",
		c.CurrentHealth, c.MaxHealth, c.AttackDamage, c.AttackDelaySeconds)
	fmt.Fprintf(&b, "Experience: %d (%d to next level)\n",
		c.CurrentExperience, c.ExperienceUntilNextLevel)

	a := c.Attributes
	fmt.Fprintf(&b, "Str %d  Dex %d  Agi %d  Con %d  Sta %d  Int %d\n",
		a.Strength, a.Dexterity, a.Agility, a.Constitution, a.Stamina, a.Intelligence)
	fmt.Fprintf(&b, "Wis %d  Wil %d  Cha %d  Per %d  Lck %d",
		a.Wisdom, a.Willpower, a.Charisma, a.Perception, a.Luck)

	return b.String()
}
