package game

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ChrisLebbano/embermud/internal/storage"
)

// WorldConfig carries the boot-time knobs the asset files do not.
type WorldConfig struct {
	StartZone    storage.Identifier
	StartRoom    storage.Identifier
	DefaultItems []storage.Identifier
}

// World is the single authoritative registry for all live game state. Every
// mutation happens under its lock; nothing inside an operation suspends.
type World struct {
	mu  sync.Mutex
	cfg WorldConfig

	zones map[storage.Identifier]*ZoneInstance
	rooms map[storage.Identifier]*RoomInstance

	races   map[string]*Race
	classes map[string]*CharacterClass

	items       map[storage.Identifier]*Item
	itemsByName map[string]*Item

	players map[string]*Character
}

// NewWorld indexes the static reference data and spawns NPC instances. All
// failures here are fatal boot-time invariants; there is no degraded mode.
func NewWorld(
	cfg WorldConfig,
	zones storage.Storer[*Zone],
	rooms storage.Storer[*Room],
	races storage.Storer[*Race],
	classes storage.Storer[*CharacterClass],
	items storage.Storer[*Item],
	npcs storage.Storer[*NPC],
) (*World, error) {
	w := &World{
		cfg:         cfg,
		zones:       make(map[storage.Identifier]*ZoneInstance),
		rooms:       make(map[storage.Identifier]*RoomInstance),
		races:       make(map[string]*Race),
		classes:     make(map[string]*CharacterClass),
		items:       make(map[storage.Identifier]*Item),
		itemsByName: make(map[string]*Item),
		players:     make(map[string]*Character),
	}

	for zoneId, zone := range zones.GetAll() {
		w.zones[zoneId] = NewZoneInstance(zoneId, zone)
	}

	for roomId, room := range rooms.GetAll() {
		zi, ok := w.zones[storage.Identifier(room.ZoneId)]
		if !ok {
			return nil, fmt.Errorf("room %q: unknown zone %q", roomId, room.ZoneId)
		}
		if _, exists := w.rooms[roomId]; exists {
			return nil, fmt.Errorf("duplicate room id across zones: %q", roomId)
		}
		ri := NewRoomInstance(roomId, room)
		w.rooms[roomId] = ri
		zi.AddRoom(ri)
	}

	if _, ok := w.zones[cfg.StartZone]; !ok {
		return nil, fmt.Errorf("starting zone %q not found", cfg.StartZone)
	}
	start, ok := w.rooms[cfg.StartRoom]
	if !ok {
		return nil, fmt.Errorf("starting room %q not found", cfg.StartRoom)
	}
	if storage.Identifier(start.Room.ZoneId) != cfg.StartZone {
		return nil, fmt.Errorf("starting room %q is not in zone %q", cfg.StartRoom, cfg.StartZone)
	}

	for _, race := range races.GetAll() {
		w.races[strings.ToLower(race.Name)] = race
	}
	for _, class := range classes.GetAll() {
		w.classes[strings.ToLower(class.Name)] = class
	}
	for itemId, item := range items.GetAll() {
		w.items[itemId] = item
		w.itemsByName[strings.ToLower(item.Name)] = item
	}

	for npcId, def := range npcs.GetAll() {
		c, err := w.spawnNPC(npcId, def)
		if err != nil {
			return nil, err
		}
		ri, ok := w.rooms[storage.Identifier(def.Room)]
		if !ok {
			return nil, fmt.Errorf("npc %q: unknown room %q", npcId, def.Room)
		}
		ri.AddNPC(c)
	}

	return w, nil
}

func (w *World) spawnNPC(npcId storage.Identifier, def *NPC) (*Character, error) {
	race, ok := w.races[strings.ToLower(def.Race)]
	if !ok {
		return nil, fmt.Errorf("npc %q: unknown race %q", npcId, def.Race)
	}
	class, ok := w.classes[strings.ToLower(def.Class)]
	if !ok {
		return nil, fmt.Errorf("npc %q: unknown class %q", npcId, def.Class)
	}

	attrs := race.BaseAttributes.Add(class.AttributeModifiers)
	sec := DeriveSecondary(def.Level, race, class, attrs)
	sec.AttackDamage = def.AttackDamage
	sec.AttackDelaySeconds = def.AttackDelaySeconds

	return &Character{
		Kind:       KindNPC,
		Id:         uuid.New().String(),
		Name:       def.Name,
		RoomId:     storage.Identifier(def.Room),
		Race:       race,
		Class:      class,
		Level:      def.Level,
		Attributes: attrs,
		Secondary:  sec,
	}, nil
}

// AddPlayerResult is returned on a successful player registration.
type AddPlayerResult struct {
	RoomId        storage.Identifier
	Snapshot      *RoomSnapshot
	SystemMessage string
}

// AddPlayer constructs a player character in the starting room. Unknown race
// or class names are a fatal configuration mismatch, reported as a plain
// error rather than a WorldError; the transport turns it into a disconnect.
func (w *World) AddPlayer(connId, name, raceName, className string) (*AddPlayerResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, exists := w.players[connId]; exists {
		return nil, fmt.Errorf("connection %q already has a player", connId)
	}

	race, ok := w.races[strings.ToLower(strings.TrimSpace(raceName))]
	if !ok {
		return nil, fmt.Errorf("unknown race %q", raceName)
	}
	class, ok := w.classes[strings.ToLower(strings.TrimSpace(className))]
	if !ok {
		return nil, fmt.Errorf("unknown class %q", className)
	}

	attrs := race.BaseAttributes.Add(class.AttributeModifiers)
	c := &Character{
		Kind:       KindPlayer,
		Id:         connId,
		Name:       name,
		RoomId:     w.cfg.StartRoom,
		Race:       race,
		Class:      class,
		Level:      1,
		Attributes: attrs,
		Secondary:  DeriveSecondary(1, race, class, attrs),
		Inventory:  NewInventory(),
	}

	for _, itemId := range w.cfg.DefaultItems {
		if item, ok := w.items[itemId]; ok {
			c.Inventory.Add(item, 1)
		}
	}

	w.players[connId] = c
	w.rooms[w.cfg.StartRoom].AddPlayer(c)

	return &AddPlayerResult{
		RoomId:        w.cfg.StartRoom,
		Snapshot:      w.snapshot(w.cfg.StartRoom, connId),
		SystemMessage: fmt.Sprintf("Welcome to the realm, %s!", name),
	}, nil
}

// RemovePlayerResult identifies the player that was removed.
type RemovePlayerResult struct {
	PlayerName string
	RoomId     storage.Identifier
}

// RemovePlayer removes the player from the registry and room occupancy.
// Removing an unknown connection is an idempotent no-op, reported by ok.
func (w *World) RemovePlayer(connId string) (*RemovePlayerResult, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, ok := w.players[connId]
	if !ok {
		return nil, false
	}

	delete(w.players, connId)
	if ri, ok := w.rooms[c.RoomId]; ok {
		ri.RemovePlayer(connId)
	}

	// Anyone targeting the departed player is now stale.
	for _, p := range w.players {
		if p.PrimaryTarget == c {
			p.ClearTarget()
		}
	}
	w.forEachNPC(func(npc *Character) {
		if npc.PrimaryTarget == c {
			npc.ClearTarget()
		}
	})

	return &RemovePlayerResult{PlayerName: c.Name, RoomId: c.RoomId}, true
}

// RekeyPlayer rebinds an existing player to a new connection id, preserving
// room, target, and inventory. Used by seamless reconnection.
func (w *World) RekeyPlayer(oldConnId, newConnId string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, ok := w.players[oldConnId]
	if !ok {
		return fmt.Errorf("player not found for connection %q", oldConnId)
	}
	if _, exists := w.players[newConnId]; exists {
		return fmt.Errorf("connection %q already has a player", newConnId)
	}

	delete(w.players, oldConnId)
	c.Id = newConnId
	w.players[newConnId] = c

	if ri, ok := w.rooms[c.RoomId]; ok {
		ri.RemovePlayer(oldConnId)
		ri.AddPlayer(c)
	}

	return nil
}

// MoveResult is returned on a successful move.
type MoveResult struct {
	Direction  string
	FromRoomId storage.Identifier
	ToRoomId   storage.Identifier
	PlayerName string
	Snapshot   *RoomSnapshot
}

// MovePlayer migrates the actor through a named exit, then runs the
// cross-room target-invalidation pass.
func (w *World) MovePlayer(connId, direction string) (*MoveResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, ok := w.players[connId]
	if !ok {
		return nil, NewWorldError("You are not in the world.")
	}

	from := w.rooms[c.RoomId]
	destId, ok := from.Room.Exits[direction]
	if !ok {
		return nil, NewWorldError(fmt.Sprintf("There is no exit %s.", direction))
	}
	to, ok := w.rooms[destId]
	if !ok {
		return nil, NewWorldError(fmt.Sprintf("There is no exit %s.", direction))
	}

	from.RemovePlayer(connId)
	to.AddPlayer(c)
	c.RoomId = to.Id

	w.invalidateStaleTargets()

	return &MoveResult{
		Direction:  direction,
		FromRoomId: from.Id,
		ToRoomId:   to.Id,
		PlayerName: c.Name,
		Snapshot:   w.snapshot(to.Id, connId),
	}, nil
}

// invalidateStaleTargets clears the attack relationship of every player
// whose primary target is no longer co-located. O(players) per move, which
// is fine at this scale, and it is what keeps cross-room targeting from
// lingering in either direction.
func (w *World) invalidateStaleTargets() {
	for _, p := range w.players {
		if p.PrimaryTarget != nil && p.PrimaryTarget.RoomId != p.RoomId {
			p.ClearTarget()
		}
	}
}

// TargetResult is returned on a successful target selection.
type TargetResult struct {
	TargetName string
	Snapshot   *RoomSnapshot
}

// SetPrimaryTarget picks a co-located character by exact case-insensitive
// name, preferring players (excluding the requester) over NPCs.
func (w *World) SetPrimaryTarget(connId, targetName string) (*TargetResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, ok := w.players[connId]
	if !ok {
		return nil, NewWorldError("You are not in the world.")
	}
	targetName = strings.TrimSpace(targetName)
	if targetName == "" {
		return nil, NewWorldError("Target whom?")
	}

	ri := w.rooms[c.RoomId]
	target := ri.FindPlayer(targetName, connId)
	if target == nil {
		target = ri.FindNPC(targetName)
	}
	if target == nil {
		return nil, NewWorldError(fmt.Sprintf("There is no %s here.", targetName))
	}

	c.PrimaryTarget = target

	return &TargetResult{
		TargetName: target.Name,
		Snapshot:   w.snapshot(c.RoomId, connId),
	}, nil
}

// SetAttacking flips the actor's attack flag. The attack scheduler owns the
// timers; this only records intent on the character.
func (w *World) SetAttacking(connId string, attacking bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, ok := w.players[connId]
	if !ok {
		return NewWorldError("You are not in the world.")
	}
	c.IsAttacking = attacking
	return nil
}

// HasPrimaryTarget reports whether the player currently has a target set.
func (w *World) HasPrimaryTarget(connId string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, ok := w.players[connId]
	return ok && c.PrimaryTarget != nil
}

// AttackResult is returned for each successful (non-terminal) swing.
type AttackResult struct {
	AttackerName        string
	Damage              int
	TargetName          string
	TargetCurrentHealth int

	// Exactly one of these identifies the victim.
	TargetConnId string
	TargetNPCId  string

	RoomId storage.Identifier

	// AttackerDelay is the attacker's cadence in seconds, for rescheduling.
	AttackerDelay float64

	// RetaliationStarted is true when this swing made the target NPC turn
	// on the attacker for the first time.
	RetaliationStarted bool
	RetaliationDelay   float64
}

// PerformAttack resolves one swing by the player against its primary target.
// Damage is the attacker's flat AttackDamage; there is no variance.
func (w *World) PerformAttack(connId string) (*AttackResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, ok := w.players[connId]
	if !ok {
		return nil, NewWorldError("You are not in the world.")
	}
	target := c.PrimaryTarget
	if target == nil {
		return nil, NewWorldError("No primary target selected.")
	}
	if target.RoomId != c.RoomId {
		c.ClearTarget()
		return nil, NewWorldError(fmt.Sprintf("%s is no longer here.", target.Name))
	}
	if !target.Alive() {
		c.IsAttacking = false
		return nil, &Warning{
			Message: fmt.Sprintf("Cannot attack %s. %s is already dead.", target.Name, target.Name),
		}
	}

	damage := c.Secondary.AttackDamage
	target.Secondary.CurrentHealth -= damage

	if target.Secondary.CurrentHealth <= 0 {
		c.IsAttacking = false
		warn := &Warning{
			Message:     fmt.Sprintf("You have slain %s!", target.Name),
			StopMessage: "You stop attacking.",
			TargetName:  target.Name,
			RoomId:      c.RoomId,
		}
		switch target.Kind {
		case KindPlayer:
			warn.TargetConnId = target.Id
		case KindNPC:
			warn.TargetNPCId = target.Id
		}
		return nil, warn
	}

	res := &AttackResult{
		AttackerName:        c.Name,
		Damage:              damage,
		TargetName:          target.Name,
		TargetCurrentHealth: target.Secondary.CurrentHealth,
		RoomId:              c.RoomId,
		AttackerDelay:       c.Secondary.AttackDelaySeconds,
	}

	switch target.Kind {
	case KindPlayer:
		res.TargetConnId = target.Id
	case KindNPC:
		res.TargetNPCId = target.Id
		if target.PrimaryTarget == nil {
			target.PrimaryTarget = c
			target.IsAttacking = true
			res.RetaliationStarted = true
		}
		res.RetaliationDelay = target.Secondary.AttackDelaySeconds
	}

	return res, nil
}

// PerformNonPlayerCharacterAttack resolves one retaliation swing. The NPC is
// found by scanning room NPC collections (O(rooms), fine at this scale).
// Both sides are re-validated independently; either may have died between
// scheduling and firing.
func (w *World) PerformNonPlayerCharacterAttack(npcId, targetConnId string) (*AttackResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var npc *Character
	for _, ri := range w.rooms {
		if c := ri.NPC(npcId); c != nil {
			npc = c
			break
		}
	}
	if npc == nil {
		return nil, NewWorldError("attacker not found")
	}
	if !npc.Alive() {
		npc.ClearTarget()
		return nil, &Warning{Message: fmt.Sprintf("%s is dead.", npc.Name)}
	}

	target, ok := w.players[targetConnId]
	if !ok {
		npc.ClearTarget()
		return nil, NewWorldError("target not found")
	}
	if target.RoomId != npc.RoomId {
		npc.ClearTarget()
		return nil, NewWorldError(fmt.Sprintf("%s is no longer here.", target.Name))
	}
	if !target.Alive() {
		npc.ClearTarget()
		return nil, &Warning{
			Message:      fmt.Sprintf("%s is already dead.", target.Name),
			TargetName:   target.Name,
			TargetConnId: target.Id,
		}
	}

	damage := npc.Secondary.AttackDamage
	target.Secondary.CurrentHealth -= damage

	if target.Secondary.CurrentHealth <= 0 {
		npc.ClearTarget()
		target.ClearTarget()
		return nil, &Warning{
			Message:      fmt.Sprintf("You have been slain by %s!", npc.Name),
			StopMessage:  "You stop attacking.",
			TargetName:   target.Name,
			TargetConnId: target.Id,
			RoomId:       npc.RoomId,
		}
	}

	return &AttackResult{
		AttackerName:        npc.Name,
		Damage:              damage,
		TargetName:          target.Name,
		TargetCurrentHealth: target.Secondary.CurrentHealth,
		TargetConnId:        target.Id,
		RoomId:              npc.RoomId,
		AttackerDelay:       npc.Secondary.AttackDelaySeconds,
	}, nil
}

// ChatResult is the payload for room-scoped speech.
type ChatResult struct {
	PlayerName string
	RoomId     storage.Identifier
	Message    string
}

func (w *World) Say(connId, message string) (*ChatResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, ok := w.players[connId]
	if !ok {
		return nil, NewWorldError("You are not in the world.")
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, NewWorldError("Say what?")
	}

	return &ChatResult{PlayerName: c.Name, RoomId: c.RoomId, Message: message}, nil
}

// ShoutResult is the payload for zone-scoped speech plus the actor's echo.
type ShoutResult struct {
	PlayerName string
	ZoneId     storage.Identifier
	Message    string
	SelfEcho   string
}

func (w *World) Shout(connId, message string) (*ShoutResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, ok := w.players[connId]
	if !ok {
		return nil, NewWorldError("You are not in the world.")
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, NewWorldError("Shout what?")
	}

	ri := w.rooms[c.RoomId]

	return &ShoutResult{
		PlayerName: c.Name,
		ZoneId:     storage.Identifier(ri.Room.ZoneId),
		Message:    message,
		SelfEcho:   fmt.Sprintf("You shout, '%s'", message),
	}, nil
}

// ConsumeResult reports a consumed inventory item.
type ConsumeResult struct {
	PlayerName string
	ItemName   string
	RoomId     storage.Identifier
}

// ConsumeItem removes one unit of the first inventory stack whose item name
// has the given prefix and whose type passes the filter.
func (w *World) ConsumeItem(connId, prefix string, types ...ItemType) (*ConsumeResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, ok := w.players[connId]
	if !ok {
		return nil, NewWorldError("You are not in the world.")
	}

	idx, _ := c.Inventory.FindByPrefix(prefix, types...)
	if idx < 0 {
		return nil, NewWorldError(fmt.Sprintf("You are not carrying a %s.", prefix))
	}

	item := c.Inventory.ConsumeAt(idx)
	if item == nil {
		return nil, NewWorldError(fmt.Sprintf("You are not carrying a %s.", prefix))
	}

	return &ConsumeResult{PlayerName: c.Name, ItemName: item.Name, RoomId: c.RoomId}, nil
}

// LookResult describes what lies through an exit.
type LookResult struct {
	Direction string
	RoomName  string
}

// LookDirection resolves the named exit from the actor's room without moving.
func (w *World) LookDirection(connId, direction string) (*LookResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, ok := w.players[connId]
	if !ok {
		return nil, NewWorldError("You are not in the world.")
	}
	destId, ok := w.rooms[c.RoomId].Room.Exits[direction]
	if !ok {
		return nil, NewWorldError(fmt.Sprintf("There is no exit %s.", direction))
	}
	dest, ok := w.rooms[destId]
	if !ok {
		return nil, NewWorldError(fmt.Sprintf("There is no exit %s.", direction))
	}

	return &LookResult{Direction: direction, RoomName: dest.Room.Name}, nil
}

// InventoryList renders the actor's inventory as display lines, one per
// occupied slot.
func (w *World) InventoryList(connId string) ([]string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, ok := w.players[connId]
	if !ok {
		return nil, NewWorldError("You are not in the world.")
	}

	var lines []string
	for _, s := range c.Inventory.Slots() {
		if s == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s x%d", s.Item.Name, s.Count))
	}
	return lines, nil
}

// HailResult identifies the greeted character.
type HailResult struct {
	PlayerName   string
	TargetName   string
	TargetConnId string
	RoomId       storage.Identifier
}

// Hail greets a co-located character by name, or the actor's primary target
// when no name is given.
func (w *World) Hail(connId, targetName string) (*HailResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, ok := w.players[connId]
	if !ok {
		return nil, NewWorldError("You are not in the world.")
	}

	var target *Character
	targetName = strings.TrimSpace(targetName)
	if targetName != "" {
		ri := w.rooms[c.RoomId]
		target = ri.FindPlayer(targetName, connId)
		if target == nil {
			target = ri.FindNPC(targetName)
		}
		if target == nil {
			return nil, NewWorldError(fmt.Sprintf("There is no %s here.", targetName))
		}
	} else {
		target = c.PrimaryTarget
		if target == nil {
			return nil, NewWorldError("Hail whom?")
		}
		if target.RoomId != c.RoomId {
			c.ClearTarget()
			return nil, NewWorldError("Hail whom?")
		}
	}

	res := &HailResult{PlayerName: c.Name, TargetName: target.Name, RoomId: c.RoomId}
	if target.Kind == KindPlayer {
		res.TargetConnId = target.Id
	}
	return res, nil
}

// RoomSnapshot assembles a consistent view of a room. connId may be empty;
// when it names a live player a character section is attached, including
// target vitals when the player is targeting.
func (w *World) RoomSnapshot(roomId storage.Identifier, connId string) (*RoomSnapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.rooms[roomId]; !ok {
		return nil, NewWorldError("room not found")
	}
	return w.snapshot(roomId, connId), nil
}

// snapshot requires w.mu held.
func (w *World) snapshot(roomId storage.Identifier, connId string) *RoomSnapshot {
	ri := w.rooms[roomId]
	zi := w.zones[storage.Identifier(ri.Room.ZoneId)]

	snap := &RoomSnapshot{
		RoomId:      string(ri.Id),
		RoomName:    ri.Room.Name,
		Description: ri.Room.Description,
		ZoneName:    zi.Zone.Name,
		Exits:       make([]string, 0, len(ri.Room.Exits)),
		Players:     make([]string, 0, len(ri.players)),
		NPCs:        make([]string, 0, len(ri.npcs)),
	}

	for dir := range ri.Room.Exits {
		snap.Exits = append(snap.Exits, dir)
	}
	sort.Strings(snap.Exits)

	for _, p := range ri.players {
		snap.Players = append(snap.Players, p.Name)
	}
	sort.Strings(snap.Players)

	for _, n := range ri.npcs {
		snap.NPCs = append(snap.NPCs, n.Name)
	}
	sort.Strings(snap.NPCs)

	if connId != "" {
		if c, ok := w.players[connId]; ok {
			cs := &CharacterSnapshot{
				Name:                     c.Name,
				RaceName:                 c.Race.Name,
				ClassName:                c.Class.Name,
				Level:                    c.Level,
				Attributes:               c.Attributes,
				CurrentHealth:            c.Secondary.CurrentHealth,
				MaxHealth:                c.Secondary.MaxHealth,
				AttackDamage:             c.Secondary.AttackDamage,
				AttackDelaySeconds:       c.Secondary.AttackDelaySeconds,
				CurrentExperience:        c.Secondary.CurrentExperience,
				ExperienceUntilNextLevel: c.Secondary.ExperienceUntilNextLevel,
			}
			if t := c.PrimaryTarget; t != nil {
				cs.Target = &TargetVitals{
					Name:          t.Name,
					CurrentHealth: t.Secondary.CurrentHealth,
					MaxHealth:     t.Secondary.MaxHealth,
				}
			}
			snap.Character = cs
		}
	}

	return snap
}

// PlayerNamesForZone lists the names of live players whose current room
// belongs to the zone, sorted.
func (w *World) PlayerNamesForZone(zoneId storage.Identifier) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var names []string
	for _, p := range w.players {
		if ri, ok := w.rooms[p.RoomId]; ok && storage.Identifier(ri.Room.ZoneId) == zoneId {
			names = append(names, p.Name)
		}
	}
	sort.Strings(names)
	return names
}

// PlayersInRoom implements PlayerGroup.
func (w *World) PlayersInRoom(roomId storage.Identifier) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	ri, ok := w.rooms[roomId]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(ri.players))
	for id := range ri.players {
		ids = append(ids, id)
	}
	return ids
}

// PlayersInZone implements PlayerGroup.
func (w *World) PlayersInZone(zoneId storage.Identifier) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var ids []string
	for id, p := range w.players {
		if ri, ok := w.rooms[p.RoomId]; ok && storage.Identifier(ri.Room.ZoneId) == zoneId {
			ids = append(ids, id)
		}
	}
	return ids
}

// Player returns the live character bound to the connection, or nil.
func (w *World) Player(connId string) *Character {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.players[connId]
}

// Vitals returns the player's current and max health for prompt rendering.
func (w *World) Vitals(connId string) (current, max int, ok bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	c, ok := w.players[connId]
	if !ok {
		return 0, 0, false
	}
	return c.Secondary.CurrentHealth, c.Secondary.MaxHealth, true
}

// ZoneOfRoom resolves the zone owning a room.
func (w *World) ZoneOfRoom(roomId storage.Identifier) (storage.Identifier, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	ri, ok := w.rooms[roomId]
	if !ok {
		return "", false
	}
	return storage.Identifier(ri.Room.ZoneId), true
}

func (w *World) forEachNPC(fn func(*Character)) {
	for _, ri := range w.rooms {
		for _, npc := range ri.npcs {
			fn(npc)
		}
	}
}
