package commands

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/ChrisLebbano/embermud/internal/game"
	"github.com/ChrisLebbano/embermud/internal/storage"
)

// mockStore implements storage.Storer for fixtures.
type mockStore[T storage.ValidatingSpec] struct {
	records map[storage.Identifier]T
}

func (m *mockStore[T]) Get(id storage.Identifier) T {
	return m.records[id]
}

func (m *mockStore[T]) GetAll() map[storage.Identifier]T {
	return m.records
}

// recordedEvent captures one publish call, with its scope and exclusions.
type recordedEvent struct {
	scope   string
	id      string
	event   *game.Event
	exclude []string
}

type recordingPublisher struct {
	mu     sync.Mutex
	record []recordedEvent
}

func (p *recordingPublisher) ToPlayer(connId string, ev *game.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record = append(p.record, recordedEvent{scope: "player", id: connId, event: ev})
	return nil
}

func (p *recordingPublisher) ToRoom(roomId storage.Identifier, ev *game.Event, exclude ...string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record = append(p.record, recordedEvent{scope: "room", id: roomId.String(), event: ev, exclude: exclude})
	return nil
}

func (p *recordingPublisher) ToZone(zoneId storage.Identifier, ev *game.Event, exclude ...string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record = append(p.record, recordedEvent{scope: "zone", id: zoneId.String(), event: ev, exclude: exclude})
	return nil
}

func (p *recordingPublisher) all() []recordedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]recordedEvent(nil), p.record...)
}

// fakeCombat records scheduler calls.
type fakeCombat struct {
	attacking bool
	engaged   []string
	stopped   []string
}

func (c *fakeCombat) Engage(connId string) {
	c.engaged = append(c.engaged, connId)
}

func (c *fakeCombat) StopAttack(connId string) {
	c.stopped = append(c.stopped, connId)
}

func (c *fakeCombat) Attacking(connId string) bool {
	return c.attacking
}

func newTestWorld(t *testing.T) *game.World {
	t.Helper()

	zones := &mockStore[*game.Zone]{records: map[storage.Identifier]*game.Zone{
		"midgard": {Name: "Midgard"},
	}}
	rooms := &mockStore[*game.Room]{records: map[storage.Identifier]*game.Room{
		"square": {
			Name:   "Temple Square",
			ZoneId: "midgard",
			Exits:  map[string]storage.Identifier{"north": "temple", "east": "market"},
		},
		"temple": {
			Name:   "Temple of Light",
			ZoneId: "midgard",
			Exits:  map[string]storage.Identifier{"south": "square"},
		},
		"market": {
			Name:   "Market Street",
			ZoneId: "midgard",
			Exits:  map[string]storage.Identifier{"west": "square"},
		},
	}}
	races := &mockStore[*game.Race]{records: map[storage.Identifier]*game.Race{
		"human": {
			Name: "Human",
			BaseAttributes: game.Attributes{
				Strength: 10, Dexterity: 10, Agility: 10, Constitution: 10,
				Stamina: 10, Intelligence: 10, Wisdom: 10, Willpower: 10,
				Charisma: 10, Perception: 10, Luck: 10,
			},
			BaseHealth: 20,
		},
	}}
	classes := &mockStore[*game.CharacterClass]{records: map[storage.Identifier]*game.CharacterClass{
		"warrior": {
			Name:               "Warrior",
			AttributeModifiers: game.Attributes{Strength: 4, Constitution: 3, Stamina: 2, Agility: 1},
			BaseHealth:         15,
		},
	}}
	items := &mockStore[*game.Item]{records: map[storage.Identifier]*game.Item{
		"bread": {Name: "bread", Type: game.ItemTypeFood, MaxCount: 5},
	}}
	npcs := &mockStore[*game.NPC]{records: map[storage.Identifier]*game.NPC{
		"market-rat": {
			Name: "rat", Race: "Human", Class: "Warrior", Level: 1,
			Room: "market", AttackDamage: 5, AttackDelaySeconds: 5,
		},
	}}

	w, err := game.NewWorld(game.WorldConfig{
		StartZone:    "midgard",
		StartRoom:    "square",
		DefaultItems: []storage.Identifier{"bread"},
	}, zones, rooms, races, classes, items, npcs)
	if err != nil {
		t.Fatalf("building world: %v", err)
	}

	return w
}

func newTestHandler(t *testing.T) (*Handler, *game.World, *fakeCombat, *recordingPublisher) {
	t.Helper()

	world := newTestWorld(t)
	combat := &fakeCombat{}
	pub := &recordingPublisher{}
	return NewHandler(world, combat, pub), world, combat, pub
}

func addPlayer(t *testing.T, w *game.World, connId, name string) {
	t.Helper()
	if _, err := w.AddPlayer(connId, name, "Human", "Warrior"); err != nil {
		t.Fatalf("adding player %s: %v", name, err)
	}
}

func assertUserError(t *testing.T, err error, msg string) {
	t.Helper()

	var userErr *UserError
	if !errors.As(err, &userErr) {
		t.Fatalf("expected UserError, got %v", err)
	}
	testutil.AssertEqual(t, "error message", userErr.Message, msg)
}

func TestExec_UnknownCommand(t *testing.T) {
	h, w, _, _ := newTestHandler(t)
	addPlayer(t, w, "c1", "Alice")

	err := h.Exec(context.Background(), "c1", "dance")
	assertUserError(t, err, "Unknown command: dance")
}

func TestExec_EmptyLine(t *testing.T) {
	h, w, _, pub := newTestHandler(t)
	addPlayer(t, w, "c1", "Alice")

	if err := h.Exec(context.Background(), "c1", "   "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "events", len(pub.all()), 0)
}

func TestExec_BareDirectionMoves(t *testing.T) {
	h, w, _, pub := newTestHandler(t)
	addPlayer(t, w, "c1", "Alice")

	if err := h.Exec(context.Background(), "c1", "n"); err != nil {
		t.Fatalf("moving: %v", err)
	}

	testutil.AssertEqual(t, "player room", w.Player("c1").RoomId, storage.Identifier("temple"))

	events := pub.all()
	testutil.AssertEqual(t, "event count", len(events), 4)

	// Snapshot to self first, then the travel line
	testutil.AssertEqual(t, "first scope", events[0].scope, "player")
	testutil.AssertEqual(t, "first category", events[0].event.Category, game.EventRoomDescription)
	testutil.AssertEqual(t, "snapshot room", events[0].event.Snapshot.RoomName, "Temple of Light")

	testutil.AssertEqual(t, "travel line", events[1].event.Message, "You head north.")

	// Departure to the old room, arrival to the new one, both excluding
	// the mover
	testutil.AssertEqual(t, "departure room", events[2].id, "square")
	testutil.AssertEqual(t, "departure line", events[2].event.Message, "Alice leaves north.")
	testutil.AssertEqual(t, "departure excludes", events[2].exclude[0], "c1")

	testutil.AssertEqual(t, "arrival room", events[3].id, "temple")
	testutil.AssertEqual(t, "arrival line", events[3].event.Message, "Alice arrives.")
	testutil.AssertEqual(t, "arrival excludes", events[3].exclude[0], "c1")
}

func TestExec_MoveNoExit(t *testing.T) {
	h, w, _, _ := newTestHandler(t)
	addPlayer(t, w, "c1", "Alice")

	err := h.Exec(context.Background(), "c1", "go down")
	assertUserError(t, err, "There is no exit down.")

	err = h.Exec(context.Background(), "c1", "go sideways")
	assertUserError(t, err, "Go where?")
}

func TestHandleSay(t *testing.T) {
	h, w, _, pub := newTestHandler(t)
	addPlayer(t, w, "c1", "Alice")

	if err := h.Exec(context.Background(), "c1", "say hello there"); err != nil {
		t.Fatalf("saying: %v", err)
	}

	events := pub.all()
	testutil.AssertEqual(t, "event count", len(events), 1)
	testutil.AssertEqual(t, "scope", events[0].scope, "room")
	testutil.AssertEqual(t, "category", events[0].event.Category, game.EventCharacterSpeech)
	testutil.AssertEqual(t, "message", events[0].event.Message, "Alice says, 'hello there'")
	// The speaker hears themselves
	testutil.AssertEqual(t, "exclusions", len(events[0].exclude), 0)

	err := h.Exec(context.Background(), "c1", "say")
	assertUserError(t, err, "Say what?")
}

func TestHandleShout(t *testing.T) {
	h, w, _, pub := newTestHandler(t)
	addPlayer(t, w, "c1", "Alice")

	if err := h.Exec(context.Background(), "c1", "shout anyone there?"); err != nil {
		t.Fatalf("shouting: %v", err)
	}

	events := pub.all()
	testutil.AssertEqual(t, "event count", len(events), 2)

	testutil.AssertEqual(t, "zone scope", events[0].scope, "zone")
	testutil.AssertEqual(t, "zone id", events[0].id, "midgard")
	testutil.AssertEqual(t, "zone message", events[0].event.Message, "Alice shouts, 'anyone there?'")
	testutil.AssertEqual(t, "zone excludes shouter", events[0].exclude[0], "c1")

	testutil.AssertEqual(t, "echo scope", events[1].scope, "player")
	testutil.AssertEqual(t, "echo", events[1].event.Message, "You shout, 'anyone there?'")
}

func TestHandleTarget(t *testing.T) {
	h, w, _, pub := newTestHandler(t)
	addPlayer(t, w, "c1", "Alice")
	addPlayer(t, w, "c2", "Bob")

	if err := h.Exec(context.Background(), "c1", "target bob"); err != nil {
		t.Fatalf("targeting: %v", err)
	}

	events := pub.all()
	testutil.AssertEqual(t, "event count", len(events), 2)
	testutil.AssertEqual(t, "snapshot category", events[0].event.Category, game.EventRoomDescription)
	testutil.AssertEqual(t, "confirmation", events[1].event.Message, "You are now targeting Bob.")

	err := h.Exec(context.Background(), "c1", "target Mallory")
	assertUserError(t, err, "There is no Mallory here.")
}

func TestHandleKill_ToggleOff(t *testing.T) {
	h, w, combat, pub := newTestHandler(t)
	addPlayer(t, w, "c1", "Alice")
	combat.attacking = true

	if err := h.Exec(context.Background(), "c1", "kill"); err != nil {
		t.Fatalf("toggling: %v", err)
	}

	testutil.AssertEqual(t, "stopped", len(combat.stopped), 1)
	testutil.AssertEqual(t, "engaged", len(combat.engaged), 0)

	events := pub.all()
	testutil.AssertEqual(t, "message", events[0].event.Message, "You stop attacking.")
}

func TestHandleKill_NoTarget(t *testing.T) {
	h, w, combat, _ := newTestHandler(t)
	addPlayer(t, w, "c1", "Alice")

	err := h.Exec(context.Background(), "c1", "kill")
	assertUserError(t, err, "No primary target selected.")
	testutil.AssertEqual(t, "engaged", len(combat.engaged), 0)
}

func TestHandleKill_EngagesExistingTarget(t *testing.T) {
	h, w, combat, _ := newTestHandler(t)
	addPlayer(t, w, "c1", "Alice")
	w.MovePlayer("c1", "east")
	w.SetPrimaryTarget("c1", "rat")

	if err := h.Exec(context.Background(), "c1", "kill"); err != nil {
		t.Fatalf("engaging: %v", err)
	}
	testutil.AssertEqual(t, "engaged", combat.engaged[0], "c1")
}

func TestHandleKill_Named(t *testing.T) {
	h, w, combat, _ := newTestHandler(t)
	addPlayer(t, w, "c1", "Alice")
	w.MovePlayer("c1", "east")

	if err := h.Exec(context.Background(), "c1", "kill rat"); err != nil {
		t.Fatalf("engaging: %v", err)
	}

	testutil.AssertEqual(t, "target set", w.HasPrimaryTarget("c1"), true)
	testutil.AssertEqual(t, "engaged", combat.engaged[0], "c1")

	err := h.Exec(context.Background(), "c1", "kill dragon")
	assertUserError(t, err, "There is no dragon here.")
}

func TestHandleEat(t *testing.T) {
	h, w, _, pub := newTestHandler(t)
	addPlayer(t, w, "c1", "Alice")

	if err := h.Exec(context.Background(), "c1", "eat bre"); err != nil {
		t.Fatalf("eating: %v", err)
	}

	events := pub.all()
	testutil.AssertEqual(t, "event count", len(events), 2)
	testutil.AssertEqual(t, "self message", events[0].event.Message, "You eat the bread")
	testutil.AssertEqual(t, "room scope", events[1].scope, "room")
	testutil.AssertEqual(t, "room message", events[1].event.Message, "Alice ate a bread")
	testutil.AssertEqual(t, "room excludes eater", events[1].exclude[0], "c1")
}

func TestHandleEat_SearchTooShort(t *testing.T) {
	h, w, _, _ := newTestHandler(t)
	addPlayer(t, w, "c1", "Alice")

	err := h.Exec(context.Background(), "c1", "eat br")
	assertUserError(t, err, "You'll have to be more specific.")
}

func TestHandleDrink_TypeFilter(t *testing.T) {
	h, w, _, _ := newTestHandler(t)
	addPlayer(t, w, "c1", "Alice")

	// Bread is food, not drink
	err := h.Exec(context.Background(), "c1", "drink bre")
	assertUserError(t, err, "You are not carrying a bre.")
}

func TestHandleLook(t *testing.T) {
	h, w, _, pub := newTestHandler(t)
	addPlayer(t, w, "c1", "Alice")

	if err := h.Exec(context.Background(), "c1", "look"); err != nil {
		t.Fatalf("looking: %v", err)
	}

	events := pub.all()
	testutil.AssertEqual(t, "category", events[0].event.Category, game.EventRoomDescription)
	testutil.AssertEqual(t, "room", events[0].event.Snapshot.RoomName, "Temple Square")
}

func TestHandleLook_Direction(t *testing.T) {
	h, w, _, pub := newTestHandler(t)
	addPlayer(t, w, "c1", "Alice")

	if err := h.Exec(context.Background(), "c1", "look north"); err != nil {
		t.Fatalf("looking: %v", err)
	}

	events := pub.all()
	testutil.AssertEqual(t, "message", events[0].event.Message, "To the north you see Temple of Light.")

	err := h.Exec(context.Background(), "c1", "look down")
	assertUserError(t, err, "There is no exit down.")
}

func TestHandleInventory(t *testing.T) {
	h, w, _, pub := newTestHandler(t)
	addPlayer(t, w, "c1", "Alice")

	if err := h.Exec(context.Background(), "c1", "inv"); err != nil {
		t.Fatalf("listing: %v", err)
	}

	events := pub.all()
	testutil.AssertEqual(t, "message", events[0].event.Message, "You are carrying:\nbread x1")

	// Eat the only loaf; the list empties
	if err := h.Exec(context.Background(), "c1", "eat bread"); err != nil {
		t.Fatalf("eating: %v", err)
	}
	if err := h.Exec(context.Background(), "c1", "inventory"); err != nil {
		t.Fatalf("listing: %v", err)
	}

	events = pub.all()
	last := events[len(events)-1]
	testutil.AssertEqual(t, "empty message", last.event.Message, "You are not carrying anything.")
}

func TestHandleWho(t *testing.T) {
	h, w, _, pub := newTestHandler(t)
	addPlayer(t, w, "c1", "Alice")
	addPlayer(t, w, "c2", "Bob")

	if err := h.Exec(context.Background(), "c1", "who"); err != nil {
		t.Fatalf("listing: %v", err)
	}

	events := pub.all()
	testutil.AssertEqual(t, "message", events[0].event.Message, "Players here:\nAlice\nBob")
}

func TestHandleHail(t *testing.T) {
	h, w, _, pub := newTestHandler(t)
	addPlayer(t, w, "c1", "Alice")
	addPlayer(t, w, "c2", "Bob")

	if err := h.Exec(context.Background(), "c1", "hail Bob"); err != nil {
		t.Fatalf("hailing: %v", err)
	}

	events := pub.all()
	testutil.AssertEqual(t, "event count", len(events), 3)
	testutil.AssertEqual(t, "self", events[0].event.Message, "You hail Bob.")
	testutil.AssertEqual(t, "target scope", events[1].scope, "player")
	testutil.AssertEqual(t, "target id", events[1].id, "c2")
	testutil.AssertEqual(t, "target", events[1].event.Message, "Alice hails you.")
	testutil.AssertEqual(t, "room", events[2].event.Message, "Alice hails Bob.")
	testutil.AssertEqual(t, "room exclusions", len(events[2].exclude), 2)
}

func TestHandleChar(t *testing.T) {
	h, w, _, pub := newTestHandler(t)
	addPlayer(t, w, "c1", "Alice")

	if err := h.Exec(context.Background(), "c1", "char"); err != nil {
		t.Fatalf("char: %v", err)
	}

	events := pub.all()
	msg := events[0].event.Message
	if !strings.Contains(msg, "Alice") || !strings.Contains(msg, "Health: 48/48") {
		t.Errorf("unexpected character sheet: %q", msg)
	}
}
