package combat

import (
	"fmt"
	"sync"
	"time"

	"github.com/ChrisLebbano/embermud/internal/game"
	"github.com/ChrisLebbano/embermud/internal/storage"
)

// World is the slice of world operations the scheduler drives.
type World interface {
	PerformAttack(connId string) (*game.AttackResult, error)
	PerformNonPlayerCharacterAttack(npcId, targetConnId string) (*game.AttackResult, error)
	SetAttacking(connId string, attacking bool) error
	HasPrimaryTarget(connId string) bool
	RoomSnapshot(roomId storage.Identifier, connId string) (*game.RoomSnapshot, error)
}

// Manager owns every combat timer in the process: player attack loops keyed
// by connection id and NPC retaliation loops keyed by NPC instance id. A map
// entry marks a live loop and stays in place across an in-flight swing; every
// continuation re-checks the entry under the lock before re-arming, so a stop
// that lands mid-swing always wins. An entry left behind after its owner is
// gone is a leak and a correctness bug.
type Manager struct {
	mu    sync.Mutex
	world World
	pub   game.Publisher

	playerLoops map[string]*playerLoop
	npcLoops    map[string]*npcLoop

	// nextSwing records the absolute earliest next attack per connection.
	// Remaining delay is always recomputed from it, so a stop/start cycle
	// inherits the live cooldown instead of restarting it.
	nextSwing map[string]time.Time
}

type playerLoop struct {
	timer *time.Timer
}

type npcLoop struct {
	timer  *time.Timer
	target string
}

func NewManager(world World, pub game.Publisher) *Manager {
	return &Manager{
		world:       world,
		pub:         pub,
		playerLoops: make(map[string]*playerLoop),
		npcLoops:    make(map[string]*npcLoop),
		nextSwing:   make(map[string]time.Time),
	}
}

// Attacking reports whether the connection has an active attack loop,
// including one whose swing is currently executing.
func (m *Manager) Attacking(connId string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.playerLoops[connId]
	return ok
}

// ActiveTimers returns the live loop counts. Tests use it to assert the
// timer maps drain to zero once a combat episode concludes.
func (m *Manager) ActiveTimers() (players, npcs int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.playerLoops), len(m.npcLoops)
}

// Engage starts (or resumes) the attack loop for a connection. Re-entering
// while the loop is live is a no-op; a second loop must never exist for the
// same connection.
func (m *Manager) Engage(connId string) {
	m.mu.Lock()
	if _, ok := m.playerLoops[connId]; ok {
		m.mu.Unlock()
		return
	}
	m.playerLoops[connId] = &playerLoop{}
	m.mu.Unlock()

	if err := m.world.SetAttacking(connId, true); err != nil {
		m.mu.Lock()
		delete(m.playerLoops, connId)
		m.mu.Unlock()
		m.systemMessage(connId, err.Error())
		return
	}

	m.attemptSwing(connId)
}

// attemptSwing fires immediately when the cooldown has elapsed (the default
// when no record exists) and otherwise schedules the remaining delay. A loop
// stopped since the continuation was armed goes no further.
func (m *Manager) attemptSwing(connId string) {
	m.mu.Lock()
	loop, ok := m.playerLoops[connId]
	if !ok {
		m.mu.Unlock()
		return
	}
	now := time.Now()
	if next, ok := m.nextSwing[connId]; ok && now.Before(next) {
		m.scheduleSwingLocked(loop, connId, next.Sub(now))
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	m.swing(connId)
}

// scheduleSwingLocked requires m.mu held and a live loop entry.
func (m *Manager) scheduleSwingLocked(loop *playerLoop, connId string, d time.Duration) {
	loop.timer = time.AfterFunc(d, func() {
		m.attemptSwing(connId)
	})
}

func (m *Manager) swing(connId string) {
	res, err := m.world.PerformAttack(connId)
	if err != nil {
		m.finishPlayerLoop(connId, err)
		return
	}

	// Ordered emissions: damage dealt, damage received, refreshed room.
	m.pub.ToPlayer(connId, &game.Event{
		Category: game.EventSelfDealingAttackDamage,
		Message:  fmt.Sprintf("You hit %s for %d damage.", res.TargetName, res.Damage),
	})
	if res.TargetConnId != "" {
		m.pub.ToPlayer(res.TargetConnId, &game.Event{
			Category: game.EventSelfRecieveAttackDamage,
			Message:  fmt.Sprintf("%s hits you for %d damage.", res.AttackerName, res.Damage),
		})
	}
	if snap, err := m.world.RoomSnapshot(res.RoomId, connId); err == nil {
		m.pub.ToPlayer(connId, &game.Event{Category: game.EventRoomDescription, Snapshot: snap})
	}

	if res.RetaliationStarted {
		m.StartRetaliation(res.TargetNPCId, connId, res.RetaliationDelay)
	}

	delay := secondsToDuration(res.AttackerDelay)
	m.mu.Lock()
	m.nextSwing[connId] = time.Now().Add(delay)
	if loop, ok := m.playerLoops[connId]; ok {
		m.scheduleSwingLocked(loop, connId, delay)
	}
	m.mu.Unlock()
}

// finishPlayerLoop performs the mandatory cleanup for an error or warning
// outcome, then reports it. Cleanup always precedes reporting.
func (m *Manager) finishPlayerLoop(connId string, err error) {
	m.stopPlayerLoop(connId)
	_ = m.world.SetAttacking(connId, false)

	if warn, ok := game.AsWarning(err); ok {
		if warn.TargetNPCId != "" {
			// The NPC died (or was already dead); its retaliation loop
			// must not keep firing.
			m.StopRetaliation(warn.TargetNPCId)
		}
		m.systemMessage(connId, warn.Message)
		if warn.StopMessage != "" {
			m.systemMessage(connId, warn.StopMessage)
		}
		if warn.TargetConnId != "" && warn.TargetConnId != connId {
			m.systemMessage(warn.TargetConnId, "You have been slain!")
			m.StopAttack(warn.TargetConnId)
		}
		return
	}

	if we, ok := game.AsWorldError(err); ok {
		m.systemMessage(connId, we.Message)
		return
	}
}

// StopAttack cancels the connection's attack loop, if any, and clears the
// attack flag. Used for the explicit toggle-off and for disconnects.
func (m *Manager) StopAttack(connId string) {
	m.stopPlayerLoop(connId)
	_ = m.world.SetAttacking(connId, false)
}

func (m *Manager) stopPlayerLoop(connId string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if loop, ok := m.playerLoops[connId]; ok {
		if loop.timer != nil {
			loop.timer.Stop()
		}
		delete(m.playerLoops, connId)
	}
}

// HandleDisconnect stops the connection's attack loop. The cooldown record
// stays so a reconnection within the grace period inherits the live swing
// delay via RekeyPlayer.
func (m *Manager) HandleDisconnect(connId string) {
	m.StopAttack(connId)
}

// RemovePlayer tears down everything the connection owns, including its
// cooldown record. Called once the character leaves the world for good.
func (m *Manager) RemovePlayer(connId string) {
	m.StopAttack(connId)
	m.mu.Lock()
	delete(m.nextSwing, connId)
	m.mu.Unlock()
}

// RekeyPlayer follows a seamless reconnection: the cooldown record moves to
// the new connection id and retaliation loops keep aiming at the player.
func (m *Manager) RekeyPlayer(oldConnId, newConnId string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if next, ok := m.nextSwing[oldConnId]; ok {
		delete(m.nextSwing, oldConnId)
		m.nextSwing[newConnId] = next
	}
	for _, loop := range m.npcLoops {
		if loop.target == oldConnId {
			loop.target = newConnId
		}
	}
}

// StartRetaliation registers the NPC's return-attack loop against the player
// currently attacking it. One loop per NPC: if one is already registered the
// first attacker keeps ownership and this call is a no-op.
func (m *Manager) StartRetaliation(npcId, targetConnId string, delaySeconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.npcLoops[npcId]; ok {
		return
	}

	loop := &npcLoop{target: targetConnId}
	loop.timer = time.AfterFunc(secondsToDuration(delaySeconds), func() {
		m.npcSwing(npcId)
	})
	m.npcLoops[npcId] = loop
}

// StopRetaliation cancels the NPC's loop and removes its map entry.
func (m *Manager) StopRetaliation(npcId string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if loop, ok := m.npcLoops[npcId]; ok {
		loop.timer.Stop()
		delete(m.npcLoops, npcId)
	}
}

func (m *Manager) npcSwing(npcId string) {
	m.mu.Lock()
	loop, ok := m.npcLoops[npcId]
	if !ok {
		m.mu.Unlock()
		return
	}
	target := loop.target
	m.mu.Unlock()

	res, err := m.world.PerformNonPlayerCharacterAttack(npcId, target)
	if err != nil {
		// Any terminal condition ends the loop: the target died, moved
		// away, or disconnected, or the NPC itself is dead.
		m.StopRetaliation(npcId)

		if warn, ok := game.AsWarning(err); ok && warn.TargetConnId != "" {
			m.systemMessage(warn.TargetConnId, warn.Message)
			m.StopAttack(warn.TargetConnId)
		}
		return
	}

	m.pub.ToPlayer(res.TargetConnId, &game.Event{
		Category: game.EventSelfRecieveAttackDamage,
		Message:  fmt.Sprintf("%s hits you for %d damage.", res.AttackerName, res.Damage),
	})
	if snap, err := m.world.RoomSnapshot(res.RoomId, res.TargetConnId); err == nil {
		m.pub.ToPlayer(res.TargetConnId, &game.Event{Category: game.EventRoomDescription, Snapshot: snap})
	}

	m.mu.Lock()
	if loop, ok := m.npcLoops[npcId]; ok {
		loop.timer = time.AfterFunc(secondsToDuration(res.AttackerDelay), func() {
			m.npcSwing(npcId)
		})
	}
	m.mu.Unlock()
}

func (m *Manager) systemMessage(connId, msg string) {
	m.pub.ToPlayer(connId, &game.Event{Category: game.EventSystem, Message: msg})
}

func secondsToDuration(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}
