// Package epoch provides epoch-based deferred reclamation.
package epoch

import "sync"

// Action is a deferred reclamation action.
type Action func()

// ActionManager is the write-observer required by the hash table's write
// path. Every displacement of live memory goes through RegisterAction; the
// implementation decides when (or whether) the action may run.
type ActionManager interface {
	// RegisterAction queues an action to run once no reader can still
	// observe the memory it reclaims. Implementations may reject the
	// registration by returning an error, in which case the caller must
	// abort the mutation that produced it.
	RegisterAction(action Action) error
}

// epochSlots is the number of tracked epochs. An action registered in epoch
// E is safe to run once the epoch counter reaches E+2, so three slots are
// always sufficient.
const epochSlots = 3

type slot struct {
	refs    int
	actions []Action
}

// Manager is the standard ActionManager used at runtime.
//
// Readers pin the current epoch with Enter and release it with Guard.Exit.
// The owner advances the epoch periodically; each successful advance drains
// the slot that no live reader can reference anymore.
type Manager struct {
	mu    sync.Mutex
	epoch uint64
	slots [epochSlots]slot
}

// NewManager creates an epoch manager starting at epoch zero.
func NewManager() *Manager {
	return &Manager{}
}

// Guard represents a reader pinned to an epoch.
type Guard struct {
	m      *Manager
	idx    int
	exited bool
}

// Enter pins the caller to the current epoch. The returned guard must be
// released with Exit; holding it blocks reclamation of anything displaced
// during or after the pinned epoch.
func (m *Manager) Enter() *Guard {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := int(m.epoch % epochSlots)
	m.slots[idx].refs++
	return &Guard{m: m, idx: idx}
}

// Exit releases the guard. Exit is idempotent.
func (g *Guard) Exit() {
	if g.exited {
		return
	}
	g.exited = true
	g.m.mu.Lock()
	defer g.m.mu.Unlock()
	g.m.slots[g.idx].refs--
}

// RegisterAction implements ActionManager. The action is queued against the
// current epoch and never run inline.
func (m *Manager) RegisterAction(action Action) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := int(m.epoch % epochSlots)
	m.slots[idx].actions = append(m.slots[idx].actions, action)
	return nil
}

// Advance attempts to move to the next epoch. It succeeds only when the
// oldest tracked epoch has no pinned readers; the oldest epoch's actions are
// then run outside any reader's view. Returns the number of actions run and
// whether the epoch advanced.
func (m *Manager) Advance() (int, bool) {
	m.mu.Lock()
	oldest := int((m.epoch + 1) % epochSlots)
	if m.slots[oldest].refs > 0 {
		m.mu.Unlock()
		return 0, false
	}
	actions := m.slots[oldest].actions
	m.slots[oldest].actions = nil
	m.epoch++
	m.mu.Unlock()

	for _, a := range actions {
		a()
	}
	return len(actions), true
}

// Drain advances until all queued actions have run. It must only be called
// when no reader guards are outstanding.
func (m *Manager) Drain() int {
	total := 0
	for i := 0; i < epochSlots; i++ {
		n, ok := m.Advance()
		if !ok {
			break
		}
		total += n
	}
	return total
}

// Pending returns the number of queued actions across all epochs.
func (m *Manager) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for i := range m.slots {
		n += len(m.slots[i].actions)
	}
	return n
}

// Epoch returns the current epoch counter.
func (m *Manager) Epoch() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.epoch
}
