package gallery

import (
	"time"

	"poemlens/internal/domain"
)

// DefaultUndoWindow is the number of seconds a deletion stays undoable.
const DefaultUndoWindow = 5

// TickInterval is the countdown tick period.
const TickInterval = time.Second

// PendingDeletion is the read-only snapshot of the in-flight deletion
// consumed by the presentation layer.
type PendingDeletion struct {
	ID          domain.EntryID
	SecondsLeft int
}

// TickResult reports the outcome of delivering a countdown tick.
type TickResult struct {
	// Live is true when the countdown is still running and the host should
	// schedule the next tick.
	Live bool
	// Expired is true when this tick finalized the deletion.
	Expired bool
	// SecondsLeft is the remaining window after the tick, valid when Live.
	SecondsLeft int
}

// Controller serializes deletions through a single undoable slot.
//
// At most one deletion is pending at any time. Accepting a deletion removes
// the entry from the store immediately and starts a countdown; the entry is
// restored only by Undo before the countdown reaches zero. Expiry is purely
// state cleanup: the store was already mutated on entry to the pending
// state.
//
// Like PressDetector, the controller owns no timers. The host schedules a
// tick every TickInterval and delivers it through Tick with the epoch value
// current at scheduling time. Every exit from the pending state bumps the
// epoch, so ticks scheduled for a finished cycle are inert and can never
// bleed into a later one.
type Controller struct {
	store   Store
	window  int
	epoch   int
	pending *pendingSlot
}

type pendingSlot struct {
	entry       domain.Entry
	secondsLeft int
}

// NewController creates a controller over the given store.
// A zero or negative window falls back to DefaultUndoWindow.
func NewController(store Store, window int) *Controller {
	if window <= 0 {
		window = DefaultUndoWindow
	}
	return &Controller{store: store, window: window}
}

// Window returns the undo window length in seconds.
func (c *Controller) Window() int {
	return c.window
}

// Epoch returns the value the host must attach to countdown ticks it
// schedules for the current pending cycle.
func (c *Controller) Epoch() int {
	return c.epoch
}

// RequestDelete removes the entry with the given ID from the store and
// opens the undo window. It returns false without any effect when a
// deletion is already pending or when the ID is absent from the store;
// both are defined no-ops, not errors.
func (c *Controller) RequestDelete(id domain.EntryID) bool {
	if c.pending != nil {
		// Single undo slot: a second request is dropped silently.
		return false
	}
	entry, ok := c.store.Remove(id)
	if !ok {
		return false
	}
	c.epoch++
	c.pending = &pendingSlot{entry: entry, secondsLeft: c.window}
	return true
}

// Undo restores the pending entry to the store at its identity-ordered
// position and closes the undo window. Returns false as a no-op when
// nothing is pending.
func (c *Controller) Undo() bool {
	if c.pending == nil {
		return false
	}
	c.store.Insert(c.pending.entry)
	c.pending = nil
	c.epoch++
	return true
}

// Tick delivers one countdown tick for the cycle identified by epoch.
// Ticks carrying a stale epoch, or arriving while nothing is pending, are
// no-ops. When the countdown reaches zero the deletion is finalized: the
// slot is discarded and the store is left untouched.
func (c *Controller) Tick(epoch int) TickResult {
	if c.pending == nil || epoch != c.epoch {
		return TickResult{}
	}
	c.pending.secondsLeft--
	if c.pending.secondsLeft > 0 {
		return TickResult{Live: true, SecondsLeft: c.pending.secondsLeft}
	}
	c.pending = nil
	c.epoch++
	return TickResult{Expired: true}
}

// Snapshot returns the current pending deletion, if any.
func (c *Controller) Snapshot() (PendingDeletion, bool) {
	if c.pending == nil {
		return PendingDeletion{}, false
	}
	return PendingDeletion{ID: c.pending.entry.ID, SecondsLeft: c.pending.secondsLeft}, true
}
