package wheel

import (
	"math"
	"time"
)

// DragSession identifies the marker being dragged. At most one exists at a
// time; it lives only between pointer-down and pointer-up.
type DragSession struct {
	ActivityID string
	Handle     Handle
}

// UpdateFunc receives exactly one reschedule request per completed drag.
// Durability is the caller's concern; if it rejects the date, the next
// recompute simply reflects the unchanged source data.
type UpdateFunc func(activityID string, handle Handle, t time.Time)

// DragController is the Idle | Dragging{id, handle} state machine. It converts
// pointer positions into dates through the active Mapper and commits on
// pointer-up. A second pointer-down while dragging is caller error and is not
// handled defensively.
type DragController struct {
	geometry *Geometry
	mapper   *Mapper
	onUpdate UpdateFunc

	session *DragSession
	preview *time.Time
}

func NewDragController(g *Geometry, m *Mapper, onUpdate UpdateFunc) *DragController {
	return &DragController{geometry: g, mapper: m, onUpdate: onUpdate}
}

// Session returns the active drag session, or nil when idle.
func (c *DragController) Session() *DragSession {
	return c.session
}

// Preview returns the optimistic date of the in-flight drag, if any, so the
// host can redraw the arc before the commit lands.
func (c *DragController) Preview() (time.Time, bool) {
	if c.preview == nil {
		return time.Time{}, false
	}
	return *c.preview, true
}

func (c *DragController) PointerDown(activityID string, handle Handle) {
	c.session = &DragSession{ActivityID: activityID, Handle: handle}
	c.preview = nil
}

// PointerMove recomputes the pointer's angle around the circle center and maps
// it to a date preview. Returns false when no drag is active.
func (c *DragController) PointerMove(x, y float64) (time.Time, bool) {
	if c.session == nil {
		return time.Time{}, false
	}
	t := c.dateAt(x, y)
	c.preview = &t
	return t, true
}

// PointerUp ends the session. The session and preview are cleared before the
// update callback runs, so the controller is back in Idle even if the caller
// rejects the date.
func (c *DragController) PointerUp(x, y float64) {
	if c.session == nil {
		return
	}
	id := c.session.ActivityID
	handle := c.session.Handle
	t := c.dateAt(x, y)

	c.session = nil
	c.preview = nil

	if c.onUpdate != nil {
		c.onUpdate(id, handle, t)
	}
}

func (c *DragController) dateAt(x, y float64) time.Time {
	angle := math.Atan2(y-c.geometry.Center.Y, x-c.geometry.Center.X)
	return c.mapper.DateOf(angle)
}
