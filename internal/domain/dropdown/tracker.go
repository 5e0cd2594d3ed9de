// Package dropdown tracks which header menu, if any, is open.
package dropdown

// ID names a dropdown panel. The zero value None means nothing is open.
type ID string

const (
	None          ID = ""
	Calendar      ID = "calendar"
	Notifications ID = "notifications"
	User          ID = "user"
)

// All lists the known dropdowns in display order.
var All = []ID{Calendar, Notifications, User}

// Valid reports whether id is one of the known dropdowns or None.
func (id ID) Valid() bool {
	switch id {
	case None, Calendar, Notifications, User:
		return true
	}
	return false
}

func (id ID) String() string {
	if id == None {
		return "none"
	}
	return string(id)
}

// Tracker holds at most one open dropdown. The single slot is what keeps
// menus mutually exclusive; opening one replaces whatever was open.
//
// A Tracker belongs to one view and is not safe for concurrent use.
type Tracker struct {
	active ID
}

// NewTracker returns a tracker with nothing open.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Active returns the open dropdown or None.
func (t *Tracker) Active() ID {
	return t.active
}

// IsOpen reports whether id is the open dropdown.
func (t *Tracker) IsOpen(id ID) bool {
	return id != None && t.active == id
}

// AnyOpen reports whether some dropdown is open.
func (t *Tracker) AnyOpen() bool {
	return t.active != None
}

// Toggle closes id if it is open, otherwise opens it. Unknown ids are ignored.
func (t *Tracker) Toggle(id ID) {
	if !id.Valid() {
		return
	}
	if t.active == id {
		t.active = None
		return
	}
	t.active = id
}

// CloseAll closes any open dropdown.
func (t *Tracker) CloseAll() {
	t.active = None
}
