package order

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
)

const (
	ActionOrderPlaced   = "Order placed"
	ActionNoteAdded     = "Note added"
	actionStatusChanged = "Status changed from %s to %s"
)

// Activity is one audit-log entry on an order. Entries are immutable.
type Activity struct {
	userID     string
	userEmail  string
	userName   string
	action     string
	fromStatus Status
	toStatus   Status
	notes      string
	timestamp  time.Time
}

func newActivity(actor kernel.Actor, action string, from, to Status, notes string, at time.Time) Activity {
	return Activity{
		userID:     actor.UserID(),
		userEmail:  actor.Email(),
		userName:   actor.Name(),
		action:     action,
		fromStatus: from,
		toStatus:   to,
		notes:      notes,
		timestamp:  at.UTC(),
	}
}

// RestoreActivity rebuilds an activity loaded from storage.
func RestoreActivity(
	userID, userEmail, userName, action string,
	from, to Status,
	notes string,
	timestamp time.Time,
) Activity {
	return Activity{
		userID:     userID,
		userEmail:  userEmail,
		userName:   userName,
		action:     action,
		fromStatus: from,
		toStatus:   to,
		notes:      notes,
		timestamp:  timestamp,
	}
}

func (a Activity) UserID() string       { return a.userID }
func (a Activity) UserEmail() string    { return a.userEmail }
func (a Activity) UserName() string     { return a.userName }
func (a Activity) Action() string       { return a.action }
func (a Activity) FromStatus() Status   { return a.fromStatus }
func (a Activity) ToStatus() Status     { return a.toStatus }
func (a Activity) Notes() string        { return a.notes }
func (a Activity) Timestamp() time.Time { return a.timestamp }
