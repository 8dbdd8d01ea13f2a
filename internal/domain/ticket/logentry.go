package ticket

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	vo "deskline/internal/domain/ticket/valueobjects"
)

const ActionStatusChanged = "status_changed"

// LogEntry is an immutable, append-only record of a ticket mutation. It is
// created exactly once per successful status change and never updated or
// deleted afterwards.
type LogEntry struct {
	id        string
	ticketID  string
	action    string
	from      vo.TicketStatus
	to        vo.TicketStatus
	comment   string
	createdAt time.Time
}

// NewStatusChangeLog records a status transition. from must be the ticket's
// status immediately prior to the mutation; to is the new status.
func NewStatusChangeLog(ticketID string, from, to vo.TicketStatus, comment string) (*LogEntry, error) {
	if len(ticketID) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !to.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", to)
	}
	if len(comment) == 0 {
		return nil, fmt.Errorf("comment is required")
	}

	return &LogEntry{
		id:        uuid.NewString(),
		ticketID:  ticketID,
		action:    ActionStatusChanged,
		from:      from,
		to:        to,
		comment:   comment,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructLogEntry(
	id string,
	ticketID string,
	action string,
	from, to vo.TicketStatus,
	comment string,
	createdAt time.Time,
) (*LogEntry, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("log entry ID is required")
	}
	if len(ticketID) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &LogEntry{
		id:        id,
		ticketID:  ticketID,
		action:    action,
		from:      from,
		to:        to,
		comment:   comment,
		createdAt: createdAt,
	}, nil
}

func (l *LogEntry) ID() string {
	return l.id
}

func (l *LogEntry) TicketID() string {
	return l.ticketID
}

func (l *LogEntry) Action() string {
	return l.action
}

func (l *LogEntry) From() vo.TicketStatus {
	return l.from
}

func (l *LogEntry) To() vo.TicketStatus {
	return l.to
}

func (l *LogEntry) Comment() string {
	return l.comment
}

func (l *LogEntry) CreatedAt() time.Time {
	return l.createdAt
}
