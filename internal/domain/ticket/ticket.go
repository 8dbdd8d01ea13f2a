package ticket

import (
	"fmt"
	"time"

	vo "deskline/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id          string
	title       string
	description string
	status      vo.TicketStatus
	priority    vo.Priority
	agentID     string
	tags        []string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(
	id string,
	title string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	agentID string,
	tags []string,
) (*Ticket, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		agentID:     agentID,
		tags:        tags,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id string,
	title string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	agentID string,
	tags []string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	if tags == nil {
		tags = []string{}
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		agentID:     agentID,
		tags:        tags,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() string {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) AgentID() string {
	return t.agentID
}

func (t *Ticket) Tags() []string {
	tagsCopy := make([]string, len(t.tags))
	copy(tagsCopy, t.tags)
	return tagsCopy
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// ChangeStatus moves the ticket to newStatus and stamps updatedAt. It
// returns the status the ticket had immediately before the change so the
// caller can record it in the ticket log.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) (vo.TicketStatus, error) {
	if !newStatus.IsValid() {
		return "", fmt.Errorf("invalid status: %s", newStatus)
	}

	from := t.status
	t.status = newStatus
	t.updatedAt = time.Now().UTC()

	return from, nil
}
