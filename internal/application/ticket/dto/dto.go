package dto

import (
	"time"

	"deskline/internal/domain/ticket"
)

type TicketDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	AgentID     string    `json:"agentId"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type LogEntryDTO struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticketId"`
	Action    string    `json:"action"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type AgentDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func ToTicketDTO(t *ticket.Ticket) TicketDTO {
	return TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		AgentID:     t.AgentID(),
		Tags:        t.Tags(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []TicketDTO {
	out := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ToTicketDTO(t))
	}
	return out
}

func ToLogEntryDTO(e *ticket.LogEntry) LogEntryDTO {
	return LogEntryDTO{
		ID:        e.ID(),
		TicketID:  e.TicketID(),
		Action:    e.Action(),
		From:      e.From().String(),
		To:        e.To().String(),
		Comment:   e.Comment(),
		CreatedAt: e.CreatedAt(),
	}
}

func ToLogEntryDTOs(entries []*ticket.LogEntry) []LogEntryDTO {
	out := make([]LogEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToLogEntryDTO(e))
	}
	return out
}

func ToAgentDTO(a *ticket.Agent) AgentDTO {
	return AgentDTO{
		ID:    a.ID(),
		Name:  a.Name(),
		Email: a.Email(),
	}
}

func ToAgentDTOs(agents []*ticket.Agent) []AgentDTO {
	out := make([]AgentDTO, 0, len(agents))
	for _, a := range agents {
		out = append(out, ToAgentDTO(a))
	}
	return out
}
