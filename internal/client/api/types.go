package api

import "time"

type Ticket struct {
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

// TicketPage is the paginated listing envelope.
type TicketPage struct {
	Items      []Ticket `json:"items"`
	Page       int      `json:"page"`
	TotalPages int      `json:"totalPages"`
	TotalItems int64    `json:"totalItems"`
}

type LogEntry struct {
	ID        string    `json:"id"`
	TicketID  string    `json:"ticketId"`
	Action    string    `json:"action"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type Agent struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

type Item struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

// TicketPatch is the PATCH response decoded with pointer fields so a
// shallow merge can tell "absent" from "zero": a nil field leaves the
// displayed value untouched.
type TicketPatch struct {
	ID          *string    `json:"id"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	AgentID     *string    `json:"agentId"`
	Tags        *[]string  `json:"tags"`
	CreatedAt   *time.Time `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

// Apply shallow-merges the patch into a ticket, field by field.
func (p *TicketPatch) Apply(t Ticket) Ticket {
	if p.ID != nil {
		t.ID = *p.ID
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.AgentID != nil {
		t.AgentID = *p.AgentID
	}
	if p.Tags != nil {
		t.Tags = *p.Tags
	}
	if p.CreatedAt != nil {
		t.CreatedAt = *p.CreatedAt
	}
	if p.UpdatedAt != nil {
		t.UpdatedAt = *p.UpdatedAt
	}
	return t
}

type statusChangeRequest struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

type errorBody struct {
	Error string `json:"error"`
}
