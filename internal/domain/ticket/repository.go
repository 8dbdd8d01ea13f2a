package ticket

import "context"

// Filter narrows a ticket listing. The sentinel value "all" on Status,
// AgentID, or Priority disables that predicate; Q is a case-insensitive
// substring match over title and description.
type Filter struct {
	Status   string
	AgentID  string
	Priority string
	Q        string
	Page     int
	Limit    int
}

type Repository interface {
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	FindByID(ctx context.Context, id string) (*Ticket, error)
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
}

type LogRepository interface {
	Append(ctx context.Context, entry *LogEntry) error
	// ListByTicketID returns entries newest first.
	ListByTicketID(ctx context.Context, ticketID string) ([]*LogEntry, error)
}

type AgentRepository interface {
	// List returns agents sorted by name ascending.
	List(ctx context.Context) ([]*Agent, error)
	FindByID(ctx context.Context, id string) (*Agent, error)
	Save(ctx context.Context, a *Agent) error
}
