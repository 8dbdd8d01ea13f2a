// Package querysync keeps list-view state in sync with an external query
// representation and with asynchronous fetches. It provides the codecs
// that translate filter state to flat string parameters, a reconciler
// that guarantees the newest requested state wins, and a client-side
// pager for collections filtered in memory.
package querysync

import (
	"strconv"

	"deskline/internal/shared/constants"
)

// TicketQuery is the board's complete filter and pagination state.
type TicketQuery struct {
	Page     int
	Limit    int
	Q        string
	Status   string
	AgentID  string
	Priority string
}

// DefaultTicketQuery returns the state every field falls back to.
func DefaultTicketQuery() TicketQuery {
	return TicketQuery{
		Page:     constants.DefaultPage,
		Limit:    constants.DefaultLimit,
		Q:        "",
		Status:   constants.FilterAll,
		AgentID:  constants.FilterAll,
		Priority: constants.FilterAll,
	}
}

// Equal reports structural equality.
func (q TicketQuery) Equal(other TicketQuery) bool {
	return q == other
}

// Encode renders the query as flat string parameters, omitting every
// field that still holds its default so URLs stay minimal.
func (q TicketQuery) Encode() map[string]string {
	def := DefaultTicketQuery()
	params := make(map[string]string)

	if q.Page != def.Page {
		params["page"] = strconv.Itoa(q.Page)
	}
	if q.Limit != def.Limit {
		params["limit"] = strconv.Itoa(q.Limit)
	}
	if q.Q != def.Q {
		params["q"] = q.Q
	}
	if q.Status != def.Status {
		params["status"] = q.Status
	}
	if q.AgentID != def.AgentID {
		params["agentId"] = q.AgentID
	}
	if q.Priority != def.Priority {
		params["priority"] = q.Priority
	}

	return params
}

// DecodeTicketQuery rebuilds the state from flat parameters. It never
// fails: missing or malformed values fall back to their defaults, and
// unknown enum text passes through unchanged since the server treats
// unknown values as matching nothing.
func DecodeTicketQuery(params map[string]string) TicketQuery {
	q := DefaultTicketQuery()

	q.Page = decodePositiveInt(params["page"], q.Page)
	q.Limit = decodePositiveInt(params["limit"], q.Limit)

	if v, ok := params["q"]; ok {
		q.Q = v
	}
	if v, ok := params["status"]; ok && v != "" {
		q.Status = v
	}
	if v, ok := params["agentId"]; ok && v != "" {
		q.AgentID = v
	}
	if v, ok := params["priority"]; ok && v != "" {
		q.Priority = v
	}

	return q
}

func decodePositiveInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
