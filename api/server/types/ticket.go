package types

import "time"

type TicketStatus string

const (
	TicketStatusOpen         TicketStatus = "open"
	TicketStatusAcknowledged TicketStatus = "acknowledged"
	TicketStatusResolved     TicketStatus = "resolved"
)

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "low"
	TicketPriorityMedium TicketPriority = "medium"
	TicketPriorityHigh   TicketPriority = "high"
)

type Ticket struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Status    TicketStatus   `json:"status"`
	Priority  TicketPriority `json:"priority"`
	Assignee  string         `json:"assignee"`
	Project   string         `json:"project"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ListTicketsRequest only carries pagination: the filter and sort
// parameters are read straight off the query string by the repository's
// Filterable.
type ListTicketsRequest struct {
	*PaginationRequest
}

type ListTicketsResponse struct {
	Pagination *PaginationResponse `json:"pagination,omitempty"`
	Tickets    []*Ticket           `json:"tickets"`
}
