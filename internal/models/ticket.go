package models

import (
	"gorm.io/gorm"

	"github.com/filterable-dev/filterable/api/server/types"
)

type Ticket struct {
	gorm.Model

	UniqueID string `gorm:"unique"`

	Title    string
	Status   types.TicketStatus
	Priority types.TicketPriority
	Assignee string
	Project  string
}

func NewTicket() *Ticket {
	randStr, _ := GenerateRandomBytes(16)

	return &Ticket{
		UniqueID: randStr,
		Status:   types.TicketStatusOpen,
		Priority: types.TicketPriorityMedium,
	}
}

func (t *Ticket) ToAPIType() *types.Ticket {
	return &types.Ticket{
		ID:        t.UniqueID,
		Title:     t.Title,
		Status:    t.Status,
		Priority:  t.Priority,
		Assignee:  t.Assignee,
		Project:   t.Project,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
