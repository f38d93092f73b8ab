package repository

import (
	"net/url"

	"gorm.io/gorm"

	"github.com/filterable-dev/filterable/internal/models"
	"github.com/filterable-dev/filterable/internal/utils"
	"github.com/filterable-dev/filterable/pkg/filterable"
)

type TicketRepository struct {
	db *gorm.DB
}

// NewTicketRepository returns pointer to repo along with the db
func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db}
}

func (r *TicketRepository) CreateTicket(ticket *models.Ticket) (*models.Ticket, error) {
	if err := r.db.Create(ticket).Error; err != nil {
		return nil, err
	}

	return ticket, nil
}

func (r *TicketRepository) ReadTicket(uid string) (*models.Ticket, error) {
	ticket := &models.Ticket{}

	if err := r.db.Where("unique_id = ?", uid).First(ticket).Error; err != nil {
		return nil, err
	}

	return ticket, nil
}

func (r *TicketRepository) UpdateTicket(ticket *models.Ticket) (*models.Ticket, error) {
	if err := r.db.Save(ticket).Error; err != nil {
		return nil, err
	}

	return ticket, nil
}

// ListTickets translates the request's query string into WHERE and ORDER
// BY clauses and returns one page of matches.
func (r *TicketRepository) ListTickets(values url.Values, opts ...utils.QueryOption) ([]*models.Ticket, *utils.PaginatedResult, error) {
	q := utils.NewQuery(opts)

	fl := filterable.New(
		r.db.Model(&models.Ticket{}),
		values,
		filterable.WithSortParams(q.SortByParam, q.SortDescParam),
		filterable.WithDefaultSort(q.SortBy, q.Order == utils.OrderDesc),
	)

	err := fl.RegisterFilters(map[string]interface{}{
		"status":   filterable.In{},
		"priority": filterable.In{},
		"assignee": filterable.Where{},
		"project":  filterable.Where{},
		"title":    filterable.Like{},
	})

	if err != nil {
		return nil, nil, err
	}

	// priority sorts by severity, not lexically
	err = fl.RegisterSorter("priority", func(db *gorm.DB, column string, desc bool) *gorm.DB {
		expr := "CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END"

		if desc {
			expr += " DESC"
		}

		return db.Order(expr)
	})

	if err != nil {
		return nil, nil, err
	}

	db := fl.Apply().Session(&gorm.Session{})

	var count int64

	if err := db.Count(&count).Error; err != nil {
		return nil, nil, err
	}

	var tickets []*models.Ticket

	if err := db.Scopes(q.Scope()).Find(&tickets).Error; err != nil {
		return nil, nil, err
	}

	return tickets, q.Result(count), nil
}

func (r *TicketRepository) DeleteTicket(uid string) error {
	ticket := &models.Ticket{}

	if err := r.db.Where("unique_id = ?", uid).First(ticket).Error; err != nil {
		return err
	}

	if err := r.db.Delete(ticket).Error; err != nil {
		return err
	}

	return nil
}
