package filterable

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Filter applies a WHERE-style constraint to the query for a single input
// key. Implementations are stateless: they receive the builder, the input
// key and the request-supplied value, and return the mutated builder.
type Filter interface {
	Filter(db *gorm.DB, key string, value string) *gorm.DB
}

// FilterFunc adapts a plain function to the Filter interface.
type FilterFunc func(db *gorm.DB, key string, value string) *gorm.DB

func (f FilterFunc) Filter(db *gorm.DB, key string, value string) *gorm.DB {
	return f(db, key, value)
}

// Where filters by exact match on the column named by the input key.
type Where struct{}

func (Where) Filter(db *gorm.DB, key string, value string) *gorm.DB {
	return db.Where(clause.Eq{
		Column: clause.Column{Name: key},
		Value:  value,
	})
}

// Like filters by substring match on the column named by the input key.
type Like struct{}

func (Like) Filter(db *gorm.DB, key string, value string) *gorm.DB {
	return db.Where(clause.Like{
		Column: clause.Column{Name: key},
		Value:  "%" + value + "%",
	})
}

// In filters by set membership. The request value is a comma-separated
// list of candidates.
type In struct{}

func (In) Filter(db *gorm.DB, key string, value string) *gorm.DB {
	parts := strings.Split(value, ",")

	candidates := make([]interface{}, 0, len(parts))

	for _, p := range parts {
		candidates = append(candidates, strings.TrimSpace(p))
	}

	return db.Where(clause.IN{
		Column: clause.Column{Name: key},
		Values: candidates,
	})
}
