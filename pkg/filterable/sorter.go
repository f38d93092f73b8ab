package filterable

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sorter applies an ORDER BY-style clause to the query. Implementations
// are stateless: they receive the builder, the column selected by the
// sort-by parameter and the requested direction, and return the mutated
// builder.
type Sorter interface {
	Sort(db *gorm.DB, column string, desc bool) *gorm.DB
}

// SorterFunc adapts a plain function to the Sorter interface.
type SorterFunc func(db *gorm.DB, column string, desc bool) *gorm.DB

func (f SorterFunc) Sort(db *gorm.DB, column string, desc bool) *gorm.DB {
	return f(db, column, desc)
}

// OrderBy sorts on the selected column through gorm's native Order
// method. It is the default sorter.
type OrderBy struct{}

func (OrderBy) Sort(db *gorm.DB, column string, desc bool) *gorm.DB {
	return db.Order(clause.OrderByColumn{
		Column: clause.Column{Name: column},
		Desc:   desc,
	})
}
