// Package filterable translates query-string parameters from an incoming
// HTTP request into WHERE and ORDER BY clauses on a gorm query builder.
//
// A Filterable is constructed per request around the builder and the
// request values, filters and sorters are registered against the input
// keys they handle, and Apply dispatches every recognized key to its
// strategy:
//
//	fl := filterable.NewFromRequest(db.Model(&Ticket{}), r)
//
//	fl.RegisterFilters(map[string]interface{}{
//		"status":   filterable.Where{},
//		"assignee": filterable.Where{},
//		"title":    filterable.Like{},
//	})
//
//	var tickets []Ticket
//	fl.Apply().Find(&tickets)
//
// Keys without a registered filter are ignored unless a default filter is
// configured, so untrusted input can be passed through as-is. Sorting is
// driven by a pair of parameters (sort_by and sort_desc by default) and
// falls back to the OrderBy sorter.
package filterable
