package utils

type Ordering string

const (
	OrderAsc  Ordering = "asc"
	OrderDesc Ordering = "desc"
)

type Query struct {
	Limit  int
	Offset int
	SortBy string
	Order  Ordering

	SortByParam   string
	SortDescParam string
}

// NewQuery resolves a list of options against the defaults.
func NewQuery(opts []QueryOption) Query {
	q := Query{
		Limit:         50,
		Offset:        0,
		SortBy:        "id",
		Order:         OrderAsc,
		SortByParam:   "sort_by",
		SortDescParam: "sort_desc",
	}

	for _, opt := range opts {
		opt.Apply(&q)
	}

	return q
}

type QueryOption interface {
	Apply(*Query)
}

func WithLimit(limit uint) QueryOption {
	return withLimit(limit)
}

type withLimit uint

func (w withLimit) Apply(q *Query) {
	q.Limit = int(w)
}

func WithOffset(offset uint) QueryOption {
	return withOffset(offset)
}

type withOffset uint

func (w withOffset) Apply(q *Query) {
	q.Offset = int(w)
}

func WithSortBy(column string) QueryOption {
	return withSortBy(column)
}

type withSortBy string

func (w withSortBy) Apply(q *Query) {
	q.SortBy = string(w)
}

// WithSortParams overrides the request parameter names the sort column
// and direction are read from.
func WithSortParams(sortBy, sortDesc string) QueryOption {
	return withSortParams{sortBy, sortDesc}
}

type withSortParams struct {
	sortBy   string
	sortDesc string
}

func (w withSortParams) Apply(q *Query) {
	q.SortByParam = w.sortBy
	q.SortDescParam = w.sortDesc
}

func WithOrder(order Ordering) QueryOption {
	return withOrder(order)
}

type withOrder Ordering

func (w withOrder) Apply(q *Query) {
	q.Order = Ordering(w)
}
