package filterable

import "github.com/rs/zerolog"

// Conf is the resolved configuration of a Filterable. The zero value is
// never used directly; New starts from defaultConf and applies options.
type Conf struct {
	SortByParam   string
	SortDescParam string

	DefaultSortBy   string
	DefaultSortDesc bool

	DefaultSorter Sorter
	DefaultFilter Filter

	IncludeEmpty bool

	Logger zerolog.Logger
}

func defaultConf() Conf {
	return Conf{
		SortByParam:   "sort_by",
		SortDescParam: "sort_desc",
		DefaultSorter: OrderBy{},
		Logger:        zerolog.Nop(),
	}
}

// Option mutates the configuration of a Filterable at construction time.
type Option interface {
	Apply(*Conf)
}

// WithSortParams overrides the names of the two sort parameters read from
// the request input.
func WithSortParams(sortBy, sortDesc string) Option {
	return withSortParams{sortBy, sortDesc}
}

type withSortParams struct {
	sortBy   string
	sortDesc string
}

func (w withSortParams) Apply(c *Conf) {
	c.SortByParam = w.sortBy
	c.SortDescParam = w.sortDesc
}

// WithDefaultSort sets the ordering applied when the request carries no
// sort-by parameter.
func WithDefaultSort(column string, desc bool) Option {
	return withDefaultSort{column, desc}
}

type withDefaultSort struct {
	column string
	desc   bool
}

func (w withDefaultSort) Apply(c *Conf) {
	c.DefaultSortBy = w.column
	c.DefaultSortDesc = w.desc
}

// WithDefaultSorter replaces OrderBy as the sorter used for columns with
// no registered sorter.
func WithDefaultSorter(sorter Sorter) Option {
	return withDefaultSorter{sorter}
}

type withDefaultSorter struct {
	sorter Sorter
}

func (w withDefaultSorter) Apply(c *Conf) {
	c.DefaultSorter = w.sorter
}

// WithDefaultFilter sets a fallback filter for input keys that have no
// registered filter. Without it such keys are ignored.
func WithDefaultFilter(filter Filter) Option {
	return withDefaultFilter{filter}
}

type withDefaultFilter struct {
	filter Filter
}

func (w withDefaultFilter) Apply(c *Conf) {
	c.DefaultFilter = w.filter
}

// WithEmptyValues dispatches input keys whose value is the empty string.
// They are skipped by default.
func WithEmptyValues() Option {
	return withEmptyValues{}
}

type withEmptyValues struct{}

func (withEmptyValues) Apply(c *Conf) {
	c.IncludeEmpty = true
}

// WithLogger attaches a logger. Only resolution failures of lazily
// constructed handlers are logged.
func WithLogger(l zerolog.Logger) Option {
	return withLogger{l}
}

type withLogger struct {
	logger zerolog.Logger
}

func (w withLogger) Apply(c *Conf) {
	c.Logger = w.logger
}
