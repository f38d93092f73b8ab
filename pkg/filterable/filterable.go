package filterable

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"gorm.io/gorm"
)

// Filterable maps request input keys to registered filter and sorter
// strategies and applies them to a gorm query builder. It is constructed
// per request, mutated through registration, consumed once via Apply and
// then discarded.
type Filterable struct {
	db     *gorm.DB
	values url.Values
	conf   Conf

	filters map[string]*filterEntry
	sorters map[string]*sorterEntry
}

// New returns a Filterable over the given builder and input values.
func New(db *gorm.DB, values url.Values, opts ...Option) *Filterable {
	conf := defaultConf()

	for _, opt := range opts {
		opt.Apply(&conf)
	}

	return &Filterable{
		db:      db,
		values:  values,
		conf:    conf,
		filters: make(map[string]*filterEntry),
		sorters: make(map[string]*sorterEntry),
	}
}

// NewFromRequest returns a Filterable whose input is the request's query
// string.
func NewFromRequest(db *gorm.DB, r *http.Request, opts ...Option) *Filterable {
	return New(db, r.URL.Query(), opts...)
}

// filter and sorter handlers can be registered as instances or as
// constructors. Constructors are resolved on first use and memoized.

type filterEntry struct {
	instance Filter
	ctor     func() Filter
}

type sorterEntry struct {
	instance Sorter
	ctor     func() Sorter
}

// RegisterFilter binds a filter to an input key. Accepted values are a
// Filter, a bare func(*gorm.DB, string, string) *gorm.DB, or a
// constructor func() Filter for lazy resolution. Anything else is
// rejected immediately.
func (f *Filterable) RegisterFilter(key string, v interface{}) error {
	if key == "" {
		return ErrEmptyKey
	}

	if v == nil {
		return fmt.Errorf("%w for key %q", ErrNilHandler, key)
	}

	switch t := v.(type) {
	case Filter:
		f.filters[key] = &filterEntry{instance: t}
	case func(*gorm.DB, string, string) *gorm.DB:
		if t == nil {
			return fmt.Errorf("%w for key %q", ErrNilHandler, key)
		}

		f.filters[key] = &filterEntry{instance: FilterFunc(t)}
	case func() Filter:
		if t == nil {
			return fmt.Errorf("%w for key %q", ErrNilHandler, key)
		}

		f.filters[key] = &filterEntry{ctor: t}
	default:
		return fmt.Errorf("%w: %T for key %q", ErrInvalidFilter, v, key)
	}

	return nil
}

// RegisterFilters binds multiple filters at once, stopping at the first
// invalid entry.
func (f *Filterable) RegisterFilters(filters map[string]interface{}) error {
	keys := make([]string, 0, len(filters))

	for key := range filters {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		if err := f.RegisterFilter(key, filters[key]); err != nil {
			return err
		}
	}

	return nil
}

// RegisterSorter binds a sorter to a sort-by column. Accepted values are
// a Sorter, a bare func(*gorm.DB, string, bool) *gorm.DB, or a
// constructor func() Sorter for lazy resolution.
func (f *Filterable) RegisterSorter(column string, v interface{}) error {
	if column == "" {
		return ErrEmptyKey
	}

	if v == nil {
		return fmt.Errorf("%w for column %q", ErrNilHandler, column)
	}

	switch t := v.(type) {
	case Sorter:
		f.sorters[column] = &sorterEntry{instance: t}
	case func(*gorm.DB, string, bool) *gorm.DB:
		if t == nil {
			return fmt.Errorf("%w for column %q", ErrNilHandler, column)
		}

		f.sorters[column] = &sorterEntry{instance: SorterFunc(t)}
	case func() Sorter:
		if t == nil {
			return fmt.Errorf("%w for column %q", ErrNilHandler, column)
		}

		f.sorters[column] = &sorterEntry{ctor: t}
	default:
		return fmt.Errorf("%w: %T for column %q", ErrInvalidSorter, v, column)
	}

	return nil
}

// RegisterSorters binds multiple sorters at once, stopping at the first
// invalid entry.
func (f *Filterable) RegisterSorters(sorters map[string]interface{}) error {
	columns := make([]string, 0, len(sorters))

	for column := range sorters {
		columns = append(columns, column)
	}

	sort.Strings(columns)

	for _, column := range columns {
		if err := f.RegisterSorter(column, sorters[column]); err != nil {
			return err
		}
	}

	return nil
}

// Apply dispatches every input key to its filter and applies the
// requested ordering, returning the mutated builder. Keys are visited in
// sorted order so the generated SQL is deterministic. Apply never fails:
// unregistered keys are ignored (or handed to the default filter) and
// invalid handlers were already rejected at registration.
func (f *Filterable) Apply() *gorm.DB {
	db := f.db

	keys := make([]string, 0, len(f.values))

	for key := range f.values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		if key == f.conf.SortByParam || key == f.conf.SortDescParam {
			continue
		}

		value := f.values.Get(key)

		if value == "" && !f.conf.IncludeEmpty {
			continue
		}

		filter, registered := f.resolveFilter(key)

		// the default filter only catches unregistered keys: a
		// registered constructor that failed to resolve skips the key
		if !registered {
			filter = f.conf.DefaultFilter
		}

		if filter == nil {
			continue
		}

		db = filter.Filter(db, key, value)
	}

	return f.applySort(db)
}

func (f *Filterable) applySort(db *gorm.DB) *gorm.DB {
	column := f.values.Get(f.conf.SortByParam)
	desc := f.sortDesc()

	if column == "" {
		column = f.conf.DefaultSortBy
		desc = f.conf.DefaultSortDesc
	}

	if column == "" {
		return db
	}

	sorter, registered := f.resolveSorter(column)

	if !registered {
		sorter = f.conf.DefaultSorter
	}

	if sorter == nil {
		return db
	}

	return sorter.Sort(db, column, desc)
}

// sortDesc treats a bare sort-desc parameter as a flag; otherwise the
// value is parsed as a bool and malformed input means ascending.
func (f *Filterable) sortDesc() bool {
	if !f.values.Has(f.conf.SortDescParam) {
		return false
	}

	raw := f.values.Get(f.conf.SortDescParam)

	if raw == "" {
		return true
	}

	desc, err := strconv.ParseBool(raw)

	if err != nil {
		return false
	}

	return desc
}

// resolveFilter reports whether the key is registered at all, so a
// constructor that resolved to nil is distinguishable from an
// unregistered key.
func (f *Filterable) resolveFilter(key string) (Filter, bool) {
	entry, ok := f.filters[key]

	if !ok {
		return nil, false
	}

	if entry.instance == nil && entry.ctor != nil {
		entry.instance = entry.ctor()

		if entry.instance == nil {
			f.conf.Logger.Warn().Msgf("filter constructor for key %q returned nil, skipping", key)
		}
	}

	return entry.instance, true
}

func (f *Filterable) resolveSorter(column string) (Sorter, bool) {
	entry, ok := f.sorters[column]

	if !ok {
		return nil, false
	}

	if entry.instance == nil && entry.ctor != nil {
		entry.instance = entry.ctor()

		if entry.instance == nil {
			f.conf.Logger.Warn().Msgf("sorter constructor for column %q returned nil, skipping", column)
		}
	}

	return entry.instance, true
}
