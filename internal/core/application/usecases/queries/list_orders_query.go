package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersFilter carries the optional filter parameters of an order listing.
// Empty fields are skipped. Timestamp bounds are inclusive and compared
// against the stored ISO form, so a date-only bound like "2025-06-01" behaves
// as a lexicographic prefix comparison.
type ListOrdersFilter struct {
	Search       string
	CreatedFrom  string
	CreatedTo    string
	StartFrom    string
	StartTo      string
	CompleteFrom string
	CompleteTo   string
}

// ListOrdersQuery retrieves orders matching a free-text search and timestamp
// range filters, newest first.
type ListOrdersQuery struct {
	filter ListOrdersFilter

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders. Timestamp bounds that
// are present must parse under the store layout.
func NewListOrdersQuery(filter ListOrdersFilter) (ListOrdersQuery, error) {
	bounds := []string{
		filter.CreatedFrom, filter.CreatedTo,
		filter.StartFrom, filter.StartTo,
		filter.CompleteFrom, filter.CompleteTo,
	}
	for _, bound := range bounds {
		if bound == "" {
			continue
		}
		if err := kernel.ValidateTimestampBound(bound); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	return ListOrdersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Filter returns the filter parameters of this listing.
func (q ListOrdersQuery) Filter() ListOrdersFilter {
	return q.filter
}
