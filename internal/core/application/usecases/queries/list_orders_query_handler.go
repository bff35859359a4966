package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves orders from the database with optional
// filtering, newest first. The free-text search matches the order number,
// driver, and the raw JSON text of the site and items columns, so a search
// for a site name or an item hits without decoding every row.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. Filter clauses are combined with AND; absent
// filter fields add no clause. Timestamp bounds compare as strings, which is
// chronological by construction of the stored layout.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := query.Filter()
	clauses := make([]string, 0)
	args := make([]any, 0)

	if filter.Search != "" {
		clauses = append(clauses, "(order_number LIKE ? OR site LIKE ? OR driver LIKE ? OR items LIKE ?)")
		like := "%" + filter.Search + "%"
		args = append(args, like, like, like, like)
	}
	if filter.CreatedFrom != "" {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, filter.CreatedFrom)
	}
	if filter.CreatedTo != "" {
		clauses = append(clauses, "created_at <= ?")
		args = append(args, upperBound(filter.CreatedTo))
	}
	if filter.StartFrom != "" {
		clauses = append(clauses, "start_at >= ?")
		args = append(args, filter.StartFrom)
	}
	if filter.StartTo != "" {
		clauses = append(clauses, "start_at <= ?")
		args = append(args, upperBound(filter.StartTo))
	}
	if filter.CompleteFrom != "" {
		clauses = append(clauses, "complete_at >= ?")
		args = append(args, filter.CompleteFrom)
	}
	if filter.CompleteTo != "" {
		clauses = append(clauses, "complete_at <= ?")
		args = append(args, upperBound(filter.CompleteTo))
	}

	where := ""
	if len(clauses) > 0 {
		where = "WHERE " + strings.Join(clauses, " AND ")
	}

	orders := make([]OrderQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		`+where+`
		ORDER BY created_at DESC, id DESC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row orderRow
		if err = rows.Scan(row.scanTargets()...); err != nil {
			return nil, err
		}
		orders = append(orders, row.toResponse())
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// upperBound widens a date-only upper bound to the end of that day. Full
// timestamps pass through unchanged.
func upperBound(bound string) string {
	if len(bound) == len("2006-01-02") {
		return bound + "T23:59:59.999Z"
	}
	return bound
}
