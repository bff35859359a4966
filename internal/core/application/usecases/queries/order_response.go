// Package queries contains read operations that bypass the domain model and
// read the store directly, returning flat response structures. Implements the
// query side of the CQRS architecture.
package queries

import (
	"database/sql"
	"encoding/json"
)

// SiteResponse is the delivery site part of an order response.
type SiteResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// OrderQueryResponse represents a fully materialized order as stored,
// with all JSON text columns decoded. Field names follow the public API.
type OrderQueryResponse struct {
	ID              int64        `json:"id"`
	OrderNumber     string       `json:"orderNumber"`
	Site            SiteResponse `json:"site"`
	Items           []string     `json:"items"`
	Driver          string       `json:"driver"`
	Status          string       `json:"status"`
	StartPhoto      *string      `json:"startPhoto"`
	StartAnswers    any          `json:"startAnswers"`
	CompletePhoto   *string      `json:"completePhoto"`
	CompleteAnswers any          `json:"completeAnswers"`
	ReturnPhoto     *string      `json:"returnPhoto"`
	ReturnNotes     any          `json:"returnNotes"`
	CreatedAt       string       `json:"createdAt"`
	StartAt         *string      `json:"startAt"`
	CompleteAt      *string      `json:"completeAt"`
	ReturnedAt      *string      `json:"returnedAt"`
}

// orderRow matches the column order scanned by the order queries.
type orderRow struct {
	id              int64
	orderNumber     string
	site            sql.NullString
	items           sql.NullString
	driver          sql.NullString
	status          string
	startPhoto      sql.NullString
	startAnswers    sql.NullString
	completePhoto   sql.NullString
	completeAnswers sql.NullString
	returnPhoto     sql.NullString
	returnNotes     sql.NullString
	createdAt       string
	startAt         sql.NullString
	completeAt      sql.NullString
	returnedAt      sql.NullString
}

const orderColumns = `
		id,
		order_number,
		site,
		items,
		driver,
		status,
		start_photo,
		start_answers,
		complete_photo,
		complete_answers,
		return_photo,
		return_notes,
		created_at,
		start_at,
		complete_at,
		returned_at`

func (r *orderRow) scanTargets() []any {
	return []any{
		&r.id,
		&r.orderNumber,
		&r.site,
		&r.items,
		&r.driver,
		&r.status,
		&r.startPhoto,
		&r.startAnswers,
		&r.completePhoto,
		&r.completeAnswers,
		&r.returnPhoto,
		&r.returnNotes,
		&r.createdAt,
		&r.startAt,
		&r.completeAt,
		&r.returnedAt,
	}
}

// toResponse decodes JSON text columns field by field. A column that fails to
// decode degrades to its zero shape instead of failing the whole read: the
// site becomes an empty object, items an empty list, answers and notes null.
func (r *orderRow) toResponse() OrderQueryResponse {
	return OrderQueryResponse{
		ID:              r.id,
		OrderNumber:     r.orderNumber,
		Site:            decodeSite(r.site),
		Items:           decodeItems(r.items),
		Driver:          r.driver.String,
		Status:          r.status,
		StartPhoto:      nullableString(r.startPhoto),
		StartAnswers:    decodeAny(r.startAnswers),
		CompletePhoto:   nullableString(r.completePhoto),
		CompleteAnswers: decodeAny(r.completeAnswers),
		ReturnPhoto:     nullableString(r.returnPhoto),
		ReturnNotes:     decodeAny(r.returnNotes),
		CreatedAt:       r.createdAt,
		StartAt:         nullableString(r.startAt),
		CompleteAt:      nullableString(r.completeAt),
		ReturnedAt:      nullableString(r.returnedAt),
	}
}

func decodeSite(col sql.NullString) SiteResponse {
	var site SiteResponse
	if !col.Valid || col.String == "" {
		return site
	}
	if err := json.Unmarshal([]byte(col.String), &site); err != nil {
		return SiteResponse{}
	}
	return site
}

func decodeItems(col sql.NullString) []string {
	items := make([]string, 0)
	if !col.Valid || col.String == "" {
		return items
	}
	if err := json.Unmarshal([]byte(col.String), &items); err != nil {
		return make([]string, 0)
	}
	return items
}

func decodeAny(col sql.NullString) any {
	if !col.Valid || col.String == "" {
		return nil
	}
	var value any
	if err := json.Unmarshal([]byte(col.String), &value); err != nil {
		return nil
	}
	return value
}

func nullableString(col sql.NullString) *string {
	if !col.Valid {
		return nil
	}
	s := col.String
	return &s
}
