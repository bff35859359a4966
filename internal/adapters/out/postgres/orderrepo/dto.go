// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order domain aggregate, handling the conversion between domain entities and
// database representations.
//
// Structured order data (site, items, answers, notes) is stored as JSON text
// columns rather than relational children, matching the wire shape one to one.
// Decoding degrades per field: a corrupt column falls back to its zero shape
// instead of failing the whole read.
package orderrepo

import (
	"encoding/json"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The primary key is store-assigned via autoincrement; timestamps are stored
// in their canonical ISO string form so range filters compare correctly.
type OrderDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	OrderNumber string `gorm:"index"`
	Site        string `gorm:"type:text"`
	Items       string `gorm:"type:text"`
	Driver      string
	Status      string `gorm:"index"`

	StartPhoto      *string
	StartAnswers    *string `gorm:"type:text"`
	CompletePhoto   *string
	CompleteAnswers *string `gorm:"type:text"`
	ReturnPhoto     *string
	ReturnNotes     *string `gorm:"type:text"`

	CreatedAt  string `gorm:"index"`
	StartAt    *string
	CompleteAt *string
	ReturnedAt *string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// siteDoc is the JSON document shape of the site column.
type siteDoc struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Site and items always encode, even when empty, so the stored column is valid
// JSON; answers and notes stay NULL when absent.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	s := aggregate.Snapshot()

	siteJSON, err := json.Marshal(siteDoc{Name: s.Site.Name(), Address: s.Site.Address()})
	if err != nil {
		return OrderDTO{}, err
	}

	itemsJSON, err := json.Marshal(s.Items)
	if err != nil {
		return OrderDTO{}, err
	}

	startAnswers, err := encodeValue(s.StartAnswers)
	if err != nil {
		return OrderDTO{}, err
	}
	completeAnswers, err := encodeValue(s.CompleteAnswers)
	if err != nil {
		return OrderDTO{}, err
	}
	returnNotes, err := encodeValue(s.ReturnNotes)
	if err != nil {
		return OrderDTO{}, err
	}

	return OrderDTO{
		ID:              s.ID,
		OrderNumber:     s.Number,
		Site:            string(siteJSON),
		Items:           string(itemsJSON),
		Driver:          s.Driver,
		Status:          s.Status.String(),
		StartPhoto:      s.StartPhoto,
		StartAnswers:    startAnswers,
		CompletePhoto:   s.CompletePhoto,
		CompleteAnswers: completeAnswers,
		ReturnPhoto:     s.ReturnPhoto,
		ReturnNotes:     returnNotes,
		CreatedAt:       s.CreatedAt.String(),
		StartAt:         timestampColumn(s.StartAt),
		CompleteAt:      timestampColumn(s.CompleteAt),
		ReturnedAt:      timestampColumn(s.ReturnedAt),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// JSON columns decode with per-field degradation; status and createdAt must
// still be valid, those are enforced by RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var site siteDoc
	if unmarshalErr := json.Unmarshal([]byte(dto.Site), &site); unmarshalErr != nil {
		site = siteDoc{}
	}

	items := make([]string, 0)
	if unmarshalErr := json.Unmarshal([]byte(dto.Items), &items); unmarshalErr != nil {
		items = make([]string, 0)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:              dto.ID,
		Number:          dto.OrderNumber,
		Site:            order.NewSite(site.Name, site.Address),
		Items:           items,
		Driver:          dto.Driver,
		Status:          status,
		StartPhoto:      dto.StartPhoto,
		CompletePhoto:   dto.CompletePhoto,
		ReturnPhoto:     dto.ReturnPhoto,
		StartAnswers:    decodeValue(dto.StartAnswers),
		CompleteAnswers: decodeValue(dto.CompleteAnswers),
		ReturnNotes:     decodeValue(dto.ReturnNotes),
		CreatedAt:       kernel.Timestamp(dto.CreatedAt),
		StartAt:         timestampValue(dto.StartAt),
		CompleteAt:      timestampValue(dto.CompleteAt),
		ReturnedAt:      timestampValue(dto.ReturnedAt),
	})
}

func encodeValue(value any) (*string, error) {
	if value == nil {
		return nil, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	encoded := string(raw)
	return &encoded, nil
}

func decodeValue(col *string) any {
	if col == nil {
		return nil
	}
	var value any
	if err := json.Unmarshal([]byte(*col), &value); err != nil {
		return nil
	}
	return value
}

func timestampColumn(t *kernel.Timestamp) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

func timestampValue(col *string) *kernel.Timestamp {
	if col == nil {
		return nil
	}
	t := kernel.Timestamp(*col)
	return &t
}
