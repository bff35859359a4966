package http

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/orders. Every field is
// optional: an empty order number means "generate one".
type CreateOrderRequest struct {
	OrderNumber string   `json:"orderNumber"`
	SiteName    string   `json:"siteName"`
	SiteAddress string   `json:"siteAddress"`
	Items       []string `json:"items"`
	Driver      string   `json:"driver"`
}

// SetSettingRequest is the body of POST /api/settings/:key. A missing or
// null value stores null.
type SetSettingRequest struct {
	Value any `json:"value"`
}

// SettingResponse wraps a settings value on the wire.
type SettingResponse struct {
	Value any `json:"value"`
}

// SiteModel is the delivery site part of an order on the wire.
type SiteModel struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// OrderModel is the wire representation of a fully materialized order,
// returned by every command endpoint.
type OrderModel struct {
	ID              int64     `json:"id"`
	OrderNumber     string    `json:"orderNumber"`
	Site            SiteModel `json:"site"`
	Items           []string  `json:"items"`
	Driver          string    `json:"driver"`
	Status          string    `json:"status"`
	StartPhoto      *string   `json:"startPhoto"`
	StartAnswers    any       `json:"startAnswers"`
	CompletePhoto   *string   `json:"completePhoto"`
	CompleteAnswers any       `json:"completeAnswers"`
	ReturnPhoto     *string   `json:"returnPhoto"`
	ReturnNotes     any       `json:"returnNotes"`
	CreatedAt       string    `json:"createdAt"`
	StartAt         *string   `json:"startAt"`
	CompleteAt      *string   `json:"completeAt"`
	ReturnedAt      *string   `json:"returnedAt"`
}

// orderModelFromSnapshot maps an aggregate snapshot to its wire form.
func orderModelFromSnapshot(s order.Snapshot) OrderModel {
	return OrderModel{
		ID:          s.ID,
		OrderNumber: s.Number,
		Site: SiteModel{
			Name:    s.Site.Name(),
			Address: s.Site.Address(),
		},
		Items:           s.Items,
		Driver:          s.Driver,
		Status:          s.Status.String(),
		StartPhoto:      s.StartPhoto,
		StartAnswers:    s.StartAnswers,
		CompletePhoto:   s.CompletePhoto,
		CompleteAnswers: s.CompleteAnswers,
		ReturnPhoto:     s.ReturnPhoto,
		ReturnNotes:     s.ReturnNotes,
		CreatedAt:       s.CreatedAt.String(),
		StartAt:         timestampString(s.StartAt),
		CompleteAt:      timestampString(s.CompleteAt),
		ReturnedAt:      timestampString(s.ReturnedAt),
	}
}

func timestampString(t *kernel.Timestamp) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}
