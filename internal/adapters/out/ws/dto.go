package ws

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// envelope is the wire form of a fan-out notification: the event name plus
// the fully materialized order it concerns.
type envelope struct {
	Event ports.Event  `json:"event"`
	Order orderPayload `json:"order"`
}

type sitePayload struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// orderPayload mirrors the public API representation of an order.
type orderPayload struct {
	ID              int64       `json:"id"`
	OrderNumber     string      `json:"orderNumber"`
	Site            sitePayload `json:"site"`
	Items           []string    `json:"items"`
	Driver          string      `json:"driver"`
	Status          string      `json:"status"`
	StartPhoto      *string     `json:"startPhoto"`
	StartAnswers    any         `json:"startAnswers"`
	CompletePhoto   *string     `json:"completePhoto"`
	CompleteAnswers any         `json:"completeAnswers"`
	ReturnPhoto     *string     `json:"returnPhoto"`
	ReturnNotes     any         `json:"returnNotes"`
	CreatedAt       string      `json:"createdAt"`
	StartAt         *string     `json:"startAt"`
	CompleteAt      *string     `json:"completeAt"`
	ReturnedAt      *string     `json:"returnedAt"`
}

func payloadFromSnapshot(s order.Snapshot) orderPayload {
	return orderPayload{
		ID:          s.ID,
		OrderNumber: s.Number,
		Site: sitePayload{
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
