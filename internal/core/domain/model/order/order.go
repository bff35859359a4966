package order

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrIDAlreadyAssigned is returned when AssignID is called on an order that
	// already carries a store-assigned identifier. IDs are immutable once set.
	ErrIDAlreadyAssigned = errors.New("order ID is immutable once assigned")
)

// Order represents a delivery order in the system. It is the aggregate root
// that manages the lifecycle from creation through dispatch to completion or
// return.
//
// Order follows these invariants:
//   - The store-assigned ID is immutable once set
//   - Status transitions follow the explicit transition table in Status
//   - Each lifecycle timestamp is stamped exactly once, at the moment of its
//     transition, and is nil until then
//   - Display strings (number, driver, site fields) are NFC-normalized at
//     construction
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the store-assigned identifier; zero until the order is persisted
	id int64

	// number is the human-facing order number; generated when the caller omits one
	number string

	site   Site
	items  []string
	driver string

	// status is the current state in the order lifecycle
	status Status

	startPhoto    *string
	completePhoto *string
	returnPhoto   *string

	// startAnswers, completeAnswers, and returnNotes hold arbitrary caller-supplied
	// JSON values; nil means absent
	startAnswers    any
	completeAnswers any
	returnNotes     any

	createdAt  kernel.Timestamp
	startAt    *kernel.Timestamp
	completeAt *kernel.Timestamp
	returnedAt *kernel.Timestamp

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// Snapshot is the flat, exported view of an order's state. It is how the
// aggregate crosses boundaries: persistence restores orders from snapshots and
// adapters render snapshots to their own wire formats.
type Snapshot struct {
	ID     int64
	Number string
	Site   Site
	Items  []string
	Driver string
	Status Status

	StartPhoto    *string
	CompletePhoto *string
	ReturnPhoto   *string

	StartAnswers    any
	CompleteAnswers any
	ReturnNotes     any

	CreatedAt  kernel.Timestamp
	StartAt    *kernel.Timestamp
	CompleteAt *kernel.Timestamp
	ReturnedAt *kernel.Timestamp
}

// NewOrder creates a new Order in Created status, stamped with the current
// time. If number is empty a fresh one is generated via GenerateNumber.
// The returned order has no ID yet; the store assigns one on insert.
//
// number and driver are NFC-normalized; nil items become an empty list so the
// stored form is always a valid JSON array.
func NewOrder(number string, site Site, items []string, driver string) (*Order, error) {
	if number == "" {
		number = GenerateNumber()
	}
	if items == nil {
		items = []string{}
	}

	return &Order{
		number:        kernel.NormalizeText(number),
		site:          site,
		items:         normalizeItems(items),
		driver:        kernel.NormalizeText(driver),
		status:        Created,
		createdAt:     kernel.Now(),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from a persisted snapshot.
// Unlike NewOrder it trusts the snapshot's timestamps and photos, but the
// status must still be a valid one.
func RestoreOrder(s Snapshot) (*Order, error) {
	if err := s.Status.Validate(); err != nil {
		return nil, err
	}
	if err := s.CreatedAt.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("createdAt", err)
	}

	items := s.Items
	if items == nil {
		items = []string{}
	}

	return &Order{
		id:              s.ID,
		number:          s.Number,
		site:            s.Site,
		items:           items,
		driver:          s.Driver,
		status:          s.Status,
		startPhoto:      s.StartPhoto,
		completePhoto:   s.CompletePhoto,
		returnPhoto:     s.ReturnPhoto,
		startAnswers:    s.StartAnswers,
		completeAnswers: s.CompleteAnswers,
		returnNotes:     s.ReturnNotes,
		createdAt:       s.CreatedAt,
		startAt:         s.StartAt,
		completeAt:      s.CompleteAt,
		returnedAt:      s.ReturnedAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Call when reconstructing orders from persistence or accepting them across
// an interface boundary.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// Snapshot returns the exported view of the order's current state.
// Slices are copied so holders of a snapshot cannot mutate the aggregate.
func (o *Order) Snapshot() Snapshot {
	items := make([]string, len(o.items))
	copy(items, o.items)

	return Snapshot{
		ID:              o.id,
		Number:          o.number,
		Site:            o.site,
		Items:           items,
		Driver:          o.driver,
		Status:          o.status,
		StartPhoto:      o.startPhoto,
		CompletePhoto:   o.completePhoto,
		ReturnPhoto:     o.returnPhoto,
		StartAnswers:    o.startAnswers,
		CompleteAnswers: o.completeAnswers,
		ReturnNotes:     o.returnNotes,
		CreatedAt:       o.createdAt,
		StartAt:         o.startAt,
		CompleteAt:      o.completeAt,
		ReturnedAt:      o.returnedAt,
	}
}

// ID returns the store-assigned identifier, zero if the order is unsaved.
func (o *Order) ID() int64 {
	return o.id
}

// Number returns the order number.
func (o *Order) Number() string {
	return o.number
}

// Site returns the delivery site.
func (o *Order) Site() Site {
	return o.site
}

// Items returns the ordered item list.
func (o *Order) Items() []string {
	return o.items
}

// Driver returns the driver identifier.
func (o *Order) Driver() string {
	return o.driver
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() kernel.Timestamp {
	return o.createdAt
}

// StartAt returns the dispatch start timestamp, nil if never started.
func (o *Order) StartAt() *kernel.Timestamp {
	return o.startAt
}

// CompleteAt returns the completion timestamp, nil if never completed.
func (o *Order) CompleteAt() *kernel.Timestamp {
	return o.completeAt
}

// ReturnedAt returns the return timestamp, nil if never returned.
func (o *Order) ReturnedAt() *kernel.Timestamp {
	return o.returnedAt
}

// StartAnswers returns the driver's answers captured at dispatch start, nil if absent.
func (o *Order) StartAnswers() any {
	return o.startAnswers
}

// CompleteAnswers returns the answers captured at completion, nil if absent.
func (o *Order) CompleteAnswers() any {
	return o.completeAnswers
}

// ReturnNotes returns the free-form return notes, nil if absent.
func (o *Order) ReturnNotes() any {
	return o.returnNotes
}

// StartPhoto returns the stored filename of the start photo, nil if absent.
func (o *Order) StartPhoto() *string {
	return o.startPhoto
}

// CompletePhoto returns the stored filename of the completion photo, nil if absent.
func (o *Order) CompletePhoto() *string {
	return o.completePhoto
}

// ReturnPhoto returns the stored filename of the return photo, nil if absent.
func (o *Order) ReturnPhoto() *string {
	return o.returnPhoto
}

// IsEqual compares two orders by their store-assigned identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// AssignID sets the store-assigned identifier after the initial insert.
// Fails if the order already carries an ID: identifiers are immutable.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("id")
	}
	o.id = id
	return nil
}

// Start marks the dispatch as started: status becomes InTransit and startAt is
// stamped with the current time. photo is the stored filename of the start
// photo; answers is an arbitrary JSON value, nil when the driver supplied none.
//
// The transition table allows Start from any prior status; a double start
// overwrites the previous start photo, answers, and timestamp.
func (o *Order) Start(photo *string, answers any) error {
	newStatus, err := o.status.Start()
	if err != nil {
		return err
	}

	now := kernel.Now()
	o.status = newStatus
	o.startPhoto = photo
	o.startAnswers = answers
	o.startAt = &now
	return nil
}

// Complete marks the dispatch as completed and stamps completeAt.
// Allowed from any prior status, including Created.
func (o *Order) Complete(photo *string, answers any) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	now := kernel.Now()
	o.status = newStatus
	o.completePhoto = photo
	o.completeAnswers = answers
	o.completeAt = &now
	return nil
}

// Return marks the order as returned and stamps returnedAt.
// notes is an arbitrary JSON value describing why; photo is the stored
// filename of the return photo. Allowed from any prior status.
func (o *Order) Return(notes any, photo *string) error {
	newStatus, err := o.status.Return()
	if err != nil {
		return err
	}

	now := kernel.Now()
	o.status = newStatus
	o.returnNotes = notes
	o.returnPhoto = photo
	o.returnedAt = &now
	return nil
}

// normalizeItems returns a copy of items with every entry NFC-normalized.
func normalizeItems(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = kernel.NormalizeText(item)
	}
	return out
}
