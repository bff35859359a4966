// Package order contains the Order aggregate, the core of the dispatch
// tracker. An order is created once, moves forward through in_transit and
// completed, and can side-step into returned from any state. The aggregate
// owns the transition table, the lifecycle timestamps, and the NFC
// normalization of its display strings; persistence and transports deal in
// Snapshot values only.
package order
