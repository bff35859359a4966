package order

import "dispatch/internal/core/domain/model/kernel"

// Site is the delivery destination: a named location with a free-form address.
// Both fields are NFC-normalized at construction so the stored form is
// byte-stable regardless of how the caller's input was encoded.
//
// The zero value is a legitimate "empty site" and is what a corrupted stored
// site degrades to on read.
type Site struct {
	name    string
	address string
}

// NewSite creates a Site with both fields normalized.
// Empty values are allowed; the tracker does not require site details.
func NewSite(name, address string) Site {
	return Site{
		name:    kernel.NormalizeText(name),
		address: kernel.NormalizeText(address),
	}
}

// Name returns the site name.
func (s Site) Name() string {
	return s.name
}

// Address returns the site address.
func (s Site) Address() string {
	return s.address
}

// IsEqual compares two sites field by field.
func (s Site) IsEqual(other Site) bool {
	return s.name == other.name && s.address == other.address
}
