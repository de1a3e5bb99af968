// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrConflict signals that a write cannot proceed because of
// conflicting state (an illegal status transition), while
// ErrNoCapacity reports that a package does not have enough available
// spots left for the requested traveler count.
package repository

import "errors"

// ErrConflict is returned when an update cannot be performed because
// of conflicting state, such as an illegal reservation status
// transition. Handlers should translate this into an HTTP 409
// response.
var ErrConflict = errors.New("conflict")

// ErrNoCapacity is returned when a reservation asks for more spots
// than the package has left. The create is rolled back atomically.
var ErrNoCapacity = errors.New("not enough available spots")

// ErrReservationNotFound is returned when a reservation cannot be
// found in the DB.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrPropertyNotFound is returned when a hotel/resort/villa row
// cannot be found in its table.
var ErrPropertyNotFound = errors.New("property not found")
