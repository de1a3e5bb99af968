package catalog

import "errors"

// ErrNotFound is returned by GetByID when no package exists with the
// given id.  A miss is a legitimate answer, not an infrastructure
// failure, so the fallback layer lets it pass through untouched.
var ErrNotFound = errors.New("package not found")
