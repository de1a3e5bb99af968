package booking

import "errors"

// ErrNotConfirmable is returned by Submit when the workflow has not
// reached the confirmation step (or has already been submitted).
var ErrNotConfirmable = errors.New("workflow is not at the confirmation step")
