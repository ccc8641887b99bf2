package profile

import "fmt"

// NotFoundError indicates a referenced profile does not exist in the store.
type NotFoundError struct {
	Profile string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile %q not found", e.Profile)
}

// ActiveProfileDeletionError indicates a delete targeted the active profile
// without explicit confirmation.
type ActiveProfileDeletionError struct {
	Profile string
}

func (e *ActiveProfileDeletionError) Error() string {
	return fmt.Sprintf("profile %q is the active profile; switch profiles first or force the deletion", e.Profile)
}

// DanglingActiveProfileError indicates the active-profile pointer names a
// profile whose file no longer exists.
type DanglingActiveProfileError struct {
	Profile string
}

func (e *DanglingActiveProfileError) Error() string {
	return fmt.Sprintf("active profile pointer names %q but no such profile file exists", e.Profile)
}
