package iconify

import "fmt"

// NotFoundError is returned when the API reports that an icon or icon set
// does not exist. It is never retried.
type NotFoundError struct {
	// Key is the failing identifier, "prefix:name" or a bare icon set
	// prefix.
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%q not found, search for icons at https://icon-sets.iconify.design", e.Key)
}

// FetchError wraps a network or HTTP failure while fetching an icon, after
// any cached fallback has already been tried.
type FetchError struct {
	Key string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("unable to fetch %q: %v", e.Key, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
