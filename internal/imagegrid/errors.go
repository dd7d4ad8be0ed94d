package imagegrid

import "errors"

var (
	// ErrNotFound reports an input path that does not reference a file.
	ErrNotFound = errors.New("image not found")
	// ErrDecode reports image data the registered decoders cannot read.
	ErrDecode = errors.New("image decode failed")
	// ErrEmptyImage reports a decoded image with zero width or height.
	ErrEmptyImage = errors.New("empty image")
)

// Error carries a user-facing message alongside its error class and, when
// available, the underlying cause.
type Error struct {
	Kind  error
	Msg   string
	Cause error
}

func (e *Error) Error() string { return e.Msg }

// Unwrap exposes both the class and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// NotFound builds the error returned for a missing input path.
func NotFound(path string) error {
	return &Error{Kind: ErrNotFound, Msg: "File '" + path + "' not found."}
}

// OpenFailed builds the error returned when an existing file cannot be opened
// or decoded as an image.
func OpenFailed(cause error) error {
	return &Error{Kind: ErrDecode, Msg: "Failed to open image: " + cause.Error(), Cause: cause}
}

func emptyImageError() error {
	return &Error{Kind: ErrEmptyImage, Msg: "Empty image."}
}
