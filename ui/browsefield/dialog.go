package browsefield

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFileMode is returned when a dialog is configured with an unknown mode.
	ErrInvalidFileMode = errors.New("invalid file mode")
	// ErrInvalidFilter is returned for a filter without description or extensions.
	ErrInvalidFilter = errors.New("invalid file filter")
)

// FileDialog is the modal selection dialog owned by a Field.
//
// Exec blocks until the user accepts or cancels and reports whether the
// dialog was accepted. SelectedFiles returns the paths of the last accepted
// selection in the order the dialog lists them.
type FileDialog interface {
	FileMode() FileMode
	SetFileMode(mode FileMode)
	Directory() string
	SetDirectory(dir string)
	SelectFile(name string)
	Exec() (bool, error)
	SelectedFiles() []string
}

// DialogFactory builds a new FileDialog from options. It is used by
// Field.ConfigureDialog.
type DialogFactory func(opts ...DialogOption) (FileDialog, error)

// Filter restricts the files a dialog offers, e.g. {"Images", ["png", "jpg"]}.
type Filter struct {
	Description string
	Extensions  []string
}

// DialogOptions holds the configuration shared by the dialog implementations.
type DialogOptions struct {
	Title        string
	Directory    string
	SelectedFile string
	Filters      []Filter
	Mode         FileMode
}

// DialogOption mutates DialogOptions.
type DialogOption func(*DialogOptions)

// WithTitle sets the dialog caption.
func WithTitle(title string) DialogOption {
	return func(o *DialogOptions) { o.Title = title }
}

// WithDirectory sets the directory the dialog starts in.
func WithDirectory(dir string) DialogOption {
	return func(o *DialogOptions) { o.Directory = dir }
}

// WithSelectedFile pre-selects a file name in the starting directory.
func WithSelectedFile(name string) DialogOption {
	return func(o *DialogOptions) { o.SelectedFile = name }
}

// WithFilter appends a file type filter. Extensions are given without the
// leading dot.
func WithFilter(description string, extensions ...string) DialogOption {
	return func(o *DialogOptions) {
		o.Filters = append(o.Filters, Filter{Description: description, Extensions: extensions})
	}
}

// WithFileMode sets the selection mode.
func WithFileMode(mode FileMode) DialogOption {
	return func(o *DialogOptions) { o.Mode = mode }
}

// buildOptions applies opts over the defaults and validates the result.
func buildOptions(opts []DialogOption) (DialogOptions, error) {
	var o DialogOptions
	for _, opt := range opts {
		opt(&o)
	}

	if !o.Mode.Valid() {
		return o, fmt.Errorf("%w: %s", ErrInvalidFileMode, o.Mode)
	}
	for i, f := range o.Filters {
		if f.Description == "" {
			return o, fmt.Errorf("%w: filter %d has no description", ErrInvalidFilter, i)
		}
		if len(f.Extensions) == 0 {
			return o, fmt.Errorf("%w: filter %q has no extensions", ErrInvalidFilter, f.Description)
		}
	}
	return o, nil
}
