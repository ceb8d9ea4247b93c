package browsefield

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sqweek/dialog"
)

// NativeDialog shows the platform's file chooser through sqweek/dialog.
//
// sqweek only supports single selection, so ExistingFiles behaves like
// ExistingFile and SelectedFiles holds at most one path.
type NativeDialog struct {
	opts     DialogOptions
	selected []string
}

// NewNativeDialog returns a native dialog configured by opts. The default is
// an AnyFile dialog with no title, filters or starting directory.
func NewNativeDialog(opts ...DialogOption) (*NativeDialog, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &NativeDialog{opts: o}, nil
}

// NativeDialogFactory is the DialogFactory used by New unless overridden.
func NativeDialogFactory(opts ...DialogOption) (FileDialog, error) {
	d, err := NewNativeDialog(opts...)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (d *NativeDialog) FileMode() FileMode        { return d.opts.Mode }
func (d *NativeDialog) SetFileMode(mode FileMode) { d.opts.Mode = mode }
func (d *NativeDialog) Directory() string         { return d.opts.Directory }
func (d *NativeDialog) SetDirectory(dir string)   { d.opts.Directory = dir }
func (d *NativeDialog) SelectFile(name string)    { d.opts.SelectedFile = name }
func (d *NativeDialog) Title() string             { return d.opts.Title }

// Filters returns the configured file type filters.
func (d *NativeDialog) Filters() []Filter { return d.opts.Filters }

// SelectedFiles returns the result of the last accepted Exec.
func (d *NativeDialog) SelectedFiles() []string {
	return append([]string(nil), d.selected...)
}

// Exec blocks the calling goroutine until the native dialog is closed.
func (d *NativeDialog) Exec() (bool, error) {
	d.selected = nil

	path, err := d.show()
	if errors.Is(err, dialog.ErrCancelled) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("native %s dialog: %w", d.opts.Mode, err)
	}

	d.selected = []string{path}
	if d.opts.Mode == Directory {
		d.opts.Directory = path
	} else {
		d.opts.Directory, d.opts.SelectedFile = filepath.Dir(path), filepath.Base(path)
	}
	return true, nil
}

func (d *NativeDialog) show() (string, error) {
	if d.opts.Mode == Directory {
		b := dialog.Directory().Title(d.opts.Title)
		if d.opts.Directory != "" {
			b = b.SetStartDir(d.opts.Directory)
		}
		return b.Browse()
	}

	b := dialog.File().Title(d.opts.Title)
	for _, f := range d.opts.Filters {
		b = b.Filter(f.Description, f.Extensions...)
	}
	if d.opts.Directory != "" {
		b = b.SetStartDir(d.opts.Directory)
	}
	if d.opts.SelectedFile != "" {
		b = b.SetStartFile(d.opts.SelectedFile)
	}

	if d.opts.Mode == AnyFile {
		return b.Save()
	}
	return b.Load()
}
