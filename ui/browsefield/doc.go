// Package browsefield implements a single-line path editor with a trailing
// "browse" button. Clicking the button opens a file or directory dialog seeded
// from the current text; accepting the dialog writes the chosen path back into
// the editor.
//
// The field is composed from gio primitives: a widget.Editor for the text, a
// widget.Clickable drawn as a material icon button, and an owned FileDialog.
// The dialog is either a native one (NativeDialog, backed by
// github.com/sqweek/dialog) or a terminal prompt (PromptDialog).
//
//	th := material.NewTheme()
//	field := browsefield.New(th, browsefield.WithInvalidate(w.Invalidate))
//	field.SetFileMode(browsefield.Directory)
//
//	// inside the frame loop
//	field.Layout(gtx, th)
package browsefield
