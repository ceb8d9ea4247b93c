package browsefield

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"go.uber.org/zap"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/Wuerfelhusten/Dynamic-Interface-Patcher/internal/logging"
)

// iconScale is the browse glyph size relative to the theme text size.
const iconScale = 1.5

// ErrBrowseInProgress is returned by Browse while the field's dialog is open.
var ErrBrowseInProgress = errors.New("browse already in progress")

var folderOpenIcon = mustIcon(icons.FileFolderOpen)

func mustIcon(data []byte) *widget.Icon {
	ic, err := widget.NewIcon(data)
	if err != nil {
		panic(err)
	}
	return ic
}

// State is the browse state of a Field.
type State uint8

const (
	Idle State = iota
	DialogOpen
)

func (s State) String() string {
	if s == DialogOpen {
		return "dialog-open"
	}
	return "idle"
}

// Field is a single-line path editor with a browse button.
//
// All methods must be called from the goroutine running the window's frame
// loop. Only the blocking FileDialog.Exec started by a button click runs on
// a separate goroutine; its result is applied by the next Layout. The open
// dialog is not touched until then: mode changes and replacement dialogs
// requested meanwhile are held back and installed when the dialog closes.
type Field struct {
	editor widget.Editor
	button widget.Clickable
	hint   string

	icon      *widget.Icon
	iconColor color.NRGBA
	iconSize  unit.Dp

	dialog    FileDialog
	newDialog DialogFactory

	// Deferred while DialogOpen.
	pendingDialog FileDialog
	pendingMode   *FileMode

	state      State
	results    chan browseResult
	invalidate func()
	log        *zap.Logger
}

// Option configures a Field at construction.
type Option func(*Field)

// WithDialog installs d as the initial dialog instead of a native one.
func WithDialog(d FileDialog) Option {
	return func(f *Field) {
		if d != nil {
			f.dialog = d
		}
	}
}

// WithDialogFactory sets the factory ConfigureDialog builds dialogs with.
func WithDialogFactory(fn DialogFactory) Option {
	return func(f *Field) {
		if fn != nil {
			f.newDialog = fn
		}
	}
}

// WithInvalidate registers the function that wakes the window once a dialog
// opened from Layout has closed. Pass (*app.Window).Invalidate.
func WithInvalidate(fn func()) Option {
	return func(f *Field) { f.invalidate = fn }
}

// WithLogger sets the logger browse events are reported to.
func WithLogger(l *zap.Logger) Option {
	return func(f *Field) {
		if l != nil {
			f.log = l
		}
	}
}

// WithHint sets the placeholder shown while the editor is empty.
func WithHint(hint string) Option {
	return func(f *Field) { f.hint = hint }
}

// New creates a field whose browse icon takes its colour from th.
func New(th *material.Theme, opts ...Option) *Field {
	f := &Field{
		editor:    widget.Editor{SingleLine: true, Submit: true},
		icon:      folderOpenIcon,
		iconColor: th.Palette.Fg,
		iconSize:  unit.Dp(float32(th.TextSize) * iconScale),
		newDialog: NativeDialogFactory,
		results:   make(chan browseResult, 1),
		log:       logging.GetLogger().Named("browsefield"),
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.dialog == nil {
		// A zero-option native dialog cannot fail validation.
		f.dialog, _ = NewNativeDialog()
	}
	return f
}

// Editor returns the underlying text editor.
func (f *Field) Editor() *widget.Editor { return &f.editor }

// Text returns the current editor contents.
func (f *Field) Text() string { return f.editor.Text() }

// SetText replaces the editor contents.
func (f *Field) SetText(s string) { f.editor.SetText(s) }

// State reports whether a dialog is currently open.
func (f *Field) State() State { return f.state }

// Dialog returns the dialog the next browse will show.
func (f *Field) Dialog() FileDialog {
	if f.pendingDialog != nil {
		return f.pendingDialog
	}
	return f.dialog
}

// FileMode returns the mode the next browse will use.
func (f *Field) FileMode() FileMode {
	if f.pendingMode != nil {
		return *f.pendingMode
	}
	return f.Dialog().FileMode()
}

// SetFileMode forwards mode to the owned dialog. It takes effect on the next
// browse.
func (f *Field) SetFileMode(mode FileMode) {
	switch {
	case f.state == Idle:
		f.dialog.SetFileMode(mode)
	case f.pendingDialog != nil:
		f.pendingDialog.SetFileMode(mode)
	default:
		f.pendingMode = &mode
	}
}

// SetDialog replaces the owned dialog. A nil dialog is ignored.
func (f *Field) SetDialog(d FileDialog) {
	if d == nil {
		return
	}
	f.replaceDialog(d)
}

func (f *Field) replaceDialog(d FileDialog) {
	if f.state == DialogOpen {
		f.pendingDialog, f.pendingMode = d, nil
		return
	}
	f.dialog = d
}

// ConfigureDialog discards the owned dialog and replaces it with one built
// from opts. If the dialog cannot be built the error is returned and the
// previous dialog stays in place.
func (f *Field) ConfigureDialog(opts ...DialogOption) error {
	d, err := f.newDialog(opts...)
	if err != nil {
		return fmt.Errorf("configure dialog: %w", err)
	}
	f.replaceDialog(d)
	f.log.Debug("Dialog reconfigured", zap.Stringer("mode", d.FileMode()))
	return nil
}

// Browse seeds the dialog from the current text, shows it and, if the user
// accepts, replaces the text with the last selected path. It blocks until the
// dialog is closed.
func (f *Field) Browse() error {
	if f.state == DialogOpen {
		return ErrBrowseInProgress
	}
	d := f.begin()
	return f.finish(execDialog(d))
}

// Layout draws the editor with the browse button on its right-hand side.
func (f *Field) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	f.update(gtx)

	return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return material.Editor(th, &f.editor, f.hint).Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if f.state == DialogOpen {
				gtx = gtx.Disabled()
			}
			btn := material.IconButton(th, &f.button, f.icon, "Browse")
			btn.Color = f.iconColor
			btn.Background = th.Palette.Bg
			btn.Size = f.iconSize
			btn.Inset = layout.UniformInset(unit.Dp(4))
			return btn.Layout(gtx)
		}),
	)
}

// update applies a finished dialog and starts a new one on click.
func (f *Field) update(gtx layout.Context) {
	select {
	case res := <-f.results:
		if err := f.finish(res); err != nil {
			f.log.Warn("Browse failed", zap.Error(err))
		}
	default:
	}

	for f.button.Clicked(gtx) {
		if f.state != Idle {
			f.log.Debug("Click ignored while dialog is open")
			continue
		}
		d := f.begin()
		go func() {
			f.results <- execDialog(d)
			if f.invalidate != nil {
				f.invalidate()
			}
		}()
	}
}

// begin seeds the dialog from the editor text and marks it open.
func (f *Field) begin() FileDialog {
	d := f.dialog

	if current := strings.TrimSpace(f.editor.Text()); current != "" {
		dir, file := splitSeed(NormalizePath(current), d.FileMode())
		d.SetDirectory(dir)
		if d.FileMode() != Directory {
			// An empty name clears a selection left over from the last browse.
			d.SelectFile(file)
		}
	}

	f.state = DialogOpen
	f.log.Debug("Opening dialog",
		zap.Stringer("mode", d.FileMode()),
		zap.String("directory", d.Directory()),
	)
	return d
}

type browseResult struct {
	accepted bool
	selected []string
	err      error
}

func execDialog(d FileDialog) browseResult {
	accepted, err := d.Exec()
	if err != nil || !accepted {
		return browseResult{err: err}
	}
	return browseResult{accepted: true, selected: d.SelectedFiles()}
}

// finish closes the browse and writes the accepted path, if any.
func (f *Field) finish(res browseResult) error {
	f.state = Idle
	if f.pendingDialog != nil {
		f.dialog, f.pendingDialog = f.pendingDialog, nil
	}
	if f.pendingMode != nil {
		f.dialog.SetFileMode(*f.pendingMode)
		f.pendingMode = nil
	}

	switch {
	case res.err != nil:
		return res.err
	case !res.accepted:
		f.log.Debug("Dialog cancelled")
		return nil
	case len(res.selected) == 0:
		f.log.Debug("Dialog accepted without selection")
		return nil
	}

	// With multiple selections the last one wins.
	path := NormalizePath(res.selected[len(res.selected)-1])
	f.editor.SetText(path)
	f.log.Debug("Path selected",
		zap.String("path", path),
		zap.Int("selected", len(res.selected)),
	)
	return nil
}
