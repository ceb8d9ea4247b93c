package main

import (
	"fmt"
	"image/color"
	"os"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/Wuerfelhusten/Dynamic-Interface-Patcher/internal/config"
	"github.com/Wuerfelhusten/Dynamic-Interface-Patcher/internal/logging"
	"github.com/Wuerfelhusten/Dynamic-Interface-Patcher/ui/browsefield"
)

type fieldRow struct {
	label   string
	field   *browsefield.Field
	copyBtn widget.Clickable
}

type GioUI struct {
	theme      *material.Theme
	title      string
	statusText string
	rows       []*fieldRow
	list       widget.List
}

// NewGioUI builds one row per configured field. dialogs replaces the native
// dialog when non-nil.
func NewGioUI(cfg config.Config, invalidate func(), dialogs browsefield.DialogFactory) (*GioUI, error) {
	theme := material.NewTheme()
	theme.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	ui := &GioUI{
		theme:      theme,
		title:      cfg.Window.Title,
		statusText: "Type a path or use the folder button",
		list: widget.List{
			List: layout.List{
				Axis: layout.Vertical,
			},
		},
	}

	for i, fc := range cfg.Fields {
		opts := []browsefield.Option{
			browsefield.WithHint(fc.Hint),
			browsefield.WithInvalidate(invalidate),
			browsefield.WithLogger(logging.GetLogger().Named("field").With(zap.String("label", fc.Label))),
		}
		if dialogs != nil {
			opts = append(opts, browsefield.WithDialogFactory(dialogs))
		}
		field := browsefield.New(theme, opts...)

		dialogOpts, err := fc.DialogOptions()
		if err != nil {
			return nil, fmt.Errorf("field %d (%s): %w", i, fc.Label, err)
		}
		if err := field.ConfigureDialog(dialogOpts...); err != nil {
			return nil, fmt.Errorf("field %d (%s): %w", i, fc.Label, err)
		}
		field.SetText(fc.Text)

		ui.rows = append(ui.rows, &fieldRow{label: fc.Label, field: field})
	}

	return ui, nil
}

func (ui *GioUI) Run(w *app.Window) error {
	var ops op.Ops

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for _, row := range ui.rows {
				if row.copyBtn.Clicked(gtx) {
					ui.copyPath(row)
				}
			}

			ui.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (ui *GioUI) copyPath(row *fieldRow) {
	path := row.field.Text()
	if path == "" {
		ui.statusText = fmt.Sprintf("⚠️ %s is empty", row.label)
		return
	}
	if err := clipboard.WriteAll(path); err != nil {
		ui.statusText = "❌ Failed to copy path"
		logging.GetLogger().Warn("Clipboard write failed", zap.Error(err))
		return
	}
	ui.statusText = fmt.Sprintf("✓ Copied %s", path)
}

func (ui *GioUI) Layout(gtx layout.Context) layout.Dimensions {
	return layout.UniformInset(unit.Dp(10)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				title := material.H6(ui.theme, ui.title)
				title.Color = color.NRGBA{R: 63, G: 81, B: 181, A: 255}
				return title.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return material.Body2(ui.theme, ui.statusText).Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return material.List(ui.theme, &ui.list).Layout(gtx, len(ui.rows), func(gtx layout.Context, index int) layout.Dimensions {
					return layout.Inset{Bottom: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						return ui.layoutRow(gtx, ui.rows[index])
					})
				})
			}),
		)
	})
}

func (ui *GioUI) layoutRow(gtx layout.Context, row *fieldRow) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			label := material.Caption(ui.theme, fmt.Sprintf("%s (%s)", row.label, row.field.FileMode()))
			label.Color = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
			return label.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return row.field.Layout(gtx, ui.theme)
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					btn := material.Button(ui.theme, &row.copyBtn, "📋 Copy")
					btn.Background = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
					btn.TextSize = unit.Sp(12)
					return btn.Layout(gtx)
				}),
			)
		}),
	)
}

// runGUI opens the demo window and blocks until it is closed.
func runGUI(cfg config.Config, dialogs browsefield.DialogFactory) error {
	log := logging.GetLogger()

	w := new(app.Window)
	ui, err := NewGioUI(cfg, w.Invalidate, dialogs)
	if err != nil {
		return err
	}

	go func() {
		w.Option(app.Title(cfg.Window.Title))
		w.Option(app.Size(unit.Dp(cfg.Window.Width), unit.Dp(cfg.Window.Height)))

		if err := ui.Run(w); err != nil {
			log.Error("Window closed with error", zap.Error(err))
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			logging.Sync()
			os.Exit(1)
		}
		logging.Sync()
		os.Exit(0)
	}()

	app.Main()
	return nil
}
