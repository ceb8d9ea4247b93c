package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"gioui.org/widget/material"

	"github.com/Wuerfelhusten/Dynamic-Interface-Patcher/internal/config"
	"github.com/Wuerfelhusten/Dynamic-Interface-Patcher/ui/browsefield"
)

func showMenu(out io.Writer) {
	fmt.Fprintln(out, "\n=== browsefield Menu ===")
	fmt.Fprintln(out, "1. Browse")
	fmt.Fprintln(out, "2. Set text")
	fmt.Fprintln(out, "3. Set file mode")
	fmt.Fprintln(out, "4. Show text")
	fmt.Fprintln(out, "5. Exit")
	fmt.Fprint(out, "\nChoose option: ")
}

// readLine returns the next line without its line ending. ok is false once
// the input is exhausted.
func readLine(in *bufio.Reader) (line string, ok bool, err error) {
	line, err = in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		return strings.TrimRight(line, "\r\n"), line != "", nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimRight(line, "\r\n"), true, nil
}

// runCLI drives the first configured field from a text menu. Dialogs prompt
// on the same input.
func runCLI(cfg config.Config, in *bufio.Reader, out io.Writer) error {
	if len(cfg.Fields) == 0 {
		return errors.New("no fields configured")
	}
	fc := cfg.Fields[0]

	field := browsefield.New(material.NewTheme(),
		browsefield.WithDialogFactory(browsefield.PromptDialogFactory(in, out)),
	)
	opts, err := fc.DialogOptions()
	if err != nil {
		return err
	}
	if err := field.ConfigureDialog(opts...); err != nil {
		return err
	}
	field.SetText(fc.Text)

	fmt.Fprintf(out, "✓ Field %q (%s)\n", fc.Label, field.FileMode())

	for {
		showMenu(out)

		choice, ok, err := readLine(in)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if err := field.Browse(); err != nil {
				fmt.Fprintln(out, "❌ Browse failed:", err)
				continue
			}
			fmt.Fprintf(out, "✓ Text: %s\n", field.Text())

		case "2":
			fmt.Fprint(out, "Enter text: ")
			text, ok, err := readLine(in)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			field.SetText(text)

		case "3":
			fmt.Fprint(out, "Enter mode (any-file, existing-file, directory, existing-files): ")
			name, ok, err := readLine(in)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			mode, err := browsefield.ParseFileMode(name)
			if err != nil {
				fmt.Fprintln(out, "❌", err)
				continue
			}
			field.SetFileMode(mode)
			fmt.Fprintf(out, "✓ Mode: %s\n", mode)

		case "4":
			fmt.Fprintf(out, "Text: %q\n", field.Text())

		case "5":
			fmt.Fprintln(out, "Bye!")
			return nil

		default:
			fmt.Fprintln(out, "❌ Invalid option")
		}
	}
}
