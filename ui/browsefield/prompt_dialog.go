package browsefield

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// promptCancel is the answer that cancels a PromptDialog.
const promptCancel = ":q"

// PromptDialog asks for a path on a terminal. It is the fallback for hosts
// without a native file chooser.
type PromptDialog struct {
	// mu is held for a whole Exec; dialogs sharing a terminal share it.
	mu       *sync.Mutex
	in       *bufio.Reader
	out      io.Writer
	opts     DialogOptions
	selected []string
}

// NewPromptDialog returns a dialog reading answers from in and writing
// prompts to out. Pass the same *bufio.Reader to every dialog sharing a
// terminal so buffered input is not lost between dialogs.
func NewPromptDialog(in io.Reader, out io.Writer, opts ...DialogOption) (*PromptDialog, error) {
	return newPromptDialog(new(sync.Mutex), in, out, opts)
}

func newPromptDialog(mu *sync.Mutex, in io.Reader, out io.Writer, opts []DialogOption) (*PromptDialog, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &PromptDialog{mu: mu, in: br, out: out, opts: o}, nil
}

// PromptDialogFactory returns a DialogFactory building prompt dialogs on a
// shared reader. Dialogs from one factory take turns: an Exec waits until
// any other dialog of the factory has been answered.
func PromptDialogFactory(in *bufio.Reader, out io.Writer) DialogFactory {
	mu := new(sync.Mutex)
	return func(opts ...DialogOption) (FileDialog, error) {
		d, err := newPromptDialog(mu, in, out, opts)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}

func (d *PromptDialog) FileMode() FileMode        { return d.opts.Mode }
func (d *PromptDialog) SetFileMode(mode FileMode) { d.opts.Mode = mode }
func (d *PromptDialog) Directory() string         { return d.opts.Directory }
func (d *PromptDialog) SetDirectory(dir string)   { d.opts.Directory = dir }
func (d *PromptDialog) SelectFile(name string)    { d.opts.SelectedFile = name }

func (d *PromptDialog) SelectedFiles() []string {
	return append([]string(nil), d.selected...)
}

// Exec prompts until it gets an acceptable answer, a cancel or EOF.
func (d *PromptDialog) Exec() (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.selected = nil

	title := d.opts.Title
	if title == "" {
		title = "Select " + d.opts.Mode.String()
	}
	fmt.Fprintln(d.out, title)
	if d.opts.Directory != "" {
		fmt.Fprintf(d.out, "Directory: %s\n", d.opts.Directory)
	}

	for {
		suggestion := d.suggestion()
		if suggestion != "" {
			fmt.Fprintf(d.out, "Enter path [%s] (%s to cancel): ", suggestion, promptCancel)
		} else {
			fmt.Fprintf(d.out, "Enter path (%s to cancel): ", promptCancel)
		}

		line, err := d.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("read answer: %w", err)
		}
		eof := errors.Is(err, io.EOF)

		answer := strings.TrimSpace(line)
		if answer == promptCancel || (eof && answer == "") {
			return false, nil
		}
		if answer == "" {
			if suggestion == "" {
				return false, nil
			}
			answer = suggestion
		}

		paths, problem := d.resolve(answer)
		if problem == "" {
			d.selected = paths
			d.remember(paths[len(paths)-1])
			return true, nil
		}

		fmt.Fprintln(d.out, problem)
		if eof {
			return false, nil
		}
	}
}

// suggestion is the path accepted by an empty answer.
func (d *PromptDialog) suggestion() string {
	switch {
	case d.opts.Mode == Directory:
		return d.opts.Directory
	case d.opts.SelectedFile != "":
		return filepath.Join(d.opts.Directory, d.opts.SelectedFile)
	default:
		return ""
	}
}

// resolve anchors relative answers at the starting directory. The returned
// message describes the first path the current mode rejects.
func (d *PromptDialog) resolve(answer string) ([]string, string) {
	parts := []string{answer}
	if d.opts.Mode == ExistingFiles {
		parts = filepath.SplitList(answer)
	}

	var paths []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !filepath.IsAbs(p) && d.opts.Directory != "" {
			p = filepath.Join(d.opts.Directory, p)
		}
		if msg := d.check(p); msg != "" {
			return nil, msg
		}
		paths = append(paths, p)
	}
	if len(paths) == 0 {
		return nil, "No path given"
	}
	return paths, ""
}

func (d *PromptDialog) check(path string) string {
	if !d.opts.Mode.mustExist() {
		return ""
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Sprintf("%s does not exist", path)
	}
	if d.opts.Mode == Directory && !info.IsDir() {
		return fmt.Sprintf("%s is not a directory", path)
	}
	if d.opts.Mode != Directory && info.IsDir() {
		return fmt.Sprintf("%s is a directory", path)
	}
	return ""
}

func (d *PromptDialog) remember(path string) {
	if d.opts.Mode == Directory {
		d.opts.Directory = path
		return
	}
	d.opts.Directory, d.opts.SelectedFile = filepath.Dir(path), filepath.Base(path)
}
