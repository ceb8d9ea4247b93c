package browsefield

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func newPrompt(t *testing.T, input string, opts ...DialogOption) (*PromptDialog, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	d, err := NewPromptDialog(strings.NewReader(input), &out, opts...)
	require.NoError(t, err)
	return d, &out
}

func TestPromptDialogAnyFile(t *testing.T) {
	d, out := newPrompt(t, "report.txt\n", WithTitle("Save report"), WithDirectory("/srv/out"))

	ok, err := d.Exec()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{filepath.Join("/srv/out", "report.txt")}, d.SelectedFiles())
	require.Contains(t, out.String(), "Save report")
	require.Contains(t, out.String(), "Directory: /srv/out")

	// The accepted path seeds the next prompt.
	require.Equal(t, "/srv/out", d.Directory())
	require.Equal(t, filepath.Join("/srv/out", "report.txt"), d.suggestion())
}

func TestPromptDialogCancel(t *testing.T) {
	for _, input := range []string{":q\n", "", "\n"} {
		d, _ := newPrompt(t, input)

		ok, err := d.Exec()
		require.NoError(t, err)
		require.False(t, ok)
		require.Empty(t, d.SelectedFiles())
	}
}

func TestPromptDialogAcceptsSuggestion(t *testing.T) {
	d, out := newPrompt(t, "\n", WithDirectory("/srv"), WithSelectedFile("a.txt"))

	ok, err := d.Exec()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{filepath.Join("/srv", "a.txt")}, d.SelectedFiles())
	require.Contains(t, out.String(), "["+filepath.Join("/srv", "a.txt")+"]")
}

func TestPromptDialogExistingFileRetries(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real.txt"), nil, 0o644))

	d, out := newPrompt(t, "missing.txt\nreal.txt\n", WithFileMode(ExistingFile), WithDirectory(dir))

	ok, err := d.Exec()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{filepath.Join(dir, "real.txt")}, d.SelectedFiles())
	require.Contains(t, out.String(), "does not exist")
}

func TestPromptDialogDirectoryRejectsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	d, out := newPrompt(t, file+"\n"+dir+"\n", WithFileMode(Directory))

	ok, err := d.Exec()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{dir}, d.SelectedFiles())
	require.Equal(t, dir, d.Directory())
	require.Contains(t, out.String(), "is not a directory")
}

func TestPromptDialogExistingFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	answer := strings.Join([]string{"a", "b", "c"}, string(os.PathListSeparator))

	d, _ := newPrompt(t, answer+"\n", WithFileMode(ExistingFiles), WithDirectory(dir))

	ok, err := d.Exec()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{
		filepath.Join(dir, "a"),
		filepath.Join(dir, "b"),
		filepath.Join(dir, "c"),
	}, d.SelectedFiles())
}

func TestPromptDialogFactorySharesReader(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("/one\n/two\n"))
	var out bytes.Buffer
	factory := PromptDialogFactory(in, &out)

	for _, want := range []string{"/one", "/two"} {
		d, err := factory()
		require.NoError(t, err)
		ok, err := d.Exec()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, []string{want}, d.SelectedFiles())
	}
}

func TestFieldWithPromptDialog(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"x.txt", "y.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	answer := "x.txt" + string(os.PathListSeparator) + "y.txt\n"

	d, _ := newPrompt(t, answer, WithFileMode(ExistingFiles))
	f := New(newTheme(), WithDialog(d))
	f.SetText(filepath.Join(dir, "x.txt"))

	require.NoError(t, f.Browse())
	require.Equal(t, filepath.Join(dir, "y.txt"), f.Text())
}

func TestPromptDialogFactoryTakesTurns(t *testing.T) {
	var out bytes.Buffer
	factory := PromptDialogFactory(bufio.NewReader(strings.NewReader("/one\n/two\n")), &out)

	dialogs := make([]FileDialog, 2)
	for i := range dialogs {
		d, err := factory()
		require.NoError(t, err)
		dialogs[i] = d
	}

	var wg sync.WaitGroup
	accepted := make([]bool, len(dialogs))
	errs := make([]error, len(dialogs))
	for i, d := range dialogs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			accepted[i], errs[i] = d.Exec()
		}()
	}
	wg.Wait()

	var got []string
	for i, d := range dialogs {
		require.NoError(t, errs[i])
		require.True(t, accepted[i])
		require.Len(t, d.SelectedFiles(), 1)
		got = append(got, d.SelectedFiles()[0])
	}
	require.ElementsMatch(t, []string{"/one", "/two"}, got)
}
