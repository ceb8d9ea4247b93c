package browsefield

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFileMode(t *testing.T) {
	tests := []struct {
		in      string
		want    FileMode
		wantErr bool
	}{
		{"any-file", AnyFile, false},
		{"existing-file", ExistingFile, false},
		{"Directory", Directory, false},
		{" existing_files ", ExistingFiles, false},
		{"folder", AnyFile, true},
		{"", AnyFile, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFileMode(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidFileMode)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, got, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) FileMode {
	t.Helper()
	m, err := ParseFileMode(s)
	require.NoError(t, err)
	return m
}

func TestFileModeStringUnknown(t *testing.T) {
	require.Equal(t, "FileMode(9)", FileMode(9).String())
	require.False(t, FileMode(9).Valid())
}

func TestNewNativeDialogDefaults(t *testing.T) {
	d, err := NewNativeDialog()
	require.NoError(t, err)
	require.Equal(t, AnyFile, d.FileMode())
	require.Empty(t, d.Directory())
	require.Empty(t, d.SelectedFiles())
}

func TestNewNativeDialogOptions(t *testing.T) {
	d, err := NewNativeDialog(
		WithTitle("Pick patch"),
		WithDirectory("/srv"),
		WithSelectedFile("patch.json"),
		WithFilter("Patches", "json", "yaml"),
		WithFileMode(ExistingFile),
	)
	require.NoError(t, err)
	require.Equal(t, "Pick patch", d.Title())
	require.Equal(t, "/srv", d.Directory())
	require.Equal(t, "patch.json", d.opts.SelectedFile)
	require.Equal(t, []Filter{{Description: "Patches", Extensions: []string{"json", "yaml"}}}, d.Filters())
	require.Equal(t, ExistingFile, d.FileMode())

	d.SetFileMode(Directory)
	d.SetDirectory("/tmp")
	require.Equal(t, Directory, d.FileMode())
	require.Equal(t, "/tmp", d.Directory())
}

func TestNewNativeDialogInvalid(t *testing.T) {
	tests := []struct {
		name string
		opts []DialogOption
		want error
	}{
		{"unknown mode", []DialogOption{WithFileMode(FileMode(42))}, ErrInvalidFileMode},
		{"filter without extensions", []DialogOption{WithFilter("Images")}, ErrInvalidFilter},
		{"filter without description", []DialogOption{WithFilter("", "png")}, ErrInvalidFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NativeDialogFactory(tt.opts...)
			require.ErrorIs(t, err, tt.want)
		})
	}
}
