package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Wuerfelhusten/Dynamic-Interface-Patcher/ui/browsefield"
)

func TestLoadConfigMissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	config, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fields.toml")
	data := `
[window]
title = "Patcher"

[[field]]
label = "Patch"
mode = "existing_file"
title = "Select patch"
directory = "/srv/patches"

[[field.filter]]
description = "Patch files"
extensions = ["json", "yaml"]

[[field]]
label = "Output"
mode = "Directory"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "Patcher", config.Window.Title)
	require.Equal(t, 600, config.Window.Width)
	require.Len(t, config.Fields, 2)

	patch := config.Fields[0]
	mode, err := patch.FileMode()
	require.NoError(t, err)
	require.Equal(t, browsefield.ExistingFile, mode)
	require.Equal(t, []FilterConfig{{Description: "Patch files", Extensions: []string{"json", "yaml"}}}, patch.Filters)

	opts, err := patch.DialogOptions()
	require.NoError(t, err)
	d, err := browsefield.NewNativeDialog(opts...)
	require.NoError(t, err)
	require.Equal(t, browsefield.ExistingFile, d.FileMode())
	require.Equal(t, "Select patch", d.Title())
	require.Equal(t, "/srv/patches", d.Directory())
	require.Len(t, d.Filters(), 1)

	mode, err = config.Fields[1].FileMode()
	require.NoError(t, err)
	require.Equal(t, browsefield.Directory, mode)
}

func TestLoadConfigRejectsUnknownMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fields.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[field]]\nlabel = \"x\"\nmode = \"folders\"\n"), 0o644))

	_, err := LoadConfig(path)
	require.ErrorIs(t, err, browsefield.ErrInvalidFileMode)
}
