package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestDialogFactoryUsesCommandStreams(t *testing.T) {
	t.Cleanup(func() { usePrompt = false })

	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)
	in := bufio.NewReader(strings.NewReader("/from/cobra\n"))

	usePrompt = false
	require.Nil(t, dialogFactory(cmd, in))

	usePrompt = true
	factory := dialogFactory(cmd, in)
	require.NotNil(t, factory)

	d, err := factory()
	require.NoError(t, err)
	ok, err := d.Exec()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []string{"/from/cobra"}, d.SelectedFiles())
	require.Contains(t, out.String(), "Enter path")
}
