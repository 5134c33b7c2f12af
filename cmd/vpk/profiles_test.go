package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunProfilesList_Table(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	profilesPath = ""
	profilesFormat = "table"

	err := runProfilesList(cmd, nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "vue.define-props")
	assert.Contains(t, out, "defineProps")
	assert.Contains(t, out, "const props")
}

func TestRunProfilesList_JSON(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	profilesPath = ""
	profilesFormat = "json"

	err := runProfilesList(cmd, nil)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.NotEmpty(t, decoded)
}

func TestRunProfilesList_UnknownFormat(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	profilesPath = ""
	profilesFormat = "xml"

	assert.Error(t, runProfilesList(cmd, nil))
}
