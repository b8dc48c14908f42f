package cmd

import (
	"bytes"
	"strings"
	"testing"

	"artifact-store/feature/artifacts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload artifacts.Payload
		want    string
	}{
		{"Text", artifacts.Text("hello"), "hello"},
		{"Binary", artifacts.Binary{0x00, 0x01}, "\x00\x01"},
		{"Stream", artifacts.TextStream{Reader: strings.NewReader("streamed")}, "streamed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writePayload(&buf, tt.payload))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintJSON_EmptyList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, []artifacts.Object{}))
	assert.Equal(t, "[]\n", buf.String())
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"resolve", "read", "load-model", "mkdir", "upload", "download", "start", "pipeline"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}
