package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"seedcheck/internal/model"
)

func TestConsole_WriteHostOK(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).WriteHost(model.HostResult{Host: "web01"})
	assert.Equal(t, "[OK]   web01\n", buf.String())
}

func TestConsole_WriteHostFail(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).WriteHost(model.HostResult{
		Host: "web01",
		Errors: []string{
			"meta-data: missing instance-id",
			"user-data.autoinstall: missing 'identity'",
		},
	})

	want := "[FAIL] web01\n" +
		"  - meta-data: missing instance-id\n" +
		"  - user-data.autoinstall: missing 'identity'\n"
	assert.Equal(t, want, buf.String())
}

func TestConsole_WriteFatal(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).WriteFatal("No host directories found under: seeds/hosts")
	assert.Equal(t, "No host directories found under: seeds/hosts\n", buf.String())
}

func TestConsole_ImplementsWriter(t *testing.T) {
	var _ Writer = NewConsole(&bytes.Buffer{})
}
