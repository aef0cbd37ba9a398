package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainPrinter_Marks(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlainPrinter(&buf)

	p.Step("rendering %s", "testing/simple.json")
	p.OK("resource group ready")
	p.Fail("deployment validation failed")
	p.Info("workdir: /tmp/dcos-azure-123")

	out := buf.String()
	assert.Contains(t, out, "[..] rendering testing/simple.json\n")
	assert.Contains(t, out, "[OK] resource group ready\n")
	assert.Contains(t, out, "[!!] deployment validation failed\n")
	assert.Contains(t, out, "workdir: /tmp/dcos-azure-123\n")
	assert.NotContains(t, out, "\x1b[", "plain printer must not emit ANSI escapes")
}
