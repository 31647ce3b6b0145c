package report

import (
	"fmt"
	"io"

	"seedcheck/internal/model"
)

// Console writes the line-oriented validation report: one
// "[OK]   <host>" line per passing host, or a "[FAIL] <host>" header
// followed by one indented "  - <finding>" line per error.
type Console struct {
	out io.Writer
}

// NewConsole creates a console report writer targeting out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// WriteHost implements Writer.
func (c *Console) WriteHost(result model.HostResult) {
	if result.OK() {
		fmt.Fprintf(c.out, "[OK]   %s\n", result.Host)
		return
	}
	fmt.Fprintf(c.out, "[FAIL] %s\n", result.Host)
	for _, e := range result.Errors {
		fmt.Fprintf(c.out, "  - %s\n", e)
	}
}

// WriteFatal implements Writer.
func (c *Console) WriteFatal(message string) {
	fmt.Fprintln(c.out, message)
}
