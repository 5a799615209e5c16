package output

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/aleskard/sqlward/internal/advisor"
	"github.com/aleskard/sqlward/internal/analyzer"
	"github.com/aleskard/sqlward/internal/audit"
)

// Renderer defines the output interface.
type Renderer interface {
	RenderVerdict(v *analyzer.Verdict)
	RenderAudit(r *audit.Report)
	RenderAdvice(a *advisor.Advice)
}

// NewRenderer creates a renderer for the given format.
func NewRenderer(format string, w io.Writer) Renderer {
	switch format {
	case "json":
		return &JSONRenderer{w: w}
	case "markdown":
		return &MarkdownRenderer{w: w}
	case "plain":
		return &PlainRenderer{w: w}
	default:
		return &TextRenderer{w: w}
	}
}

// DefaultFormat picks styled text on terminals and plain output when stdout
// is piped.
func DefaultFormat() string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return "text"
	}
	return "plain"
}
