// Package output renders position reports and perft results as text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/analysis"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// LineWriter handles formatted output with line length control.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	indent        string
}

// NewLineWriter creates a writer that wraps at maxLineLength and starts
// continuation lines with indent.
func NewLineWriter(w io.Writer, maxLineLength int, indent string) *LineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &LineWriter{
		w:             w,
		maxLineLength: maxLineLength,
		indent:        indent,
	}
}

// Write writes a word, adding a space separator or a line break as needed.
func (o *LineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *LineWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *LineWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteReportText writes a report as a short block of text:
//
//	FEN:    <fen>
//	ToMove: White
//	Status: check
//	Moves:  Kd8 (e8d8) Kf8 (e8f8) ...
func WriteReportText(w io.Writer, r *analysis.Report, cfg *config.OutputConfig) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "FEN:    %s\n", r.FEN)
	fmt.Fprintf(&sb, "ToMove: %s\n", r.ToMove)
	fmt.Fprintf(&sb, "Status: %s\n", r.Status())

	lw := NewLineWriter(&sb, cfg.LineLength, "        ")
	lw.WriteNoSpace(fmt.Sprintf("Moves:  (%d)", len(r.Moves)))
	for _, m := range r.Moves {
		if cfg.ShowSAN {
			lw.Write(fmt.Sprintf("%s (%s)", m.SAN, m.UCI))
		} else {
			lw.Write(m.UCI)
		}
	}
	lw.NewLine()

	_, err := io.WriteString(w, sb.String())
	return err
}
