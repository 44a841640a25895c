package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/analysis"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// ReportWriter is the interface for writing position reports.
// Different implementations handle different output formats.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *analysis.Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewReportWriter returns a JSON or text writer according to cfg.
func NewReportWriter(w io.Writer, cfg *config.OutputConfig) ReportWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes reports as text blocks separated by blank lines.
type TextWriter struct {
	w       io.Writer
	cfg     *config.OutputConfig
	written int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteReport writes a report in text form.
func (tw *TextWriter) WriteReport(r *analysis.Report) error {
	if tw.written > 0 {
		if _, err := fmt.Fprintln(tw.w); err != nil {
			return err
		}
	}
	tw.written++
	return WriteReportText(tw.w, r, tw.cfg)
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.OutputConfig
	reports []*analysis.Report
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg, single: true}
}

// WriteReport buffers a report for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteReport(r *analysis.Report) error {
	if jw.single {
		return encodeJSON(jw.w, ReportToJSON(r, jw.cfg.ShowSAN))
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	out := &JSONOutput{Positions: make([]*JSONReport, 0, len(jw.reports))}
	for _, r := range jw.reports {
		out.Positions = append(out.Positions, ReportToJSON(r, jw.cfg.ShowSAN))
	}
	err := encodeJSON(jw.w, out)

	// Clear buffer after writing
	jw.reports = jw.reports[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// WriteDivide writes perft results. Text output lists "move: nodes" per root
// move in the familiar engine format followed by the total; JSON output is
// a single JSONDivide object. With no entries only the total is written.
func WriteDivide(w io.Writer, fen string, depth int, entries []engine.DivideEntry, nodes uint64, cfg *config.OutputConfig) error {
	if cfg.JSONFormat {
		jd := DivideToJSON(fen, depth, entries)
		jd.Nodes = nodes
		return encodeJSON(w, jd)
	}

	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s: %d\n", e.Move.UCI(), e.Nodes); err != nil {
			return err
		}
	}
	if len(entries) > 0 {
		fmt.Fprintln(w)
	}
	_, err := fmt.Fprintf(w, "Nodes searched: %d\n", nodes)
	return err
}

func formatHash(h uint64) string {
	return fmt.Sprintf("%016x", h)
}
