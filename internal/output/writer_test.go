package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/analysis"
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func report(t *testing.T, fen string) *analysis.Report {
	t.Helper()
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error: %v", fen, err)
	}
	return analysis.Analyze(&pos)
}

// TestTextWriter_WriteReport verifies the text block layout
func TestTextWriter_WriteReport(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewOutputConfig()

	writer := NewTextWriter(&buf, cfg)
	err := writer.WriteReport(report(t, "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1"))
	testutil.AssertNoError(t, err)

	want := "FEN:    4k3/8/8/8/8/8/8/4R1K1 b - - 0 1\n" +
		"ToMove: Black\n" +
		"Status: check\n" +
		"Moves:  (4) Kd7 (e8d7) Kf7 (e8f7) Kd8 (e8d8) Kf8 (e8f8)\n"
	testutil.AssertEqual(t, buf.String(), want)
}

func TestTextWriter_UCIOnly(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewOutputConfig()
	cfg.ShowSAN = false

	writer := NewTextWriter(&buf, cfg)
	testutil.AssertNoError(t, writer.WriteReport(report(t, "k7/8/1Q6/8/8/8/8/K7 b - - 0 1")))
	testutil.AssertNoError(t, writer.WriteReport(report(t, "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1")))

	out := buf.String()
	testutil.AssertContains(t, out, "Status: stalemate\nMoves:  (0)\n\nFEN:")
	testutil.AssertContains(t, out, "Moves:  (4) e8d7 e8f7 e8d8 e8f8\n")
	testutil.AssertNotContains(t, out, "Kd7")
}

func TestTextWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewOutputConfig()
	cfg.LineLength = 40

	writer := NewTextWriter(&buf, cfg)
	testutil.AssertNoError(t, writer.WriteReport(report(t, engine.InitialFEN)))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		if strings.HasPrefix(line, "FEN:") {
			continue
		}
		if len(line) > 40 {
			t.Errorf("line %q longer than 40", line)
		}
	}
	testutil.AssertContains(t, buf.String(), "\n        ")
}

// TestJSONWriter_Batch verifies that reports are written as one array on Close
func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	writer := NewJSONWriter(&buf, config.NewOutputConfig())

	testutil.AssertNoError(t, writer.WriteReport(report(t, engine.InitialFEN)))
	testutil.AssertNoError(t, writer.WriteReport(report(t, "k7/8/1Q6/8/8/8/8/K7 b - - 0 1")))
	testutil.AssertEqual(t, buf.Len(), 0, "batch writer wrote before Close")
	testutil.AssertNoError(t, writer.Close())

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, len(out.Positions), 2)
	testutil.AssertEqual(t, out.Positions[0].ToMove, "white")
	testutil.AssertEqual(t, out.Positions[0].Moves[0], JSONMove{UCI: "b1a3", SAN: "Na3"})
	testutil.AssertEqual(t, out.Positions[1].Status, "stalemate")
	testutil.AssertTrue(t, out.Positions[1].Stalemate)
	testutil.AssertEqual(t, len(out.Positions[1].Hash), 16)

	// A second Close has nothing left to write.
	before := buf.Len()
	testutil.AssertNoError(t, writer.Close())
	testutil.AssertEqual(t, buf.Len(), before)
}

func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewOutputConfig()
	cfg.ShowSAN = false
	writer := NewJSONWriterSingle(&buf, cfg)

	testutil.AssertNoError(t, writer.WriteReport(report(t, engine.InitialFEN)))

	var jr JSONReport
	if err := json.Unmarshal(buf.Bytes(), &jr); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	testutil.AssertEqual(t, jr.FEN, engine.InitialFEN)
	testutil.AssertEqual(t, jr.Moves[0], JSONMove{UCI: "b1a3"})
	testutil.AssertNotContains(t, buf.String(), `"san"`)
}

func TestNewReportWriter(t *testing.T) {
	cfg := config.NewOutputConfig()
	if _, ok := NewReportWriter(&bytes.Buffer{}, cfg).(*TextWriter); !ok {
		t.Error("default writer should be text")
	}
	cfg.JSONFormat = true
	if _, ok := NewReportWriter(&bytes.Buffer{}, cfg).(*JSONWriter); !ok {
		t.Error("JSONFormat should select the JSON writer")
	}
}

func TestWriteDivide(t *testing.T) {
	pos := chess.NewPosition()
	entries := engine.Divide(&pos, 1)

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteDivide(&buf, engine.InitialFEN, 1, entries[:2], 2, config.NewOutputConfig())
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, buf.String(), "b1a3: 1\nb1c3: 1\n\nNodes searched: 2\n")
	})

	t.Run("total only", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteDivide(&buf, engine.InitialFEN, 3, nil, 8902, config.NewOutputConfig())
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, buf.String(), "Nodes searched: 8902\n")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := config.NewOutputConfig()
		cfg.JSONFormat = true
		testutil.AssertNoError(t, WriteDivide(&buf, engine.InitialFEN, 1, entries, 20, cfg))

		var jd JSONDivide
		if err := json.Unmarshal(buf.Bytes(), &jd); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		testutil.AssertEqual(t, jd.Nodes, uint64(20))
		testutil.AssertEqual(t, len(jd.Moves), 20)
		testutil.AssertEqual(t, jd.Moves[0], JSONDivideRow{Move: "b1a3", Nodes: 1})
	})
}

func TestLineWriter(t *testing.T) {
	var buf bytes.Buffer
	lw := NewLineWriter(&buf, 10, "  ")
	for _, w := range []string{"alpha", "beta", "gamma", "d"} {
		lw.Write(w)
	}
	lw.NewLine()
	testutil.AssertEqual(t, buf.String(), "alpha beta\n  gamma d\n")
}
