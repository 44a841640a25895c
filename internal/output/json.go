package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/analysis"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// JSONReport represents a position report in JSON format.
type JSONReport struct {
	FEN                  string     `json:"fen"`
	ToMove               string     `json:"toMove"` // "white" or "black"
	Status               string     `json:"status"`
	Hash                 string     `json:"hash"`
	Check                bool       `json:"check"`
	Checkmate            bool       `json:"checkmate"`
	Stalemate            bool       `json:"stalemate"`
	InsufficientMaterial bool       `json:"insufficientMaterial"`
	FiftyMoveRule        bool       `json:"fiftyMoveRule"`
	Moves                []JSONMove `json:"moves"`
}

// JSONMove represents a legal move in JSON format.
type JSONMove struct {
	UCI string `json:"uci"`
	SAN string `json:"san,omitempty"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Positions []*JSONReport `json:"positions"`
}

// JSONDivide is perft output with the per-move split.
type JSONDivide struct {
	FEN   string          `json:"fen"`
	Depth int             `json:"depth"`
	Nodes uint64          `json:"nodes"`
	Moves []JSONDivideRow `json:"moves,omitempty"`
}

// JSONDivideRow is the node count below one root move.
type JSONDivideRow struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// ReportToJSON converts a report to its JSON form. SAN is left out when
// showSAN is false.
func ReportToJSON(r *analysis.Report, showSAN bool) *JSONReport {
	jr := &JSONReport{
		FEN:                  r.FEN,
		ToMove:               strings.ToLower(r.ToMove.String()),
		Status:               r.Status(),
		Hash:                 formatHash(r.Hash),
		Check:                r.Check,
		Checkmate:            r.Checkmate,
		Stalemate:            r.Stalemate,
		InsufficientMaterial: r.InsufficientMaterial,
		FiftyMoveRule:        r.FiftyMoveRule,
		Moves:                make([]JSONMove, len(r.Moves)),
	}
	for i, m := range r.Moves {
		jr.Moves[i] = JSONMove{UCI: m.UCI}
		if showSAN {
			jr.Moves[i].SAN = m.SAN
		}
	}
	return jr
}

// DivideToJSON converts divide output to JSON form.
func DivideToJSON(fen string, depth int, entries []engine.DivideEntry) *JSONDivide {
	jd := &JSONDivide{FEN: fen, Depth: depth}
	for _, e := range entries {
		jd.Moves = append(jd.Moves, JSONDivideRow{Move: e.Move.UCI(), Nodes: e.Nodes})
		jd.Nodes += e.Nodes
	}
	return jd
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
