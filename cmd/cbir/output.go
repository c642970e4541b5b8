package main

import (
	"bufio"
	"strconv"

	"github.com/hupe1980/cbir"
	"github.com/hupe1980/cbir/codec"
)

type lineFormat int

const (
	// formatTop prints a "Top N matches:" header and "<id> (Distance: v)" lines.
	formatTop lineFormat = iota
	// formatDistance prints "Distance: v, Image: <id>" lines.
	formatDistance
)

// report is the machine-readable form of a ranking result.
type report struct {
	N       int          `json:"n"`
	Matches []cbir.Match `json:"matches"`
	Scanned int          `json:"scanned"`
	Skipped []int        `json:"skipped"`
}

func (e *env) print(res *cbir.Result, n int, format lineFormat) error {
	w := bufio.NewWriter(e.stdout)

	if e.codec != nil {
		data, err := e.codec.Marshal(report{
			N:       n,
			Matches: res.Matches,
			Scanned: res.Scanned,
			Skipped: res.SkippedOrdinals(),
		})
		if err != nil {
			return err
		}
		_, _ = w.Write(data)
		if _, binary := e.codec.(codec.MsgPack); !binary {
			_ = w.WriteByte('\n')
		}
		return w.Flush()
	}

	if format == formatTop {
		_, _ = w.WriteString("Top " + strconv.Itoa(n) + " matches:\n")
	}
	for _, m := range res.Matches {
		switch format {
		case formatTop:
			_, _ = w.WriteString(m.ID + " (Distance: " + formatFloat(m.Distance) + ")\n")
		default:
			_, _ = w.WriteString("Distance: " + formatFloat(m.Distance) + ", Image: " + m.ID + "\n")
		}
	}
	return w.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
