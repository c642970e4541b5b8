package codec

import (
	"fmt"
	"testing"
)

type benchMatch struct {
	ID       string  `json:"id"`
	Distance float64 `json:"distance"`
}

type benchResult struct {
	Variant string       `json:"variant"`
	Target  string       `json:"target"`
	Matches []benchMatch `json:"matches"`
	Scanned int          `json:"scanned"`
	Skipped []int        `json:"skipped"`
}

func benchPayload() benchResult {
	r := benchResult{Variant: "chroma", Target: "images/pic.0164.jpg", Scanned: 1107, Skipped: []int{3, 17}}
	for i := 0; i < 10; i++ {
		r.Matches = append(r.Matches, benchMatch{ID: fmt.Sprintf("images/pic.%04d.jpg", i), Distance: float64(i) * 0.173})
	}
	return r
}

func benchmarkCodecMarshal(b *testing.B, c Codec, v any) {
	b.Helper()
	b.ReportAllocs()

	warm, err := c.Marshal(v)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(warm)))

	var sink []byte
	b.ResetTimer()
	for b.Loop() {
		out, err := c.Marshal(v)
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}

func benchmarkCodecUnmarshal[T any](b *testing.B, c Codec, data []byte, dst *T) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	var v T
	b.ResetTimer()
	for b.Loop() {
		if err := c.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
	if dst != nil {
		*dst = v
	}
}

func BenchmarkCodec_Marshal_Result(b *testing.B) {
	payload := benchPayload()

	b.Run("stdlib", func(b *testing.B) { benchmarkCodecMarshal(b, JSON{}, payload) })
	b.Run("go-json", func(b *testing.B) { benchmarkCodecMarshal(b, GoJSON{}, payload) })
	b.Run("msgpack", func(b *testing.B) { benchmarkCodecMarshal(b, MsgPack{}, payload) })
}

func BenchmarkCodec_Unmarshal_Result(b *testing.B) {
	jsonData := MustMarshal(JSON{}, benchPayload())

	b.Run("stdlib", func(b *testing.B) {
		var sink benchResult
		benchmarkCodecUnmarshal(b, JSON{}, jsonData, &sink)
	})
	b.Run("go-json", func(b *testing.B) {
		var sink benchResult
		benchmarkCodecUnmarshal(b, GoJSON{}, jsonData, &sink)
	})
	b.Run("msgpack", func(b *testing.B) {
		var sink benchResult
		benchmarkCodecUnmarshal(b, MsgPack{}, MustMarshal(MsgPack{}, benchPayload()), &sink)
	})
}
