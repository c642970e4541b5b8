package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type config struct {
	Library  string `json:"library"`
	Interval string `json:"interval"`
	Bins     int    `json:"bins"`
}

func TestByName(t *testing.T) {
	for _, name := range []string{"json", "go-json", "msgpack"} {
		c, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("protobuf")
	assert.False(t, ok)
}

func TestCodecs_RoundTrip(t *testing.T) {
	in := config{Library: "./library", Interval: "1s", Bins: 16}

	for _, c := range []Codec{JSON{}, GoJSON{}, MsgPack{}} {
		t.Run(c.Name(), func(t *testing.T) {
			var out config
			require.NoError(t, c.Unmarshal(MustMarshal(c, in), &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestGoJSON_RejectsUnknownFields(t *testing.T) {
	data := []byte(`{"library":"lib","bisn":8}`)

	var cfg config
	assert.Error(t, GoJSON{}.Unmarshal(data, &cfg))
	assert.NoError(t, JSON{}.Unmarshal(data, &cfg))
}

func TestGoJSON_Append(t *testing.T) {
	out, err := GoJSON{}.Append([]byte("x"), map[string]int{"n": 1})
	require.NoError(t, err)
	assert.Equal(t, `x{"n":1}`, string(out))
}

func TestMustMarshal_DefaultCodec(t *testing.T) {
	assert.Equal(t, `{"library":"","interval":"","bins":0}`, string(MustMarshal(nil, config{})))
}

func TestMsgPack_UsesJSONTags(t *testing.T) {
	data := MustMarshal(MsgPack{}, config{Library: "lib", Bins: 8})

	var m map[string]any
	require.NoError(t, MsgPack{}.Unmarshal(data, &m))
	assert.Contains(t, m, "library")
	assert.Contains(t, m, "bins")
	assert.NotContains(t, m, "Library")
}
