package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yndnr/acp-bench/internal/core/domain"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{NameStd, NameSonic, NameJSONIter} {
		c, err := Lookup(name)
		require.NoError(t, err)
		require.Equal(t, name, c.Name())
	}

	_, err := Lookup("gob")
	require.ErrorIs(t, err, domain.ErrUnknownCodec)
}

func TestDefault(t *testing.T) {
	require.Equal(t, NameStd, Default().Name())
}

func TestNames(t *testing.T) {
	require.Equal(t, []string{NameJSONIter, NameSonic, NameStd}, Names())
}

func TestCodec_DecodeSamples(t *testing.T) {
	wantMethods := []string{"initialize", "session/new", "session/update", "session/prompt"}

	for _, name := range Names() {
		c, err := Lookup(name)
		require.NoError(t, err)

		t.Run(name, func(t *testing.T) {
			for i, raw := range domain.Samples() {
				var v any
				require.NoError(t, c.Unmarshal(raw, &v))

				msg, ok := v.(map[string]any)
				require.True(t, ok, "sample %d should decode to an object", i)
				assert.Equal(t, "2.0", msg["jsonrpc"])
				assert.Equal(t, wantMethods[i], msg["method"])
			}
		})
	}
}

func TestCodec_Roundtrip(t *testing.T) {
	for _, name := range Names() {
		c, err := Lookup(name)
		require.NoError(t, err)

		t.Run(name, func(t *testing.T) {
			var req map[string]any
			require.NoError(t, c.Unmarshal([]byte(domain.SessionNewRequest), &req))

			encoded, err := c.Marshal(domain.NewResponse(req["id"], domain.SessionResult{SessionID: domain.BenchmarkSessionID}))
			require.NoError(t, err)

			var resp map[string]any
			require.NoError(t, c.Unmarshal(encoded, &resp))
			assert.Equal(t, "2.0", resp["jsonrpc"])
			assert.EqualValues(t, 1, resp["id"])

			result, ok := resp["result"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, domain.BenchmarkSessionID, result["sessionId"])
		})
	}
}

func TestCodec_TokenUpdate(t *testing.T) {
	for _, name := range Names() {
		c, err := Lookup(name)
		require.NoError(t, err)

		t.Run(name, func(t *testing.T) {
			encoded, err := c.Marshal(domain.TokenUpdate(3))
			require.NoError(t, err)

			var msg struct {
				Params domain.SessionUpdateParams `json:"params"`
			}
			require.NoError(t, c.Unmarshal(encoded, &msg))
			assert.Equal(t, domain.SampleSessionID, msg.Params.SessionID)
			assert.Equal(t, "word word word ", msg.Params.Update.Content.Text)
		})
	}
}

func TestCodec_MalformedInput(t *testing.T) {
	for _, name := range Names() {
		c, err := Lookup(name)
		require.NoError(t, err)

		t.Run(name, func(t *testing.T) {
			var v any
			assert.Error(t, c.Unmarshal([]byte(`{"jsonrpc":`), &v))
		})
	}
}
