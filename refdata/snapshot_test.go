package refdata_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/estkit"
	"github.com/katalvlaran/estkit/ampacity"
	"github.com/katalvlaran/estkit/refdata"
	"github.com/katalvlaran/estkit/wiregauge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

// TestBuild gathers every table.
func TestBuild(t *testing.T) {
	s := refdata.Build()
	assert.Equal(t, refdata.SchemaVersion, s.Version)
	assert.Len(t, s.WireSizes, len(wiregauge.StandardSizes()))
	assert.Len(t, s.Ampacities, len(ampacity.Entries()))
	assert.Len(t, s.Conduits, 68)
	assert.Len(t, s.Rebar, 14)
	assert.Len(t, s.Starters, 11)
	assert.Len(t, s.Threads, 10)
	assert.Equal(t, "copper", s.Ampacities[0].Material)
}

// TestEncodeDecode round-trips a snapshot through both encodings.
func TestEncodeDecode(t *testing.T) {
	want := refdata.Build()
	for _, f := range []refdata.Format{refdata.JSON, refdata.MsgPack} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, refdata.Encode(&buf, f, want))
			got, err := refdata.Decode(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

// TestMsgPack_Smaller checks the binary form is more compact than JSON.
func TestMsgPack_Smaller(t *testing.T) {
	s := refdata.Build()
	var j, m bytes.Buffer
	require.NoError(t, refdata.Encode(&j, refdata.JSON, s))
	require.NoError(t, refdata.Encode(&m, refdata.MsgPack, s))
	assert.Less(t, m.Len(), j.Len())
}

// TestDecode_Version rejects a snapshot from another schema.
func TestDecode_Version(t *testing.T) {
	b, err := msgpack.Marshal(&refdata.Snapshot{Version: 99})
	require.NoError(t, err)
	_, err = refdata.Decode(bytes.NewReader(b), refdata.MsgPack)
	assert.ErrorIs(t, err, refdata.ErrVersion)
	assert.ErrorIs(t, err, estkit.ErrFormat)
}

// TestParseFormat accepts aliases and rejects unknown names.
func TestParseFormat(t *testing.T) {
	f, err := refdata.ParseFormat("MP")
	require.NoError(t, err)
	assert.Equal(t, refdata.MsgPack, f)

	_, err = refdata.ParseFormat("yaml")
	assert.ErrorIs(t, err, refdata.ErrUnknownFormat)

	assert.ErrorIs(t, refdata.Encode(&bytes.Buffer{}, "xml", refdata.Snapshot{}), refdata.ErrUnknownFormat)
}
