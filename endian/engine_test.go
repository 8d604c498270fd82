package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWireIsBigEndian(t *testing.T) {
	engine := Wire()

	require.Equal(t, binary.BigEndian, engine)
	require.Equal(t, []byte{0x00, 0x00, 0x13, 0x4a}, engine.AppendUint32(nil, 4938))
	require.Equal(t, []byte{0x00, 0x05}, engine.AppendUint16(nil, 5))
	require.Equal(t, uint32(0xffffff00), engine.Uint32([]byte{0xff, 0xff, 0xff, 0x00}))
	require.Equal(t, uint16(0x0102), engine.Uint16([]byte{0x01, 0x02}))
}
