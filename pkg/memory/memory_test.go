package memory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gkorepanov/riscv-in-nutshell/pkg/memory"
)

func TestReadWriteRoundTrip(t *testing.T) {
	m, err := memory.New(16, nil, 0, 0)
	require.NoError(t, err)

	require.NoError(t, m.Write(0xdeadbeef, 4, 4))
	v, err := m.Read(4, 4)
	require.NoError(t, err)
	require.EqualValues(t, 0xdeadbeef, v)
}

func TestReadWriteIsLittleEndian(t *testing.T) {
	m, err := memory.New(16, nil, 0, 0)
	require.NoError(t, err)

	require.NoError(t, m.Write(0x0201, 0, 2))
	b, err := m.Read(0, 1)
	require.NoError(t, err)
	require.EqualValues(t, 0x01, b)
}

func TestImageSeedsMemory(t *testing.T) {
	m, err := memory.New(4, []byte{1, 2, 3, 4}, 0, 0)
	require.NoError(t, err)
	v, err := m.Read(0, 4)
	require.NoError(t, err)
	require.EqualValues(t, 0x04030201, v)
}

func TestImageLargerThanCapacityFails(t *testing.T) {
	_, err := memory.New(2, []byte{1, 2, 3}, 0, 0)
	require.ErrorIs(t, err, memory.ErrOutOfRange)
}

func TestOutOfRangeAccessFails(t *testing.T) {
	m, err := memory.New(4, nil, 0, 0)
	require.NoError(t, err)

	_, err = m.Read(2, 4)
	require.ErrorIs(t, err, memory.ErrOutOfRange)

	err = m.Write(1, 4, 1)
	require.ErrorIs(t, err, memory.ErrOutOfRange)
}

func TestInvalidWidthFails(t *testing.T) {
	m, err := memory.New(4, nil, 0, 0)
	require.NoError(t, err)

	_, err = m.Read(0, 0)
	require.ErrorIs(t, err, memory.ErrOutOfRange)

	_, err = m.Read(0, 5)
	require.ErrorIs(t, err, memory.ErrOutOfRange)
}

func TestStartPCAndStackPointer(t *testing.T) {
	m, err := memory.New(16, nil, 0x1000, 0xf00)
	require.NoError(t, err)
	require.EqualValues(t, 0x1000, m.GetStartPC())
	require.EqualValues(t, 0xf00, m.GetStackPointer())
}
