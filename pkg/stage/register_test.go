package stage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gkorepanov/riscv-in-nutshell/pkg/stage"
)

func TestWriteIsInvisibleUntilClock(t *testing.T) {
	var r stage.Register[int]
	r.Write(5)
	require.Zero(t, r.Read(), "staged value must not be visible before Clock()")
	r.Clock()
	require.Equal(t, 5, r.Read())
}

func TestClockClearsStagedSlot(t *testing.T) {
	var r stage.Register[int]
	r.Write(5)
	r.Clock()
	r.Clock() // no intervening Write: latched value must revert to zero
	require.Zero(t, r.Read())
}

func TestStallSkipsClock(t *testing.T) {
	var r stage.Register[int]
	r.Write(1)
	r.Clock()
	require.Equal(t, 1, r.Read())

	r.Write(2)
	// Simulate a stall: the pipeline simply never calls Clock() this cycle.
	require.Equal(t, 1, r.Read(), "Read() must be stable across a stalled cycle")
}

func TestPointerPayloadBubbleIsNil(t *testing.T) {
	var r stage.Register[*int]
	require.Nil(t, r.Read())
	v := 7
	r.Write(&v)
	r.Clock()
	require.Equal(t, &v, r.Read())
	r.Clock()
	require.Nil(t, r.Read(), "clocking with no staged write latches a bubble")
}
