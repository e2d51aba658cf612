package inst_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gkorepanov/riscv-in-nutshell/pkg/inst"
)

func TestImmediateRoundTrip(t *testing.T) {
	// addi x5, x1, -4: I-format immediate must sign-extend.
	raw := (uint32(0xffc) << 20) | (1 << 15) | (0b000 << 12) | (5 << 7) | 0b0010011
	d := inst.NewDecoder(raw, inst.FormatI)
	require.EqualValues(t, int32(-4), int32(d.Immediate()))
	require.EqualValues(t, 1, d.RS1())
	require.EqualValues(t, 5, d.RD())
}

func TestUFormatImmediateIsUpperBits(t *testing.T) {
	// lui x1, 0x12345
	raw := (uint32(0x12345) << 12) | (1 << 7) | 0b0110111
	d := inst.NewDecoder(raw, inst.FormatU)
	require.EqualValues(t, 0x12345000, d.Immediate())
	require.Zero(t, d.RS1())
	require.Zero(t, d.RS2())
}

func TestSFormatHasNoDestination(t *testing.T) {
	// sw x2, 0(x1)
	raw := (0 << 25) | (2 << 20) | (1 << 15) | (0b010 << 12) | (0 << 7) | 0b0100011
	d := inst.NewDecoder(raw, inst.FormatS)
	require.Zero(t, d.RD())
	require.EqualValues(t, 1, d.RS1())
	require.EqualValues(t, 2, d.RS2())
}
