package rf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gkorepanov/riscv-in-nutshell/pkg/inst"
	"github.com/gkorepanov/riscv-in-nutshell/pkg/rf"
)

func TestReadSourcesAndWriteback(t *testing.T) {
	r := rf.New()
	r.Write(1, 5)
	r.Write(2, 7)

	// add x3, x1, x2 -- just to get an instruction object whose RS1/RS2/RD
	// are under our control for the round trip.
	i, err := inst.New(rawADD(3, 1, 2), 0)
	require.NoError(t, err)

	r.ReadSources(i)
	require.EqualValues(t, 5, i.RS1V)
	require.EqualValues(t, 7, i.RS2V)

	i.Execute()
	require.EqualValues(t, 12, i.RDV)

	r.Writeback(i)
	require.EqualValues(t, 12, r.Read(3))
	require.True(t, r.IsValid(3))
}

func TestWritebackSkipsRegisterlessInstructions(t *testing.T) {
	r := rf.New()
	i, err := inst.New(rawBEQ(1, 2, 0), 0)
	require.NoError(t, err)
	i.RDV = 0xffffffff // must never be committed: branches have no dest
	r.Writeback(i)
	require.Zero(t, r.Read(0))
}

// rawADD encodes `add rd, rs1, rs2`.
func rawADD(rd, rs1, rs2 uint32) uint32 {
	return (0b0000000 << 25) | (rs2 << 20) | (rs1 << 15) | (0b000 << 12) | (rd << 7) | 0b0110011
}

// rawBEQ encodes `beq rs1, rs2, 0`.
func rawBEQ(rs1, rs2 uint32, imm uint32) uint32 {
	return (rs2 << 20) | (rs1 << 15) | (0b000 << 12) | 0b1100011
}
