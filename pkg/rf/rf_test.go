package rf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gkorepanov/riscv-in-nutshell/pkg/rf"
)

func TestX0Immutable(t *testing.T) {
	r := rf.New()
	r.Write(rf.Zero, 0xdeadbeef)
	require.Zero(t, r.Read(rf.Zero))
	require.True(t, r.IsValid(rf.Zero))
	r.Invalidate(rf.Zero)
	require.True(t, r.IsValid(rf.Zero), "x0 must stay valid regardless of invalidate")
}

func TestResetValidityDefaultsFalse(t *testing.T) {
	r := rf.New()
	require.False(t, r.IsValid(5), "an un-validated GPR must read invalid at reset")
}

func TestWriteValidatesAndReadsBack(t *testing.T) {
	r := rf.New()
	r.Invalidate(3)
	require.False(t, r.IsValid(3))
	r.Write(3, 123)
	require.True(t, r.IsValid(3))
	require.EqualValues(t, 123, r.Read(3))
}

func TestSetStackPointer(t *testing.T) {
	r := rf.New()
	r.SetStackPointer(0x1000)
	require.EqualValues(t, 0x1000, r.Read(rf.SP))
	require.True(t, r.IsValid(rf.SP))
}

func TestNameAliases(t *testing.T) {
	require.Equal(t, "ra", rf.Name(1))
	require.Equal(t, "sp", rf.Name(2))
	require.Equal(t, "a0", rf.Name(10))
	require.Equal(t, "a5", rf.Name(15))
}
