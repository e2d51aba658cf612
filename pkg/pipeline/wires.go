package pipeline

import "github.com/gkorepanov/riscv-in-nutshell/pkg/common"

// Wires is the per-cycle combinational snapshot stages communicate within
// a cycle: stalls, flush, branch target, hazard masks, memory-port busy.
// Every field is re-derived each cycle; nothing persists across cycles.
type Wires struct {
	PCStall bool
	FDStall bool
	DEStall bool
	EMStall bool

	MemoryPortBusy bool

	MemoryToAllFlush    bool
	MemoryToFetchTarget common.Word

	ExecuteStageRDMask uint32
	MemoryStageRDMask  uint32
}

// reset clears the fields MEM alone owns as outputs, at the start of its
// stage body.
func (w *Wires) reset() {
	w.MemoryToAllFlush = false
	w.MemoryToFetchTarget = common.NoVal32
	w.MemoryStageRDMask = 0
}
