package rf

import "github.com/gkorepanov/riscv-in-nutshell/pkg/inst"

// ReadSources sets instr's RS1V/RS2V from the file. Decode has already
// ensured both sources are valid via the hazard mask check before calling
// this.
func (rf *RF) ReadSources(instr *inst.Instruction) {
	instr.RS1V = rf.Read(instr.RS1)
	instr.RS2V = rf.Read(instr.RS2)
}

// Writeback commits instr's RDV to its destination register and marks it
// valid, if the instruction actually has a destination.
func (rf *RF) Writeback(instr *inst.Instruction) {
	if instr.HasDest() {
		rf.Write(instr.RD, instr.RDV)
	}
}
