// Package rf implements the RV32I register file: 32 general-purpose
// registers plus a per-register validity bit. The pipeline's decode stage
// detects RAW hazards from the execute/memory rd masks and does not read or
// clear this bit; it is set at reset validation and by every Write.
package rf

import (
	"fmt"
	"strings"

	"github.com/gkorepanov/riscv-in-nutshell/pkg/common"
)

// NumRegisters is the number of general-purpose registers, x0..x31.
const NumRegisters = 32

// entry is one register slot: its value and whether it is safe to read.
type entry struct {
	value common.Word
	valid bool
}

// RF is the register file. x0 is hard-wired to zero and never marked
// invalid: a read of x0 always returns 0 regardless of stored value, and
// writes to x0 are silently dropped.
type RF struct {
	regs [NumRegisters]entry
}

// New returns a zeroed register file with every register (besides x0,
// always valid) marked invalid: real GPRs hold no meaningful value until
// something writes them. The caller is expected to validate the loader's
// entry-point registers (ra, s0..s3, sp) right after construction.
func New() *RF {
	return &RF{}
}

// Read returns the current value of register r. x0 always reads as zero.
func (rf *RF) Read(r uint32) common.Word {
	if r == Zero {
		return 0
	}
	return rf.regs[r].value
}

// IsValid reports whether register r currently holds a committed value:
// it has been validated or written and not invalidated since. x0 is always
// valid.
func (rf *RF) IsValid(r uint32) bool {
	if r == Zero {
		return true
	}
	return rf.regs[r].valid
}

// Validate marks register r as holding a committed value.
func (rf *RF) Validate(r uint32) {
	if r == Zero {
		return
	}
	rf.regs[r].valid = true
}

// Invalidate marks register r as not-yet-committed until the next Write or
// Validate. The pipeline does not call it; in-flight destinations are
// tracked by the decode stage's rd masks instead.
func (rf *RF) Invalidate(r uint32) {
	if r == Zero {
		return
	}
	rf.regs[r].valid = false
}

// Write commits value to register r and marks it valid. x0 silently
// discards the write.
func (rf *RF) Write(r uint32, value common.Word) {
	if r == Zero {
		return
	}
	rf.regs[r].value = value
	rf.regs[r].valid = true
}

// SetStackPointer writes and validates the stack pointer register. Called
// once at construction with the value the loader reports.
func (rf *RF) SetStackPointer(v common.Word) {
	rf.Write(SP, v)
}

// Dump renders the current register contents for trace output.
func (rf *RF) Dump() string {
	var b strings.Builder
	b.WriteString("RF: ")
	for i := 0; i < NumRegisters; i++ {
		fmt.Fprintf(&b, "%s=%#x ", Name(uint32(i)), rf.regs[i].value)
	}
	return b.String()
}
