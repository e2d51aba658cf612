package inst

import (
	"errors"
	"fmt"
)

// ErrDecodeFailure is returned when raw bits match no ISA table entry.
var ErrDecodeFailure = errors.New("inst: no ISA entry matches raw instruction")

// Instruction is the unit that flows through the pipeline: decoded fields,
// the architectural PC, the computed next PC, per-operand values, executor
// dispatch, and memory-access metadata.
type Instruction struct {
	PC    uint32 // fetched-from address
	NewPC uint32 // defaults to PC+4; executors may overwrite

	Name   string
	Format Format
	Type   Type

	RS1, RS2, RD          uint32 // register numbers
	RS1V, RS2V, RDV       uint32 // operand values
	ImmV                  uint32 // sign-extended immediate

	MemoryAddr uint32 // rs1_v + imm_v, computed by execute() for LOAD*/STORE
	MemorySize int    // 1, 2, or 4; 0 for non-memory instructions

	Complete bool // set by execute()

	exec Executor
}

// New decodes a 32-bit instruction word fetched from address pc, scanning
// the ISA table in declaration order for the first matching entry. A raw
// word matching no entry is a fatal decode error.
func New(raw uint32, pc uint32) (*Instruction, error) {
	entry, err := findEntry(raw)
	if err != nil {
		return nil, err
	}
	d := NewDecoder(raw, entry.format)
	return &Instruction{
		PC:         pc,
		NewPC:      pc + 4,
		Name:       entry.name,
		Format:     entry.format,
		Type:       entry.typ,
		RS1:        d.RS1(),
		RS2:        d.RS2(),
		RD:         d.RD(),
		ImmV:       d.Immediate(),
		MemorySize: entry.memSize,
		exec:       entry.exec,
	}, nil
}

// Clone performs a field-wise copy of the instruction. It does not re-run
// decode.
func (i *Instruction) Clone() *Instruction {
	clone := *i
	return &clone
}

// IsLoad reports whether this instruction is a sign- or zero-extending load.
func (i *Instruction) IsLoad() bool {
	return i.Type == TypeLoad || i.Type == TypeLoadU
}

// IsStore reports whether this instruction is a store.
func (i *Instruction) IsStore() bool {
	return i.Type == TypeStore
}

// IsJump reports whether this instruction is jal/jalr.
func (i *Instruction) IsJump() bool {
	return i.Type == TypeJump
}

// IsBranch reports whether this instruction is a conditional branch.
func (i *Instruction) IsBranch() bool {
	return i.Type == TypeBranch
}

// HasDest reports whether this instruction commits a value to RD at
// writeback: rd != 0 and the instruction is not a pure branch or store.
func (i *Instruction) HasDest() bool {
	if i.RD == 0 {
		return false
	}
	return !i.IsBranch() && !i.IsStore()
}

// Execute invokes the executor bound at decode time. For ARITHM/JUMP it
// produces RDV and possibly NewPC; for LOAD/STORE it produces MemoryAddr;
// for BRANCH it produces NewPC. The result is observable to the memory
// stage, which retires loads by writing RDV itself.
func (i *Instruction) Execute() {
	i.exec(i)
	i.Complete = true
}

// ExtendLoad applies this load's sign/zero extension to a raw value
// assembled from MemorySize bytes off memory: lb/lh sign-extend, lbu/lhu/
// lwu zero-extend, lw is full width. Only meaningful when IsLoad() is true.
func (i *Instruction) ExtendLoad(raw uint32) uint32 {
	switch i.Name {
	case "lb":
		return uint32(int32(int8(raw)))
	case "lh":
		return uint32(int32(int16(raw)))
	default: // lw, lbu, lhu, lwu: already the correct width or unsigned
		return raw
	}
}

// Disassemble renders the instruction using its format's operand template.
func (i *Instruction) Disassemble() string {
	switch i.Format {
	case FormatR:
		return fmt.Sprintf("%s %s, %s, %s", i.Name, regName(i.RS1), regName(i.RS2), regName(i.RD))
	case FormatI:
		return fmt.Sprintf("%s %s, %s, %#x", i.Name, regName(i.RS1), regName(i.RD), i.ImmV)
	case FormatS, FormatB:
		return fmt.Sprintf("%s %s, %s, %#x", i.Name, regName(i.RS1), regName(i.RS2), i.ImmV)
	case FormatU, FormatJ:
		return fmt.Sprintf("%s %s, %#x", i.Name, regName(i.RD), i.ImmV)
	default:
		return fmt.Sprintf("<bad format %v>", i.Format)
	}
}
