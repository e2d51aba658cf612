package inst

import "fmt"

// Executor implements one mnemonic's semantics against an already-decoded
// Instruction. It may set NewPC (jumps/branches), RDV (ARITHM/JUMP), or
// MemoryAddr (LOAD*/STORE), and nothing else.
type Executor func(i *Instruction)

// isaEntry is one row of the ISA table: a declaration-ordered
// (match, mask, format, memory size, type, executor) tuple.
type isaEntry struct {
	name    string
	match   uint32
	mask    uint32
	format  Format
	memSize int
	typ     Type
	exec    Executor
}

func (e isaEntry) matches(raw uint32) bool {
	return raw&e.mask == e.match
}

// Opcodes shared by every mask below (bits[6:0]).
const (
	opcodeLUI    = 0b0110111
	opcodeAUIPC  = 0b0010111
	opcodeJAL    = 0b1101111
	opcodeJALR   = 0b1100111
	opcodeBranch = 0b1100011
	opcodeLoad   = 0b0000011
	opcodeStore  = 0b0100011
	opcodeImm    = 0b0010011
	opcodeReg    = 0b0110011
)

func matchOpcode(opcode uint32) (match, mask uint32) {
	return opcode, 0x7f
}

func matchOpcodeFunct3(opcode, funct3 uint32) (match, mask uint32) {
	return opcode | funct3<<12, 0x707f
}

func matchOpcodeFunct3Funct7(opcode, funct3, funct7 uint32) (match, mask uint32) {
	return opcode | funct3<<12 | funct7<<25, 0xfe00707f
}

// isaTable is the declaration-ordered ISA table. Declaration order is fixed
// so more-specific entries (with a funct7 component) precede the more
// general ones they would otherwise also match. In this table no two
// entries' masks actually overlap (shift/reg ops always carry funct7), but
// the order is kept stable regardless.
var isaTable = buildISATable()

func buildISATable() []isaEntry {
	var table []isaEntry
	add := func(name string, m, k uint32, format Format, memSize int, typ Type, exec Executor) {
		table = append(table, isaEntry{name: name, match: m, mask: k, format: format, memSize: memSize, typ: typ, exec: exec})
	}

	m, k := matchOpcode(opcodeLUI)
	add("lui", m, k, FormatU, 0, TypeArithm, execLUI)

	m, k = matchOpcode(opcodeAUIPC)
	add("auipc", m, k, FormatU, 0, TypeArithm, execAUIPC)

	m, k = matchOpcode(opcodeJAL)
	add("jal", m, k, FormatJ, 0, TypeJump, execJAL)

	m, k = matchOpcodeFunct3(opcodeJALR, 0b000)
	add("jalr", m, k, FormatI, 0, TypeJump, execJALR)

	branch := func(name string, f3 uint32, exec Executor) {
		m, k := matchOpcodeFunct3(opcodeBranch, f3)
		add(name, m, k, FormatB, 0, TypeBranch, exec)
	}
	branch("beq", 0b000, execBEQ)
	branch("bne", 0b001, execBNE)
	branch("blt", 0b100, execBLT)
	branch("bge", 0b101, execBGE)
	branch("bltu", 0b110, execBLTU)
	branch("bgeu", 0b111, execBGEU)

	load := func(name string, f3 uint32, size int, typ Type, exec Executor) {
		m, k := matchOpcodeFunct3(opcodeLoad, f3)
		add(name, m, k, FormatI, size, typ, exec)
	}
	load("lb", 0b000, 1, TypeLoad, execLB)
	load("lh", 0b001, 2, TypeLoad, execLH)
	load("lw", 0b010, 4, TypeLoad, execLW)
	load("lbu", 0b100, 1, TypeLoadU, execLBU)
	load("lhu", 0b101, 2, TypeLoadU, execLHU)
	load("lwu", 0b110, 4, TypeLoadU, execLWU)

	store := func(name string, f3 uint32, size int, exec Executor) {
		m, k := matchOpcodeFunct3(opcodeStore, f3)
		add(name, m, k, FormatS, size, TypeStore, exec)
	}
	store("sb", 0b000, 1, execStore)
	store("sh", 0b001, 2, execStore)
	store("sw", 0b010, 4, execStore)

	immArith := func(name string, f3 uint32, exec Executor) {
		m, k := matchOpcodeFunct3(opcodeImm, f3)
		add(name, m, k, FormatI, 0, TypeArithm, exec)
	}
	immArith("addi", 0b000, execADDI)
	immArith("slti", 0b010, execSLTI)
	immArith("sltiu", 0b011, execSLTIU)
	immArith("xori", 0b100, execXORI)
	immArith("ori", 0b110, execORI)
	immArith("andi", 0b111, execANDI)

	immShift := func(name string, f3, f7 uint32, exec Executor) {
		m, k := matchOpcodeFunct3Funct7(opcodeImm, f3, f7)
		add(name, m, k, FormatI, 0, TypeArithm, exec)
	}
	immShift("slli", 0b001, 0b0000000, execSLLI)
	immShift("srai", 0b101, 0b0100000, execSRAI)
	immShift("srli", 0b101, 0b0000000, execSRLI)

	reg := func(name string, f3, f7 uint32, exec Executor) {
		m, k := matchOpcodeFunct3Funct7(opcodeReg, f3, f7)
		add(name, m, k, FormatR, 0, TypeArithm, exec)
	}
	reg("add", 0b000, 0b0000000, execADD)
	reg("sub", 0b000, 0b0100000, execSUB)
	reg("sll", 0b001, 0b0000000, execSLL)
	reg("slt", 0b010, 0b0000000, execSLT)
	reg("sltu", 0b011, 0b0000000, execSLTU)
	reg("xor", 0b100, 0b0000000, execXOR)
	reg("or", 0b110, 0b0000000, execOR)
	reg("and", 0b111, 0b0000000, execAND)
	reg("sra", 0b101, 0b0100000, execSRA)
	reg("srl", 0b101, 0b0000000, execSRL)

	return table
}

// findEntry scans the ISA table in declaration order and returns the first
// matching entry. No match is a fatal decode error.
func findEntry(raw uint32) (isaEntry, error) {
	for _, e := range isaTable {
		if e.matches(raw) {
			return e, nil
		}
	}
	return isaEntry{}, fmt.Errorf("%w: raw=%#08x", ErrDecodeFailure, raw)
}
