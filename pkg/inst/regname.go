package inst

// abiNames are the RISC-V ABI register aliases, used only to format
// disassembly. Kept local to this package so disassembly never depends on
// the register file.
var abiNames = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

func regName(r uint32) string {
	if r < uint32(len(abiNames)) {
		return abiNames[r]
	}
	return "x?"
}
