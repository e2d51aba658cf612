package inst

// The executors below implement RV32I semantics. Each reads only
// RS1V/RS2V/ImmV/PC, values already latched by the time EX runs, and writes
// RDV, NewPC, or MemoryAddr. Loads do not produce RDV here: the memory
// stage supplies it after the access completes.

func shamt(v uint32) uint32 { return v & 0x1f }

func execLUI(i *Instruction)   { i.RDV = i.ImmV }
func execAUIPC(i *Instruction) { i.RDV = i.PC + i.ImmV }

func execJAL(i *Instruction) {
	i.RDV = i.PC + 4
	i.NewPC = i.PC + i.ImmV
}

func execJALR(i *Instruction) {
	i.RDV = i.PC + 4
	i.NewPC = (i.RS1V + i.ImmV) &^ 1
}

func branchTaken(i *Instruction, taken bool) {
	if taken {
		i.NewPC = i.PC + i.ImmV
	} else {
		i.NewPC = i.PC + 4
	}
}

func execBEQ(i *Instruction)  { branchTaken(i, i.RS1V == i.RS2V) }
func execBNE(i *Instruction)  { branchTaken(i, i.RS1V != i.RS2V) }
func execBLT(i *Instruction)  { branchTaken(i, int32(i.RS1V) < int32(i.RS2V)) }
func execBGE(i *Instruction)  { branchTaken(i, int32(i.RS1V) >= int32(i.RS2V)) }
func execBLTU(i *Instruction) { branchTaken(i, i.RS1V < i.RS2V) }
func execBGEU(i *Instruction) { branchTaken(i, i.RS1V >= i.RS2V) }

func execLB(i *Instruction)  { i.MemoryAddr = i.RS1V + i.ImmV }
func execLH(i *Instruction)  { i.MemoryAddr = i.RS1V + i.ImmV }
func execLW(i *Instruction)  { i.MemoryAddr = i.RS1V + i.ImmV }
func execLBU(i *Instruction) { i.MemoryAddr = i.RS1V + i.ImmV }
func execLHU(i *Instruction) { i.MemoryAddr = i.RS1V + i.ImmV }
func execLWU(i *Instruction) { i.MemoryAddr = i.RS1V + i.ImmV }

func execStore(i *Instruction) { i.MemoryAddr = i.RS1V + i.ImmV }

func execADDI(i *Instruction)  { i.RDV = i.RS1V + i.ImmV }
func execSLTI(i *Instruction)  { i.RDV = boolToWord(int32(i.RS1V) < int32(i.ImmV)) }
func execSLTIU(i *Instruction) { i.RDV = boolToWord(i.RS1V < i.ImmV) }
func execXORI(i *Instruction)  { i.RDV = i.RS1V ^ i.ImmV }
func execORI(i *Instruction)   { i.RDV = i.RS1V | i.ImmV }
func execANDI(i *Instruction)  { i.RDV = i.RS1V & i.ImmV }
func execSLLI(i *Instruction)  { i.RDV = i.RS1V << shamt(i.ImmV) }
func execSRLI(i *Instruction)  { i.RDV = i.RS1V >> shamt(i.ImmV) }
func execSRAI(i *Instruction)  { i.RDV = uint32(int32(i.RS1V) >> shamt(i.ImmV)) }

func execADD(i *Instruction)  { i.RDV = i.RS1V + i.RS2V }
func execSUB(i *Instruction)  { i.RDV = i.RS1V - i.RS2V }
func execSLL(i *Instruction)  { i.RDV = i.RS1V << shamt(i.RS2V) }
func execSLT(i *Instruction)  { i.RDV = boolToWord(int32(i.RS1V) < int32(i.RS2V)) }
func execSLTU(i *Instruction) { i.RDV = boolToWord(i.RS1V < i.RS2V) }
func execXOR(i *Instruction)  { i.RDV = i.RS1V ^ i.RS2V }
func execOR(i *Instruction)   { i.RDV = i.RS1V | i.RS2V }
func execAND(i *Instruction)  { i.RDV = i.RS1V & i.RS2V }
func execSRA(i *Instruction)  { i.RDV = uint32(int32(i.RS1V) >> shamt(i.RS2V)) }
func execSRL(i *Instruction)  { i.RDV = i.RS1V >> shamt(i.RS2V) }

func boolToWord(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
