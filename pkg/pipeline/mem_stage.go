package pipeline

import "github.com/gkorepanov/riscv-in-nutshell/pkg/inst"

// memoryStage implements MEM: flush detection for mispredicted
// jumps/branches, and the two-cycle split access for 4-byte loads/stores.
// Flush signals are this stage's sole output and are cleared at entry.
func (p *PerfSim) memoryStage() error {
	data := p.em.Read()

	p.wires.reset()

	if data == nil {
		p.mwb.Write(nil)
		p.traceLine("MEMORY", "BUBBLE")
		return nil
	}

	p.wires.MemoryStageRDMask = uint32(1) << data.RD

	if data.IsJump() || data.IsBranch() {
		if data.NewPC != data.PC+4 {
			p.wires.MemoryToAllFlush = true
			p.wires.MemoryToFetchTarget = data.NewPC
		}
	}

	forward := true
	if data.IsLoad() || data.IsStore() {
		p.wires.MemoryPortBusy = true

		beatSize := 2
		if data.MemorySize == 1 {
			beatSize = 1
		}

		if p.memStageIteration == 0 {
			if err := p.memoryBeat(data, data.MemoryAddr, beatSize, false); err != nil {
				return err
			}
		} else {
			if err := p.memoryBeat(data, data.MemoryAddr+2, beatSize, true); err != nil {
				return err
			}
		}

		if data.MemorySize == 4 && p.memStageIteration == 0 {
			p.wires.EMStall = true
			p.memStageIteration = 1
			p.mwb.Write(nil)
			forward = false
		} else {
			p.memStageIteration = 0
		}
	}

	if forward {
		if data.IsLoad() {
			data.RDV = data.ExtendLoad(data.RDV)
		}
		p.mwb.Write(data)
	}

	if p.wires.MemoryToAllFlush {
		p.traceLine("MEMORY", "branch misprediction, flush")
	} else {
		p.traceLine("MEMORY", data.Disassemble())
	}
	return nil
}

// memoryBeat performs one half-word-or-narrower beat of a load/store at
// addr, merging into data.RDV's high half when highHalf is set.
func (p *PerfSim) memoryBeat(data *inst.Instruction, addr uint32, size int, highHalf bool) error {
	if data.IsLoad() {
		value, err := p.mem.Read(addr, size)
		if err != nil {
			return err
		}
		if highHalf {
			data.RDV |= value << 16
		} else {
			data.RDV = value
		}
		return nil
	}
	value := data.RS2V
	if highHalf {
		value >>= 16
	}
	return p.mem.Write(value, addr, size)
}
