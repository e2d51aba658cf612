package pipeline

// decodeStage implements ID: hazard detection against whatever is
// currently in EX/MEM, then either a stall or a register read.
func (p *PerfSim) decodeStage() error {
	data := p.fd.Read()

	if p.wires.DEStall && data != nil {
		p.wires.FDStall = true
	}

	if p.wires.MemoryToAllFlush {
		p.de.Write(nil)
		p.traceLine("DECODE", "FLUSH")
		return nil
	}

	if data == nil {
		p.de.Write(nil)
		p.traceLine("DECODE", "BUBBLE")
		return nil
	}

	decodeMask := (uint32(1) << data.RS1) | (uint32(1) << data.RS2)
	hazards := (decodeMask & p.wires.ExecuteStageRDMask) | (decodeMask & p.wires.MemoryStageRDMask)

	// The >>1 discards bit 0 so that x0, which every instruction with an
	// implicit zero source "reads", never causes a false hazard.
	if (hazards >> 1) != 0 {
		p.wires.FDStall = true
		p.de.Write(nil)
		p.traceLine("DECODE", "stall: RAW hazard")
		return nil
	}

	p.rf.ReadSources(data)
	p.de.Write(data)
	p.traceLine("DECODE", data.Disassemble())
	return nil
}
