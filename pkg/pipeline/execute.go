package pipeline

// executeStage implements EX: invoke the decoded instruction's executor
// and forward it to MEM, tracking the execute-stage rd mask the decode
// stage's hazard check reads.
func (p *PerfSim) executeStage() error {
	data := p.de.Read()

	p.wires.ExecuteStageRDMask = 0

	if p.wires.EMStall && data != nil {
		p.wires.DEStall = true
	}

	if p.wires.MemoryToAllFlush {
		p.em.Write(nil)
		p.traceLine("EXECUTE", "FLUSH")
		return nil
	}

	if data == nil {
		p.em.Write(nil)
		p.traceLine("EXECUTE", "BUBBLE")
		return nil
	}

	data.Execute()
	p.wires.ExecuteStageRDMask = uint32(1) << data.RD
	p.em.Write(data)
	p.traceLine("EXECUTE", data.Disassemble())
	return nil
}
