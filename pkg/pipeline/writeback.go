package pipeline

// writebackStage implements WB: the only stage that writes the register
// file, and the last stage to touch a retiring instruction.
func (p *PerfSim) writebackStage() error {
	data := p.mwb.Read()
	if data == nil {
		p.traceLine("WRITEBACK", "BUBBLE")
		return nil
	}
	p.rf.Writeback(data)
	p.traceLine("WRITEBACK", data.Disassemble())
	return nil
}
