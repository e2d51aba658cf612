package pipeline

import (
	"fmt"

	"github.com/gkorepanov/riscv-in-nutshell/pkg/inst"
)

// fetchStage implements IF. Instruction words are assembled over two
// cycles, a 2-byte half each, modeling a narrow memory port shared with
// MEM; IF never reads memory in a cycle MEM is using the port.
func (p *PerfSim) fetchStage() error {
	data := p.pc.Read()

	if p.wires.FDStall && p.fd.Read() != nil {
		p.wires.PCStall = true
	}

	if p.wires.MemoryToAllFlush {
		p.fetchBytes = 0
		p.fetchIteration = 0
		target := p.wires.MemoryToFetchTarget
		p.pc.Write(&target)
		p.fd.Write(nil)
		p.traceLine("FETCH", "FLUSH")
		return nil
	}

	if data == nil {
		p.fd.Write(nil)
		p.traceLine("FETCH", "BUBBLE")
		return nil
	}
	pc := *data

	if p.wires.MemoryPortBusy {
		p.wires.PCStall = true
		p.fd.Write(nil)
		p.traceLine("FETCH", "stall: memory port busy")
		return nil
	}

	if p.fetchIteration == 0 {
		lo, err := p.mem.Read(pc, 2)
		if err != nil {
			return err
		}
		p.fetchBytes = lo
		p.fetchIteration = 1
		p.wires.PCStall = true
		p.fd.Write(nil)
		p.traceLine("FETCH", "fetching low half-word")
		return nil
	}

	if p.wires.PCStall {
		// FD_stall forced PC_stall this cycle (see above); preserve PC
		// and the in-progress fetch for next cycle.
		p.fd.Write(nil)
		p.traceLine("FETCH", "stall: FD occupied")
		return nil
	}

	hi, err := p.mem.Read(pc+2, 2)
	if err != nil {
		return err
	}
	p.fetchBytes = (p.fetchBytes & 0xffff) | (hi << 16)
	instr, err := inst.New(p.fetchBytes, pc)
	if err != nil {
		return err
	}
	p.fd.Write(instr)
	p.fetchIteration = 0
	next := pc + 4
	p.pc.Write(&next)
	p.traceLine("FETCH", fmt.Sprintf("0x%x: %s", pc, instr.Disassemble()))
	return nil
}
