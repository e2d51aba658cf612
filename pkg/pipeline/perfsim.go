// Package pipeline implements the five-stage in-order pipeline engine
// (PerfSim) that composes the stage registers, wires, register file, and
// memory, and drives one simulated cycle per Step() call.
package pipeline

import (
	"fmt"
	"io"

	"github.com/gkorepanov/riscv-in-nutshell/pkg/common"
	"github.com/gkorepanov/riscv-in-nutshell/pkg/inst"
	"github.com/gkorepanov/riscv-in-nutshell/pkg/memory"
	"github.com/gkorepanov/riscv-in-nutshell/pkg/rf"
	"github.com/gkorepanov/riscv-in-nutshell/pkg/stage"
)

// MemoryPort is the surface the pipeline needs from its memory
// collaborator. Both memory.Memory and the optional pkg/cache.Cache
// satisfy it, so a cache can sit behind the pipeline without the pipeline
// changing; the default pipeline never constructs one on its own.
type MemoryPort interface {
	Read(addr uint32, n int) (uint32, error)
	Write(value uint32, addr uint32, n int) error
	GetStartPC() uint32
	GetStackPointer() uint32
}

var _ MemoryPort = (*memory.Memory)(nil)

// PerfSim is a pipeline engine instance. It is not goroutine-safe; the
// caller drives it one Step() at a time from a single goroutine.
type PerfSim struct {
	rf  *rf.RF
	mem MemoryPort

	wires Wires

	pc  stage.Register[*uint32]
	fd  stage.Register[*inst.Instruction]
	de  stage.Register[*inst.Instruction]
	em  stage.Register[*inst.Instruction]
	mwb stage.Register[*inst.Instruction]

	fetchIteration uint
	fetchBytes     common.Word

	memStageIteration uint

	trace      io.Writer
	colorTrace bool
}

// New constructs a PerfSim wired to mem. It validates the loader's
// entry-point registers, seeds the stack pointer, and clocks the pipeline
// registers once so every stage starts from a clean bubble state before
// the first Step().
func New(mem MemoryPort) *PerfSim {
	p := &PerfSim{
		rf:  rf.New(),
		mem: mem,
	}
	p.rf.SetStackPointer(mem.GetStackPointer())
	p.rf.Validate(rf.RA)
	p.rf.Validate(rf.S0)
	p.rf.Validate(rf.S1)
	p.rf.Validate(rf.S2)
	p.rf.Validate(rf.S3)

	startPC := mem.GetStartPC()
	p.pc.Write(&startPC)
	p.pc.Clock()
	p.fd.Clock()
	p.de.Clock()
	p.em.Clock()
	p.mwb.Clock()

	return p
}

// SetTrace directs per-cycle trace output to w. A nil writer (the
// default) disables tracing entirely.
func (p *PerfSim) SetTrace(w io.Writer) {
	p.trace = w
}

// RF exposes the register file for diagnostics.
func (p *PerfSim) RF() *rf.RF { return p.rf }

// Step runs exactly one simulated cycle: all five stage bodies in reverse
// pipeline order, then the clock-edge discipline.
func (p *PerfSim) Step() error {
	if err := p.writebackStage(); err != nil {
		return err
	}
	if err := p.memoryStage(); err != nil {
		return err
	}
	if err := p.executeStage(); err != nil {
		return err
	}
	if err := p.decodeStage(); err != nil {
		return err
	}
	if err := p.fetchStage(); err != nil {
		return err
	}

	p.traceStallsAndRF()

	p.wires.MemoryPortBusy = false

	if p.wires.PCStall {
		p.wires.PCStall = false
	} else {
		p.pc.Clock()
	}
	if p.wires.FDStall {
		p.wires.FDStall = false
	} else {
		p.fd.Clock()
	}
	if p.wires.DEStall {
		p.wires.DEStall = false
	} else {
		p.de.Clock()
	}
	if p.wires.EMStall {
		p.wires.EMStall = false
	} else {
		p.em.Clock()
	}
	p.mwb.Clock()

	return nil
}

// Run executes n simulated cycles, stopping at the first fatal error.
func (p *PerfSim) Run(n uint32) error {
	for i := uint32(0); i < n; i++ {
		if err := p.Step(); err != nil {
			return fmt.Errorf("cycle %d: %w", i, err)
		}
	}
	return nil
}
