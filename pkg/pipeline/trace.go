package pipeline

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	stageStyle  = lipgloss.NewStyle().Bold(true)
	bubbleStyle = lipgloss.NewStyle().Faint(true)
	flushStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// EnableColor turns on lipgloss styling of trace output (stage names
// bold, BUBBLE dim, FLUSH red). It never changes the text content itself;
// the trace is informational, not load-bearing.
func (p *PerfSim) EnableColor(enabled bool) {
	p.colorTrace = enabled
}

// traceLine emits one "STAGE: message" trace line.
func (p *PerfSim) traceLine(stageName, message string) {
	if p.trace == nil {
		return
	}
	label := stageName
	if p.colorTrace {
		label = stageStyle.Render(stageName)
		switch message {
		case "BUBBLE":
			message = bubbleStyle.Render(message)
		case "FLUSH":
			message = flushStyle.Render(message)
		}
	}
	fmt.Fprintf(p.trace, "%s:\t%s\n", label, message)
}

// traceStallsAndRF emits the fixed stall-bit line and the RF dump, printed
// once per cycle after all five stages run.
func (p *PerfSim) traceStallsAndRF() {
	if p.trace == nil {
		return
	}
	fmt.Fprintf(p.trace, "STALLS:  %s\n",
		bitsString(p.wires.PCStall, p.wires.FDStall, p.wires.DEStall, p.wires.EMStall))
	fmt.Fprintln(p.trace, p.rf.Dump())
	fmt.Fprintln(p.trace, "--------------------------------------------------------------------------------")
}

func bitsString(bits ...bool) string {
	out := make([]byte, len(bits))
	for i, b := range bits {
		if b {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}
