package app

import (
	"sync"

	"ble-trails.klederson.com/internal/strip"
	tea "github.com/charmbracelet/bubbletea"
)

// ProgramSink forwards frames from the render loop into the Bubble Tea
// event loop. It satisfies strip.Sink, so the simulator is a drop-in
// replacement for the network transports. Frames delivered before
// Attach are dropped.
type ProgramSink struct {
	mu      sync.Mutex
	program *tea.Program
}

// Attach binds the sink to a running program.
func (s *ProgramSink) Attach(p *tea.Program) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.program = p
}

// Update sends the frame as a FrameMsg.
func (s *ProgramSink) Update(frame strip.Frame) {
	s.mu.Lock()
	p := s.program
	s.mu.Unlock()

	if p != nil {
		p.Send(FrameMsg(frame))
	}
}
