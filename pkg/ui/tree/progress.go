package tree

import (
	"io"

	"github.com/pterm/pterm"
)

// Progress reports how many files have been generated
type Progress interface {
	Start(total int, title string)
	Increment()
	Stop()
}

// Bar is a pterm progress bar
type Bar struct {
	Writer io.Writer
	bar    *pterm.ProgressbarPrinter
}

// Start shows the bar. A failing terminal leaves the bar disabled.
func (p *Bar) Start(total int, title string) {
	if total <= 0 {
		return
	}
	printer := pterm.DefaultProgressbar.WithTotal(total).WithTitle(title).WithRemoveWhenDone(true)
	if p.Writer != nil {
		printer = printer.WithWriter(p.Writer)
	}
	bar, err := printer.Start()
	if err != nil {
		return
	}
	p.bar = bar
}

// Increment advances the bar by one
func (p *Bar) Increment() {
	if p.bar != nil {
		p.bar.Increment()
	}
}

// Stop removes the bar
func (p *Bar) Stop() {
	if p.bar != nil {
		_, _ = p.bar.Stop()
		p.bar = nil
	}
}

// Silent discards progress, for the minimal UI and tests
type Silent struct{}

func (Silent) Start(int, string) {}
func (Silent) Increment()        {}
func (Silent) Stop()             {}
