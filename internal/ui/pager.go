package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
	"golang.org/x/text/message"

	"maidadmin/internal/domain"
)

var errNoProgram = errors.New("program not set")

// PagerOps shows long content in the ov pager
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program whose terminal the pager borrows
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// Show runs ov on content until the user quits it
func (p *PagerOps) Show(content string) error {
	if p.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// recordDetails renders every field of a record, one per line
func recordDetails(p *message.Printer, resource domain.Resource, rec domain.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n\n", p.Sprintf("tab."+string(resource)), domain.Label(rec))

	fields := rec.Fields()
	labels := make([]string, len(fields))
	width := 0
	for i, f := range fields {
		labels[i] = fieldLabel(p, f.Name)
		if n := len([]rune(labels[i])); n > width {
			width = n
		}
	}
	for i, f := range fields {
		value := f.Value
		if f.Name == "blocked" {
			value = p.Sprintf("chip.active")
			if f.Value == "true" {
				value = p.Sprintf("chip.blocked")
			}
		}
		fmt.Fprintf(&b, "%-*s  %s\n", width, labels[i], value)
	}
	return b.String()
}

func fieldLabel(p *message.Printer, name string) string {
	if name == "blocked" {
		return p.Sprintf("col.status")
	}
	return p.Sprintf("col." + name)
}
