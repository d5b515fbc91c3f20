package app

import (
	"fmt"
	"strconv"
	"strings"

	"example.com/neodymium/pkg/config"
)

// runGotoPrompt prompts for a 1-based line number and moves the cursor to
// the start of that line. Numbers past the end go to the last line.
func (s *Session) runGotoPrompt() {
	in, err := s.Prompt("Go to line: ")
	if err != nil {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(in))
	if err != nil || n < 1 {
		s.SetStatus("Invalid line number: " + in)
		return
	}
	p := s.Current()
	p.SetCursorRow(n - 1)
	p.SetCursorCol(0)
}

// runTabStopPrompt asks for a new tab stop and applies it to every page.
func (s *Session) runTabStopPrompt() {
	in, err := s.PromptWith("Tab stop: ", strconv.Itoa(s.tabStop))
	if err != nil {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(in))
	if err != nil || n < 1 || n > config.MaxTabStop {
		s.SetStatus(fmt.Sprintf("Tab stop must be between 1 and %d", config.MaxTabStop))
		return
	}
	s.SetTabStop(n)
	s.SetStatus(fmt.Sprintf("Tab stop set to %d", n))
}
