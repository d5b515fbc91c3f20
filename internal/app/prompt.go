package app

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Prompt captures one line of input on the message line. It owns the input
// until Enter confirms a non-empty answer or a cancel key dismisses it, then
// restores the previous mode.
func (s *Session) Prompt(label string) (string, error) {
	return s.PromptWith(label, "")
}

// PromptWith is Prompt with the input pre-filled.
func (s *Session) PromptWith(label, initial string) (string, error) {
	var answer string
	s.prompt.input = []rune(initial)
	err := s.runPrompt(label, func(ev *tcell.EventKey) (bool, error) {
		switch ev.Key() {
		case tcell.KeyEnter:
			if len(s.prompt.input) == 0 {
				return false, nil
			}
			answer = string(s.prompt.input)
			return true, nil
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if n := len(s.prompt.input); n > 0 {
				s.prompt.input = s.prompt.input[:n-1]
			}
		case tcell.KeyRune:
			if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
				s.prompt.input = append(s.prompt.input, ev.Rune())
			}
		}
		return false, nil
	})
	return answer, err
}

// Ask shows label and waits for one of the runes in choices, matched without
// regard to case. The lower-case choice is returned.
func (s *Session) Ask(label, choices string) (rune, error) {
	var answer rune
	err := s.runPrompt(label, func(ev *tcell.EventKey) (bool, error) {
		if ev.Key() != tcell.KeyRune {
			return false, nil
		}
		r := unicode.ToLower(ev.Rune())
		if strings.ContainsRune(choices, r) {
			answer = r
			return true, nil
		}
		return false, nil
	})
	return answer, err
}

// runPrompt alternates between painting the prompt and feeding one key to
// onKey until onKey reports done or a cancel key arrives.
func (s *Session) runPrompt(label string, onKey func(*tcell.EventKey) (bool, error)) error {
	prev := s.mode
	s.setMode(ModePrompt)
	s.prompt.label = label
	defer func() {
		s.prompt = promptState{}
		s.setMode(prev)
	}()
	for {
		s.render()
		switch ev := s.nextEvent().(type) {
		case nil:
			return ErrCancelled
		case *tcell.EventResize:
			s.Resize(ev.Size())
		case *tcell.EventKey:
			if isCancelKey(ev) {
				return ErrCancelled
			}
			done, err := onKey(ev)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

// PromptText returns the label and input of the active prompt.
func (s *Session) PromptText() (label, input string, ok bool) {
	if s.mode != ModePrompt {
		return "", "", false
	}
	return s.prompt.label, string(s.prompt.input), true
}

func isCancelKey(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEsc || ev.Key() == tcell.KeyCtrlC
}

func (s *Session) nextEvent() tcell.Event {
	if s.Events != nil {
		return s.Events.PollEvent()
	}
	if s.Screen != nil {
		return s.Screen.PollEvent()
	}
	return nil
}

// render updates the session and paints it when a screen is attached.
func (s *Session) render() {
	s.Update()
	if s.Screen != nil {
		s.draw(s.Screen)
	}
}
