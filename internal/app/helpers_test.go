package app

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"example.com/neodymium/pkg/config"
	"example.com/neodymium/pkg/fileio"
	"github.com/gdamore/tcell/v2"
)

// script replays a fixed list of events and then reports exhaustion.
type script struct {
	events []tcell.Event
	// onPoll, when set, runs before each event is handed out.
	onPoll func()
}

func (s *script) PollEvent() tcell.Event {
	if s.onPoll != nil {
		s.onPoll()
	}
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func (s *script) push(evs ...tcell.Event) { s.events = append(s.events, evs...) }

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func ctrl(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModCtrl) }

func alt(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModAlt) }

func typed(s string) []tcell.Event {
	var evs []tcell.Event
	for _, r := range s {
		evs = append(evs, tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
	return evs
}

// answer types s and confirms it with Enter.
func answer(s string) []tcell.Event {
	return append(typed(s), key(tcell.KeyEnter))
}

// memStore is an in-memory file store. Paths listed in failWrites fail that
// many times before succeeding.
type memStore struct {
	files      map[string]string
	failWrites map[string]int
	writes     int
}

func newMemStore() *memStore {
	return &memStore{files: map[string]string{}, failWrites: map[string]int{}}
}

func (m *memStore) ReadLines(path string) ([]string, error) {
	content, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	return fileio.ReadLines(strings.NewReader(content))
}

func (m *memStore) WriteFile(path string, data []byte) error {
	m.writes++
	if n := m.failWrites[path]; n > 0 {
		m.failWrites[path] = n - 1
		return errors.New("disk full")
	}
	m.files[path] = string(data)
	return nil
}

func newTestSession(t *testing.T, store *memStore, paths ...string) (*Session, *script) {
	t.Helper()
	src := &script{}
	s := New(Options{Config: config.Default(), Theme: config.DefaultTheme(), Files: store, Version: "test"}, paths...)
	s.Events = src
	s.Resize(80, 24)
	s.Update()
	return s, src
}
