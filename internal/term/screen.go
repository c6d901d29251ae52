// Package term provides the terminal display surface and keyboard pump backed
// by tcell.
package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"aqualife/internal/core"
)

// Style is black ink on cyan paper.
var Style = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal)

// Screen adapts a tcell.Screen to render.Surface.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style
}

// Open creates and initializes the terminal screen.
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return Wrap(s)
}

// Wrap initializes s and adapts it. Tests pass a tcell simulation screen.
func Wrap(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	s.SetStyle(Style)
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s, style: Style}, nil
}

// Close restores the terminal.
func (s *Screen) Close() { s.screen.Fini() }

// Clear paints every cell with blank paper.
func (s *Screen) Clear() { s.screen.Fill(' ', s.style) }

// SetCell writes a single glyph.
func (s *Screen) SetCell(col, row int, glyph rune) {
	s.screen.SetContent(col, row, glyph, nil, s.style)
}

// Print writes text starting at (col, row).
func (s *Screen) Print(col, row int, text string) {
	for i, r := range []rune(text) {
		s.screen.SetContent(col+i, row, r, nil, s.style)
	}
}

// Show flushes pending writes to the terminal.
func (s *Screen) Show() { s.screen.Show() }

// PumpKeys forwards key events to keys until ctx is done. Escape, Ctrl-C and
// 'q' call quit instead of being queued; resizes force a full repaint.
func (s *Screen) PumpKeys(ctx context.Context, keys *core.KeyQueue, quit func()) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	go func() {
		<-ctx.Done()
		close(done)
	}()
	go s.screen.ChannelEvents(events, done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return ctx.Err()
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					quit()
					continue
				}
				keys.Push()
			case *tcell.EventResize:
				s.screen.Sync()
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
