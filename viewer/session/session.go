// Package session holds the interactive state of a viewer: a ray caster that
// accumulates one frame per tick and the commands a user can issue against it.
package session

import (
	"errors"
	"image"

	"github.com/df07/go-progressive-raycaster/pkg/core"
	"github.com/df07/go-progressive-raycaster/pkg/renderer"
)

// ErrQuit is returned by Apply when the user asked to leave
var ErrQuit = errors.New("quit requested")

// Command is a user action
type Command int

const (
	ToggleProjection Command = iota
	Clear
	Save
	Quit
)

func (c Command) String() string {
	switch c {
	case ToggleProjection:
		return "toggle-projection"
	case Clear:
		return "clear"
	case Save:
		return "save"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Session drives a ray caster for an interactive window
type Session struct {
	rc       *renderer.RayCaster
	savePath string
	logger   core.Logger
}

// New creates a session that saves snapshots to savePath
func New(rc *renderer.RayCaster, savePath string, logger core.Logger) *Session {
	return &Session{rc: rc, savePath: savePath, logger: logger}
}

// Width returns the image width in pixels
func (s *Session) Width() int { return s.rc.Width() }

// Height returns the image height in pixels
func (s *Session) Height() int { return s.rc.Height() }

// Step traces one more frame into the accumulation
func (s *Session) Step() renderer.RenderStats {
	return s.rc.Trace()
}

// Snapshot returns the current accumulated image
func (s *Session) Snapshot() *image.RGBA {
	return s.rc.Snapshot()
}

// Title describes the current state for a window title bar
func (s *Session) Title() string {
	return "Progressive Raycaster (" + s.rc.Projection().String() + ")"
}

// Apply executes a command. Quit returns ErrQuit; a failed save is returned
// so the caller can decide whether to keep running.
func (s *Session) Apply(cmd Command) error {
	switch cmd {
	case ToggleProjection:
		s.rc.ToggleProjection()
		s.logger.Printf("Projection: %s\n", s.rc.Projection())
	case Clear:
		s.rc.Clear()
		s.logger.Printf("Accumulation cleared at frame %d\n", s.rc.FrameCount())
	case Save:
		if err := renderer.SavePNG(s.savePath, s.rc.Snapshot()); err != nil {
			return err
		}
		s.logger.Printf("Saved %s\n", s.savePath)
	case Quit:
		return ErrQuit
	}
	return nil
}
