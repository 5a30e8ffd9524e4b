package window

import (
	"errors"

	"github.com/df07/go-progressive-raycaster/pkg/core"
	"github.com/df07/go-progressive-raycaster/viewer/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyCommands maps keys to session commands
var keyCommands = []struct {
	key ebiten.Key
	cmd session.Command
}{
	{ebiten.KeyO, session.ToggleProjection},
	{ebiten.KeyC, session.Clear},
	{ebiten.KeyS, session.Save},
	{ebiten.KeyEscape, session.Quit},
}

// Run opens a window that traces one frame per tick and shows the running average.
// It blocks until the window closes or Escape is pressed.
func Run(s *session.Session, scale int, logger core.Logger) error {
	g := &viewerGame{session: s, logger: logger}
	ebiten.SetWindowTitle(s.Title())
	ebiten.SetWindowSize(s.Width()*scale, s.Height()*scale)
	ebiten.SetTPS(60)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type viewerGame struct {
	session *session.Session
	logger  core.Logger
	frame   *ebiten.Image
}

func (g *viewerGame) Update() error {
	for _, kc := range keyCommands {
		if !inpututil.IsKeyJustPressed(kc.key) {
			continue
		}
		err := g.session.Apply(kc.cmd)
		switch {
		case errors.Is(err, session.ErrQuit):
			return ebiten.Termination
		case err != nil:
			// A failed save leaves the render running
			g.logger.Printf("Error: %s failed: %v\n", kc.cmd, err)
		}
		if kc.cmd == session.ToggleProjection {
			ebiten.SetWindowTitle(g.session.Title())
		}
	}

	g.session.Step()
	return nil
}

func (g *viewerGame) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.frame = ebiten.NewImage(g.session.Width(), g.session.Height())
	}

	g.frame.WritePixels(g.session.Snapshot().Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *viewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.session.Width(), g.session.Height()
}
