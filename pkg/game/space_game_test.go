package game

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/decker502/spacegame/pkg/config"
	"github.com/decker502/spacegame/pkg/input"
	"github.com/decker502/spacegame/pkg/render"
	"github.com/decker502/spacegame/pkg/utils"
)

func newTestGame(t *testing.T, surface render.Surface) (*SpaceGame, *utils.MockClock) {
	t.Helper()
	clock := utils.NewMockClock(time.Unix(1000, 0))
	g, err := NewSpaceGame(Resources{
		Surface:  surface,
		Ship:     render.RectAsset{W: 32, H: 16},
		Obstacle: render.RectAsset{W: 24, H: 24},
	}, config.DefaultGameConfig(), WithClock(clock), WithRand(rand.New(rand.NewSource(7))))
	if err != nil {
		t.Fatalf("NewSpaceGame() error: %v", err)
	}
	return g, clock
}

func TestNewSpaceGameMissingResource(t *testing.T) {
	surface := render.NewRecorder(640, 480)
	ship := render.RectAsset{W: 32, H: 16}
	obstacle := render.RectAsset{W: 24, H: 24}

	tests := []struct {
		name    string
		res     Resources
		wantMsg string
	}{
		{name: "no surface", res: Resources{Ship: ship, Obstacle: obstacle}, wantMsg: "surface"},
		{name: "no ship", res: Resources{Surface: surface, Obstacle: obstacle}, wantMsg: "ship"},
		{name: "no obstacle", res: Resources{Surface: surface, Ship: ship}, wantMsg: "obstacle"},
		{name: "nothing", res: Resources{}, wantMsg: "surface"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewSpaceGame(tt.res, nil)
			if !errors.Is(err, ErrMissingResource) {
				t.Fatalf("error = %v, want ErrMissingResource", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q should name %q", err, tt.wantMsg)
			}
			if g != nil {
				t.Error("no game should be returned on configuration error")
			}
		})
	}
}

func TestUnsupportedSurfaceNeverRuns(t *testing.T) {
	surface := render.NewRecorder(640, 480)
	surface.Unsupported = true
	g, _ := newTestGame(t, surface)

	if g.Running() {
		t.Fatal("game should not run on an unsupported surface")
	}

	g.Frame()
	g.KeyDown(input.KeyReturn)

	if len(surface.Ops) != 0 {
		t.Errorf("nothing should be drawn, got %d ops", len(surface.Ops))
	}
	if g.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0", g.Frames())
	}
	if g.State().Page != PageIntro {
		t.Errorf("Page = %v, want Intro", g.State().Page)
	}
}

func TestSpaceGameUsesSurfaceSizeAndAssets(t *testing.T) {
	g, _ := newTestGame(t, render.NewRecorder(800, 600))
	gs := g.State()

	if gs.CanvasWidth != 800 || gs.CanvasHeight != 600 {
		t.Errorf("canvas = %vx%v, want 800x600", gs.CanvasWidth, gs.CanvasHeight)
	}
	if gs.ShipWidth != 32 || gs.ShipHeight != 16 || gs.ObstacleWidth != 24 || gs.ObstacleHeight != 24 {
		t.Errorf("sizes = ship %vx%v obstacle %vx%v", gs.ShipWidth, gs.ShipHeight, gs.ObstacleWidth, gs.ObstacleHeight)
	}
}

func TestEscapeIsGlobal(t *testing.T) {
	for _, page := range []Page{PageHelp, PagePlaying, PageGameOver} {
		t.Run(page.String(), func(t *testing.T) {
			g, _ := newTestGame(t, render.NewRecorder(640, 480))
			g.State().SetPage(page)

			g.KeyDown(input.KeyEscape)

			if g.State().Page != PageIntro {
				t.Errorf("Page = %v, want Intro", g.State().Page)
			}
			if g.State().Player != nil {
				t.Error("player should be dropped on Intro")
			}
		})
	}
}

func TestEscapeInIntroIsIdempotent(t *testing.T) {
	g, clock := newTestGame(t, render.NewRecorder(640, 480))

	g.KeyDown(input.KeyEscape)
	clock.Advance(200 * time.Millisecond) // 5 次按键重复
	g.Update()
	g.KeyUp(input.KeyEscape)
	g.HandleAction(input.ActionEscape)

	gs := g.State()
	if gs.Page != PageIntro || gs.Player != nil {
		t.Errorf("state changed: page=%v player=%v", gs.Page, gs.Player)
	}
}

func TestUpdateAdvancesTimers(t *testing.T) {
	g, clock := newTestGame(t, render.NewRecorder(640, 480))
	gs := g.State()
	gs.SetPage(PagePlaying)

	if !gs.Player.Fire() {
		t.Fatal("Fire() should succeed")
	}
	clock.Advance(500 * time.Millisecond)
	g.Update()

	if !gs.Player.CanFire {
		t.Error("cooldown should have elapsed during Update")
	}
	if g.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", g.Frames())
	}
}

func TestDrawClearsFirst(t *testing.T) {
	surface := render.NewRecorder(640, 480)
	g, _ := newTestGame(t, surface)

	g.Frame()

	if len(surface.Ops) == 0 || surface.Ops[0].Kind != render.OpClear {
		t.Errorf("first op should be Clear, got %v", surface.Ops)
	}
}
