package game

import (
	"testing"

	"github.com/decker502/spacegame/pkg/entities"
)

func TestNewGameStateStartsOnIntro(t *testing.T) {
	gs, _ := newTestState(t)

	if gs.Page != PageIntro {
		t.Errorf("Page = %v, want Intro", gs.Page)
	}
	if gs.Player != nil {
		t.Error("Player should be nil on Intro")
	}
	if len(gs.Obstacles()) != 0 || len(gs.Projectiles()) != 0 {
		t.Error("entity store should be empty")
	}
}

func TestEnterPlayingResetsRound(t *testing.T) {
	gs, _ := newTestState(t)
	gs.SetPage(PagePlaying)
	first := gs.Player
	first.Score = 500

	// 上一局留下的障碍物、子弹和星星
	if _, err := entities.NewObstacle(gs.Entities, 100, 100, 10, 10, 1); err != nil {
		t.Fatal(err)
	}
	if !first.Fire() {
		t.Fatal("Fire() should succeed on a fresh player")
	}
	if _, err := entities.NewStar(gs.Entities, 5, 5, 0.5, 2); err != nil {
		t.Fatal(err)
	}

	gs.SetPage(PageGameOver)
	if gs.Player != first {
		t.Error("GameOver should keep the player")
	}
	gs.SetPage(PageIntro)
	if gs.Player != nil {
		t.Error("Intro should drop the player")
	}
	gs.SetPage(PagePlaying)

	if gs.Player == nil || gs.Player == first {
		t.Fatal("entering Playing should create a new player")
	}
	if gs.Player.Lives != 3 || gs.Player.Score != 0 || !gs.Player.CanFire {
		t.Errorf("new player = %+v", *gs.Player)
	}
	if gs.Player.X != 10 || gs.Player.Y != 240 {
		t.Errorf("spawn = (%v, %v), want (10, 240)", gs.Player.X, gs.Player.Y)
	}
	if n := len(gs.Obstacles()); n != 0 {
		t.Errorf("obstacles = %d, want 0", n)
	}
	if n := len(gs.Projectiles()); n != 0 {
		t.Errorf("projectiles = %d, want 0", n)
	}
	if n := len(gs.Stars()); n != 1 {
		t.Errorf("stars = %d, want 1 (stars survive page changes)", n)
	}
}

func TestSetSamePageIsNoop(t *testing.T) {
	gs, _ := newTestState(t)
	gs.SetPage(PagePlaying)
	player := gs.Player
	player.Score = 300

	gs.SetPage(PagePlaying)

	if gs.Player != player || gs.Player.Score != 300 {
		t.Error("re-entering the current page must not reset the player")
	}
}

func TestObstaclesExcludeMarked(t *testing.T) {
	gs, _ := newTestState(t)
	a, _ := entities.NewObstacle(gs.Entities, 1, 1, 10, 10, 1)
	b, _ := entities.NewObstacle(gs.Entities, 2, 2, 10, 10, 1)

	gs.Entities.DestroyEntity(a)

	got := gs.Obstacles()
	if len(got) != 1 || got[0] != b {
		t.Errorf("Obstacles() = %v, want [%d]", got, b)
	}
}

func TestHUDValues(t *testing.T) {
	gs, _ := newTestState(t)

	if score, lives := gs.HUDValues(); score != 0 || lives != 3 {
		t.Errorf("HUDValues() on Intro = (%d, %d), want (0, 3)", score, lives)
	}

	gs.SetPage(PagePlaying)
	gs.Player.AddScore(200)
	gs.Player.Damage()

	if score, lives := gs.HUDValues(); score != 200 || lives != 2 {
		t.Errorf("HUDValues() = (%d, %d), want (200, 2)", score, lives)
	}
}

func TestPageString(t *testing.T) {
	tests := map[Page]string{
		PageIntro:    "Intro",
		PageHelp:     "Help",
		PagePlaying:  "Playing",
		PageGameOver: "GameOver",
		Page(42):     "Unknown",
	}
	for page, want := range tests {
		if got := page.String(); got != want {
			t.Errorf("Page(%d).String() = %q, want %q", int(page), got, want)
		}
	}
}
