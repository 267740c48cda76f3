package systems

import (
	"testing"
)

func TestObstaclesMoveLeft(t *testing.T) {
	gs := newPlayingState(t)
	id := addObstacle(t, gs, 640, 100)

	ms := NewMovementSystem(gs)
	for i := 0; i < 3; i++ {
		ms.Update(0)
	}

	if pos := positionOf(t, gs, id); pos.X != 637 || pos.Y != 100 {
		t.Errorf("obstacle at (%v, %v), want (637, 100)", pos.X, pos.Y)
	}
}

func TestObstacleCulledPastLeftEdge(t *testing.T) {
	gs := newPlayingState(t)
	visible := addObstacle(t, gs, -9, 100) // 移动后 x=-10，右边缘刚好在 0
	gone := addObstacle(t, gs, -10, 200)

	NewMovementSystem(gs).Update(0)

	if gs.Entities.IsMarkedForDestroy(visible) {
		t.Error("obstacle touching the edge should be kept")
	}
	if !gs.Entities.IsMarkedForDestroy(gone) {
		t.Error("obstacle past the left edge should be culled")
	}
}

func TestProjectilesMoveRightAndDrop(t *testing.T) {
	gs := newPlayingState(t)
	moving := addProjectile(t, gs, 100, 50)
	crossing := addProjectile(t, gs, 637, 50)
	outside := addProjectile(t, gs, 640, 50)

	NewProjectileSystem(gs).Update(0)

	if pos := positionOf(t, gs, moving); pos.X != 104 {
		t.Errorf("projectile x = %v, want 104", pos.X)
	}
	if gs.Entities.IsMarkedForDestroy(moving) {
		t.Error("projectile inside the canvas should be kept")
	}

	// 移动前还在画布内的子弹保留一帧
	if pos := positionOf(t, gs, crossing); pos.X != 641 {
		t.Errorf("crossing projectile x = %v, want 641", pos.X)
	}
	if gs.Entities.IsMarkedForDestroy(crossing) {
		t.Error("projectile that just crossed the right edge should survive this tick")
	}

	if !gs.Entities.IsMarkedForDestroy(outside) {
		t.Error("projectile already at x >= width should be dropped")
	}
	if pos := positionOf(t, gs, outside); pos.X != 640 {
		t.Errorf("dropped projectile should not move, x = %v", pos.X)
	}
}

func TestSpawnSystem(t *testing.T) {
	gs := newPlayingState(t)
	ss := NewSpawnSystem(gs)

	const ticks = 3000
	for i := 0; i < ticks; i++ {
		ss.Update(0)
	}

	obstacles := gs.Obstacles()
	// 期望 100 个，标准差约 10
	if n := len(obstacles); n < 50 || n > 150 {
		t.Errorf("spawned %d obstacles in %d ticks, want about %d", n, ticks, ticks/30)
	}
	for _, id := range obstacles {
		pos := positionOf(t, gs, id)
		if pos.X != gs.CanvasWidth {
			t.Fatalf("obstacle spawned at x=%v, want %v", pos.X, gs.CanvasWidth)
		}
		if pos.Y < 0 || pos.Y >= gs.CanvasHeight {
			t.Fatalf("obstacle spawned at y=%v, outside [0, %v)", pos.Y, gs.CanvasHeight)
		}
	}
}

func TestSpawnAlwaysWhenOneInOne(t *testing.T) {
	gs := newPlayingState(t)
	gs.Config.Spawn.ObstacleOneIn = 1

	ss := NewSpawnSystem(gs)
	ss.Update(0)
	ss.Update(0)

	if n := len(gs.Obstacles()); n != 2 {
		t.Errorf("obstacles = %d, want 2", n)
	}
}
