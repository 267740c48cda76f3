package entities

import (
	"reflect"
	"testing"

	"github.com/decker502/spacegame/pkg/components"
	"github.com/decker502/spacegame/pkg/ecs"
)

// TestNewProjectile 测试子弹实体创建
func TestNewProjectile(t *testing.T) {
	em := ecs.NewEntityManager()
	spec := ProjectileSpec{Width: 3, Height: 2, Speed: 4}

	tests := []struct {
		name   string
		startX float64
		startY float64
	}{
		{name: "标准位置", startX: 43, startY: 248},
		{name: "画布左上角", startX: 0, startY: 0},
		{name: "画布右边缘", startX: 639, startY: 479},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewProjectile(em, spec, tt.startX, tt.startY)
			if err != nil {
				t.Fatalf("NewProjectile() error = %v", err)
			}
			if id == 0 {
				t.Fatal("Expected valid entity ID, got 0")
			}

			pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
			if !ok {
				t.Fatal("projectile should have PositionComponent")
			}
			if pos.X != tt.startX || pos.Y != tt.startY {
				t.Errorf("position = (%.1f, %.1f), want (%.1f, %.1f)", pos.X, pos.Y, tt.startX, tt.startY)
			}

			vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
			if !ok || vel.VX != 4 || vel.VY != 0 {
				t.Errorf("velocity = %+v, want VX=4", vel)
			}

			col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
			if !ok || col.Width != 3 || col.Height != 2 {
				t.Errorf("collision box = %+v, want 3x2", col)
			}

			if !em.HasComponent(id, reflect.TypeOf(&components.ProjectileComponent{})) {
				t.Error("projectile should carry ProjectileComponent tag")
			}
		})
	}
}

func TestNewProjectileNilManager(t *testing.T) {
	if _, err := NewProjectile(nil, ProjectileSpec{}, 0, 0); err == nil {
		t.Error("expected error for nil entity manager")
	}
}
