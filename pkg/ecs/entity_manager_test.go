package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testTagComponent struct{}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID从1开始，0保留为无效ID
	if id1 != 1 || id2 != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", id1, id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在，但已被标记
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}
	if !em.IsMarkedForDestroy(id) {
		t.Error("Entity should be marked for destroy")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.IsMarkedForDestroy(id) {
		t.Error("Mark should be cleared after cleanup")
	}
}

// 未知或已清理的实体不会被标记
func TestDestroyUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.DestroyEntity(id)
	em.RemoveMarkedEntities()

	em.DestroyEntity(id)
	em.DestroyEntity(id + 100)
	if em.IsMarkedForDestroy(id) || em.IsMarkedForDestroy(id+100) {
		t.Error("missing entities should not be marked")
	}
	em.RemoveMarkedEntities()
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount = %d, want 0", em.EntityCount())
	}
}

func TestDestroyEntityTwiceRecordsOnce(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.DestroyEntity(id)
	em.DestroyEntity(id)
	em.DestroyEntity(EntityID(999)) // 不存在的实体

	if len(em.entitiesToDestroy) != 1 {
		t.Errorf("expected 1 pending destroy, got %d", len(em.entitiesToDestroy))
	}
}

func TestGetEntitiesWithReturnsCreationOrder(t *testing.T) {
	em := NewEntityManager()

	var want []EntityID
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
		if i%3 == 0 {
			em.AddComponent(id, &testTagComponent{})
			want = append(want, id)
		}
	}

	got := em.GetEntitiesWith(
		reflect.TypeOf(&testPositionComponent{}),
		reflect.TypeOf(&testTagComponent{}),
	)
	if len(got) != len(want) {
		t.Fatalf("expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected id %d, got %d", i, want[i], got[i])
		}
	}
}

func TestGetEntitiesWithEmptyStore(t *testing.T) {
	em := NewEntityManager()
	got := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", got)
	}
}

func TestGenericHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 3, Y: 4})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok || pos.X != 3 || pos.Y != 4 {
		t.Fatalf("GetComponent returned %+v, %v", pos, ok)
	}
	if _, ok := GetComponent[*testTagComponent](em, id); ok {
		t.Error("tag should not be present yet")
	}

	em.AddComponent(id, &testTagComponent{})
	if ids := GetEntitiesWith1[*testTagComponent](em); len(ids) != 1 || ids[0] != id {
		t.Errorf("GetEntitiesWith1 = %v, want [%d]", ids, id)
	}

	em.RemoveComponent(id, reflect.TypeOf(&testTagComponent{}))
	if em.HasComponent(id, reflect.TypeOf(&testTagComponent{})) {
		t.Error("tag should be removed")
	}
}

func TestDestroyAllWith(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 4; i++ {
		id := em.CreateEntity()
		if i%2 == 0 {
			em.AddComponent(id, &testTagComponent{})
		}
	}

	if n := DestroyAllWith[*testTagComponent](em); n != 2 {
		t.Errorf("expected 2 destroyed, got %d", n)
	}
	em.RemoveMarkedEntities()
	if em.EntityCount() != 2 {
		t.Errorf("expected 2 remaining entities, got %d", em.EntityCount())
	}
}
