package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testRotationComponent struct {
	X, Y float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
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

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testRotationComponent{X: 0.1, Y: -0.2})

	rot, ok := GetComponent[*testRotationComponent](em, id)
	if !ok {
		t.Fatal("generic GetComponent should find the rotation component")
	}
	if rot.X != 0.1 || rot.Y != -0.2 {
		t.Errorf("rotation = (%v, %v), want (0.1, -0.2)", rot.X, rot.Y)
	}

	if _, ok := GetComponent[*testPositionComponent](em, id); ok {
		t.Error("position component was never added")
	}
	if !HasComponent[*testRotationComponent](em, id) {
		t.Error("HasComponent should report the rotation component")
	}
}

func TestComponentOnMissingEntity(t *testing.T) {
	em := NewEntityManager()

	// 对不存在的实体添加组件不应 panic，也不应创建实体
	em.AddComponent(42, &testPositionComponent{})
	if em.Exists(42) {
		t.Error("AddComponent must not create entities")
	}
	if _, ok := GetComponent[*testPositionComponent](em, 42); ok {
		t.Error("missing entity should have no components")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestClear(t *testing.T) {
	em := NewEntityManager()
	em.CreateEntity()
	em.CreateEntity()

	em.Clear()
	if em.Count() != 0 {
		t.Errorf("Count after Clear = %d, want 0", em.Count())
	}

	// ID 不复用
	if id := em.CreateEntity(); id != 3 {
		t.Errorf("next ID after Clear = %d, want 3", id)
	}
}

func TestGetEntitiesWithSorted(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 20)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{})
		if i%2 == 0 {
			em.AddComponent(id, &testRotationComponent{})
			ids = append(ids, id)
		}
	}

	got := GetEntitiesWith2[*testPositionComponent, *testRotationComponent](em)
	if len(got) != len(ids) {
		t.Fatalf("got %d entities, want %d", len(got), len(ids))
	}
	for i := range got {
		if got[i] != ids[i] {
			t.Errorf("entity[%d] = %d, want %d (results must be in creation order)", i, got[i], ids[i])
		}
	}

	if n := len(GetEntitiesWith1[*testPositionComponent](em)); n != 20 {
		t.Errorf("GetEntitiesWith1 returned %d entities, want 20", n)
	}
}

func TestGenericAddRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 1, Y: 2})
	if !HasComponent[*testPositionComponent](em, id) {
		t.Fatal("AddComponent should attach the component")
	}

	RemoveComponent[*testPositionComponent](em, id)
	if HasComponent[*testPositionComponent](em, id) {
		t.Error("RemoveComponent should detach the component")
	}
	if len(GetEntitiesWith1[*testPositionComponent](em)) != 0 {
		t.Error("query should be empty after removal")
	}
}
