package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
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

	pos := &testPositionComponent{X: 100, Y: 200}
	em.AddComponent(id, pos)

	retrieved, found := GetComponent[*testPositionComponent](em, id)
	if !found {
		t.Fatal("Component should be found")
	}
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}

	if _, found := GetComponent[*testVelocityComponent](em, id); found {
		t.Error("Velocity component should not be found")
	}
	if _, found := GetComponent[*testPositionComponent](em, 999); found {
		t.Error("Unknown entity should not have components")
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	posType := reflect.TypeOf(&testPositionComponent{})
	if !em.HasComponent(id, posType) {
		t.Fatal("HasComponent should report the position component")
	}

	em.RemoveComponent(id, posType)
	if em.HasComponent(id, posType) {
		t.Error("Component should be removed")
	}
}

func TestDestroyEntityDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.DestroyEntity(id)
	if em.EntityCount() != 1 {
		t.Fatal("DestroyEntity should only mark the entity")
	}

	em.RemoveMarkedEntities()
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount = %d after RemoveMarkedEntities, want 0", em.EntityCount())
	}
}

func TestDestroyAll(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 5; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{})
	}
	em.DestroyEntity(1)

	em.DestroyAll()
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount = %d, want 0", em.EntityCount())
	}
	if got := GetEntitiesWith1[*testPositionComponent](em); len(got) != 0 {
		t.Errorf("query after DestroyAll returned %v", got)
	}
}

func TestGetEntitiesWith2Sorted(t *testing.T) {
	em := NewEntityManager()
	var both []EntityID
	for i := 0; i < 10; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{})
		if i%2 == 0 {
			em.AddComponent(id, &testVelocityComponent{})
			both = append(both, id)
		}
	}

	got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(got) != len(both) {
		t.Fatalf("got %d entities, want %d", len(got), len(both))
	}
	for i := range got {
		if got[i] != both[i] {
			t.Errorf("got[%d] = %d, want %d (results must be in creation order)", i, got[i], both[i])
		}
	}
}
