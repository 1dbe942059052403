package systems

import (
	"testing"

	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/utils"
)

func TestPointerSystem(t *testing.T) {
	tests := []struct {
		name       string
		input      utils.InputState
		wantX      float64
		wantY      float64
		wantActive bool
	}{
		{"中心", utils.InputState{X: 400, Y: 300, HasPointer: true}, 0, 0, true},
		{"左上角", utils.InputState{X: 0, Y: 0, HasPointer: true}, -1, 1, true},
		{"右下角", utils.InputState{X: 800, Y: 600, HasPointer: true}, 1, -1, true},
		{"超出窗口截断", utils.InputState{X: 1600, Y: -300, HasPointer: true}, 1, 1, true},
		{"无指针", utils.InputState{X: 200, Y: 100, HasPointer: false}, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			input := tt.input
			ps := NewPointerSystem(em, &input, 800, 600)
			ps.Update(1.0 / 60)

			ptr := CurrentPointer(em)
			if ptr.X != tt.wantX || ptr.Y != tt.wantY || ptr.Active != tt.wantActive {
				t.Errorf("pointer = %+v, want (%v, %v, %v)", ptr, tt.wantX, tt.wantY, tt.wantActive)
			}
		})
	}
}

// TestPointerSystemSingleton 多次更新只创建一个指针实体
func TestPointerSystemSingleton(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPointerSystem(em, &utils.InputState{}, 800, 600)
	for i := 0; i < 5; i++ {
		ps.Update(1.0 / 60)
	}
	if em.Count() != 1 {
		t.Errorf("entity count = %d, want 1", em.Count())
	}

	// 场景清空后重新创建
	em.Clear()
	ps.Update(1.0 / 60)
	if em.Count() != 1 {
		t.Errorf("entity count after clear = %d, want 1", em.Count())
	}
}

func TestCurrentPointerEmpty(t *testing.T) {
	if ptr := CurrentPointer(ecs.NewEntityManager()); ptr.Active || ptr.X != 0 || ptr.Y != 0 {
		t.Errorf("empty pointer = %+v", ptr)
	}
}
