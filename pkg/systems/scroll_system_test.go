package systems

import (
	"math"
	"testing"

	"github.com/decker502/folio/pkg/components"
	"github.com/decker502/folio/pkg/config"
	"github.com/decker502/folio/pkg/ecs"
	"github.com/decker502/folio/pkg/utils"
)

func newScrollFixture(max float64) (*utils.InputState, *ScrollSystem, *components.ScrollComponent) {
	em := ecs.NewEntityManager()
	sc := &components.ScrollComponent{Max: max, Smoothing: config.ScrollSmoothing}
	em.AddComponent(em.CreateEntity(), sc)
	input := &utils.InputState{}
	return input, NewScrollSystem(em, input, 500), sc
}

func TestScrollSystemInput(t *testing.T) {
	tests := []struct {
		name       string
		start      float64
		input      utils.InputState
		wantTarget float64
	}{
		{"滚轮向下", 100, utils.InputState{WheelY: -1}, 100 + config.ScrollWheelStep},
		{"滚轮向上", 100, utils.InputState{WheelY: 1}, 100 - config.ScrollWheelStep},
		{"方向键下", 100, utils.InputState{ScrollDown: true}, 100 + config.ScrollKeyStep},
		{"方向键上", 100, utils.InputState{ScrollUp: true}, 100 - config.ScrollKeyStep},
		{"下一页", 100, utils.InputState{PageDown: true}, 600},
		{"上一页截断到0", 100, utils.InputState{PageUp: true}, 0},
		{"Home", 700, utils.InputState{Home: true}, 0},
		{"End", 0, utils.InputState{End: true}, 2000},
		{"超出下界截断", 1990, utils.InputState{WheelY: -3}, 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, sys, sc := newScrollFixture(2000)
			sc.Target, sc.Offset = tt.start, tt.start
			*input = tt.input
			sys.Update(1.0 / 60)

			if sc.Target != tt.wantTarget {
				t.Errorf("target = %v, want %v", sc.Target, tt.wantTarget)
			}
		})
	}
}

// TestScrollSystemSmoothing 偏移单调靠近目标，不越界
func TestScrollSystemSmoothing(t *testing.T) {
	input, sys, sc := newScrollFixture(1000)
	ScrollTo(sc, 800)

	prev := sc.Offset
	for i := 0; i < 200; i++ {
		sys.Update(1.0 / 60)
		if sc.Offset < prev || sc.Offset > 800 {
			t.Fatalf("frame %d: offset %v (prev %v)", i, sc.Offset, prev)
		}
		prev = sc.Offset
		*input = utils.InputState{}
	}
	if math.Abs(sc.Offset-800) > 1e-6 {
		t.Errorf("offset = %v, want 800", sc.Offset)
	}
}

func TestScrollToClamps(t *testing.T) {
	_, _, sc := newScrollFixture(300)
	ScrollTo(sc, 1000)
	if sc.Target != 300 {
		t.Errorf("target = %v, want 300", sc.Target)
	}
	ScrollTo(sc, -50)
	if sc.Target != 0 {
		t.Errorf("target = %v, want 0", sc.Target)
	}
}

// TestScrollSystemTouchDrag 触摸拖拽跟手，松开后停止
func TestScrollSystemTouchDrag(t *testing.T) {
	input, sys, sc := newScrollFixture(1000)
	sc.Offset, sc.Target = 200, 200

	*input = utils.InputState{X: 100, Y: 400, HasPointer: true, IsTouch: true, Pressed: true, JustPressed: true}
	sys.Update(1.0 / 60)
	*input = utils.InputState{X: 100, Y: 250, HasPointer: true, IsTouch: true, Pressed: true}
	sys.Update(1.0 / 60)

	if sc.Offset != 350 {
		t.Errorf("offset while dragging = %v, want 350", sc.Offset)
	}

	*input = utils.InputState{X: 100, Y: 250, HasPointer: true, IsTouch: true, JustReleased: true}
	sys.Update(1.0 / 60)
	if sc.Dragging {
		t.Error("drag should end on release")
	}
}
