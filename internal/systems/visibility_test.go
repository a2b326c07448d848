package systems

import (
	"testing"

	"github.com/sir-pinecone/rusty-roguelike/internal/domain"
)

// fakeOracle отдает фиксированный круг видимости радиуса 1 вокруг origin
// и считает вызовы Compute.
type fakeOracle struct {
	width, height int
	originX       int
	originY       int
	computeCalls  int
	initCalls     int
}

func (f *fakeOracle) Init(width, height int, opaque []bool) {
	f.width = width
	f.height = height
	f.initCalls++
}

func (f *fakeOracle) Compute(originX, originY, radius int, lightWalls bool, algorithm string) {
	f.originX = originX
	f.originY = originY
	f.computeCalls++
}

func (f *fakeOracle) IsVisible(x, y int) bool {
	dx := x - f.originX
	dy := y - f.originY
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}

func TestVisibilityTracker_FirstTickAlwaysComputes(t *testing.T) {
	m := makeOpenMap(10, 10)
	oracle := &fakeOracle{}
	tracker := NewVisibilityTracker(oracle, m, 10, true, "SHADOWCAST")

	if oracle.initCalls != 1 {
		t.Fatalf("Init calls = %d, want exactly 1", oracle.initCalls)
	}

	// Сторожевое стартовое значение вне карты: позиция (0,0) - это движение
	if !tracker.Update(m, domain.Position{X: 0, Y: 0}) {
		t.Fatal("First Update must recompute even at the map origin")
	}
	if oracle.computeCalls != 1 {
		t.Errorf("Compute calls = %d, want 1", oracle.computeCalls)
	}
	if !m.At(0, 0).Visible {
		t.Error("Origin tile should be visible after the first update")
	}
}

func TestVisibilityTracker_SamePositionSkipsRecompute(t *testing.T) {
	m := makeOpenMap(10, 10)
	oracle := &fakeOracle{}
	tracker := NewVisibilityTracker(oracle, m, 10, true, "SHADOWCAST")

	pos := domain.Position{X: 5, Y: 5}
	tracker.Update(m, pos)

	// Руками портим флаг: без пересчета он обязан остаться как есть
	m.At(5, 5).Visible = false

	if tracker.Update(m, pos) {
		t.Fatal("Update without movement must be a no-op")
	}
	if oracle.computeCalls != 1 {
		t.Errorf("Compute calls = %d, want 1 (no recompute)", oracle.computeCalls)
	}
	if m.At(5, 5).Visible {
		t.Error("No-op update must not touch tile flags")
	}
}

func TestVisibilityTracker_ExploredIsMonotonic(t *testing.T) {
	m := makeOpenMap(10, 10)
	oracle := &fakeOracle{}
	tracker := NewVisibilityTracker(oracle, m, 10, true, "SHADOWCAST")

	tracker.Update(m, domain.Position{X: 2, Y: 2})
	if !m.At(2, 2).Explored || !m.At(3, 3).Explored {
		t.Fatal("Tiles around the first origin should be explored")
	}

	// Уходим далеко: старые клетки гаснут из Visible, но остаются Explored
	tracker.Update(m, domain.Position{X: 8, Y: 8})

	if m.At(2, 2).Visible {
		t.Error("Old origin must drop out of the visible set")
	}
	if !m.At(2, 2).Explored {
		t.Error("Explored never reverts")
	}
	if !m.At(8, 8).Visible || !m.At(8, 8).Explored {
		t.Error("New origin should be both visible and explored")
	}
}

func TestVisibilityTracker_VisibleSetReplacedWholesale(t *testing.T) {
	m := makeOpenMap(10, 10)
	oracle := &fakeOracle{}
	tracker := NewVisibilityTracker(oracle, m, 10, true, "SHADOWCAST")

	tracker.Update(m, domain.Position{X: 2, Y: 2})
	tracker.Update(m, domain.Position{X: 3, Y: 2})

	// (1,2) был в круге первого origin, во втором круге его нет
	if m.At(1, 2).Visible {
		t.Error("Tile outside the new FOV must not stay visible")
	}
	if !m.At(4, 2).Visible {
		t.Error("Tile inside the new FOV must be visible")
	}
}
