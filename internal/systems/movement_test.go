package systems

import (
	"testing"

	"github.com/sir-pinecone/rusty-roguelike/internal/domain"
)

// makeOpenMap создает карту, где все клетки - пол.
func makeOpenMap(w, h int) *domain.GameMap {
	m := domain.NewGameMap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Carve(x, y)
		}
	}
	return m
}

func makeActor(id domain.EntityID, x, y int, blocks bool) *domain.Entity {
	return &domain.Entity{
		ID:     id,
		Name:   string(id),
		Pos:    domain.Position{X: x, Y: y},
		Blocks: blocks,
		Alive:  true,
	}
}

func TestAttemptMove_Success(t *testing.T) {
	m := makeOpenMap(5, 5)
	e := makeActor("p", 2, 2, true)

	res := AttemptMove(e, 1, 0, m, []*domain.Entity{e})

	if !res.Moved || res.Blocked() {
		t.Fatalf("Expected successful move, got %+v", res)
	}
	if e.Pos.X != 3 || e.Pos.Y != 2 {
		t.Errorf("Pos = %v, want (3,2)", e.Pos)
	}
}

func TestAttemptMove_TileBlocked(t *testing.T) {
	m := makeOpenMap(5, 5)
	// Стена справа от актора
	m.Tiles[m.Index(3, 2)] = domain.Tile{Passable: false, BlocksSight: true}

	e := makeActor("p", 2, 2, true)
	res := AttemptMove(e, 1, 0, m, []*domain.Entity{e})

	// Террейн блокирует безусловно, независимо от сущностей
	if !res.TileBlocked || res.EntityBlocked {
		t.Fatalf("Expected tile block, got %+v", res)
	}
	if e.Pos.X != 2 || e.Pos.Y != 2 {
		t.Error("Position mutated despite the block")
	}
}

func TestAttemptMove_OutOfBoundsBlocked(t *testing.T) {
	m := makeOpenMap(3, 3)
	e := makeActor("p", 0, 0, true)

	res := AttemptMove(e, -1, 0, m, []*domain.Entity{e})
	if !res.TileBlocked {
		t.Fatal("Out-of-bounds move must be tile-blocked")
	}
	if e.Pos.X != 0 {
		t.Error("Entity escaped the map")
	}
}

func TestAttemptMove_EntityBlocked(t *testing.T) {
	m := makeOpenMap(5, 5)
	e := makeActor("p", 2, 2, true)
	orc := makeActor("orc", 3, 2, true)

	res := AttemptMove(e, 1, 0, m, []*domain.Entity{e, orc})

	if !res.EntityBlocked || res.TileBlocked {
		t.Fatalf("Expected entity block, got %+v", res)
	}
	if res.CollidedID != "orc" {
		t.Errorf("CollidedID = %s, want orc", res.CollidedID)
	}
	if e.Pos.X != 2 {
		t.Error("Position mutated despite the block")
	}
}

func TestAttemptMove_NonBlockingEntityIgnored(t *testing.T) {
	m := makeOpenMap(5, 5)
	e := makeActor("p", 2, 2, true)
	potion := makeActor("potion", 3, 2, false)
	potion.Alive = false

	res := AttemptMove(e, 1, 0, m, []*domain.Entity{e, potion})

	// Предметы и трупы проходимы: на клетку можно встать
	if !res.Moved {
		t.Fatalf("Non-blocking entity must not block, got %+v", res)
	}
}

func TestAttemptMove_FirstBlockingMatchWins(t *testing.T) {
	m := makeOpenMap(5, 5)
	e := makeActor("p", 2, 2, true)
	first := makeActor("first", 3, 2, true)
	second := makeActor("second", 3, 2, true)

	res := AttemptMove(e, 1, 0, m, []*domain.Entity{e, first, second})
	if res.CollidedID != "first" {
		t.Errorf("CollidedID = %s, want first (linear scan order)", res.CollidedID)
	}
}

func TestMoveTowards_DiagonalStep(t *testing.T) {
	m := makeOpenMap(10, 10)
	e := makeActor("npc", 2, 2, true)

	// Цель по диагонали: оба компонента округляются до единичного шага
	res := MoveTowards(e, domain.Position{X: 6, Y: 6}, m, []*domain.Entity{e})
	if !res.Moved {
		t.Fatalf("Expected move, got %+v", res)
	}
	if e.Pos.X != 3 || e.Pos.Y != 3 {
		t.Errorf("Pos = %v, want (3,3)", e.Pos)
	}
}

func TestMoveTowards_AxisDominantStep(t *testing.T) {
	m := makeOpenMap(10, 10)
	e := makeActor("npc", 2, 2, true)

	// Цель далеко по X и чуть в стороне по Y: Y-компонент округляется к нулю
	res := MoveTowards(e, domain.Position{X: 8, Y: 3}, m, []*domain.Entity{e})
	if !res.Moved {
		t.Fatalf("Expected move, got %+v", res)
	}
	if e.Pos.X != 3 || e.Pos.Y != 2 {
		t.Errorf("Pos = %v, want (3,2)", e.Pos)
	}
}

// Жадный одношаговый подход без поиска пути застревает у вогнутого
// препятствия. Это зафиксированное ограничение, а не баг.
func TestMoveTowards_StallsAgainstConcaveWall(t *testing.T) {
	m := makeOpenMap(9, 9)
	// Вертикальная стена между NPC (слева) и целью (справа)
	for y := 0; y < 9; y++ {
		m.Tiles[m.Index(4, y)] = domain.Tile{Passable: false, BlocksSight: true}
	}

	e := makeActor("npc", 3, 4, true)
	target := domain.Position{X: 6, Y: 4}

	for i := 0; i < 5; i++ {
		res := MoveTowards(e, target, m, []*domain.Entity{e})
		if res.Moved {
			t.Fatalf("NPC slipped through the wall to %v", e.Pos)
		}
	}

	if e.Pos.X != 3 || e.Pos.Y != 4 {
		t.Errorf("NPC should stay stalled at (3,4), got %v", e.Pos)
	}
}
