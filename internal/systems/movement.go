package systems

import (
	"github.com/sir-pinecone/rusty-roguelike/internal/domain"
)

// MoveResult - результат попытки движения.
type MoveResult struct {
	NewPos domain.Position
	Moved  bool

	// TileBlocked - уперлись в непроходимый террейн (проверяется первым,
	// независимо от сущностей).
	TileBlocked bool
	// EntityBlocked - клетка проходима, но занята блокирующей сущностью.
	EntityBlocked bool
	// CollidedID - кто занял клетку (первое совпадение при линейном скане).
	CollidedID domain.EntityID
}

// Blocked возвращает true, если движение не состоялось из-за препятствия.
func (r MoveResult) Blocked() bool {
	return r.TileBlocked || r.EntityBlocked
}

// AttemptMove пытается сдвинуть сущность на (dx, dy).
//
// Классификация в два этапа: сначала террейн (стена блокирует безусловно),
// затем линейный скан коллекции на блокирующую сущность в целевой клетке.
// Позиция мутирует ТОЛЬКО если не сработало ни одно из условий.
// Реакция на столкновение с сущностью (например, атака) - дело вызывающего.
func AttemptMove(e *domain.Entity, dx, dy int, m *domain.GameMap, entities []*domain.Entity) MoveResult {
	target := e.Pos.Shift(dx, dy)
	res := MoveResult{NewPos: target}

	// 1. Террейн
	if m.IsWall(target.X, target.Y) {
		res.TileBlocked = true
		return res
	}

	// 2. Блокирующие сущности (первое совпадение выигрывает)
	for _, other := range entities {
		if other.ID == e.ID {
			continue
		}
		if other.Blocks && other.Pos.X == target.X && other.Pos.Y == target.Y {
			res.EntityBlocked = true
			res.CollidedID = other.ID
			return res
		}
	}

	e.Pos = target
	res.Moved = true
	return res
}

// MoveTowards делает один жадный шаг к цели: дельта делится на евклидово
// расстояние, оси округляются независимо до {-1,0,1}, затем один AttemptMove.
// Поиска пути нет - у вогнутых препятствий сущность может застрять.
// Это известное ограничение, оно покрыто тестом, а не "чинится" молча.
func MoveTowards(e *domain.Entity, target domain.Position, m *domain.GameMap, entities []*domain.Entity) MoveResult {
	dx, dy := e.Pos.StepTowards(target)
	return AttemptMove(e, dx, dy, m, entities)
}
