package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/sir-pinecone/rusty-roguelike/internal/domain"
	"github.com/sir-pinecone/rusty-roguelike/pkg/logger"
)

// FOVOracle - внешний оракул поля зрения. Ядро не знает алгоритма лучей,
// оно только решает, КОГДА его звать и как вложить ответ в тайлы.
type FOVOracle interface {
	// Init один раз на уровень получает непрозрачность тайлов.
	// После генерации террейн неизменен, повторной синхронизации нет.
	Init(width, height int, opaque []bool)

	// Compute пересчитывает множество видимых клеток от точки обзора.
	Compute(originX, originY, radius int, lightWalls bool, algorithm string)

	// IsVisible опрашивается после Compute.
	IsVisible(x, y int) bool
}

// VisibilityTracker держит персистентное состояние explored/visible в тайлах.
type VisibilityTracker struct {
	oracle     FOVOracle
	radius     int
	lightWalls bool
	algorithm  string

	// lastPos - позиция игрока на конец предыдущего тика.
	// Стартовое значение вне карты: самый первый тик всегда пересчитывает.
	lastPos domain.Position
}

// NewVisibilityTracker инициализирует оракул статичной геометрией карты.
func NewVisibilityTracker(oracle FOVOracle, m *domain.GameMap, radius int, lightWalls bool, algorithm string) *VisibilityTracker {
	opaque := make([]bool, len(m.Tiles))
	for i, t := range m.Tiles {
		opaque[i] = t.BlocksSight
	}
	oracle.Init(m.Width, m.Height, opaque)

	return &VisibilityTracker{
		oracle:     oracle,
		radius:     radius,
		lightWalls: lightWalls,
		algorithm:  algorithm,
		lastPos:    domain.Position{X: -1, Y: -1},
	}
}

// Update пересчитывает видимость, если игрок сдвинулся с прошлого тика.
// Возвращает true, если пересчет состоялся.
//
// Без пересчета флаги НЕ трогаются вовсе - это осознанная оптимизация
// "не делай работу", а не неявный сброс. При пересчете Visible выставляется
// целиком по ответу оракула, а Explored только растет (монотонное объединение).
func (t *VisibilityTracker) Update(m *domain.GameMap, playerPos domain.Position) bool {
	if playerPos == t.lastPos {
		return false
	}

	t.oracle.Compute(playerPos.X, playerPos.Y, t.radius, t.lightWalls, t.algorithm)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			tile := m.At(x, y)
			tile.Visible = t.oracle.IsVisible(x, y)
			if tile.Visible && !tile.Explored {
				tile.Explored = true
			}
		}
	}

	t.lastPos = playerPos

	logger.Log.WithFields(logrus.Fields{
		"component":  "visibility_tracker",
		"player_pos": playerPos,
		"radius":     t.radius,
	}).Debug("FOV recomputed.")

	return true
}
