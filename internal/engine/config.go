package engine

import (
	"time"

	"github.com/sir-pinecone/rusty-roguelike/internal/domain"
	"github.com/sir-pinecone/rusty-roguelike/internal/fov"
	"github.com/sir-pinecone/rusty-roguelike/pkg/dungeon"
)

// Config хранит параметры запуска одной сессии.
type Config struct {
	// Seed - зерно генератора. Одинаковый сид при одинаковой
	// последовательности вызовов дает идентичный уровень.
	Seed int64

	// Gen - параметры генерации уровня.
	Gen dungeon.Config

	// Параметры поля зрения, передаваемые оракулу.
	TorchRadius  int
	LightWalls   bool
	FOVAlgorithm string

	// HealAmount - фиксированная сила лечебного зелья.
	HealAmount int

	// InventoryCapacity - предел инвентаря (одна ячейка на букву).
	InventoryCapacity int
}

// NewConfig создает конфиг по умолчанию (случайный сид).
func NewConfig() Config {
	return Config{
		Seed:              time.Now().UnixNano(),
		Gen:               dungeon.DefaultConfig(),
		TorchRadius:       10,
		LightWalls:        true,
		FOVAlgorithm:      fov.AlgorithmShadowcast,
		HealAmount:        4,
		InventoryCapacity: domain.InventoryCapacity,
	}
}
