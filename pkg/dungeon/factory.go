package dungeon

import (
	"github.com/sir-pinecone/rusty-roguelike/internal/domain"
)

// Стартовые характеристики игрока
const (
	PlayerMaxHP   = 30
	PlayerDefense = 2
	PlayerPower   = 5
)

// CreatePlayer создает сущность игрока в точке спавна.
// AI-компонента у игрока нет: его намерения приходят снаружи.
func CreatePlayer(id domain.EntityID, pos domain.Position) *domain.Entity {
	return &domain.Entity{
		ID:     id,
		Type:   domain.EntityTypePlayer,
		Name:   "Герой",
		Pos:    pos,
		Blocks: true,
		Alive:  true,
		Render: &domain.RenderComponent{Symbol: "@", Color: "text-cyan-400"},
		Combat: &domain.CombatComponent{
			MaxHP:   PlayerMaxHP,
			HP:      PlayerMaxHP,
			Defense: PlayerDefense,
			Power:   PlayerPower,
		},
	}
}
