package dungeon

import (
	"github.com/sir-pinecone/rusty-roguelike/internal/domain"
	"github.com/sir-pinecone/rusty-roguelike/pkg/utils"
)

// MonsterTemplate - фиксированный статблок вида.
type MonsterTemplate struct {
	Name   string
	Symbol string
	Color  string

	MaxHP   int
	Defense int
	Power   int

	// Threshold - верхняя граница броска [0,1), при котором выпадает этот вид.
	Threshold float64
}

// Три вида: слабый / обычный / сильный. Таблица упорядочена по порогам.
var MonsterTemplates = []MonsterTemplate{
	{Name: "Гоблин", Symbol: "g", Color: "text-green-400", MaxHP: 6, Defense: 0, Power: 2, Threshold: 0.5},
	{Name: "Орк", Symbol: "o", Color: "text-green-600", MaxHP: 10, Defense: 0, Power: 3, Threshold: 0.85},
	{Name: "Тролль", Symbol: "T", Color: "text-emerald-800", MaxHP: 16, Defense: 1, Power: 4, Threshold: 1.0},
}

// PickMonster выбирает вид по броску равномерного float в [0,1).
func PickMonster(roll float64) MonsterTemplate {
	for _, tmpl := range MonsterTemplates {
		if roll < tmpl.Threshold {
			return tmpl
		}
	}
	// roll < 1.0 всегда, но на всякий случай возвращаем последний вид
	return MonsterTemplates[len(MonsterTemplates)-1]
}

// Spawn создает живого монстра из шаблона.
// Монстр блокирует клетку и несет AI-компонент: он будет ходить каждый тик.
func (t MonsterTemplate) Spawn(pos domain.Position) *domain.Entity {
	return &domain.Entity{
		ID:     domain.EntityID(utils.GenerateID()),
		Type:   domain.EntityTypeEnemy,
		Name:   t.Name,
		Pos:    pos,
		Blocks: true,
		Alive:  true,
		Render: &domain.RenderComponent{Symbol: t.Symbol, Color: t.Color},
		Combat: &domain.CombatComponent{
			MaxHP:   t.MaxHP,
			HP:      t.MaxHP,
			Defense: t.Defense,
			Power:   t.Power,
		},
		AI: &domain.AIComponent{},
	}
}

// NewHealingPotion создает лечебное зелье. Зелье не блокирует проход
// и не живое - это просто подбираемый предмет.
func NewHealingPotion(pos domain.Position) *domain.Entity {
	return &domain.Entity{
		ID:     domain.EntityID(utils.GenerateID()),
		Type:   domain.EntityTypeItem,
		Name:   "Лечебное зелье",
		Pos:    pos,
		Blocks: false,
		Alive:  false,
		Render: &domain.RenderComponent{Symbol: "!", Color: "text-violet-400"},
		Item:   &domain.ItemComponent{Effect: domain.EffectHeal},
	}
}
