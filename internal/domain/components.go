package domain

// --- КОМПОНЕНТЫ ---
// Поведение сущности определяется набором присутствующих компонентов,
// а не наследованием: nil - значит способности нет.

// RenderComponent - Визуализация (Клиент)
type RenderComponent struct {
	Symbol string `json:"symbol"` // Символ отображения (o-орк, !-зелье)
	Color  string `json:"color"`
}

// CombatComponent - Боевые характеристики.
// Присутствие компонента означает, что сущность может наносить и получать урон.
type CombatComponent struct {
	MaxHP   int `json:"maxHp"`
	HP      int `json:"hp"`
	Defense int `json:"defense"`
	Power   int `json:"power"`
}

// AIComponent - Маркер "ходит сам".
// Сущность с этим компонентом получает свой ход каждый тик, когда игра движется.
// У трупа компонент снимается навсегда.
type AIComponent struct{}

// ItemEffect - тег эффекта предмета
type ItemEffect string

const (
	EffectHeal ItemEffect = "HEAL"
)

// ItemComponent - Предмет.
// Присутствие компонента означает, что сущность можно подобрать и применить
// из инвентаря.
type ItemComponent struct {
	Effect ItemEffect `json:"effect"`
}
