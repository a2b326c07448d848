package domain

// EntityID - стабильный непрозрачный идентификатор сущности.
// Позиционный индекс в слайсе Entities им НЕ является: подбор предмета делает
// swap-удаление, и любой закэшированный индекс после него протухает.
type EntityID string

func (id EntityID) String() string {
	return string(id)
}

// Типы сущностей (для снапшота и сообщений, не для диспатча поведения)
const (
	EntityTypePlayer = "PLAYER"
	EntityTypeEnemy  = "ENEMY"
	EntityTypeItem   = "ITEM"
)

// CorpseMarker дописывается к имени погибшей AI-сущности.
const CorpseMarker = " (труп)"

type Entity struct {
	ID   EntityID `json:"id"`
	Type string   `json:"type"`
	Name string   `json:"name"`

	Pos Position `json:"pos"`

	// Blocks - занимает ли сущность клетку для прохода.
	// Труп и предмет проходимы.
	Blocks bool `json:"blocks"`
	// Alive переходит true -> false не более одного раза. Воскрешения нет.
	Alive bool `json:"alive"`

	// Компоненты (Если nil - значит свойство отсутствует)
	Render *RenderComponent `json:"render,omitempty"`
	Combat *CombatComponent `json:"combat,omitempty"`
	AI     *AIComponent     `json:"ai,omitempty"`
	Item   *ItemComponent   `json:"item,omitempty"`
}

// PairByID выдает два НЕ-алиасящихся указателя на разные сущности слайса.
// Одинаковые ID - это ошибка программиста (нарушение предусловия), не
// восстановимая ситуация: паникуем сразу, а не возвращаем ошибку.
func PairByID(entities []*Entity, a, b EntityID) (*Entity, *Entity) {
	if a == b {
		panic("PairByID: requested two mutable views of the same entity " + string(a))
	}
	var ea, eb *Entity
	for _, e := range entities {
		switch e.ID {
		case a:
			ea = e
		case b:
			eb = e
		}
	}
	return ea, eb
}

// FindByID находит сущность по ID. Линейный поиск: коллекция маленькая,
// а индексировать её нельзя из-за swap-удалений.
func FindByID(entities []*Entity, id EntityID) *Entity {
	for _, e := range entities {
		if e.ID == id {
			return e
		}
	}
	return nil
}
