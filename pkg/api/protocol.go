package api

import (
	"encoding/json"
)

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
// Одна команда = одно семантическое намерение на тик. Сырые клавиши клиент
// переводит в Action сам.
type ClientCommand struct {
	// Action название действия: INIT, MOVE, INVENTORY, PICKUP, USE_ITEM,
	// LOOK_AT, FULLSCREEN, QUIT.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// DirectionPayload используется для MOVE.
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// IndexPayload используется для INVENTORY (выбранная ячейка) и USE_ITEM.
type IndexPayload struct {
	Index int `json:"index"`
}

// PositionPayload используется для LOOK_AT: сырые координаты указателя,
// только для тултипа "что здесь лежит".
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это полный "снимок" мира после одного тика.
// Снапшот только для чтения: рендер-клиент ничего не мутирует.
type ServerResponse struct {
	// Type тип сообщения: INIT или UPDATE.
	Type string `json:"type"`

	// Outcome исход намерения: TOOK_TURN, DID_NOT_TAKE_TURN, EXIT.
	Outcome string `json:"outcome"`

	// Grid метаданные о размере всей карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map флаги всех тайлов карты.
	Map []TileView `json:"map,omitempty"`

	// Entities все сущности уровня: позиция, живость, отображение.
	Entities []EntityView `json:"entities,omitempty"`

	// Player срез игрока с характеристиками.
	Player *EntityView `json:"player,omitempty"`

	// Inventory текущий инвентарь игрока.
	Inventory []ItemView `json:"inventory,omitempty"`

	// Selection выбранный индекс инвентаря (ответ на INVENTORY).
	Selection *int `json:"selection,omitempty"`

	// LookNames имена видимых сущностей под указателем (ответ на LOOK_AT).
	LookNames []string `json:"lookNames,omitempty"`

	// Logs новые сообщения, появившиеся с прошлого тика.
	Logs []LogView `json:"logs,omitempty"`
}

// GridMeta содержит размеры карты, чтобы клиент подготовил сетку рендеринга.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// TileView это DTO для одного тайла: ровно четыре флага из модели.
type TileView struct {
	X int `json:"x"`
	Y int `json:"y"`

	Passable    bool `json:"passable"`
	BlocksSight bool `json:"blocksSight"`

	// Visible рендерится ярко; Explored без Visible - тусклый "туман войны".
	Visible  bool `json:"visible"`
	Explored bool `json:"explored"`
}

// EntityView это DTO для игровой сущности.
type EntityView struct {
	ID   string `json:"id"`
	Type string `json:"type"` // PLAYER, ENEMY, ITEM
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Alive bool `json:"alive"`

	Render struct {
		Symbol string `json:"symbol"`
		Color  string `json:"color"`
	} `json:"render"`

	// Stats присутствует только у игрока: чужие характеристики клиент не видит.
	Stats *StatsView `json:"stats,omitempty"`
}

// StatsView это DTO характеристик.
type StatsView struct {
	HP      int `json:"hp"`
	MaxHP   int `json:"maxHp"`
	Defense int `json:"defense"`
	Power   int `json:"power"`
}

// ItemView представляет ячейку инвентаря.
type ItemView struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
}

// LogView представляет одну запись игрового лога.
type LogView struct {
	Text string `json:"text"`
	Type string `json:"type"` // INFO, COMBAT, WARNING, ERROR
}
