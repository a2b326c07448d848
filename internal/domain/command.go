package domain

import "encoding/json"

// ActionType - семантическое намерение, один на тик.
// Сырые клавиши/мышь остаются на клиенте, сюда приходит уже смысл.
type ActionType string

const (
	ActionInit       ActionType = "INIT"
	ActionMove       ActionType = "MOVE"
	ActionInventory  ActionType = "INVENTORY"
	ActionPickup     ActionType = "PICKUP"
	ActionUseItem    ActionType = "USE_ITEM"
	ActionLookAt     ActionType = "LOOK_AT"
	ActionFullscreen ActionType = "FULLSCREEN"
	ActionQuit       ActionType = "QUIT"
)

// InternalCommand - одно намерение, уже провалидированное транспортом.
type InternalCommand struct {
	Action  ActionType
	Payload json.RawMessage
}

// TurnOutcome - исход разрешения одного намерения.
type TurnOutcome int

const (
	// DidNotTakeTurn - намерение не потратило ход (упёрлись в стену,
	// системная команда, неизвестное действие).
	DidNotTakeTurn TurnOutcome = iota
	// TookTurn - ход потрачен, после него мир реагирует (NPC ходят).
	TookTurn
	// Exit - сессия завершается. Единственный способ "ошибки" наружу.
	Exit
)

func (o TurnOutcome) String() string {
	switch o {
	case TookTurn:
		return "TOOK_TURN"
	case Exit:
		return "EXIT"
	default:
		return "DID_NOT_TAKE_TURN"
	}
}
