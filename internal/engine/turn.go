package engine

import (
	"encoding/json"

	"github.com/sirupsen/logrus"

	"github.com/sir-pinecone/rusty-roguelike/internal/domain"
	"github.com/sir-pinecone/rusty-roguelike/internal/systems"
	"github.com/sir-pinecone/rusty-roguelike/pkg/api"
	"github.com/sir-pinecone/rusty-roguelike/pkg/logger"
)

// TickResult - результат одного тика.
type TickResult struct {
	Outcome domain.TurnOutcome

	// Selection - выбранный индекс инвентаря (ответ на INVENTORY).
	// Сама отрисовка меню выбора - забота клиента.
	Selection *int

	// LookNames - имена под указателем (ответ на LOOK_AT).
	LookNames []string
}

// ProcessTick разрешает РОВНО ОДНО намерение и, если оно потратило ход,
// дает миру отреагировать: каждый живой NPC с AI-компонентом ходит один раз.
// Наружу не уходит ни одной ошибки - только исход, в худшем случае Exit.
func (s *Session) ProcessTick(cmd domain.InternalCommand) TickResult {
	res := TickResult{Outcome: domain.DidNotTakeTurn}

	switch cmd.Action {
	case domain.ActionInit:
		s.Log.Add("Добро пожаловать в подземелье. Чужие здесь не выживают.", domain.LogInfo)

	case domain.ActionMove:
		var p api.DirectionPayload
		if err := json.Unmarshal(cmd.Payload, &p); err == nil && s.Player.Alive {
			res.Outcome = s.handleMove(p.Dx, p.Dy)
		}

	case domain.ActionInventory:
		var p api.IndexPayload
		if err := json.Unmarshal(cmd.Payload, &p); err == nil {
			// Выбор ячейки отдаем вызывающему; просмотр инвентаря тратит ход
			idx := p.Index
			res.Selection = &idx
			res.Outcome = domain.TookTurn
		}

	case domain.ActionPickup:
		// Подбор предмета ход НЕ тратит
		s.handlePickup()

	case domain.ActionUseItem:
		var p api.IndexPayload
		if err := json.Unmarshal(cmd.Payload, &p); err == nil {
			if systems.UseItem(s.Player, s.Inventory, p.Index, s.Cfg.HealAmount, s.Log) == systems.UsedUp {
				res.Outcome = domain.TookTurn
			}
		}

	case domain.ActionLookAt:
		var p api.PositionPayload
		if err := json.Unmarshal(cmd.Payload, &p); err == nil {
			res.LookNames = s.namesAt(p.X, p.Y)
		}

	case domain.ActionFullscreen:
		// Системная команда: проходит сквозь движок, ход не тратит

	case domain.ActionQuit:
		s.Running = false
		res.Outcome = domain.Exit

	default:
		logger.Log.WithFields(logrus.Fields{
			"component": "turn_engine",
			"action":    cmd.Action,
		}).Warn("Unknown intent.")
	}

	// Мир реагирует только на потраченный ход
	if res.Outcome == domain.TookTurn && s.Running {
		s.runNPCTurns()
	}

	// Пересчет видимости сработает, только если игрок сдвинулся с прошлого тика
	s.Tracker.Update(s.Map, s.Player.Pos)

	return res
}

// handleMove разрешает движение игрока: шаг, атаку по живой сущности
// или сообщение при ударе в стену.
func (s *Session) handleMove(dx, dy int) domain.TurnOutcome {
	moveRes := systems.AttemptMove(s.Player, dx, dy, s.Map, s.Entities)

	if moveRes.Moved {
		return domain.TookTurn
	}

	if moveRes.EntityBlocked {
		// Два неалиасящихся изменяемых среза: одинаковые ID - паника
		attacker, occupant := domain.PairByID(s.Entities, s.Player.ID, moveRes.CollidedID)
		if occupant == nil {
			return domain.DidNotTakeTurn
		}
		if occupant.Alive {
			systems.ApplyAttack(attacker, occupant, s.Log)
			return domain.TookTurn
		}
		// Блокирующий труп в норме не встречается (смерть снимает Blocks),
		// но намерение игрока все равно получает ответ
		s.Log.Add("Вы толкаете бездыханное тело. Оно не возражает.", domain.LogInfo)
		return domain.DidNotTakeTurn
	}

	s.Log.Add("Путь прегражден.", domain.LogWarning)
	return domain.DidNotTakeTurn
}

// handlePickup пытается подобрать предмет с клетки игрока.
func (s *Session) handlePickup() {
	item, err := systems.TryPickup(s.Player, s.Entities, s.Inventory, s.Log)
	if err != nil || item == nil {
		// Переполнение уже отражено в логе; предмет остается на карте
		return
	}
	// Предмет перешел в инвентарь: снимаем его с карты swap-удалением
	s.removeFromWorld(item.ID)
}

// runNPCTurns дает ход каждому живому NPC с AI-компонентом.
//
// Обход по возрастанию текущих индексов, но через снимок ID: коллекция могла
// мутировать в середине тика (swap-удаление подбора), и любой позиционный
// индекс, закэшированный до мутации, обязан быть перепрочитан.
func (s *Session) runNPCTurns() {
	ids := make([]domain.EntityID, 0, len(s.Entities))
	for _, e := range s.Entities {
		if e.Alive && e.AI != nil {
			ids = append(ids, e.ID)
		}
	}

	for _, id := range ids {
		npc := domain.FindByID(s.Entities, id)
		if npc == nil || !npc.Alive || npc.AI == nil {
			continue
		}
		s.runNPCTurn(npc)
	}
}

// runNPCTurn - ход одного NPC.
//
// NPC действует, только если ЕГО клетка видима в том же состоянии FOV,
// что посчитано для игрока. Взаимная видимость - несущее свойство баланса:
// монстр видит героя тогда же, когда герой видит монстра. Не "чинить"
// на отдельный FOV для NPC.
func (s *Session) runNPCTurn(npc *domain.Entity) {
	if !s.Map.At(npc.Pos.X, npc.Pos.Y).Visible {
		return // Вне поля зрения NPC бездействует
	}

	if npc.Pos.DistanceTo(s.Player.Pos) >= 2.0 {
		systems.MoveTowards(npc, s.Player.Pos, s.Map, s.Entities)
		return
	}

	if s.Player.Alive {
		systems.ApplyAttack(npc, s.Player, s.Log)
	}
}

// namesAt возвращает имена сущностей на видимой клетке (для тултипа).
func (s *Session) namesAt(x, y int) []string {
	if !s.Map.InBounds(x, y) || !s.Map.At(x, y).Visible {
		return nil
	}
	var names []string
	for _, e := range s.Entities {
		if e.Pos.X == x && e.Pos.Y == y {
			names = append(names, e.Name)
		}
	}
	return names
}
