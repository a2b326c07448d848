package systems

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sir-pinecone/rusty-roguelike/internal/domain"
	"github.com/sir-pinecone/rusty-roguelike/pkg/logger"
)

// FindItemAt ищет на клетке сущность-предмет (первое совпадение).
func FindItemAt(entities []*domain.Entity, pos domain.Position) *domain.Entity {
	for _, e := range entities {
		if e.Item != nil && e.Pos.X == pos.X && e.Pos.Y == pos.Y {
			return e
		}
	}
	return nil
}

// TryPickup перекладывает предмет с клетки игрока в инвентарь.
// Возвращает подобранный предмет; удаление из мировой коллекции - забота
// вызывающего (там живет swap-удаление).
func TryPickup(actor *domain.Entity, entities []*domain.Entity, inv *domain.Inventory, log *domain.MessageLog) (*domain.Entity, error) {
	invLogger := logger.Log.WithFields(logrus.Fields{
		"component": "inventory_system",
		"actor_id":  actor.ID,
	})

	item := FindItemAt(entities, actor.Pos)
	if item == nil {
		log.Add("Здесь нечего подбирать.", domain.LogInfo)
		return nil, nil
	}

	if err := inv.Add(item); err != nil {
		var capErr *domain.CapacityError
		if errors.As(err, &capErr) {
			// Восстановимо: предмет остается лежать на карте
			invLogger.WithField("capacity", capErr.Capacity).Info("Pickup rejected: inventory full.")
			log.Add(fmt.Sprintf("Инвентарь полон (%d ячеек), %s остается лежать.", capErr.Capacity, item.Name), domain.LogWarning)
			return nil, err
		}
		return nil, err
	}

	invLogger.WithField("item_name", item.Name).Info("Item picked up.")
	log.Add(fmt.Sprintf("Вы подбираете %s.", item.Name), domain.LogInfo)
	return item, nil
}

// ItemUseOutcome - исход применения предмета из инвентаря.
type ItemUseOutcome int

const (
	// UseFailed - у записи нет эффекта предмета или индекс пуст.
	UseFailed ItemUseOutcome = iota
	// UseCancelled - эффект не нужен (лечение на полном HP), предмет остается.
	UseCancelled
	// UsedUp - эффект применен, предмет израсходован.
	UsedUp
)

// UseItem применяет предмет инвентаря по индексу к actor.
// Диспатч идет по тегу эффекта; расход предмета - только при успехе.
func UseItem(actor *domain.Entity, inv *domain.Inventory, index int, healAmount int, log *domain.MessageLog) ItemUseOutcome {
	useLogger := logger.Log.WithFields(logrus.Fields{
		"component": "inventory_system",
		"actor_id":  actor.ID,
		"index":     index,
	})

	item := inv.At(index)
	if item == nil || item.Item == nil {
		useLogger.Warn("Use failed: slot empty or not usable.")
		name := "Это"
		if item != nil {
			name = item.Name
		}
		log.Add(fmt.Sprintf("%s нельзя использовать.", name), domain.LogWarning)
		return UseFailed
	}

	switch item.Item.Effect {
	case domain.EffectHeal:
		if actor.Combat == nil || !actor.Alive {
			log.Add(fmt.Sprintf("%s нельзя использовать.", item.Name), domain.LogWarning)
			return UseFailed
		}
		if actor.Combat.HP >= actor.Combat.MaxHP {
			// Валидная отмена: предмет НЕ расходуется
			useLogger.Info("Use cancelled: already at full HP.")
			log.Add("Вы и так полностью здоровы.", domain.LogInfo)
			return UseCancelled
		}

		healed := actor.Heal(healAmount)
		inv.Remove(index)

		useLogger.WithField("healed", healed).Info("Healing item consumed.")
		log.Add(fmt.Sprintf("Раны затягиваются: +%d HP.", healed), domain.LogInfo)
		return UsedUp

	default:
		useLogger.WithField("effect", item.Item.Effect).Warn("Unknown item effect.")
		log.Add(fmt.Sprintf("%s нельзя использовать.", item.Name), domain.LogWarning)
		return UseFailed
	}
}
