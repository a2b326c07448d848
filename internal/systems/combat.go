package systems

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sir-pinecone/rusty-roguelike/internal/domain"
	"github.com/sir-pinecone/rusty-roguelike/pkg/logger"
)

// ApplyAttack разрешает одну атаку и пишет исходы в игровой лог.
//
// Урон = power атакующего - defense цели и вычисляется ДО любых мутаций:
// одновременного изменяемого доступа к двум сущностям не возникает.
func ApplyAttack(attacker, target *domain.Entity, log *domain.MessageLog) {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_name": attacker.Name,
		"target_id":     target.ID,
		"target_name":   target.Name,
	})

	// --- Проверка граничных условий ---

	if attacker.Combat == nil || target.Combat == nil {
		combatLogger.Warn("Attack skipped: missing combat component.")
		log.Add(fmt.Sprintf("%s атакует %s, но это бесполезно.", attacker.Name, target.Name), domain.LogInfo)
		return
	}
	if !target.Alive {
		// Повторный урон по мертвой цели обязан быть no-op
		combatLogger.Info("Attack ineffective: target is already dead.")
		log.Add(fmt.Sprintf("%s пинает то, что осталось от %s.", attacker.Name, target.Name), domain.LogInfo)
		return
	}

	damage := attacker.Combat.Power - target.Combat.Defense

	if damage <= 0 {
		// Валидный исход, не ошибка: сообщение есть, мутации нет
		combatLogger.WithField("damage", damage).Info("Attack had no effect.")
		log.Add(fmt.Sprintf("%s атакует %s, но без эффекта.", attacker.Name, target.Name), domain.LogCombat)
		return
	}

	hpBefore := target.Combat.HP
	died := target.TakeDamage(damage)

	combatLogger.WithFields(logrus.Fields{
		"damage":      damage,
		"hp_before":   hpBefore,
		"hp_after":    target.Combat.HP,
		"target_died": died,
	}).Info("Attack resolved.")

	log.Add(fmt.Sprintf("%s наносит %d урона по %s.", attacker.Name, damage, target.Name), domain.LogCombat)

	if died {
		HandleDeath(target, log)
	}
}

// HandleDeath обрабатывает смерть ровно один раз (вызывается только из
// смертельного TakeDamage).
//
// AI-сущность становится трупом: компонент AI снимается навсегда, к имени
// дописывается маркер, клетка освобождается. Игрок сохраняет имя и identity -
// у него лишь снимается блокировка клетки.
func HandleDeath(target *domain.Entity, log *domain.MessageLog) {
	deathLogger := logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"target_id": target.ID,
		"is_npc":    target.AI != nil,
	})

	target.Blocks = false

	if target.AI != nil {
		target.AI = nil
		log.Add(fmt.Sprintf("%s погибает.", target.Name), domain.LogCombat)
		target.Name += domain.CorpseMarker
		if target.Render != nil {
			target.Render.Symbol = "%"
			target.Render.Color = "text-gray-500"
		}
		deathLogger.Info("NPC died, corpse left behind.")
		return
	}

	log.Add("Вы погибли!", domain.LogError)
	deathLogger.Info("Player died.")
}
