package systems

import (
	"strings"
	"testing"

	"github.com/sir-pinecone/rusty-roguelike/internal/domain"
)

func makeCombatant(id domain.EntityID, name string, hp, defense, power int) *domain.Entity {
	return &domain.Entity{
		ID:     id,
		Name:   name,
		Alive:  true,
		Blocks: true,
		Combat: &domain.CombatComponent{HP: hp, MaxHP: hp, Defense: defense, Power: power},
	}
}

func TestApplyAttack_DamageApplied(t *testing.T) {
	attacker := makeCombatant("hero", "Герой", 30, 2, 7)
	target := makeCombatant("orc", "Орк", 10, 3, 3)
	log := &domain.MessageLog{}

	// power 7 - defense 3 = 4 урона
	ApplyAttack(attacker, target, log)

	if target.Combat.HP != 6 {
		t.Errorf("HP = %d, want 6", target.Combat.HP)
	}
	if !target.Alive {
		t.Error("Target should survive")
	}
	if log.Len() == 0 {
		t.Error("Expected combat log entry")
	}
}

func TestApplyAttack_NoEffect(t *testing.T) {
	attacker := makeCombatant("rat", "Крыса", 5, 0, 3)
	target := makeCombatant("knight", "Рыцарь", 10, 4, 5)
	log := &domain.MessageLog{}

	ApplyAttack(attacker, target, log)

	// Валидный исход: сообщение есть, мутации нет
	if target.Combat.HP != 10 {
		t.Errorf("HP = %d, want 10 (no mutation)", target.Combat.HP)
	}
	if log.Len() != 1 {
		t.Fatalf("Expected exactly one log entry, got %d", log.Len())
	}
	if !strings.Contains(log.Entries[0].Text, "без эффекта") {
		t.Errorf("Expected no-effect message, got %q", log.Entries[0].Text)
	}
}

func TestApplyAttack_NPCDeath(t *testing.T) {
	attacker := makeCombatant("hero", "Герой", 30, 2, 5)
	npc := makeCombatant("goblin", "Гоблин", 5, 0, 2)
	npc.AI = &domain.AIComponent{}
	npc.Render = &domain.RenderComponent{Symbol: "g", Color: "text-green-400"}
	log := &domain.MessageLog{}

	// 5 урона по 5 HP - смертельно
	ApplyAttack(attacker, npc, log)

	if npc.Alive {
		t.Fatal("NPC should be dead")
	}
	if npc.AI != nil {
		t.Error("Corpse must lose its AI capability permanently")
	}
	if npc.Blocks {
		t.Error("Corpse must not block movement")
	}
	if !strings.Contains(npc.Name, domain.CorpseMarker) {
		t.Errorf("Name %q lacks corpse marker", npc.Name)
	}
	if npc.Combat.HP != 0 {
		t.Errorf("HP = %d, want 0", npc.Combat.HP)
	}
}

func TestApplyAttack_DeadTargetIsNoop(t *testing.T) {
	attacker := makeCombatant("hero", "Герой", 30, 2, 5)
	npc := makeCombatant("goblin", "Гоблин", 5, 0, 2)
	npc.AI = &domain.AIComponent{}
	log := &domain.MessageLog{}

	ApplyAttack(attacker, npc, log)
	nameAfterDeath := npc.Name

	// Повторные атаки по трупу обязаны быть no-op
	ApplyAttack(attacker, npc, log)
	ApplyAttack(attacker, npc, log)

	if npc.Combat.HP != 0 {
		t.Errorf("Corpse HP = %d, want 0", npc.Combat.HP)
	}
	if npc.Name != nameAfterDeath {
		t.Errorf("Corpse name mutated again: %q", npc.Name)
	}
}

func TestApplyAttack_PlayerDeathKeepsIdentity(t *testing.T) {
	orc := makeCombatant("orc", "Орк", 10, 0, 50)
	player := makeCombatant("hero", "Герой", 30, 2, 5)
	log := &domain.MessageLog{}

	ApplyAttack(orc, player, log)

	if player.Alive {
		t.Fatal("Player should be dead")
	}
	// У игрока нет AI: имя и identity сохраняются, снимается только блокировка
	if player.Name != "Герой" {
		t.Errorf("Player name changed to %q", player.Name)
	}
	if player.Blocks {
		t.Error("Dead player must not block")
	}
}

func TestApplyAttack_MissingCombatComponent(t *testing.T) {
	attacker := makeCombatant("hero", "Герой", 30, 2, 5)
	scenery := &domain.Entity{ID: "door", Name: "Дверь", Alive: true}
	log := &domain.MessageLog{}

	ApplyAttack(attacker, scenery, log)

	if log.Len() == 0 {
		t.Error("Pointless attack should still be narrated")
	}
}
