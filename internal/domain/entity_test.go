package domain

import "testing"

func makeFighter(hp, maxHP, defense, power int) *Entity {
	return &Entity{
		ID:     EntityID("fighter"),
		Name:   "Боец",
		Alive:  true,
		Blocks: true,
		Combat: &CombatComponent{HP: hp, MaxHP: maxHP, Defense: defense, Power: power},
	}
}

func TestTakeDamage_Bounds(t *testing.T) {
	e := makeFighter(10, 10, 0, 0)

	if died := e.TakeDamage(4); died {
		t.Error("4 damage against 10 HP should not be lethal")
	}
	if e.Combat.HP != 6 {
		t.Errorf("HP = %d, want 6", e.Combat.HP)
	}

	// Урон больше остатка HP: HP упирается в 0, не уходит в минус
	if died := e.TakeDamage(100); !died {
		t.Error("Overkill damage should be lethal")
	}
	if e.Combat.HP != 0 {
		t.Errorf("HP = %d, want 0 (never negative)", e.Combat.HP)
	}
	if e.Alive {
		t.Error("Entity should be dead")
	}
}

func TestTakeDamage_DeadIsNoop(t *testing.T) {
	e := makeFighter(1, 10, 0, 0)

	if died := e.TakeDamage(5); !died {
		t.Fatal("Expected lethal hit")
	}

	// Смерть обрабатывается ровно один раз: повторные удары - no-op
	if died := e.TakeDamage(5); died {
		t.Error("Second lethal report for the same entity")
	}
	if e.Combat.HP != 0 {
		t.Errorf("HP = %d after hitting a corpse, want 0", e.Combat.HP)
	}
	if e.Alive {
		t.Error("No revival path exists")
	}
}

func TestTakeDamage_NegativeAmount(t *testing.T) {
	e := makeFighter(10, 10, 0, 0)
	e.TakeDamage(-5)
	if e.Combat.HP != 10 {
		t.Errorf("Negative damage healed the target: HP = %d", e.Combat.HP)
	}
}

func TestHeal_ClampsAtMax(t *testing.T) {
	e := makeFighter(6, 10, 0, 0)

	if healed := e.Heal(100); healed != 4 {
		t.Errorf("Healed %d, want 4 (clamped at MaxHP)", healed)
	}
	if e.Combat.HP != 10 {
		t.Errorf("HP = %d, want 10", e.Combat.HP)
	}
}

func TestHeal_NoNecromancy(t *testing.T) {
	e := makeFighter(0, 10, 0, 0)
	e.Alive = false

	if healed := e.Heal(5); healed != 0 {
		t.Errorf("Healed a corpse for %d", healed)
	}
	if e.Alive {
		t.Error("Healing must not revive")
	}
}

func TestHeal_NonPositiveAmount(t *testing.T) {
	e := makeFighter(5, 10, 0, 0)
	if healed := e.Heal(0); healed != 0 {
		t.Errorf("Heal(0) healed %d", healed)
	}
	if healed := e.Heal(-3); healed != 0 {
		t.Errorf("Heal(-3) healed %d", healed)
	}
}

func TestPairByID_Distinct(t *testing.T) {
	a := &Entity{ID: "a"}
	b := &Entity{ID: "b"}
	entities := []*Entity{a, b}

	ea, eb := PairByID(entities, "a", "b")
	if ea != a || eb != b {
		t.Error("PairByID returned wrong entities")
	}
}

func TestPairByID_AliasedPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("PairByID with equal IDs must panic (precondition violation)")
		}
	}()

	entities := []*Entity{{ID: "a"}}
	PairByID(entities, "a", "a")
}

func TestInventory_Capacity(t *testing.T) {
	inv := NewInventory(2)

	if err := inv.Add(&Entity{ID: "1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := inv.Add(&Entity{ID: "2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := inv.Add(&Entity{ID: "3"})
	if err == nil {
		t.Fatal("Expected CapacityError on overflow")
	}
	if _, ok := err.(*CapacityError); !ok {
		t.Errorf("Expected CapacityError, got %T", err)
	}
	if inv.Len() != 2 {
		t.Errorf("Len = %d after rejected add, want 2", inv.Len())
	}
}

func TestInventory_RemoveKeepsOrder(t *testing.T) {
	inv := NewInventory(5)
	for _, id := range []EntityID{"a", "b", "c"} {
		_ = inv.Add(&Entity{ID: id})
	}

	removed := inv.Remove(1)
	if removed == nil || removed.ID != "b" {
		t.Fatal("Remove(1) should return the middle item")
	}
	if inv.At(0).ID != "a" || inv.At(1).ID != "c" {
		t.Error("Remaining items lost their order")
	}
	if inv.Remove(10) != nil {
		t.Error("Out-of-range remove should return nil")
	}
}
