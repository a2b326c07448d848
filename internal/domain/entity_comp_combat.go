package domain

// TakeDamage наносит урон. Возвращает true, если этот удар стал смертельным.
// Для уже погибшей сущности вызов - no-op (смерть обрабатывается ровно один раз).
func (e *Entity) TakeDamage(amount int) bool {
	if e.Combat == nil || !e.Alive {
		return false
	}
	if amount < 0 {
		amount = 0
	}
	if amount > e.Combat.HP {
		amount = e.Combat.HP
	}

	e.Combat.HP -= amount

	if e.Combat.HP <= 0 {
		e.Combat.HP = 0
		e.Alive = false
		return true
	}
	return false
}

// Heal лечит сущность, HP ограничен MaxHP.
// Трупы не лечим! Нет некромантии!
func (e *Entity) Heal(amount int) int {
	if e.Combat == nil || !e.Alive || amount <= 0 {
		return 0
	}
	before := e.Combat.HP
	e.Combat.HP += amount
	if e.Combat.HP > e.Combat.MaxHP {
		e.Combat.HP = e.Combat.MaxHP
	}
	return e.Combat.HP - before
}
