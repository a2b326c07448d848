package domain

import "math"

// DistanceTo возвращает точное расстояние до другой точки (float)
func (p Position) DistanceTo(other Position) float64 {
	return math.Sqrt(math.Pow(float64(p.X-other.X), 2) + math.Pow(float64(p.Y-other.Y), 2))
}

// StepTowards возвращает единичный шаг в сторону цели: дельта делится на
// евклидово расстояние, каждая ось округляется независимо до {-1, 0, 1}.
// Путь не ищется - у вогнутых препятствий шаг может упереться в стену.
func (p Position) StepTowards(target Position) (int, int) {
	dist := p.DistanceTo(target)
	if dist == 0 {
		return 0, 0
	}
	dx := int(math.Round(float64(target.X-p.X) / dist))
	dy := int(math.Round(float64(target.Y-p.Y) / dist))
	return dx, dy
}

// Shift возвращает новую позицию со смещением (не меняя текущую,
// т.к. Go передает структуры по значению, если не указатель)
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}
