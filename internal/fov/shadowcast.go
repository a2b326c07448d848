// Package fov содержит дефолтную реализацию оракула поля зрения.
// Ядро симуляции зависит только от интерфейса systems.FOVOracle;
// этот пакет - его встроенный коллаборатор.
package fov

// AlgorithmShadowcast - рекурсивный shadowcasting по 8 октантам.
const AlgorithmShadowcast = "SHADOWCAST"

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// Shadowcaster хранит статичную непрозрачность уровня и результат
// последнего Compute.
type Shadowcaster struct {
	width, height int
	opaque        []bool
	visible       map[int]bool
	lightWalls    bool
}

func New() *Shadowcaster {
	return &Shadowcaster{visible: make(map[int]bool)}
}

// Init принимает геометрию один раз на уровень.
func (s *Shadowcaster) Init(width, height int, opaque []bool) {
	s.width = width
	s.height = height
	s.opaque = opaque
	s.visible = make(map[int]bool)
}

// Compute пересчитывает множество видимых клеток.
// Параметр algorithm оставлен для совместимости контракта: реализован
// только shadowcasting, незнакомое значение трактуется как он же.
func (s *Shadowcaster) Compute(originX, originY, radius int, lightWalls bool, algorithm string) {
	s.visible = make(map[int]bool)
	s.lightWalls = lightWalls

	if radius <= 0 {
		return // Слепой наблюдатель
	}
	if originX < 0 || originY < 0 || originX >= s.width || originY >= s.height {
		return
	}

	// Центр всегда виден
	s.markVisible(originX, originY)

	for i := 0; i < 8; i++ {
		s.castLight(originX, originY, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i])
	}
}

// IsVisible опрашивается после Compute.
func (s *Shadowcaster) IsVisible(x, y int) bool {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return false
	}
	return s.visible[y*s.width+x]
}

func (s *Shadowcaster) markVisible(x, y int) {
	if s.isOpaque(x, y) && !s.lightWalls {
		return
	}
	s.visible[y*s.width+x] = true
}

func (s *Shadowcaster) isOpaque(x, y int) bool {
	// Выход за границы считается блокирующим
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return true
	}
	return s.opaque[y*s.width+x]
}

func (s *Shadowcaster) castLight(cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int) {
	if start < end {
		return
	}

	radiusSq := float64(radius * radius)

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}
			dy = -j

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			gx := cx + dx*xx + dy*xy
			gy := cy + dx*yx + dy*yy

			if gx >= 0 && gy >= 0 && gx < s.width && gy < s.height {
				if float64(dx*dx+dy*dy) < radiusSq {
					s.markVisible(gx, gy)
				}
			}

			// Логика теней
			if blocked {
				// Мы идем вдоль стены...
				if s.isOpaque(gx, gy) {
					newStart = rSlope
					continue
				}
				// Стена кончилась, началась пустота
				blocked = false
				start = newStart
			} else {
				// Мы шли по пустоте и наткнулись на стену
				if s.isOpaque(gx, gy) && j < radius {
					blocked = true
					// Рекурсивно запускаем сканирование следующего ряда
					s.castLight(cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy)
					newStart = rSlope
				}
			}
		}
		if blocked {
			break
		}
	}
}
