package dungeon

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/sir-pinecone/rusty-roguelike/internal/domain"
	"github.com/sir-pinecone/rusty-roguelike/pkg/logger"
)

// Параметры генерации по умолчанию
const (
	MapWidth  = 80
	MapHeight = 45

	MaxRooms = 30
	MinSize  = 6
	MaxSize  = 10

	MaxRoomMonsters = 3
	MaxRoomItems    = 2
)

// Config хранит параметры генератора уровня.
type Config struct {
	Width, Height      int
	MaxRooms           int
	RoomMinSize        int
	RoomMaxSize        int
	MaxMonstersPerRoom int
	MaxItemsPerRoom    int
}

// DefaultConfig возвращает конфиг генерации по умолчанию.
func DefaultConfig() Config {
	return Config{
		Width:              MapWidth,
		Height:             MapHeight,
		MaxRooms:           MaxRooms,
		RoomMinSize:        MinSize,
		RoomMaxSize:        MaxSize,
		MaxMonstersPerRoom: MaxRoomMonsters,
		MaxItemsPerRoom:    MaxRoomItems,
	}
}

// Validate проверяет, что границы комнат совместимы с размерами карты.
// Ошибка конфигурации фатальна: генерация не стартует вовсе.
func (c Config) Validate() error {
	if c.Width < 3 || c.Height < 3 {
		return domain.NewConfigurationError("map %dx%d is too small", c.Width, c.Height)
	}
	if c.RoomMinSize < 3 {
		return domain.NewConfigurationError("room min size %d leaves no interior to carve", c.RoomMinSize)
	}
	if c.RoomMaxSize < c.RoomMinSize {
		return domain.NewConfigurationError("room size bounds inverted: [%d,%d]", c.RoomMinSize, c.RoomMaxSize)
	}
	if c.RoomMaxSize >= c.Width-1 || c.RoomMaxSize >= c.Height-1 {
		return domain.NewConfigurationError("room max size %d does not fit map %dx%d", c.RoomMaxSize, c.Width, c.Height)
	}
	if c.MaxRooms < 1 {
		return domain.NewConfigurationError("max rooms must be positive, got %d", c.MaxRooms)
	}
	if c.MaxMonstersPerRoom < 0 || c.MaxItemsPerRoom < 0 {
		return domain.NewConfigurationError("negative spawn counts")
	}
	return nil
}

// Rect - комната на этапе генерации. Полуоткрытый интервал: клетки с x1/y1
// по x2/y2 - граница, внутренность вырезается строго внутри нее.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect строит Rect из верхнего левого угла и размеров.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center возвращает центр комнаты.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects - тест пересечения, ВКЛЮЧИТЕЛЬНЫЙ по всем четырем границам:
// комнаты, касающиеся стенками, считаются пересекающимися, иначе между ними
// не останется стены.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// LevelBuilder предоставляет fluent API для создания уровней.
// Весь рандом берется из переданного rng: одинаковый сид и одинаковая
// последовательность вызовов дают идентичный уровень.
type LevelBuilder struct {
	cfg      Config
	rooms    []Rect
	gameMap  *domain.GameMap
	entities []*domain.Entity
	startPos domain.Position
	rng      *rand.Rand
}

// NewLevel создает новый builder для уровня.
func NewLevel(cfg Config, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		cfg:      cfg,
		entities: make([]*domain.Entity, 0),
		rng:      rng,
	}
}

func (b *LevelBuilder) randRange(min, max int) int {
	return b.rng.Intn(max-min+1) + min
}

// WithRooms генерирует комнаты, коридоры и населяет их.
//
// Делается cfg.MaxRooms попыток: кандидат, пересекающий (включительно) любую
// уже принятую комнату, отбрасывается. Принятая комната вырезается, соединяется
// Г-образным коридором с ПРЕДЫДУЩЕЙ принятой комнатой (порядок
// горизонталь/вертикаль - монетка на каждое соединение) и заселяется.
// Центр первой принятой комнаты - спавн игрока.
func (b *LevelBuilder) WithRooms() *LevelBuilder {
	b.gameMap = domain.NewGameMap(b.cfg.Width, b.cfg.Height)

	b.rooms = make([]Rect, 0, b.cfg.MaxRooms)
	for i := 0; i < b.cfg.MaxRooms; i++ {
		w := b.randRange(b.cfg.RoomMinSize, b.cfg.RoomMaxSize)
		h := b.randRange(b.cfg.RoomMinSize, b.cfg.RoomMaxSize)
		// Верхний левый угол выбирается так, чтобы комната влезла целиком
		x := b.rng.Intn(b.cfg.Width - w)
		y := b.rng.Intn(b.cfg.Height - h)

		newRoom := NewRect(x, y, w, h)

		failed := false
		for _, other := range b.rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}
		if failed {
			continue
		}

		b.carveRoom(newRoom)

		if len(b.rooms) == 0 {
			// Первая принятая комната: здесь появится игрок
			cx, cy := newRoom.Center()
			b.startPos = domain.Position{X: cx, Y: cy}
		} else {
			// Соединяем с непосредственно предыдущей принятой комнатой
			prevX, prevY := b.rooms[len(b.rooms)-1].Center()
			currX, currY := newRoom.Center()

			if b.rng.Intn(2) == 0 {
				b.carveHTunnel(prevX, currX, prevY)
				b.carveVTunnel(prevY, currY, currX)
			} else {
				b.carveVTunnel(prevY, currY, prevX)
				b.carveHTunnel(prevX, currX, currY)
			}
		}

		b.spawnMonsters(newRoom)
		b.spawnItems(newRoom)

		b.rooms = append(b.rooms, newRoom)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "level_generator",
		"rooms":     len(b.rooms),
		"entities":  len(b.entities),
		"start_pos": b.startPos,
	}).Info("Level carved.")

	return b
}

// carveRoom вырезает внутренность комнаты (строго внутри границы):
// две принятые комнаты, стоящие рядом, могут оставить между собой стену в один тайл.
func (b *LevelBuilder) carveRoom(room Rect) {
	for y := room.Y1 + 1; y < room.Y2; y++ {
		for x := room.X1 + 1; x < room.X2; x++ {
			b.gameMap.Carve(x, y)
		}
	}
}

func (b *LevelBuilder) carveHTunnel(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		b.gameMap.Carve(x, y)
	}
}

func (b *LevelBuilder) carveVTunnel(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		b.gameMap.Carve(x, y)
	}
}

// spawnMonsters заселяет комнату монстрами.
//
// Количество - равномерно из [0, MaxMonstersPerRoom]. Для каждого берется
// РОВНО ОДНА кандидатная клетка; коллизия с террейном или блокирующей
// сущностью - пропуск БЕЗ повторной попытки. Это сознательное упрощение:
// отклоненный слот дает меньше монстров, зато последовательность вызовов rng
// фиксирована и уровень строго детерминирован.
func (b *LevelBuilder) spawnMonsters(room Rect) {
	count := b.rng.Intn(b.cfg.MaxMonstersPerRoom + 1)

	for i := 0; i < count; i++ {
		x := b.randRange(room.X1+1, room.X2-1)
		y := b.randRange(room.Y1+1, room.Y2-1)

		if b.isOccupied(x, y) {
			continue
		}

		// Бросок вида делается только для успешно размещенного монстра:
		// последовательность вызовов rng при пропуске не удлиняется.
		roll := b.rng.Float64()
		tmpl := PickMonster(roll)
		b.entities = append(b.entities, tmpl.Spawn(domain.Position{X: x, Y: y}))
	}
}

// spawnItems заселяет комнату предметами. Та же схема одной попытки:
// предметы не блокируют проход, поэтому могут лежать по нескольку на клетке.
func (b *LevelBuilder) spawnItems(room Rect) {
	count := b.rng.Intn(b.cfg.MaxItemsPerRoom + 1)

	for i := 0; i < count; i++ {
		x := b.randRange(room.X1+1, room.X2-1)
		y := b.randRange(room.Y1+1, room.Y2-1)

		if b.isOccupied(x, y) {
			continue
		}

		b.entities = append(b.entities, NewHealingPotion(domain.Position{X: x, Y: y}))
	}
}

// isOccupied: клетка непроходима или занята блокирующей сущностью.
func (b *LevelBuilder) isOccupied(x, y int) bool {
	if b.gameMap.IsWall(x, y) {
		return true
	}
	for _, e := range b.entities {
		if e.Blocks && e.Pos.X == x && e.Pos.Y == y {
			return true
		}
	}
	return false
}

// Rooms возвращает принятые комнаты (для тестов и отладки).
func (b *LevelBuilder) Rooms() []Rect {
	return b.rooms
}

// Build собирает и возвращает готовый уровень.
func (b *LevelBuilder) Build() (*domain.GameMap, []*domain.Entity, domain.Position) {
	return b.gameMap, b.entities, b.startPos
}

// Generate - главная точка входа: валидирует конфиг и строит уровень.
func Generate(cfg Config, rng *rand.Rand) (*domain.GameMap, []*domain.Entity, domain.Position, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, domain.Position{}, err
	}

	gameMap, entities, startPos := NewLevel(cfg, rng).WithRooms().Build()
	return gameMap, entities, startPos, nil
}
