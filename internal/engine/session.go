package engine

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/sir-pinecone/rusty-roguelike/internal/domain"
	"github.com/sir-pinecone/rusty-roguelike/internal/fov"
	"github.com/sir-pinecone/rusty-roguelike/internal/systems"
	"github.com/sir-pinecone/rusty-roguelike/pkg/dungeon"
	"github.com/sir-pinecone/rusty-roguelike/pkg/logger"
	"github.com/sir-pinecone/rusty-roguelike/pkg/utils"
)

// Session - одна игровая сессия: карта, сущности, инвентарь, лог.
// Вся мутация происходит в одной горутине (см. Loop), локов нет.
type Session struct {
	Cfg Config

	Map      *domain.GameMap
	Entities []*domain.Entity
	Player   *domain.Entity

	Inventory *domain.Inventory
	Log       *domain.MessageLog

	// Running гаснет только через исход Exit.
	Running bool

	Rng     *rand.Rand
	Tracker *systems.VisibilityTracker
}

// NewSession генерирует уровень и собирает сессию.
// Ошибка конфигурации фатальна и возвращается ДО первого тика.
func NewSession(cfg Config) (*Session, error) {
	return NewSessionWithOracle(cfg, fov.New())
}

// NewSessionWithOracle позволяет подменить FOV-оракул (в тестах).
func NewSessionWithOracle(cfg Config, oracle systems.FOVOracle) (*Session, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))

	gameMap, entities, startPos, err := dungeon.Generate(cfg.Gen, rng)
	if err != nil {
		return nil, err
	}

	player := dungeon.CreatePlayer(domain.EntityID(utils.GenerateID()), startPos)
	// Игрок идет первым: порядок обхода сущностей - по возрастанию индекса
	entities = append([]*domain.Entity{player}, entities...)

	s := &Session{
		Cfg:       cfg,
		Map:       gameMap,
		Entities:  entities,
		Player:    player,
		Inventory: domain.NewInventory(cfg.InventoryCapacity),
		Log:       &domain.MessageLog{},
		Running:   true,
		Rng:       rng,
		Tracker:   systems.NewVisibilityTracker(oracle, gameMap, cfg.TorchRadius, cfg.LightWalls, cfg.FOVAlgorithm),
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "session",
		"seed":      cfg.Seed,
		"entities":  len(entities),
		"spawn":     startPos,
	}).Info("Session created.")

	return s, nil
}

// removeFromWorld убирает сущность из мировой коллекции swap-удалением:
// снятый элемент меняется местами с последним. Дешево, но инвалидирует
// любые позиционные индексы - поэтому идентичность сущностей держится
// на EntityID, а не на индексах.
func (s *Session) removeFromWorld(id domain.EntityID) {
	for i, e := range s.Entities {
		if e.ID == id {
			last := len(s.Entities) - 1
			s.Entities[i] = s.Entities[last]
			s.Entities[last] = nil
			s.Entities = s.Entities[:last]
			return
		}
	}
}
