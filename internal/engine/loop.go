package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/sir-pinecone/rusty-roguelike/internal/domain"
	"github.com/sir-pinecone/rusty-roguelike/pkg/api"
	"github.com/sir-pinecone/rusty-roguelike/pkg/logger"
)

// Loop - строго синхронный игровой цикл одной сессии.
//
// Одна горутина владеет ВСЕЙ мутацией Map/Entities/Inventory; прием команды
// из канала - единственная точка ожидания, и она лежит на границе итерации,
// а не в середине действия. Параллелизма и локов нет по построению.
type Loop struct {
	session *Session

	// Commands - по одному внешнему намерению на итерацию.
	Commands chan domain.InternalCommand

	// Updates - снимок мира после каждого тика.
	Updates chan api.ServerResponse
}

func NewLoop(s *Session) *Loop {
	return &Loop{
		session:  s,
		Commands: make(chan domain.InternalCommand, 16),
		Updates:  make(chan api.ServerResponse, 16),
	}
}

// Run крутит цикл до исхода Exit (или закрытия канала команд).
// Exit наблюдается один раз за итерацию; отмены посреди действия нет.
func (l *Loop) Run() {
	loopLogger := logger.Log.WithFields(logrus.Fields{
		"component": "game_loop",
		"seed":      l.session.Cfg.Seed,
	})
	loopLogger.Info("Session loop started.")

	defer close(l.Updates)

	logMark := 0
	for cmd := range l.Commands {
		res := l.session.ProcessTick(cmd)

		msgType := "UPDATE"
		if cmd.Action == domain.ActionInit {
			msgType = "INIT"
		}

		l.Updates <- l.session.Snapshot(msgType, res, logMark)
		logMark = l.session.Log.Len()

		if res.Outcome == domain.Exit {
			loopLogger.Info("Session loop finished.")
			return
		}
	}

	loopLogger.Info("Command channel closed, session loop finished.")
}
