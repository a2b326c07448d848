package domain

// Категории сообщений игрового лога
const (
	LogInfo    = "INFO"
	LogCombat  = "COMBAT"
	LogWarning = "WARNING"
	LogError   = "ERROR"
)

// LogEntry - запись в игровом логе. Лог только растет (append-only),
// презентация (перенос строк, цвета) - забота клиента.
type LogEntry struct {
	Text string `json:"text"`
	Type string `json:"type"` // INFO, COMBAT, WARNING, ERROR
}

// MessageLog - append-only лог сессии.
type MessageLog struct {
	Entries []LogEntry `json:"entries"`
}

// Add добавляет запись в конец лога.
func (l *MessageLog) Add(text, logType string) {
	l.Entries = append(l.Entries, LogEntry{Text: text, Type: logType})
}

// Since возвращает записи, добавленные после отметки n.
// Клиенту каждый тик уходят только новые сообщения.
func (l *MessageLog) Since(n int) []LogEntry {
	if n < 0 || n > len(l.Entries) {
		return nil
	}
	return l.Entries[n:]
}

// Len возвращает текущую отметку лога.
func (l *MessageLog) Len() int {
	return len(l.Entries)
}
