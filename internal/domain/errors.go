package domain

import "fmt"

// ConfigurationError - несовместимые параметры генерации (границы комнат
// не влезают в карту). Фатальна на старте, до первого тика.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// CapacityError - инвентарь полон при подборе. Восстановимая: действие
// отменяется, игроку уходит сообщение в лог.
type CapacityError struct {
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("inventory is full (capacity %d)", e.Capacity)
}
