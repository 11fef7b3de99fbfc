package health

import "context"

// Pinger определяет интерфейс для проверки доступности хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}
