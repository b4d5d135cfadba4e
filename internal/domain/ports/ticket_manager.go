package ports

import (
	"context"

	"github.com/thomas-vilte/pr-autofill/internal/domain/models"
)

// TicketManager abstrae el issue tracker. Las fallas de esta interfaz se
// toleran aguas arriba: el pipeline degrada a una descripción vacía.
type TicketManager interface {
	GetTicketInfo(ctx context.Context, key string) (models.TicketInfo, error)
}
