package ports

import (
	"context"

	"github.com/thomas-vilte/pr-autofill/internal/domain/models"
)

// VCSClient abstrae las operaciones contra la plataforma de hosting.
type VCSClient interface {
	// GetPR obtiene los metadatos del PR (título, body actual, autor).
	GetPR(ctx context.Context, prNumber int) (models.PRData, error)

	// ListChangedFiles recorre el listado paginado de archivos modificados
	// y devuelve las entradas en el orden que las retorna la API.
	ListChangedFiles(ctx context.Context, prNumber int) ([]models.ChangedFile, error)

	// UpdatePRBody escribe la descripción generada en el PR.
	UpdatePRBody(ctx context.Context, prNumber int, body string) error
}
