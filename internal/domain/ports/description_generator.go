package ports

import "context"

// DescriptionGenerator abstrae el proveedor de IA que redacta la descripción.
type DescriptionGenerator interface {
	GenerateDescription(ctx context.Context, prompt string) (string, error)
}
