package models

type (
	// PRData contiene la información de una Pull Request necesaria para
	// decidir si se genera la descripción.
	PRData struct {
		Number int
		Title  string
		Body   string
		Author string
	}

	// ChangedFile es una entrada del listado paginado de archivos del PR.
	// Patch queda vacío para archivos sin diff textual (por ejemplo binarios
	// eliminados); esas entradas se conservan pero no aportan al prompt.
	ChangedFile struct {
		Filename string
		Patch    string
	}
)
