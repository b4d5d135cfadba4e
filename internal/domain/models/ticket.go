package models

// TicketInfo es la información extraída de un ticket del issue tracker.
// Description es texto plano, ya aplanado desde el documento estructurado.
type TicketInfo struct {
	Key         string
	Description string
}
