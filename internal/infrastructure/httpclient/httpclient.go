package httpclient

import (
	"net/http"
	"time"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewDefault retorna el cliente HTTP usado para todas las llamadas salientes.
// Cada llamada es independiente y está acotada por el timeout del cliente.
func NewDefault() *http.Client {
	return &http.Client{
		Timeout: 20 * time.Second,
	}
}
