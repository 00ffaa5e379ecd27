package handlers

import (
	"net/http"

	"github.com/rafaelmtz/leadtracker/internal/entity"
)

type ClientHandler struct {
	Clients entity.ClientRepositoryInterface
}

func NewClientHandler(clients entity.ClientRepositoryInterface) *ClientHandler {
	return &ClientHandler{Clients: clients}
}

func (h *ClientHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Clients.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, clients)
}
