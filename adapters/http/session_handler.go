package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-crafter/internal/store"
)

type SessionHandler struct {
	registry *store.Registry
}

func NewSessionHandler(registry *store.Registry) *SessionHandler {
	return &SessionHandler{registry: registry}
}

// CreateSession starts an editing session seeded with the default
// portfolio and returns its id plus the initial snapshot.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	id, st := h.registry.Create()

	c.Header(SessionHeader, id)
	c.JSON(http.StatusCreated, gin.H{
		"session_id": id,
		"snapshot":   ToSnapshotDTO(st.Snapshot()),
	})
}
