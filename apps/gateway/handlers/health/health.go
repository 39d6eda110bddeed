package health

import (
	"net/http"

	"gastrobot/pkg/reply"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		Health(c *gin.Context)
	}

	handler struct{}
)

func New() Handler {
	return &handler{}
}

func (h *handler) Health(c *gin.Context) {
	reply.Json(c.Writer, http.StatusOK, gin.H{"status": "ok"})
}
