package favorite

import (
	"gastrobot/internal/favorite"
	"gastrobot/internal/responses"
	"gastrobot/internal/structs"
	"gastrobot/pkg/logger"
	"gastrobot/pkg/reply"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		GetByTgID(c *gin.Context)
	}

	Params struct {
		fx.In
		Logger      logger.Logger
		FavoriteSvc favorite.Service
	}

	handler struct {
		logger      logger.Logger
		favoriteSvc favorite.Service
	}
)

func New(p Params) Handler {
	return &handler{
		logger:      p.Logger,
		favoriteSvc: p.FavoriteSvc,
	}
}

func (h *handler) GetByTgID(c *gin.Context) {
	var (
		response structs.Response
		ctx      = c.Request.Context()
	)

	defer func() { reply.Json(c.Writer, response.Code, &response) }()

	tgID, err := cast.ToInt64E(c.Param("telegram_id"))
	if err != nil || tgID == 0 {
		h.logger.Warn(ctx, " invalid telegram id", zap.String("telegram_id", c.Param("telegram_id")))
		response = responses.BadRequest
		return
	}

	list, err := h.favoriteSvc.ListFavorites(ctx, tgID)
	if err != nil {
		h.logger.Error(ctx, " err on h.favoriteSvc.ListFavorites", zap.Error(err))
		response = responses.InternalErr
		return
	}

	response = responses.Success
	response.Payload = list
}
