package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"enthro-backend/domain/model"
	"enthro-backend/infrastructure/logger"
	"enthro-backend/usecase"
)

type IChannelHandler interface {
	CreateChannel(c *gin.Context)
	GetChannels(c *gin.Context)
	GetChannel(c *gin.Context)
}

type ChannelHandler struct {
	lifecycleUsecase usecase.ILifecycleUsecase
	queryUsecase     usecase.IQueryUsecase
}

func NewChannelHandler(
	lifecycleUsecase usecase.ILifecycleUsecase,
	queryUsecase usecase.IQueryUsecase,
) IChannelHandler {
	return &ChannelHandler{
		lifecycleUsecase: lifecycleUsecase,
		queryUsecase:     queryUsecase,
	}
}

func (h *ChannelHandler) CreateChannel(c *gin.Context) {
	var req model.Channel
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, fmt.Sprintf("%s %v", ErrorUnmarshal, err.Error()))
		return
	}
	req.Owner = normalizeAddress(req.Owner)

	channel, err := h.lifecycleUsecase.CreateChannel(c.Request.Context(), req)
	writeCreated(c, channel, err)
}

func (h *ChannelHandler) GetChannels(c *gin.Context) {
	page := parsePage(c)
	channels, err := h.queryUsecase.GetChannels(c.Request.Context(), page)
	writeLookup(c, channels, err)
}

func (h *ChannelHandler) GetChannel(c *gin.Context) {
	channel, err := h.queryUsecase.GetChannel(c.Request.Context(), normalizeAddress(c.Param("id")))
	writeLookup(c, channel, err)
}

func parsePage(c *gin.Context) int64 {
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
