package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"enthro-backend/domain/model"
	"enthro-backend/infrastructure/logger"
	"enthro-backend/usecase"
)

type IStreamHandler interface {
	CreateStream(c *gin.Context)
	StartStream(c *gin.Context)
	EndStream(c *gin.Context)
	JoinStream(c *gin.Context)
	LikeStream(c *gin.Context)
	DislikeStream(c *gin.Context)
	GetStreams(c *gin.Context)
	GetStream(c *gin.Context)
}

type StreamHandler struct {
	lifecycleUsecase  usecase.ILifecycleUsecase
	engagementUsecase usecase.IEngagementUsecase
	queryUsecase      usecase.IQueryUsecase
}

func NewStreamHandler(
	lifecycleUsecase usecase.ILifecycleUsecase,
	engagementUsecase usecase.IEngagementUsecase,
	queryUsecase usecase.IQueryUsecase,
) IStreamHandler {
	return &StreamHandler{
		lifecycleUsecase:  lifecycleUsecase,
		engagementUsecase: engagementUsecase,
		queryUsecase:      queryUsecase,
	}
}

func (h *StreamHandler) CreateStream(c *gin.Context) {
	var req model.Stream
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, fmt.Sprintf("%s %v", ErrorUnmarshal, err.Error()))
		return
	}
	req.Streamer = normalizeAddress(req.Streamer)

	stream, err := h.lifecycleUsecase.CreateStream(c.Request.Context(), req)
	writeCreated(c, stream, err)
}

// StartStream assigns the server/key pair handed out by the media provider
// and flips the stream live.
func (h *StreamHandler) StartStream(c *gin.Context) {
	streamAddress := c.Param("streamAddress")
	server := c.Query("streamServer")
	key := c.Query("streamKey")
	writeToggle(c, h.lifecycleUsecase.StartStream(c.Request.Context(), streamAddress, server, key))
}

func (h *StreamHandler) EndStream(c *gin.Context) {
	writeToggle(c, h.lifecycleUsecase.EndStream(c.Request.Context(), c.Param("streamAddress")))
}

func (h *StreamHandler) JoinStream(c *gin.Context) {
	viewer := normalizeAddress(c.Param("viewer"))
	writeToggle(c, h.engagementUsecase.JoinStream(c.Request.Context(), viewer, c.Param("streamAddress")))
}

func (h *StreamHandler) LikeStream(c *gin.Context) {
	viewer := normalizeAddress(c.Param("viewer"))
	writeToggle(c, h.engagementUsecase.LikeStream(c.Request.Context(), viewer, c.Param("streamAddress")))
}

func (h *StreamHandler) DislikeStream(c *gin.Context) {
	viewer := normalizeAddress(c.Param("viewer"))
	writeToggle(c, h.engagementUsecase.DislikeStream(c.Request.Context(), viewer, c.Param("streamAddress")))
}

func (h *StreamHandler) GetStreams(c *gin.Context) {
	page := parsePage(c)
	streamer := normalizeAddress(c.Query("streamer"))
	streams, err := h.queryUsecase.GetStreams(c.Request.Context(), page, streamer)
	writeLookup(c, streams, err)
}

func (h *StreamHandler) GetStream(c *gin.Context) {
	stream, err := h.queryUsecase.GetStream(c.Request.Context(), c.Param("id"))
	writeLookup(c, stream, err)
}
