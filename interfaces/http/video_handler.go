package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"enthro-backend/domain/model"
	"enthro-backend/infrastructure/logger"
	"enthro-backend/usecase"
)

type IVideoHandler interface {
	UploadVideo(c *gin.Context)
	WatchVideo(c *gin.Context)
	LikeVideo(c *gin.Context)
	DislikeVideo(c *gin.Context)
	GetVideos(c *gin.Context)
	GetVideo(c *gin.Context)
}

type VideoHandler struct {
	lifecycleUsecase  usecase.ILifecycleUsecase
	engagementUsecase usecase.IEngagementUsecase
	queryUsecase      usecase.IQueryUsecase
}

func NewVideoHandler(
	lifecycleUsecase usecase.ILifecycleUsecase,
	engagementUsecase usecase.IEngagementUsecase,
	queryUsecase usecase.IQueryUsecase,
) IVideoHandler {
	return &VideoHandler{
		lifecycleUsecase:  lifecycleUsecase,
		engagementUsecase: engagementUsecase,
		queryUsecase:      queryUsecase,
	}
}

func (h *VideoHandler) UploadVideo(c *gin.Context) {
	var req model.Video
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, fmt.Sprintf("%s %v", ErrorUnmarshal, err.Error()))
		return
	}
	req.Streamer = normalizeAddress(req.Streamer)

	video, err := h.lifecycleUsecase.UploadVideo(c.Request.Context(), req)
	writeCreated(c, video, err)
}

func (h *VideoHandler) WatchVideo(c *gin.Context) {
	viewer := normalizeAddress(c.Param("viewer"))
	writeToggle(c, h.engagementUsecase.WatchVideo(c.Request.Context(), viewer, c.Param("videoAddress")))
}

func (h *VideoHandler) LikeVideo(c *gin.Context) {
	viewer := normalizeAddress(c.Param("viewer"))
	writeToggle(c, h.engagementUsecase.LikeVideo(c.Request.Context(), viewer, c.Param("videoAddress")))
}

func (h *VideoHandler) DislikeVideo(c *gin.Context) {
	viewer := normalizeAddress(c.Param("viewer"))
	writeToggle(c, h.engagementUsecase.DislikeVideo(c.Request.Context(), viewer, c.Param("videoAddress")))
}

func (h *VideoHandler) GetVideos(c *gin.Context) {
	page := parsePage(c)
	streamer := normalizeAddress(c.Query("streamer"))
	videos, err := h.queryUsecase.GetVideos(c.Request.Context(), page, streamer)
	writeLookup(c, videos, err)
}

func (h *VideoHandler) GetVideo(c *gin.Context) {
	video, err := h.queryUsecase.GetVideo(c.Request.Context(), c.Param("id"))
	writeLookup(c, video, err)
}
