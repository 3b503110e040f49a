package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"enthro-backend/domain/model"
	"enthro-backend/infrastructure/logger"
	"enthro-backend/usecase"
)

type IAccountHandler interface {
	CreateAccount(c *gin.Context)
	GetAccount(c *gin.Context)
	FollowAccount(c *gin.Context)
	UnfollowAccount(c *gin.Context)
}

type AccountHandler struct {
	lifecycleUsecase  usecase.ILifecycleUsecase
	engagementUsecase usecase.IEngagementUsecase
	queryUsecase      usecase.IQueryUsecase
}

func NewAccountHandler(
	lifecycleUsecase usecase.ILifecycleUsecase,
	engagementUsecase usecase.IEngagementUsecase,
	queryUsecase usecase.IQueryUsecase,
) IAccountHandler {
	return &AccountHandler{
		lifecycleUsecase:  lifecycleUsecase,
		engagementUsecase: engagementUsecase,
		queryUsecase:      queryUsecase,
	}
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req model.Account
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, fmt.Sprintf("%s %v", ErrorUnmarshal, err.Error()))
		return
	}
	req.Address = normalizeAddress(req.Address)

	account, err := h.lifecycleUsecase.CreateAccount(c.Request.Context(), req)
	writeCreated(c, account, err)
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.queryUsecase.GetAccount(c.Request.Context(), normalizeAddress(c.Param("id")))
	writeLookup(c, account, err)
}

func (h *AccountHandler) FollowAccount(c *gin.Context) {
	streamer := normalizeAddress(c.Param("streamer"))
	viewer := normalizeAddress(c.Param("viewer"))
	writeToggle(c, h.engagementUsecase.Follow(c.Request.Context(), streamer, viewer))
}

func (h *AccountHandler) UnfollowAccount(c *gin.Context) {
	streamer := normalizeAddress(c.Param("streamer"))
	viewer := normalizeAddress(c.Param("viewer"))
	writeToggle(c, h.engagementUsecase.Unfollow(c.Request.Context(), streamer, viewer))
}
