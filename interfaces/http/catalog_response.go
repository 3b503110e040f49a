package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"enthro-backend/domain/dto"
	"enthro-backend/infrastructure/logger"
	"enthro-backend/usecase"
)

const (
	ErrorUnmarshal = "Error while unmarshal"

	// anonymousViewer is the wire sentinel the web client sends when no
	// wallet is connected. It maps to the empty identity inside the core.
	anonymousViewer = "undefined"
)

// normalizeAddress lowercases a wallet address and collapses the wire
// sentinel into the empty identity. The core never re-normalizes.
func normalizeAddress(raw string) string {
	if raw == "" || raw == anonymousViewer {
		return ""
	}
	return strings.ToLower(raw)
}

func writeCreated(c *gin.Context, record interface{}, err error) {
	switch {
	case errors.Is(err, usecase.ErrDuplicate):
		c.JSON(http.StatusConflict, dto.Res{ResponseCode: "409", ResponseMessage: "Already exists"})
	case err != nil:
		logger.GetLogger().WithField("error", err).Error("Error while creating record")
		c.JSON(http.StatusInternalServerError, dto.Res{ResponseCode: "500", ResponseMessage: "Internal server error"})
	default:
		c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "Success", Data: record})
	}
}

func writeLookup(c *gin.Context, record interface{}, err error) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Res{ResponseCode: "404", ResponseMessage: "Not found"})
	case err != nil:
		logger.GetLogger().WithField("error", err).Error("Error while fetching record")
		c.JSON(http.StatusInternalServerError, dto.Res{ResponseCode: "500", ResponseMessage: "Internal server error"})
	default:
		c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "Success", Data: record})
	}
}

func writeToggle(c *gin.Context, err error) {
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while applying toggle")
		c.JSON(http.StatusInternalServerError, dto.Res{ResponseCode: "500", ResponseMessage: "Internal server error", Data: false})
		return
	}
	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "Success", Data: true})
}
