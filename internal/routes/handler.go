package routes

import (
	"Cartera/internal/domain/bankaccount"
	"Cartera/internal/domain/creditcard"
	"Cartera/internal/domain/summary"
	"Cartera/internal/domain/transaction"
	"Cartera/internal/domain/workspace"
	appErrors "Cartera/internal/errors"
	"Cartera/internal/logger"
	"Cartera/internal/pkg"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	WorkspaceService   workspace.Service
	AccountService     bankaccount.Service
	TransactionService transaction.Service
	SummaryService     summary.Service
	CreditCardService  creditcard.Service
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 10
	}

	return &pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
