package routes

import (
	"net/http"

	"Cartera/internal/contracts"
	"Cartera/internal/domain/transaction"
	appErrors "Cartera/internal/errors"
	"Cartera/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateTransaction(c *gin.Context) {
	workspaceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	var body contracts.TransactionCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	accountID, err := pkg.ParseULIDPtr(body.BankAccountID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("bank_account_id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	tx, err := h.TransactionService.CreateTransaction(ctx, &transaction.CreateTransactionRequest{
		WorkspaceId:   workspaceID,
		BankAccountId: accountID,
		Type:          transaction.Type(body.Type),
		Amount:        body.Amount,
		Description:   body.Description,
		Date:          body.Date,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransactionCreateResponse{
		Message:     "Transacao registrada com sucesso",
		Transaction: tx,
	})
}

func (h *Handler) ListTransactions(c *gin.Context) {
	workspaceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	transactions, total, err := h.TransactionService.ListTransactions(ctx, workspaceID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(transactions, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	tx, err := h.TransactionService.GetTransactionById(ctx, transactionID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionSingleResponse{Transaction: tx})
}
