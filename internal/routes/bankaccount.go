package routes

import (
	"net/http"

	"Cartera/internal/contracts"
	"Cartera/internal/domain/bankaccount"
	appErrors "Cartera/internal/errors"
	"Cartera/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateAccount(c *gin.Context) {
	workspaceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	var body contracts.BankAccountCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	account, err := h.AccountService.CreateAccount(ctx, &bankaccount.CreateAccountRequest{
		WorkspaceId:    workspaceID,
		Name:           body.Name,
		Bank:           body.Bank,
		InitialBalance: body.InitialBalance,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.BankAccountCreateResponse{
		Message:     "Conta bancaria criada com sucesso",
		BankAccount: account,
	})
}

func (h *Handler) ListAccounts(c *gin.Context) {
	workspaceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	accounts, total, err := h.AccountService.ListAccounts(ctx, workspaceID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(accounts, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}
