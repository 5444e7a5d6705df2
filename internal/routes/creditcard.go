package routes

import (
	"net/http"

	"Cartera/internal/contracts"
	"Cartera/internal/domain/creditcard"
	appErrors "Cartera/internal/errors"
	"Cartera/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateCard(c *gin.Context) {
	var body contracts.CardCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	workspaceID, err := pkg.ParseULID(body.WorkspaceID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("workspace_id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	card, err := h.CreditCardService.CreateCard(ctx, &creditcard.CreateCardRequest{
		WorkspaceId:    workspaceID,
		Name:           body.Name,
		LastFourDigits: body.LastFourDigits,
		Issuer:         body.Issuer,
		Network:        creditcard.CardNetwork(body.Network),
		CutoffDay:      body.CutoffDay,
		DueDay:         body.DueDay,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.CardCreateResponse{
		Message: "Cartao criado com sucesso",
		Card:    card,
	})
}

func (h *Handler) GetCard(c *gin.Context) {
	cardID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	card, err := h.CreditCardService.GetCardById(ctx, cardID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CardSingleResponse{Card: card})
}

func (h *Handler) UpdateCard(c *gin.Context) {
	cardID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	var body contracts.CardUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &creditcard.UpdateCardRequest{
		Name:           body.Name,
		LastFourDigits: body.LastFourDigits,
		Issuer:         body.Issuer,
		CutoffDay:      body.CutoffDay,
		DueDay:         body.DueDay,
	}
	if body.Network != nil {
		network := creditcard.CardNetwork(*body.Network)
		req.Network = &network
	}

	ctx := c.Request.Context()
	if err := h.CreditCardService.UpdateCard(ctx, cardID, req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Cartao atualizado com sucesso"})
}

func (h *Handler) ListCards(c *gin.Context) {
	workspaceID, err := pkg.ParseULID(c.Query("workspace_id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("workspace_id", "formato invalido"))
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	cards, total, err := h.CreditCardService.ListCards(ctx, workspaceID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(cards, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) RegisterPurchase(c *gin.Context) {
	cardID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	var body contracts.PurchaseCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	purchase, err := h.CreditCardService.RegisterPurchase(ctx, &creditcard.RegisterPurchaseRequest{
		CardId:           cardID,
		Amount:           body.Amount,
		PurchaseDate:     body.PurchaseDate,
		InstallmentCount: body.InstallmentCount,
		Reason:           body.Reason,
		Counterparty:     body.Counterparty,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.PurchaseCreateResponse{
		Message:  "Compra registrada com sucesso",
		Purchase: purchase,
	})
}

func (h *Handler) ListPurchases(c *gin.Context) {
	cardID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	purchases, total, err := h.CreditCardService.ListPurchases(ctx, cardID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(purchases, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) DeletePurchase(c *gin.Context) {
	purchaseID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	if err := h.CreditCardService.DeletePurchase(ctx, purchaseID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Compra removida com sucesso"})
}

func (h *Handler) ListInstallments(c *gin.Context) {
	purchaseID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	installments, err := h.CreditCardService.ListInstallments(ctx, purchaseID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.InstallmentListResponse{
		Installments: installments,
		Total:        len(installments),
	})
}

func (h *Handler) ListStatements(c *gin.Context) {
	cardID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	statements, total, err := h.CreditCardService.ListStatements(ctx, cardID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := pkg.NewPaginatedResponse(statements, pagination.Page, pagination.Limit, total)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) GetStatement(c *gin.Context) {
	statementID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	statement, err := h.CreditCardService.GetStatementById(ctx, statementID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.StatementSingleResponse{Statement: statement})
}

func (h *Handler) PayStatement(c *gin.Context) {
	statementID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	var body contracts.StatementPayRequest
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
	err = h.CreditCardService.PayStatement(ctx, &creditcard.PayStatementRequest{
		StatementId:   statementID,
		Amount:        body.Amount,
		BankAccountId: accountID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Fatura paga com sucesso"})
}
