package routes

import (
	"net/http"

	"Cartera/internal/contracts"
	"Cartera/internal/domain/workspace"
	appErrors "Cartera/internal/errors"
	"Cartera/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateWorkspace(c *gin.Context) {
	var body contracts.WorkspaceCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	ws, err := h.WorkspaceService.CreateWorkspace(ctx, &workspace.CreateWorkspaceRequest{
		Name:   body.Name,
		Shared: body.Shared,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.WorkspaceCreateResponse{
		Message:   "Workspace criado com sucesso",
		Workspace: ws,
	})
}

func (h *Handler) GetWorkspace(c *gin.Context) {
	workspaceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	ws, err := h.WorkspaceService.GetWorkspaceById(ctx, workspaceID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.WorkspaceSingleResponse{Workspace: ws})
}

func (h *Handler) GetWorkspaceSummary(c *gin.Context) {
	workspaceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato invalido"))
		return
	}

	year, err := pkg.ParseInt(c.Param("year"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("year", "formato invalido"))
		return
	}
	month, err := pkg.ParseInt(c.Param("month"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("month", "formato invalido"))
		return
	}

	ctx := c.Request.Context()
	periodSummary, err := h.SummaryService.GetSummary(ctx, workspaceID, year, month)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.SummarySingleResponse{Summary: periodSummary})
}
