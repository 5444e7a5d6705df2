package contracts

import "Cartera/internal/domain/workspace"

type WorkspaceCreateRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Shared bool   `json:"shared"`
}

type WorkspaceCreateResponse struct {
	Message   string               `json:"message"`
	Workspace *workspace.Workspace `json:"workspace"`
}

type WorkspaceSingleResponse struct {
	Workspace *workspace.Workspace `json:"workspace"`
}
