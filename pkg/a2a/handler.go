// Package a2a holds the request-handling seam between the HTTP transport
// and the task manager that owns agent execution and task state.
package a2a

import (
	"context"

	"trpc.group/trpc-go/trpc-a2a-go/protocol"
	"trpc.group/trpc-go/trpc-a2a-go/taskmanager"
)

// Handler forwards protocol operations to an injected task manager. The
// message-send and get-task paths delegate explicitly so a deployment can
// slot instrumentation or policy in front of them later without touching
// the delegate; every other operation is promoted from the embedded
// interface unchanged.
type Handler struct {
	taskmanager.TaskManager
}

var _ taskmanager.TaskManager = (*Handler)(nil)

// NewHandler wraps the given task manager. The same instance is expected
// to back the handler for the whole process lifetime.
func NewHandler(inner taskmanager.TaskManager) *Handler {
	return &Handler{TaskManager: inner}
}

func (h *Handler) OnSendMessage(ctx context.Context, request protocol.SendMessageParams) (*protocol.MessageResult, error) {
	return h.TaskManager.OnSendMessage(ctx, request)
}

func (h *Handler) OnGetTask(ctx context.Context, params protocol.TaskQueryParams) (*protocol.Task, error) {
	return h.TaskManager.OnGetTask(ctx, params)
}
