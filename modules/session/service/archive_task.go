package service

import (
	"context"
	"encoding/json"
	"fmt"

	"focusflow-api/core/constants"
	"focusflow-api/core/logger"
	"focusflow-api/core/storage"
	"focusflow-api/modules/session/dto"

	"github.com/hibiken/asynq"
)

// ArchivePayload is the session:archive task body.
type ArchivePayload struct {
	UserID  string             `json:"user_id"`
	Summary dto.SessionSummary `json:"summary"`
}

// NewArchiveTask builds the asynq task for a produced summary.
func NewArchiveTask(userID string, summary *dto.SessionSummary) (*asynq.Task, error) {
	payload, err := json.Marshal(ArchivePayload{UserID: userID, Summary: *summary})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskSessionArchive, payload), nil
}

// ArchiveTaskHandler uploads summary JSON documents to the configured
// bucket. Registered on the asynq mux by core/server.
type ArchiveTaskHandler struct {
	archiver *storage.Archiver
}

func NewArchiveTaskHandler(archiver *storage.Archiver) *ArchiveTaskHandler {
	return &ArchiveTaskHandler{archiver: archiver}
}

func (h *ArchiveTaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload ArchivePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		// Malformed payloads will never succeed; drop instead of retrying.
		logger.Error("ArchiveTaskHandler:BadPayload", "error", err)
		return fmt.Errorf("unmarshal archive payload: %v: %w", err, asynq.SkipRetry)
	}

	if h.archiver == nil {
		logger.Debug("ArchiveTaskHandler:Disabled", "session_id", payload.Summary.SessionID)
		return nil
	}

	key := fmt.Sprintf("summaries/%s/%s.json", payload.UserID, payload.Summary.SessionID)
	body, _ := json.Marshal(payload.Summary)

	if err := h.archiver.PutJSON(ctx, key, body); err != nil {
		logger.Error("ArchiveTaskHandler:Upload", "key", key, "error", err)
		return err
	}

	logger.Info("ArchiveTaskHandler:Archived", "key", key)
	return nil
}
