package rest

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling/ease"
	"github.com/heartmarshall/myenglish-scheduler/internal/task"
	"github.com/heartmarshall/myenglish-scheduler/internal/transport/middleware"
)

//go:generate moq -out scheduling_service_mock_test.go -pkg rest . schedulingService
//go:generate moq -out sync_tracker_mock_test.go -pkg rest . syncTracker

// maxEaseDocumentSize bounds the body of an ease import.
const maxEaseDocumentSize = 16 << 20

type schedulingService interface {
	Reschedule(ctx context.Context, input scheduling.RescheduleInput, cp scheduling.Checkpointer) (scheduling.Result, error)
	Postpone(ctx context.Context, input scheduling.ShiftInput, cp scheduling.Checkpointer) (scheduling.Result, error)
	Advance(ctx context.Context, input scheduling.ShiftInput, cp scheduling.Checkpointer) (scheduling.Result, error)
	DisperseSiblings(ctx context.Context, input scheduling.DisperseInput, cp scheduling.Checkpointer) (scheduling.Result, error)
	AdjustEase(ctx context.Context, input scheduling.AdjustEaseInput, cp scheduling.Checkpointer) (scheduling.Result, error)
	ImportEase(ctx context.Context, deckID int64, r io.Reader, cp scheduling.Checkpointer) (scheduling.Result, error)
	ExportEase(ctx context.Context, deckID int64, w io.Writer) (int, error)
	PostponeCandidates(ctx context.Context, deckID *int64, minInterval int) (scheduling.CandidateCounts, error)
	AdvanceCandidates(ctx context.Context, deckID *int64, minInterval int) (scheduling.CandidateCounts, error)
	Undo(ctx context.Context, id uuid.UUID) (*domain.UndoEntry, error)
	CardEaseStats(ctx context.Context, cardID int64, newAnswer *domain.Grade) (ease.Stats, error)
	ApplyAnswer(ctx context.Context, cardID int64, grade domain.Grade) (ease.Stats, error)
	GetParams(ctx context.Context) (string, error)
	CheckParams(body string) ([]string, error)
	PutParams(ctx context.Context, body string) ([]string, error)
}

type syncTracker interface {
	Begin(ctx context.Context) (uuid.UUID, error)
	Finish(ctx context.Context, id uuid.UUID, cp scheduling.Checkpointer) (scheduling.SyncReport, error)
}

type taskRunner interface {
	Submit(kind string, fn task.Func, onDone func(*task.Handle)) (*task.Handle, error)
	Get(id uuid.UUID) (*task.Handle, error)
}

// OperationsHandler serves the operator API. Bulk operations are queued on
// the task runner and answered with 202 and the task.
type OperationsHandler struct {
	svc   schedulingService
	sync  syncTracker
	tasks taskRunner
	log   *slog.Logger
}

// NewOperationsHandler creates an OperationsHandler.
func NewOperationsHandler(svc schedulingService, sync syncTracker, tasks taskRunner, logger *slog.Logger) *OperationsHandler {
	return &OperationsHandler{
		svc:   svc,
		sync:  sync,
		tasks: tasks,
		log:   logger.With("handler", "operations"),
	}
}

// Register mounts the routes on mux.
func (h *OperationsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/operations/reschedule", h.Reschedule)
	mux.HandleFunc("POST /api/v1/operations/postpone", h.Postpone)
	mux.HandleFunc("POST /api/v1/operations/advance", h.Advance)
	mux.HandleFunc("POST /api/v1/operations/disperse", h.Disperse)
	mux.HandleFunc("POST /api/v1/operations/adjust-ease", h.AdjustEase)

	mux.HandleFunc("GET /api/v1/tasks/{id}", h.GetTask)
	mux.HandleFunc("DELETE /api/v1/tasks/{id}", h.CancelTask)

	mux.HandleFunc("GET /api/v1/postpone/candidates", h.PostponeCandidates)
	mux.HandleFunc("GET /api/v1/advance/candidates", h.AdvanceCandidates)

	mux.HandleFunc("POST /api/v1/undo/{id}", h.Undo)
	mux.HandleFunc("GET /api/v1/cards/{id}/ease", h.CardEase)
	mux.HandleFunc("POST /api/v1/cards/{id}/answer", h.Answer)

	mux.HandleFunc("GET /api/v1/decks/{id}/ease", h.ExportEase)
	mux.HandleFunc("PUT /api/v1/decks/{id}/ease", h.ImportEase)

	mux.HandleFunc("GET /api/v1/params", h.GetParams)
	mux.HandleFunc("PUT /api/v1/params", h.PutParams)

	mux.HandleFunc("POST /api/v1/sync", h.BeginSync)
	mux.HandleFunc("POST /api/v1/sync/{id}/finish", h.FinishSync)
}

// ---------------------------------------------------------------------------
// Bulk operations
// ---------------------------------------------------------------------------

// Reschedule queues a reschedule.
// POST /api/v1/operations/reschedule
func (h *OperationsHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if !h.begin(w, r, &req) {
		return
	}
	input := scheduling.RescheduleInput{DeckID: req.DeckID, Recent: req.Recent, CardIDs: req.CardIDs}
	if err := input.Validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.submit(w, r, scheduling.OpReschedule, func(ctx context.Context, t *task.Handle) (scheduling.Result, error) {
		return h.svc.Reschedule(ctx, input, t)
	})
}

// Postpone queues a postpone.
// POST /api/v1/operations/postpone
func (h *OperationsHandler) Postpone(w http.ResponseWriter, r *http.Request) {
	var req shiftRequest
	if !h.begin(w, r, &req) {
		return
	}
	input := scheduling.ShiftInput{DeckID: req.DeckID, Count: req.Count, MinInterval: req.MinInterval}
	if err := input.Validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.submit(w, r, scheduling.OpPostpone, func(ctx context.Context, t *task.Handle) (scheduling.Result, error) {
		return h.svc.Postpone(ctx, input, t)
	})
}

// Advance queues an advance.
// POST /api/v1/operations/advance
func (h *OperationsHandler) Advance(w http.ResponseWriter, r *http.Request) {
	var req shiftRequest
	if !h.begin(w, r, &req) {
		return
	}
	input := scheduling.ShiftInput{DeckID: req.DeckID, Count: req.Count, MinInterval: req.MinInterval}
	if err := input.Validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.submit(w, r, scheduling.OpAdvance, func(ctx context.Context, t *task.Handle) (scheduling.Result, error) {
		return h.svc.Advance(ctx, input, t)
	})
}

// Disperse queues a sibling dispersal.
// POST /api/v1/operations/disperse
func (h *OperationsHandler) Disperse(w http.ResponseWriter, r *http.Request) {
	var req disperseRequest
	if !h.begin(w, r, &req) {
		return
	}
	input := scheduling.DisperseInput{DeckID: req.DeckID, NoteIDs: req.NoteIDs}
	if err := input.Validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.submit(w, r, scheduling.OpDisperse, func(ctx context.Context, t *task.Handle) (scheduling.Result, error) {
		return h.svc.DisperseSiblings(ctx, input, t)
	})
}

// AdjustEase queues an ease adjustment.
// POST /api/v1/operations/adjust-ease
func (h *OperationsHandler) AdjustEase(w http.ResponseWriter, r *http.Request) {
	var req selectionRequest
	if !h.begin(w, r, &req) {
		return
	}
	input := scheduling.AdjustEaseInput{DeckID: req.DeckID, Recent: req.Recent, CardIDs: req.CardIDs}
	if err := input.Validate(); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.submit(w, r, scheduling.OpAdjustEase, func(ctx context.Context, t *task.Handle) (scheduling.Result, error) {
		return h.svc.AdjustEase(ctx, input, t)
	})
}

// begin checks the operator role and decodes the request body.
func (h *OperationsHandler) begin(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := middleware.RequireOperator(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return false
	}
	if err := decodeJSON(r, req); err != nil {
		handleError(h.log, w, r, err)
		return false
	}
	return true
}

func (h *OperationsHandler) submit(
	w http.ResponseWriter,
	r *http.Request,
	op scheduling.Operation,
	run func(ctx context.Context, t *task.Handle) (scheduling.Result, error),
) {
	t, err := h.tasks.Submit(string(op), func(ctx context.Context, t *task.Handle) (any, error) {
		return run(ctx, t)
	}, nil)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "operation queued",
		slog.String("operation", string(op)),
		slog.String("task_id", t.ID.String()),
	)
	w.Header().Set("Location", "/api/v1/tasks/"+t.ID.String())
	writeJSON(w, http.StatusAccepted, toTaskResponse(t))
}

// ---------------------------------------------------------------------------
// Tasks
// ---------------------------------------------------------------------------

// GetTask returns the state, progress and, once finished, the result.
// GET /api/v1/tasks/{id}
func (h *OperationsHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	t, ok := h.lookupTask(w, r, middleware.RequireCaller)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(t))
}

// CancelTask asks a task to stop at its next checkpoint.
// DELETE /api/v1/tasks/{id}
func (h *OperationsHandler) CancelTask(w http.ResponseWriter, r *http.Request) {
	t, ok := h.lookupTask(w, r, middleware.RequireOperator)
	if !ok {
		return
	}
	if t.State().IsFinal() {
		writeError(w, http.StatusConflict, "task already finished")
		return
	}
	t.Cancel()
	h.log.InfoContext(r.Context(), "task cancel requested", slog.String("task_id", t.ID.String()))
	writeJSON(w, http.StatusAccepted, toTaskResponse(t))
}

func (h *OperationsHandler) lookupTask(w http.ResponseWriter, r *http.Request, allow func(context.Context) error) (*task.Handle, bool) {
	if err := allow(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return nil, false
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be a UUID"))
		return nil, false
	}
	t, err := h.tasks.Get(id)
	if err != nil {
		handleError(h.log, w, r, err)
		return nil, false
	}
	return t, true
}

// ---------------------------------------------------------------------------
// Candidates
// ---------------------------------------------------------------------------

// PostponeCandidates counts the cards a postpone could pick.
// GET /api/v1/postpone/candidates?deck_id=1&min_interval=30
func (h *OperationsHandler) PostponeCandidates(w http.ResponseWriter, r *http.Request) {
	h.candidates(w, r, h.svc.PostponeCandidates)
}

// AdvanceCandidates counts the cards an advance could pick.
// GET /api/v1/advance/candidates?deck_id=1&min_interval=30
func (h *OperationsHandler) AdvanceCandidates(w http.ResponseWriter, r *http.Request) {
	h.candidates(w, r, h.svc.AdvanceCandidates)
}

func (h *OperationsHandler) candidates(
	w http.ResponseWriter,
	r *http.Request,
	count func(ctx context.Context, deckID *int64, minInterval int) (scheduling.CandidateCounts, error),
) {
	if err := middleware.RequireCaller(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	deckID, err := queryInt64(r, "deck_id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	minInterval := 0
	if raw := r.URL.Query().Get("min_interval"); raw != "" {
		if minInterval, err = strconv.Atoi(raw); err != nil || minInterval < 0 {
			handleError(h.log, w, r, domain.NewValidationError("min_interval", "must be a non-negative integer"))
			return
		}
	}

	counts, err := count(r.Context(), deckID, minInterval)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, candidatesResponse{
		Total:           counts.Total,
		Safe:            counts.Safe,
		AtLeastInterval: counts.AtLeastInterval,
	})
}

// ---------------------------------------------------------------------------
// Undo, ease, params
// ---------------------------------------------------------------------------

// Undo reverts a finished operation.
// POST /api/v1/undo/{id}
func (h *OperationsHandler) Undo(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireOperator(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	entry, err := h.svc.Undo(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUndoResponse(entry))
}

// CardEase explains the ease of one card, optionally with a previewed answer.
// GET /api/v1/cards/{id}/ease?answer=good
func (h *OperationsHandler) CardEase(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireCaller(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	cardID, err := pathInt64(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var answer *domain.Grade
	if raw := r.URL.Query().Get("answer"); raw != "" {
		g, ok := domain.ParseAnswer(raw)
		if !ok {
			handleError(h.log, w, r, domain.NewValidationError("answer", "must be one of again, hard, good, easy"))
			return
		}
		answer = &g
	}

	stats, err := h.svc.CardEaseStats(r.Context(), cardID, answer)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEaseStatsResponse(stats))
}

// Answer updates the ease of a card for an answer being recorded now.
// POST /api/v1/cards/{id}/answer
func (h *OperationsHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if !h.begin(w, r, &req) {
		return
	}
	cardID, err := pathInt64(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	grade, ok := domain.ParseAnswer(strings.Trim(string(req.Answer), `"`))
	if !ok {
		handleError(h.log, w, r, domain.NewValidationError("answer", "must be one of again, hard, good, easy"))
		return
	}

	stats, err := h.svc.ApplyAnswer(r.Context(), cardID, grade)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEaseStatsResponse(stats))
}

// ExportEase writes the factors of a deck as a JSON object.
// GET /api/v1/decks/{id}/ease
func (h *OperationsHandler) ExportEase(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireCaller(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	deckID, err := pathInt64(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var buf bytes.Buffer
	if _, err := h.svc.ExportEase(r.Context(), deckID, &buf); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// ImportEase queues an ease import of the request body.
// PUT /api/v1/decks/{id}/ease
func (h *OperationsHandler) ImportEase(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireOperator(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	deckID, err := pathInt64(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxEaseDocumentSize))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("body", "unreadable"))
		return
	}

	h.submit(w, r, scheduling.OpImportEase, func(ctx context.Context, t *task.Handle) (scheduling.Result, error) {
		return h.svc.ImportEase(ctx, deckID, bytes.NewReader(body), t)
	})
}

// GetParams returns the stored deck parameter script.
// GET /api/v1/params
func (h *OperationsHandler) GetParams(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireCaller(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	script, err := h.svc.GetParams(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, paramsResponse{Script: script, Warnings: []string{}})
}

// PutParams validates and stores the deck parameter script. With
// dry_run=true the script is only validated.
// PUT /api/v1/params?dry_run=true
func (h *OperationsHandler) PutParams(w http.ResponseWriter, r *http.Request) {
	var req paramsRequest
	if !h.begin(w, r, &req) {
		return
	}

	var (
		warnings []string
		err      error
	)
	if dry, _ := strconv.ParseBool(r.URL.Query().Get("dry_run")); dry {
		warnings, err = h.svc.CheckParams(req.Script)
	} else {
		warnings, err = h.svc.PutParams(r.Context(), req.Script)
	}
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if warnings == nil {
		warnings = []string{}
	}
	writeJSON(w, http.StatusOK, paramsResponse{Warnings: warnings})
}

// ---------------------------------------------------------------------------
// Sync
// ---------------------------------------------------------------------------

// BeginSync snapshots the review log before a sync.
// POST /api/v1/sync
func (h *OperationsHandler) BeginSync(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireOperator(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	id, err := h.sync.Begin(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"sync_id": id.String()})
}

// FinishSync queues the follow-up operations for the reviews that arrived
// since BeginSync.
// POST /api/v1/sync/{id}/finish
func (h *OperationsHandler) FinishSync(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireOperator(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	t, err := h.tasks.Submit("sync", func(ctx context.Context, t *task.Handle) (any, error) {
		return h.sync.Finish(ctx, id, t)
	}, nil)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/tasks/"+t.ID.String())
	writeJSON(w, http.StatusAccepted, toTaskResponse(t))
}
