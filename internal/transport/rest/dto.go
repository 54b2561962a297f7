package rest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling/ease"
	"github.com/heartmarshall/myenglish-scheduler/internal/task"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type selectionRequest struct {
	DeckID  *int64  `json:"deck_id"`
	Recent  bool    `json:"recent"`
	CardIDs []int64 `json:"card_ids"`
}

type shiftRequest struct {
	DeckID      *int64 `json:"deck_id"`
	Count       *int   `json:"count"`
	MinInterval *int   `json:"min_interval"`
}

type disperseRequest struct {
	DeckID  *int64  `json:"deck_id"`
	NoteIDs []int64 `json:"note_ids"`
}

// answerRequest carries an answer button by name or number.
type answerRequest struct {
	Answer json.RawMessage `json:"answer"`
}

type paramsRequest struct {
	Script string `json:"script"`
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type resultResponse struct {
	Operation string   `json:"operation"`
	Processed int      `json:"processed"`
	Skipped   int      `json:"skipped"`
	Problems  []string `json:"problems,omitempty"`
	Cancelled bool     `json:"cancelled"`
	UndoID    *string  `json:"undo_id,omitempty"`
	Summary   string   `json:"summary"`
}

func toResultResponse(r scheduling.Result) resultResponse {
	resp := resultResponse{
		Operation: string(r.Operation),
		Processed: r.Processed,
		Skipped:   r.Skipped,
		Problems:  r.Problems,
		Cancelled: r.Cancelled,
		Summary:   r.Summary,
	}
	if r.UndoID != uuid.Nil {
		id := r.UndoID.String()
		resp.UndoID = &id
	}
	return resp
}

type syncReportResponse struct {
	CardIDs []int64          `json:"card_ids"`
	Results []resultResponse `json:"results"`
	Summary string           `json:"summary"`
}

func toSyncReportResponse(r scheduling.SyncReport) syncReportResponse {
	resp := syncReportResponse{
		CardIDs: r.CardIDs,
		Results: make([]resultResponse, len(r.Results)),
		Summary: r.Summary,
	}
	for i, res := range r.Results {
		resp.Results[i] = toResultResponse(res)
	}
	return resp
}

type progressResponse struct {
	Done  int    `json:"done"`
	Label string `json:"label,omitempty"`
}

type taskResponse struct {
	ID         string           `json:"id"`
	Kind       string           `json:"kind"`
	State      task.State       `json:"state"`
	Progress   progressResponse `json:"progress"`
	CreatedAt  time.Time        `json:"created_at"`
	FinishedAt *time.Time       `json:"finished_at,omitempty"`
	Result     any              `json:"result,omitempty"`
	Error      string           `json:"error,omitempty"`
}

func toTaskResponse(h *task.Handle) taskResponse {
	p := h.Progress()
	resp := taskResponse{
		ID:        h.ID.String(),
		Kind:      h.Kind,
		State:     h.State(),
		Progress:  progressResponse{Done: p.Done, Label: p.Label},
		CreatedAt: h.CreatedAt,
	}

	finished := h.FinishedAt()
	if finished.IsZero() {
		return resp
	}
	resp.FinishedAt = &finished

	result, err := h.Result()
	if err != nil {
		resp.Error = err.Error()
	}
	switch v := result.(type) {
	case scheduling.Result:
		resp.Result = toResultResponse(v)
	case scheduling.SyncReport:
		resp.Result = toSyncReportResponse(v)
	}
	return resp
}

type candidatesResponse struct {
	Total           int `json:"total"`
	Safe            int `json:"safe"`
	AtLeastInterval int `json:"at_least_interval"`
}

type undoResponse struct {
	ID            string    `json:"id"`
	Label         string    `json:"label"`
	Cards         int       `json:"cards"`
	ReviewFactors int       `json:"review_factors"`
	UndoneAt      time.Time `json:"undone_at"`
}

func toUndoResponse(e *domain.UndoEntry) undoResponse {
	resp := undoResponse{
		ID:            e.ID.String(),
		Label:         e.Label,
		Cards:         len(e.Cards),
		ReviewFactors: len(e.Factors),
	}
	if e.UndoneAt != nil {
		resp.UndoneAt = *e.UndoneAt
	}
	return resp
}

type easeStatsResponse struct {
	SuccessRate      float64  `json:"success_rate"`
	AverageFactor    float64  `json:"average_factor"`
	DeltaRatio       float64  `json:"delta_ratio"`
	LastLoggedFactor int      `json:"last_logged_factor"`
	StoredFactor     int      `json:"stored_factor"`
	Changed          bool     `json:"changed"`
	NewFactor        int      `json:"new_factor"`
	UnleashedFactor  int      `json:"unleashed_factor"`
	RecentAnswers    []string `json:"recent_answers"`
	Truncated        bool     `json:"truncated"`
}

func toEaseStatsResponse(s ease.Stats) easeStatsResponse {
	answers := make([]string, len(s.RecentGrades))
	for i, g := range s.RecentGrades {
		answers[i] = g.String()
	}
	return easeStatsResponse{
		SuccessRate:      s.SuccessRate,
		AverageFactor:    s.AverageFactor,
		DeltaRatio:       s.DeltaRatio,
		LastLoggedFactor: s.LastLoggedFactor,
		StoredFactor:     s.StoredFactor,
		Changed:          s.Changed,
		NewFactor:        s.NewFactor,
		UnleashedFactor:  s.UnleashedFactor,
		RecentAnswers:    answers,
		Truncated:        s.Truncated,
	}
}

type paramsResponse struct {
	Script   string   `json:"script,omitempty"`
	Warnings []string `json:"warnings"`
}
