package scheduling

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling/deckparams"
)

// GetParams returns the stored deck parameter script.
func (s *Service) GetParams(ctx context.Context) (string, error) {
	body, err := s.scripts.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("get script: %w", err)
	}
	return body, nil
}

// CheckParams parses a script without storing it. A script that does not
// parse comes back as a ValidationError with one entry per problem.
func (s *Service) CheckParams(body string) ([]string, error) {
	_, warnings, err := deckparams.Parse(body)
	if err != nil {
		return warnings, scriptValidationError(err)
	}
	return warnings, nil
}

// PutParams validates and stores a script. Warnings do not prevent storing.
func (s *Service) PutParams(ctx context.Context, body string) ([]string, error) {
	warnings, err := s.CheckParams(body)
	if err != nil {
		return warnings, err
	}
	if err := s.scripts.Put(ctx, body); err != nil {
		return warnings, fmt.Errorf("put script: %w", err)
	}

	s.log.InfoContext(ctx, "deck parameters stored", slog.Int("warnings", len(warnings)))
	return warnings, nil
}

func scriptValidationError(err error) error {
	var pe *deckparams.ParseError
	if !errors.As(err, &pe) {
		return err
	}
	fields := make([]domain.FieldError, len(pe.Errs))
	for i, msg := range pe.Messages() {
		fields[i] = domain.FieldError{Field: "script", Message: msg}
	}
	return domain.NewValidationErrors(fields)
}
