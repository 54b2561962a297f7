package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling/ease"
)

func newAnswerCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "answer CARD_ID again|hard|good|easy",
		Short:   "Update the ease of a card for an answer being recorded now",
		GroupID: groupOps,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || cardID <= 0 {
				return domain.NewValidationError("card_id", "must be a positive integer")
			}
			grade, ok := domain.ParseAnswer(args[1])
			if !ok {
				return domain.NewValidationError("answer", "must be one of again, hard, good, easy")
			}

			svc, err := e.service(cmd.Context())
			if err != nil {
				return err
			}
			st, err := svc.ApplyAnswer(cmd.Context(), cardID, grade)
			if err != nil {
				return err
			}
			printAnswer(e.out, cardID, st)
			return nil
		},
	}
}

func printAnswer(w io.Writer, cardID int64, st ease.Stats) {
	if !st.Changed {
		fmt.Fprintf(w, "card %d: not in the review queue, factor %d kept\n", cardID, st.StoredFactor)
		return
	}
	fmt.Fprintf(w, "card %d: factor %d -> %d (success rate %.4f)\n",
		cardID, st.StoredFactor, st.NewFactor, st.SuccessRate)
}
