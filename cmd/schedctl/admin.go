package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-scheduler/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-scheduler/internal/app"
	"github.com/heartmarshall/myenglish-scheduler/internal/auth"
	"github.com/heartmarshall/myenglish-scheduler/internal/domain"
	"github.com/heartmarshall/myenglish-scheduler/internal/service/scheduling"
)

func newUndoCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "undo UNDO_ID",
		Short:   "Revert the cards and review factors an operation changed",
		GroupID: groupOps,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return domain.NewValidationError("undo_id", "must be a UUID")
			}
			svc, err := e.service(cmd.Context())
			if err != nil {
				return err
			}
			entry, err := svc.Undo(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.out, "%s undone: %d cards, %d review factors restored\n",
				entry.Label, len(entry.Cards), len(entry.Factors))
			return nil
		},
	}
}

func newEaseCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ease",
		Short:   "Copy card ease between collections",
		GroupID: groupOps,
	}

	var outPath string
	export := &cobra.Command{
		Use:   "export DECK_ID",
		Short: "Write the factors of a deck as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID, err := parseDeckArg(args[0])
			if err != nil {
				return err
			}
			svc, err := e.service(cmd.Context())
			if err != nil {
				return err
			}

			// Buffer so a failed export does not leave a truncated file.
			var buf bytes.Buffer
			n, err := svc.ExportEase(cmd.Context(), deckID, &buf)
			if err != nil {
				return err
			}
			if outPath == "" || outPath == "-" {
				_, err = buf.WriteTo(e.out)
				return err
			}
			if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			e.log.Info("ease exported", slog.Int("cards", n), slog.String("path", outPath))
			return nil
		},
	}
	export.Flags().StringVarP(&outPath, "output", "o", "", "File to write instead of stdout")

	importCmd := &cobra.Command{
		Use:   "import DECK_ID [FILE]",
		Short: "Set the factors of a deck from an exported document",
		Long:  "Set the factors of a deck from an exported document. Without FILE, or with -, the document is read from stdin.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckID, err := parseDeckArg(args[0])
			if err != nil {
				return err
			}
			path := "-"
			if len(args) == 2 {
				path = args[1]
			}
			body, err := readInput(cmd, path)
			if err != nil {
				return err
			}
			return e.runOperation(cmd, func(ctx context.Context, svc *scheduling.Service, cp scheduling.Checkpointer) (scheduling.Result, error) {
				return svc.ImportEase(ctx, deckID, bytes.NewReader(body), cp)
			})
		},
	}

	cmd.AddCommand(export, importCmd)
	return cmd
}

func newParamsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "params",
		Short:   "Show, check or store the deck parameter script",
		GroupID: groupAdmin,
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Print the stored script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := e.service(cmd.Context())
			if err != nil {
				return err
			}
			body, err := svc.GetParams(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(e.out, body)
			return nil
		},
	}

	check := &cobra.Command{
		Use:   "check FILE",
		Short: "Parse a script without storing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			svc, err := e.service(cmd.Context())
			if err != nil {
				return err
			}
			warnings, err := svc.CheckParams(string(body))
			printWarnings(e.out, warnings)
			if err != nil {
				return err
			}
			fmt.Fprintln(e.out, "ok")
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set FILE",
		Short: "Validate and store a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			svc, err := e.service(cmd.Context())
			if err != nil {
				return err
			}
			warnings, err := svc.PutParams(cmd.Context(), string(body))
			printWarnings(e.out, warnings)
			if err != nil {
				return err
			}
			fmt.Fprintln(e.out, "stored")
			return nil
		},
	}

	cmd.AddCommand(get, check, set)
	return cmd
}

func printWarnings(w io.Writer, warnings []string) {
	for _, msg := range warnings {
		fmt.Fprintf(w, "warning: %s\n", msg)
	}
}

func newMigrateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate up|down",
		Short:     "Apply or roll back database migrations",
		GroupID:   groupAdmin,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return postgres.Migrate(cmd.Context(), e.cfg.Database.DSN, args[0] == "down", e.log)
		},
	}
}

func newTokenCmd(e *env) *cobra.Command {
	var (
		role    string
		subject string
	)
	cmd := &cobra.Command{
		Use:     "token",
		Short:   "Issue a bearer token for the operator API",
		GroupID: groupAdmin,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sub := uuid.New()
			if subject != "" {
				var err error
				if sub, err = uuid.Parse(subject); err != nil {
					return domain.NewValidationError("subject", "must be a UUID")
				}
			}
			jwt := auth.NewJWTManager(e.cfg.Auth.JWTSecret, e.cfg.Auth.JWTIssuer, e.cfg.Auth.TokenTTL)
			token, err := jwt.GenerateToken(sub, role)
			if err != nil {
				return err
			}
			fmt.Fprintln(e.out, token)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", auth.RoleOperator, "Token role: operator or viewer")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject UUID (random when empty)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the build version",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"config": "none"},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.BuildVersion())
		},
	}
}

func parseDeckArg(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("deck_id", "must be a positive integer")
	}
	return id, nil
}

// readInput reads a file, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	body, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: no such file", path)
	}
	return body, err
}
