package main

import (
	"fmt"
	"strings"

	"crm_reports/internal/usecase"

	"github.com/spf13/cobra"
)

func reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Expire overdue quotes once",
		Long: `Moves every quote whose validity date has passed into its board's
expired stage and prints a summary of the run.`,
		Args: cobra.NoArgs,
		RunE: runReconcile,
	}
}

func runReconcile(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	repos, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore(repos)

	reconciler := usecase.NewExpirationReconciler(repos.Quotes, repos.Stages,
		usecase.WithExpiredStageLabel(cfg.ExpiredStageLabel))
	res := reconciler.Run(ctx)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "candidates: %d\n", res.Candidates)
	fmt.Fprintf(out, "boards:     %d\n", res.Boards)
	fmt.Fprintf(out, "expired:    %d\n", res.Expired)
	if len(res.SkippedBoards) > 0 {
		fmt.Fprintf(out, "skipped:    %s\n", strings.Join(res.SkippedBoards, ", "))
	}
	if len(res.FailedBoards) > 0 {
		fmt.Fprintf(out, "failed:     %s\n", strings.Join(res.FailedBoards, ", "))
	}
	return nil
}
