package cli

import (
	"fmt"
	"strconv"

	"github.com/dshills/dangermd/internal/github"
	"github.com/dshills/dangermd/internal/template"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagGHOwner         string
	flagGHRepo          string
	flagGHDryRun        bool
	flagRemoveWhenEmpty bool
)

var postCmd = &cobra.Command{
	Use:   "post <pr-number>",
	Short: "Create or update the Danger comment on a GitHub pull request",
	Long:  "Render Danger results and post them to a pull request, editing the comment left by a previous run with the same id instead of adding a new one.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prNumber, err := strconv.Atoi(args[0])
		if err != nil || prNumber <= 0 {
			return fmt.Errorf("invalid PR number %q", args[0])
		}

		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		results, err := loadResults(log)
		if err != nil {
			log.Error("loading results", zap.Error(err))
			exitCode = ExitRuntimeError
			return nil
		}
		body := template.Template(cfg.ID, results)

		if flagGHDryRun {
			log.Info("dry run, not posting", zap.Int("pr", prNumber), zap.String("marker", template.IDToString(cfg.ID)))
			fmt.Fprint(cmd.OutOrStdout(), body)
			applyThreshold(log, results, cfg.FailOn)
			return nil
		}

		// Detect owner/repo if not provided
		owner, repo := flagGHOwner, flagGHRepo
		if owner == "" {
			owner = cfg.Owner
		}
		if repo == "" {
			repo = cfg.Repo
		}
		if owner == "" || repo == "" {
			detected, detectedRepo, err := github.DetectRepo()
			if err != nil {
				log.Error("detecting repository, use --owner and --repo to specify manually", zap.Error(err))
				exitCode = ExitRuntimeError
				return nil
			}
			if owner == "" {
				owner = detected
			}
			if repo == "" {
				repo = detectedRepo
			}
		}

		ghClient, err := github.NewClient(log)
		if err != nil {
			log.Error("creating GitHub client", zap.Error(err))
			if github.IsAuthError(err) {
				exitCode = ExitAuthError
			} else {
				exitCode = ExitRuntimeError
			}
			return nil
		}

		ctx := cmd.Context()
		var action github.Action
		if flagRemoveWhenEmpty && results.IsEmpty() {
			action, err = ghClient.DeleteComment(ctx, owner, repo, prNumber, cfg.ID)
		} else {
			action, err = ghClient.UpsertComment(ctx, owner, repo, prNumber, cfg.ID, body)
		}
		if err != nil {
			log.Error("posting comment", zap.String("repo", owner+"/"+repo), zap.Int("pr", prNumber), zap.Error(err))
			if github.IsAuthError(err) {
				exitCode = ExitAuthError
			} else {
				exitCode = ExitRuntimeError
			}
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Comment %s on %s/%s#%d.\n", action, owner, repo, prNumber)
		applyThreshold(log, results, cfg.FailOn)
		return nil
	},
}

func init() {
	addRenderFlags(postCmd)
	postCmd.Flags().StringVar(&flagGHOwner, "owner", "", "GitHub repository owner (auto-detected if omitted)")
	postCmd.Flags().StringVar(&flagGHRepo, "repo", "", "GitHub repository name (auto-detected if omitted)")
	postCmd.Flags().BoolVar(&flagGHDryRun, "dry-run", false, "Print the comment body instead of posting it")
	postCmd.Flags().BoolVar(&flagRemoveWhenEmpty, "remove-when-empty", false, "Delete the previous comment when there is nothing to report")
}
