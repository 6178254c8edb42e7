// Package gitsync auto-commits saved plans when the data directory is a git
// repository. Sync failures are logged, never fatal; plans that only live
// locally are still plans.
package gitsync

import (
	"context"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// DefaultMessage is used when no commit message is given.
const DefaultMessage = "Auto-sync: Saved new workout plan"

// Sync stages, commits, and pushes dir. Returns false without error detail
// when dir is not a repository or any git step fails; the caller only needs
// to know whether the plan made it upstream.
func Sync(ctx context.Context, dir, message string, logger *zap.Logger) bool {
	if logger == nil {
		logger = zap.NewNop()
	}
	if message == "" {
		message = DefaultMessage
	}

	if !isRepo(ctx, dir) {
		logger.Debug("not a git repository, skipping sync", zap.String("dir", dir))
		return false
	}

	steps := [][]string{
		{"add", "-A"},
		{"commit", "-m", message},
		{"push"},
	}
	for _, args := range steps {
		cmd := exec.CommandContext(ctx, "git", args...)
		cmd.Dir = dir
		if out, err := cmd.CombinedOutput(); err != nil {
			// "nothing to commit" is a clean no-op, not a failure.
			if args[0] == "commit" && strings.Contains(string(out), "nothing to commit") {
				logger.Debug("nothing to commit")
				return true
			}
			logger.Warn("git sync failed",
				zap.String("step", args[0]),
				zap.String("output", strings.TrimSpace(string(out))),
				zap.Error(err))
			return false
		}
	}

	logger.Info("plan synced to remote", zap.String("dir", dir))
	return true
}

func isRepo(ctx context.Context, dir string) bool {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = dir
	out, err := cmd.Output()
	return err == nil && strings.TrimSpace(string(out)) == "true"
}
