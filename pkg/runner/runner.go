// Package runner drives one keep-alive run: load accounts, check each one
// in order, and deliver exactly one notification, either the summary or a
// single error line.
package runner

import (
	"context"
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/fnosnas/koyeb-keepalive/pkg/accounts"
	"github.com/fnosnas/koyeb-keepalive/pkg/check"
	"github.com/fnosnas/koyeb-keepalive/pkg/koyebcheck"
	"github.com/fnosnas/koyeb-keepalive/pkg/report"
	"github.com/fnosnas/koyeb-keepalive/pkg/telegram"
)

// DefaultDelay is the pause between successive account checks. It is a
// fixed cadence against the Koyeb API, not a backoff: the same delay
// applies whatever the previous outcome was.
const DefaultDelay = 5 * time.Second

// Runner holds the wiring for one run. Zero-value fields fall back to
// production defaults; tests inject their own.
type Runner struct {
	Env      accounts.EnvGetter    // account list source (default: process env)
	Notifier *telegram.Notifier    // summary destination; nil or unconfigured means log-only
	Logger   *slog.Logger          // run log (default: text handler on stdout)
	Delay    time.Duration         // pacing between checks; 0 disables
	Timeout  time.Duration         // per-request HTTP timeout
	BaseURL  string                // Koyeb API base URL override
	Client   koyebcheck.HTTPClient // HTTP client override
	Version  string                // reported in the check User-Agent header
	DryRun   bool                  // perform checks but skip notification
	Now      func() time.Time      // clock override
	OnResult func(check.Result)    // called after each check, in order
}

// Run executes one keep-alive pass. It returns a non-nil error only for
// configuration faults and context cancellation; per-account failures are
// recorded in the summary and do not fail the run.
func (r *Runner) Run(ctx context.Context) error {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}
	env := r.Env
	if env == nil {
		env = &accounts.RealEnvGetter{}
	}
	now := r.Now
	if now == nil {
		now = time.Now
	}

	accts, err := accounts.Load(env)
	if err != nil {
		logger.Error("configuration error", "error", err)
		r.notify(ctx, logger, report.ErrorMessage(err))
		return err
	}
	logger.Info("starting keep-alive run", "accounts", len(accts))

	var limiter *rate.Limiter
	if r.Delay > 0 {
		limiter = rate.NewLimiter(rate.Every(r.Delay), 1)
	}

	results := make([]check.Result, 0, len(accts))
	for _, acct := range accts {
		if acct.Token == "" {
			logger.Warn("token not configured, skipping", "account", acct.Name)
		} else {
			// Skipped accounts issue no request, so only real checks
			// consume the pacing budget.
			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					logger.Error("run interrupted", "error", err)
					r.notify(ctx, logger, report.ErrorMessage(err))
					return err
				}
			}
			logger.Info("checking account", "account", acct.Name)
		}

		c := &koyebcheck.Check{
			AccountName: acct.Name,
			Token:       acct.Token,
			BaseURL:     r.BaseURL,
			Timeout:     r.Timeout,
			Client:      r.Client,
			Version:     r.Version,
		}
		result := c.Run(ctx)
		if r.OnResult != nil {
			r.OnResult(result)
		}
		results = append(results, result)
	}

	logger.Info("run complete, sending summary", "results", len(results))
	r.notify(ctx, logger, report.Summary(now(), results))
	return nil
}

// notify delivers one message, best-effort. Delivery failures are logged
// and never escalated.
func (r *Runner) notify(ctx context.Context, logger *slog.Logger, text string) {
	if r.DryRun {
		logger.Info("dry run, skipping notification")
		return
	}
	if r.Notifier == nil || !r.Notifier.Configured() {
		logger.Warn("TG_BOT_TOKEN or TG_CHAT_ID not set, skipping notification")
		return
	}
	// The run sends exactly one message even when it was interrupted, so
	// delivery must not inherit the run context's cancellation. The
	// notifier still applies its own timeout.
	ctx = context.WithoutCancel(ctx)
	if err := r.Notifier.Send(ctx, text); err != nil {
		logger.Error("failed to send notification", "error", err)
		return
	}
	logger.Info("notification sent")
}
