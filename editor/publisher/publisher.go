/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

// Package publisher finalizes an edit session into a pull request.
//
// Publishing is the only layer that retries: transient failures (network
// errors, 5xx) get a bounded number of additional attempts with exponential
// backoff, while validation and 4xx failures surface immediately. Success
// transitions the session to Finalized, ending its mutation phase.
package publisher

import (
	"context"
	"errors"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/deepset-ai/dap-github-agent-template/agents/retry"
	"github.com/deepset-ai/dap-github-agent-template/editor/gateway"
	"github.com/deepset-ai/dap-github-agent-template/editor/metrics"
	"github.com/deepset-ai/dap-github-agent-template/editor/session"
)

// ErrValidation indicates a title or body that fails the conventional-commit
// policy while strict validation is enabled.
var ErrValidation = errors.New("pull request validation failed")

// Gateway is the slice of the repository gateway publishing needs.
type Gateway interface {
	OpenPullRequest(ctx context.Context, base, head, title, body string, opts ...gateway.PullRequestOption) (*gateway.PullRequestResult, error)
	FindOpenPullRequest(ctx context.Context, base, head string) (*gateway.PullRequestResult, error)
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithRetryConfig overrides the retry bounds for transient failures.
func WithRetryConfig(cfg retry.Config) Option {
	return func(p *Publisher) {
		p.retryConfig = cfg
	}
}

// WithStrictValidation turns title/body policy violations into errors
// instead of logged warnings.
func WithStrictValidation() Option {
	return func(p *Publisher) {
		p.strict = true
	}
}

// WithPullRequestOptions forwards options (draft, maintainer edits) to the
// underlying pull-request creation.
func WithPullRequestOptions(opts ...gateway.PullRequestOption) Option {
	return func(p *Publisher) {
		p.prOpts = opts
	}
}

// WithMetrics attaches a metrics recorder. A nil recorder is a no-op.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(p *Publisher) {
		p.metrics = rec
	}
}

// Publisher opens the pull request that finalizes one edit session.
type Publisher struct {
	gw      Gateway
	session *session.Session
	base    string

	retryConfig retry.Config
	strict      bool
	prOpts      []gateway.PullRequestOption
	metrics     *metrics.Recorder
}

// DefaultRetryConfig bounds publishing to 2 additional attempts; a pull
// request is opened once per session, so long recovery windows buy nothing.
func DefaultRetryConfig() retry.Config {
	return retry.Config{
		MaxRetries:  2,
		BaseBackoff: retry.DefaultConfig().BaseBackoff,
		MaxBackoff:  retry.DefaultConfig().MaxBackoff,
		MaxJitter:   retry.DefaultConfig().MaxJitter,
	}
}

// New creates a Publisher that merges the session's working branch into base.
func New(gw Gateway, s *session.Session, base string, opts ...Option) *Publisher {
	p := &Publisher{
		gw:          gw,
		session:     s,
		base:        base,
		retryConfig: DefaultRetryConfig(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Finalize opens the pull request and transitions the session to Finalized.
//
// Preconditions run before any remote call: a finalized session fails with
// session.ErrSessionClosed and a session without committed mutations fails
// with session.ErrNoChanges. Only transient failures are retried; when the
// head/base pair already has an open pull request the error carries its URL.
func (p *Publisher) Finalize(ctx context.Context, title, body string) (*gateway.PullRequestResult, error) {
	log := clog.FromContext(ctx)

	if p.session.State() == session.StateFinalized {
		return nil, fmt.Errorf("finalize: %w", session.ErrSessionClosed)
	}
	if len(p.session.Records()) == 0 {
		return nil, fmt.Errorf("finalize: %w", session.ErrNoChanges)
	}
	if err := p.validate(ctx, title, body); err != nil {
		return nil, err
	}

	head := p.session.Branch().Name

	pr, err := retry.WithBackoff(ctx, p.retryConfig, "open pull request", gateway.IsTransient, func() (*gateway.PullRequestResult, error) {
		pr, err := p.gw.OpenPullRequest(ctx, p.base, head, title, body, p.prOpts...)
		switch {
		case err == nil:
			p.metrics.PublishAttempt("success")
		case gateway.IsTransient(err):
			p.metrics.PublishAttempt("transient")
		default:
			p.metrics.PublishAttempt("failure")
		}
		return pr, err
	})
	if err != nil {
		if errors.Is(err, gateway.ErrAlreadyExists) {
			if existing, findErr := p.gw.FindOpenPullRequest(ctx, p.base, head); findErr == nil {
				return nil, fmt.Errorf("pull request already open at %s: %w", existing.URL, gateway.ErrAlreadyExists)
			}
		}
		return nil, err
	}

	if err := p.session.Finalize(); err != nil {
		// The PR is open but the session refused to close; surface both.
		return pr, fmt.Errorf("pull request %s opened but session not finalized: %w", pr.URL, err)
	}

	log.With("url", pr.URL).With("number", pr.Number).Info("Pull request created")
	return pr, nil
}

// validate applies the conventional-commit policy. Default behavior logs
// warnings and proceeds; strict mode rejects before any remote call.
func (p *Publisher) validate(ctx context.Context, title, body string) error {
	issues := Validate(title, body)
	if len(issues) == 0 {
		return nil
	}
	if p.strict {
		return fmt.Errorf("%w: %v", ErrValidation, issues)
	}
	clog.FromContext(ctx).With("issues", issues).Warn("Pull request text fails validation policy, proceeding")
	return nil
}
