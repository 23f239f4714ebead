/*
Copyright 2025 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

const (
	// DefaultTimeout bounds each remote call.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxBlobSize is the byte ceiling for blob reads (1 MB, matching
	// what the contents API serves inline).
	DefaultMaxBlobSize = 1_000_000
)

// RepositoryRef identifies the repository a Gateway operates on. When
// DefaultBranch is set it is taken as authoritative; otherwise the gateway
// resolves it from the remote on demand.
type RepositoryRef struct {
	Owner         string
	Name          string
	DefaultBranch string
}

// WorkingBranch is the branch an edit session commits to. It is created
// once per issue from the default branch head and only ever moves forward:
// new commits are appended, history is never rewritten.
type WorkingBranch struct {
	Name          string
	BaseCommitSHA string
	CreatedAt     time.Time
}

// FileSnapshot is a file's content and git blob sha at the moment it was
// read. Snapshots are fetched on demand and never cached: the remote is the
// source of truth, and the sha is the optimistic-concurrency token for the
// next write.
type FileSnapshot struct {
	Path    string
	Content string
	SHA     string
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithTimeout overrides the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(g *Gateway) {
		g.timeout = d
	}
}

// WithMaxBlobSize overrides the byte ceiling for blob reads.
func WithMaxBlobSize(n int64) Option {
	return func(g *Gateway) {
		g.maxBlobSize = n
	}
}

// WithGraphQLClient overrides the GraphQL client, which is otherwise derived
// from the REST client's underlying HTTP client. Tests and GitHub Enterprise
// deployments use this to point the v4 endpoint elsewhere.
func WithGraphQLClient(client *githubv4.Client) Option {
	return func(g *Gateway) {
		g.graphql = client
	}
}

// Gateway is an authenticated client scoped to one repository. All fields
// are fixed at construction; ForRef derives read-scoped copies, so a Gateway
// is safe for concurrent use.
type Gateway struct {
	client  *github.Client
	graphql *githubv4.Client
	repo    RepositoryRef

	// ref is the branch reads resolve against. Empty means the remote's
	// default branch.
	ref string

	timeout     time.Duration
	maxBlobSize int64
}

// New creates a Gateway authenticated with the supplied token source. The
// token never appears in logs or error messages.
func New(ctx context.Context, repo RepositoryRef, tokenSource oauth2.TokenSource, opts ...Option) (*Gateway, error) {
	if tokenSource == nil {
		return nil, errors.New("token source cannot be nil")
	}

	return NewFromClient(repo, github.NewClient(oauth2.NewClient(ctx, tokenSource)), opts...)
}

// NewAppInstallation creates a Gateway authenticated as a GitHub App
// installation using the app's private key.
func NewAppInstallation(repo RepositoryRef, appID, installationID int64, privateKey []byte, opts ...Option) (*Gateway, error) {
	transport, err := ghinstallation.New(http.DefaultTransport, appID, installationID, privateKey)
	if err != nil {
		return nil, err
	}

	return NewFromClient(repo, github.NewClient(&http.Client{Transport: transport}), opts...)
}

// NewFromClient wraps an already-authenticated GitHub client. The GraphQL
// client is derived from the same underlying HTTP client unless overridden
// with WithGraphQLClient.
func NewFromClient(repo RepositoryRef, client *github.Client, opts ...Option) (*Gateway, error) {
	switch {
	case client == nil:
		return nil, errors.New("client cannot be nil")
	case repo.Owner == "":
		return nil, errors.New("repository owner cannot be empty")
	case repo.Name == "":
		return nil, errors.New("repository name cannot be empty")
	}

	g := &Gateway{
		client:      client,
		repo:        repo,
		timeout:     DefaultTimeout,
		maxBlobSize: DefaultMaxBlobSize,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.graphql == nil {
		g.graphql = githubv4.NewClient(client.Client())
	}

	return g, nil
}

// Repo returns the repository this Gateway is scoped to.
func (g *Gateway) Repo() RepositoryRef {
	return g.repo
}

// ForRef returns a Gateway whose reads resolve against ref instead of the
// repository's default branch. The derived Gateway shares the underlying
// clients.
func (g *Gateway) ForRef(ref string) *Gateway {
	derived := *g
	derived.ref = ref
	return &derived
}

// callCtx derives the bounded context every remote call runs under.
func (g *Gateway) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, g.timeout)
}
