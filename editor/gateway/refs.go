/*
Copyright 2025 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v75/github"
)

// DefaultBranch resolves the repository's default branch and its head
// commit. A DefaultBranch pinned on the RepositoryRef is taken as
// authoritative and saves the repository lookup.
func (g *Gateway) DefaultBranch(ctx context.Context) (name, headSHA string, err error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	name = g.repo.DefaultBranch
	if name == "" {
		repo, _, err := g.client.Repositories.Get(ctx, g.repo.Owner, g.repo.Name)
		if err != nil {
			return "", "", fmt.Errorf("resolving default branch: %w", mapCommon(err))
		}
		name = repo.GetDefaultBranch()
	}

	ref, _, err := g.client.Git.GetRef(ctx, g.repo.Owner, g.repo.Name, "heads/"+name)
	if err != nil {
		return "", "", fmt.Errorf("resolving head of %q: %w", name, mapCommon(err))
	}

	return name, ref.GetObject().GetSHA(), nil
}

// CreateBranch creates branch name at fromSHA. It fails with
// ErrAlreadyExists when the ref exists; creation is never a silent no-op,
// so callers decide their own reuse policy.
func (g *Gateway) CreateBranch(ctx context.Context, fromSHA, name string) error {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	_, _, err := g.client.Git.CreateRef(ctx, g.repo.Owner, g.repo.Name, github.CreateRef{
		Ref: "refs/heads/" + name,
		SHA: fromSHA,
	})
	if err != nil {
		if ger := errorResponse(err); ger != nil && ger.Response != nil &&
			ger.Response.StatusCode == http.StatusUnprocessableEntity &&
			strings.Contains(strings.ToLower(ger.Message), "already exists") {
			return fmt.Errorf("branch %q: %w", name, ErrAlreadyExists)
		}
		return fmt.Errorf("creating branch %q: %w", name, mapCommon(err))
	}

	return nil
}
