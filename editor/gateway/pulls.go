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
	"github.com/shurcooL/githubv4"
)

// PullRequestResult is the terminal artifact of a publish: the opened pull
// request's coordinates. State is normalized to lowercase ("open").
type PullRequestResult struct {
	URL    string
	Number int
	State  string
}

// PullRequestOption adjusts how OpenPullRequest creates the pull request.
type PullRequestOption func(*github.NewPullRequest)

// WithDraft opens the pull request as a draft.
func WithDraft() PullRequestOption {
	return func(pr *github.NewPullRequest) {
		pr.Draft = github.Ptr(true)
	}
}

// WithoutMaintainerEdits prevents repository maintainers from pushing to
// the head branch. The default allows it.
func WithoutMaintainerEdits() PullRequestOption {
	return func(pr *github.NewPullRequest) {
		pr.MaintainerCanModify = github.Ptr(false)
	}
}

// OpenPullRequest opens a pull request merging head into base. By default
// the pull request is not a draft and maintainers may modify it. It fails
// with ErrAlreadyExists when an open pull request for the head/base pair
// already exists.
func (g *Gateway) OpenPullRequest(ctx context.Context, base, head, title, body string, opts ...PullRequestOption) (*PullRequestResult, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	req := &github.NewPullRequest{
		Title:               github.Ptr(title),
		Body:                github.Ptr(body),
		Head:                github.Ptr(head),
		Base:                github.Ptr(base),
		Draft:               github.Ptr(false),
		MaintainerCanModify: github.Ptr(true),
	}
	for _, opt := range opts {
		opt(req)
	}

	pr, _, err := g.client.PullRequests.Create(ctx, g.repo.Owner, g.repo.Name, req)
	if err != nil {
		if isDuplicatePullRequest(err) {
			return nil, fmt.Errorf("pull request %s -> %s: %w", head, base, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("creating pull request: %w", mapCommon(err))
	}

	return &PullRequestResult{
		URL:    pr.GetHTMLURL(),
		Number: pr.GetNumber(),
		State:  pr.GetState(),
	}, nil
}

// isDuplicatePullRequest reports whether err is GitHub's 422 for a head/base
// pair that already has an open pull request.
func isDuplicatePullRequest(err error) bool {
	ger := errorResponse(err)
	if ger == nil || ger.Response == nil || ger.Response.StatusCode != http.StatusUnprocessableEntity {
		return false
	}
	for _, e := range ger.Errors {
		if strings.Contains(strings.ToLower(e.Message), "already exists") {
			return true
		}
	}
	return strings.Contains(strings.ToLower(ger.Message), "already exists")
}

// FindOpenPullRequest locates the open pull request merging head into base
// via a single GraphQL query. It fails with ErrNotFound when none is open.
func (g *Gateway) FindOpenPullRequest(ctx context.Context, base, head string) (*PullRequestResult, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	var query struct {
		Repository struct {
			PullRequests struct {
				Nodes []struct {
					Number int
					Url    string
					State  string
				}
			} `graphql:"pullRequests(headRefName: $headRef, baseRefName: $baseRef, states: [OPEN], first: 1)"`
		} `graphql:"repository(owner: $owner, name: $repo)"`
	}

	variables := map[string]any{
		"owner":   githubv4.String(g.repo.Owner),
		"repo":    githubv4.String(g.repo.Name),
		"headRef": githubv4.String(head),
		"baseRef": githubv4.String(base),
	}

	if err := g.graphql.Query(ctx, &query, variables); err != nil {
		return nil, fmt.Errorf("querying pull requests: %w", err)
	}

	if len(query.Repository.PullRequests.Nodes) == 0 {
		return nil, fmt.Errorf("open pull request %s -> %s: %w", head, base, ErrNotFound)
	}

	pr := query.Repository.PullRequests.Nodes[0]
	return &PullRequestResult{
		URL:    pr.Url,
		Number: pr.Number,
		State:  strings.ToLower(pr.State),
	}, nil
}

// FileDiff summarizes one file's changes between two commits.
type FileDiff struct {
	Path      string
	Status    string
	Additions int
	Deletions int
	Patch     string
}

// CompareCommits returns the per-file diff summary between base and head.
func (g *Gateway) CompareCommits(ctx context.Context, base, head string) ([]FileDiff, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	comparison, _, err := g.client.Repositories.CompareCommits(ctx, g.repo.Owner, g.repo.Name, base, head, &github.ListOptions{PerPage: 100})
	if err != nil {
		return nil, fmt.Errorf("comparing %s...%s: %w", base, head, mapCommon(err))
	}

	diffs := make([]FileDiff, 0, len(comparison.Files))
	for _, file := range comparison.Files {
		diffs = append(diffs, FileDiff{
			Path:      file.GetFilename(),
			Status:    file.GetStatus(),
			Additions: file.GetAdditions(),
			Deletions: file.GetDeletions(),
			Patch:     file.GetPatch(),
		})
	}
	return diffs, nil
}
