/*
Copyright 2025 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v75/github"
)

// IssueData is the slice of a GitHub issue the transcript builder consumes.
type IssueData struct {
	Number    int
	Title     string
	Body      string
	Author    string
	URL       string
	CreatedAt time.Time
}

// Comment is one issue comment, in API order.
type Comment struct {
	Author    string
	Text      string
	CreatedAt time.Time
}

// Issue fetches the issue by number. It fails with ErrNotFound when the
// issue does not exist and ErrAccessDenied when the token cannot see it.
func (g *Gateway) Issue(ctx context.Context, number int) (*IssueData, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	issue, _, err := g.client.Issues.Get(ctx, g.repo.Owner, g.repo.Name, number)
	if err != nil {
		return nil, fmt.Errorf("fetch issue #%d: %w", number, mapCommon(err))
	}

	return &IssueData{
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		Body:      issue.GetBody(),
		Author:    issue.GetUser().GetLogin(),
		URL:       issue.GetHTMLURL(),
		CreatedAt: issue.GetCreatedAt().Time,
	}, nil
}

// IssueComments fetches every comment on the issue in creation order,
// paging through the API as needed.
func (g *Gateway) IssueComments(ctx context.Context, number int) ([]Comment, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	opt := &github.IssueListCommentsOptions{
		Sort:        github.Ptr("created"),
		Direction:   github.Ptr("asc"),
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var comments []Comment
	for {
		page, resp, err := g.client.Issues.ListComments(ctx, g.repo.Owner, g.repo.Name, number, opt)
		if err != nil {
			return nil, fmt.Errorf("fetch comments for issue #%d: %w", number, mapCommon(err))
		}
		for _, comment := range page {
			comments = append(comments, Comment{
				Author:    comment.GetUser().GetLogin(),
				Text:      comment.GetBody(),
				CreatedAt: comment.GetCreatedAt().Time,
			})
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	return comments, nil
}
