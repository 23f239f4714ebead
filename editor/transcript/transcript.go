/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

// Package transcript normalizes a GitHub issue and its comment thread into
// the conversation an agent consumes, and resolves the working branch the
// resulting edit session commits to.
//
// Comments written by the automation itself are recognized by a literal
// prefix marker, not by account inference: an entry whose text begins with
// the configured prefix becomes an assistant turn with the prefix stripped,
// so the agent does not mistake its own prior remarks for user input. The
// issue body is subject to the same test as every comment.
package transcript

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/deepset-ai/dap-github-agent-template/agents/prompt"
	"github.com/deepset-ai/dap-github-agent-template/editor/gateway"
	"golang.org/x/sync/errgroup"
)

// ErrIssueNotFound indicates the issue does not exist. Issue fetch failures
// are fatal to a session: there is nothing meaningful to act on, so the
// builder never retries.
var ErrIssueNotFound = errors.New("issue not found")

// DefaultBranchPrefix names working branches issue-{number}.
const DefaultBranchPrefix = "issue-"

// issueURLPattern matches canonical GitHub issue URLs.
var issueURLPattern = regexp.MustCompile(`^https?://github\.com/([^/\s]+)/([^/\s]+)/issues/(\d+)$`)

// ParseIssueURL extracts the repository coordinate and issue number from an
// issue URL like https://github.com/owner/repo/issues/42.
func ParseIssueURL(url string) (owner, repo string, number int, err error) {
	m := issueURLPattern.FindStringSubmatch(strings.TrimSpace(url))
	if m == nil {
		return "", "", 0, fmt.Errorf("not a GitHub issue URL: %q", url)
	}
	number, err = strconv.Atoi(m[3])
	if err != nil {
		return "", "", 0, fmt.Errorf("issue number in %q: %w", url, err)
	}
	return m[1], m[2], number, nil
}

// Role classifies who authored a transcript entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Entry is one turn of the conversation, in chronological order.
type Entry struct {
	Author    string    `yaml:"author"`
	Role      Role      `yaml:"role"`
	Text      string    `yaml:"text"`
	CreatedAt time.Time `yaml:"created_at"`
}

// IssueTranscript is the normalized conversation for one issue. Built once,
// read-only thereafter.
type IssueTranscript struct {
	IssueURL string  `yaml:"issue_url"`
	Number   int     `yaml:"number"`
	Title    string  `yaml:"title"`
	Author   string  `yaml:"author"`
	Body     string  `yaml:"body"`
	BodyRole Role    `yaml:"body_role"`
	Entries  []Entry `yaml:"comments"`
}

// Bind implements prompt.Bindable: the transcript fills an {{issue}}
// placeholder as YAML, so harness templates need no bespoke formatting.
func (t *IssueTranscript) Bind(p *prompt.Prompt) (*prompt.Prompt, error) {
	return p.BindYAML("issue", t)
}

// Gateway is the slice of the repository gateway the builder reads through.
type Gateway interface {
	Issue(ctx context.Context, number int) (*gateway.IssueData, error)
	IssueComments(ctx context.Context, number int) ([]gateway.Comment, error)
	DefaultBranch(ctx context.Context) (name, headSHA string, err error)
	CreateBranch(ctx context.Context, fromSHA, name string) error
}

// Option configures a Builder.
type Option func(*Builder)

// WithAssistantPrefix sets the literal marker identifying the automation's
// own comments, e.g. "Assistant:". Empty (the default) disables filtering.
func WithAssistantPrefix(prefix string) Option {
	return func(b *Builder) {
		b.assistantPrefix = prefix
	}
}

// WithBranchPrefix overrides the issue-{number} branch naming convention.
func WithBranchPrefix(prefix string) Option {
	return func(b *Builder) {
		b.branchPrefix = prefix
	}
}

// WithFailIfExists makes EnsureBranch reject an existing working branch
// instead of resuming on it.
func WithFailIfExists() Option {
	return func(b *Builder) {
		b.failIfExists = true
	}
}

// Builder fetches and normalizes issues for one repository.
type Builder struct {
	gw              Gateway
	assistantPrefix string
	branchPrefix    string
	failIfExists    bool
}

// New creates a Builder reading through gw.
func New(gw Gateway, opts ...Option) *Builder {
	b := &Builder{
		gw:           gw,
		branchPrefix: DefaultBranchPrefix,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build fetches the issue and its full comment thread, orders the comments
// chronologically, and classifies every entry against the assistant prefix.
// It fails with ErrIssueNotFound or gateway.ErrAccessDenied; both are fatal
// and never retried here.
func (b *Builder) Build(ctx context.Context, number int) (*IssueTranscript, error) {
	var (
		issue    *gateway.IssueData
		comments []gateway.Comment
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		issue, err = b.gw.Issue(egCtx, number)
		return err
	})
	eg.Go(func() error {
		var err error
		comments, err = b.gw.IssueComments(egCtx, number)
		return err
	})
	if err := eg.Wait(); err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			return nil, fmt.Errorf("issue #%d: %w", number, ErrIssueNotFound)
		}
		return nil, err
	}

	body, bodyRole := b.classify(issue.Body)

	entries := make([]Entry, 0, len(comments))
	for _, c := range comments {
		text, role := b.classify(c.Text)
		entries = append(entries, Entry{
			Author:    c.Author,
			Role:      role,
			Text:      text,
			CreatedAt: c.CreatedAt,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})

	return &IssueTranscript{
		IssueURL: issue.URL,
		Number:   issue.Number,
		Title:    issue.Title,
		Author:   issue.Author,
		Body:     body,
		BodyRole: bodyRole,
		Entries:  entries,
	}, nil
}

// classify applies the literal prefix test and strips the marker from
// assistant turns.
func (b *Builder) classify(text string) (string, Role) {
	if b.assistantPrefix == "" || !strings.HasPrefix(text, b.assistantPrefix) {
		return text, RoleUser
	}
	return strings.TrimSpace(strings.TrimPrefix(text, b.assistantPrefix)), RoleAssistant
}

// BranchName returns the working branch name for an issue number.
func (b *Builder) BranchName(number int) string {
	return fmt.Sprintf("%s%d", b.branchPrefix, number)
}

// EnsureBranch creates the working branch for the issue from the default
// branch head. By default an existing branch is reused (created=false) so a
// re-triggered issue resumes its session; WithFailIfExists surfaces the
// gateway's ErrAlreadyExists instead.
func (b *Builder) EnsureBranch(ctx context.Context, number int) (*gateway.WorkingBranch, bool, error) {
	name := b.BranchName(number)

	_, headSHA, err := b.gw.DefaultBranch(ctx)
	if err != nil {
		return nil, false, err
	}

	if err := b.gw.CreateBranch(ctx, headSHA, name); err != nil {
		if errors.Is(err, gateway.ErrAlreadyExists) && !b.failIfExists {
			return &gateway.WorkingBranch{Name: name, BaseCommitSHA: headSHA}, false, nil
		}
		return nil, false, err
	}

	return &gateway.WorkingBranch{
		Name:          name,
		BaseCommitSHA: headSHA,
		CreatedAt:     time.Now(),
	}, true, nil
}
