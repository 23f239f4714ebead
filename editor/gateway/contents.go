/*
Copyright 2025 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/google/go-github/v75/github"
)

// EntryType classifies a TreeEntry.
type EntryType string

const (
	EntryTypeDir  EntryType = "dir"
	EntryTypeFile EntryType = "file"
)

// TreeEntry is one entry of a directory listing. Name is the entry's path
// relative to the repository root. Submodules and symlinks are reported as
// files; the session never follows them.
type TreeEntry struct {
	Name string
	Type EntryType
}

// ReadTree lists the directory at path on the gateway's read ref. It fails
// with ErrNotFound when the path does not exist or does not name a
// directory.
func (g *Gateway) ReadTree(ctx context.Context, path string) ([]TreeEntry, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	_, dir, _, err := g.client.Repositories.GetContents(ctx, g.repo.Owner, g.repo.Name, path, &github.RepositoryContentGetOptions{Ref: g.ref})
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", path, mapCommon(err))
	}
	if dir == nil {
		return nil, fmt.Errorf("listing %q: %w: not a directory", path, ErrNotFound)
	}

	entries := make([]TreeEntry, 0, len(dir))
	for _, content := range dir {
		entryType := EntryTypeFile
		if content.GetType() == "dir" {
			entryType = EntryTypeDir
		}
		entries = append(entries, TreeEntry{Name: content.GetPath(), Type: entryType})
	}
	return entries, nil
}

// ReadBlob fetches the file at path on the gateway's read ref. It fails with
// ErrNotFound when the path is missing or not a file, and ErrTooLarge when
// the blob exceeds the configured byte ceiling.
func (g *Gateway) ReadBlob(ctx context.Context, path string) (*FileSnapshot, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	file, _, _, err := g.client.Repositories.GetContents(ctx, g.repo.Owner, g.repo.Name, path, &github.RepositoryContentGetOptions{Ref: g.ref})
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, mapCommon(err))
	}
	if file == nil {
		return nil, fmt.Errorf("reading %q: %w: not a file", path, ErrNotFound)
	}
	if size := int64(file.GetSize()); size > g.maxBlobSize {
		return nil, fmt.Errorf("reading %q: %w: %d bytes exceeds the %d byte ceiling", path, ErrTooLarge, size, g.maxBlobSize)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}

	return &FileSnapshot{Path: path, Content: content, SHA: file.GetSHA()}, nil
}

// WriteBlob commits content to path on branch and returns the commit sha.
// An empty expectedSHA creates the file and fails with ErrAlreadyExists if
// it is already there; a non-empty expectedSHA updates the file and fails
// with ErrConflict when the sha no longer matches the remote blob.
func (g *Gateway) WriteBlob(ctx context.Context, path, content, message, branch, expectedSHA string) (string, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	opts := &github.RepositoryContentFileOptions{
		Message: github.Ptr(message),
		Content: []byte(content),
		Branch:  github.Ptr(branch),
	}

	var (
		resp *github.RepositoryContentResponse
		err  error
	)
	if expectedSHA == "" {
		resp, _, err = g.client.Repositories.CreateFile(ctx, g.repo.Owner, g.repo.Name, path, opts)
	} else {
		opts.SHA = github.Ptr(expectedSHA)
		resp, _, err = g.client.Repositories.UpdateFile(ctx, g.repo.Owner, g.repo.Name, path, opts)
	}
	if err != nil {
		switch statusCode(err) {
		case http.StatusConflict:
			return "", fmt.Errorf("writing %q: %w: remote content changed since it was read", path, ErrConflict)
		case http.StatusUnprocessableEntity:
			if expectedSHA == "" {
				return "", fmt.Errorf("writing %q: %w", path, ErrAlreadyExists)
			}
			return "", fmt.Errorf("writing %q: %w: sha rejected", path, ErrConflict)
		}
		return "", fmt.Errorf("writing %q: %w", path, mapCommon(err))
	}

	return resp.Commit.GetSHA(), nil
}

// DeleteBlob removes the file at path on branch and returns the commit sha.
// It fails with ErrConflict when expectedSHA no longer matches the remote
// blob.
func (g *Gateway) DeleteBlob(ctx context.Context, path, message, branch, expectedSHA string) (string, error) {
	ctx, cancel := g.callCtx(ctx)
	defer cancel()

	opts := &github.RepositoryContentFileOptions{
		Message: github.Ptr(message),
		SHA:     github.Ptr(expectedSHA),
		Branch:  github.Ptr(branch),
	}

	resp, _, err := g.client.Repositories.DeleteFile(ctx, g.repo.Owner, g.repo.Name, path, opts)
	if err != nil {
		switch statusCode(err) {
		case http.StatusConflict, http.StatusUnprocessableEntity:
			return "", fmt.Errorf("deleting %q: %w: remote content changed since it was read", path, ErrConflict)
		}
		return "", fmt.Errorf("deleting %q: %w", path, mapCommon(err))
	}

	return resp.Commit.GetSHA(), nil
}

// BlobSHA computes the git object id the remote assigns to a blob with the
// given content. Computing it locally lets callers track snapshot identity
// across their own writes without a follow-up read.
func BlobSHA(content string) string {
	return plumbing.ComputeHash(plumbing.BlobObject, []byte(content)).String()
}
