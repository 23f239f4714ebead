/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

/*
Package session implements the stateful edit engine an agent drives against
a working branch.

A Session is created per issue/branch pair and moves through three states:
Initialized on construction, Active after the first successful tool call,
and Finalized once a pull request has been opened for the branch. Every
mutating operation is one atomic transition: it re-fetches the remote state
it depends on, commits through the gateway, and appends an EditRecord, or
fails with a typed error and leaves the session untouched.

Remote state is the source of truth. Nothing is cached between calls, so an
edit whose original text no longer matches the current file content fails
(gateway.ErrNotFound or ErrNotUnique) instead of splicing into the wrong
region, and writes carry the freshly read blob sha as the
optimistic-concurrency token.

Undo is a single compensating slot, not a history stack: only the most
recent create/edit/delete can be reverted, the compensating commit is
appended to the record log like any other mutation, and a second
consecutive undo fails with ErrNothingToUndo.

A Session is driven sequentially by one agent loop and is not safe for
concurrent use. Independent sessions on distinct branches share nothing and
may run in parallel.
*/
package session
