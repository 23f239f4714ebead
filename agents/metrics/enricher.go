/*
Copyright 2026 deepset GmbH
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

// AttributeEnricher adds application context to metric attributes. It
// receives the base attributes (model, tool) and returns the enriched set;
// harnesses use it to tag usage with repository and issue identifiers.
type AttributeEnricher func(ctx context.Context, base []attribute.KeyValue) []attribute.KeyValue
