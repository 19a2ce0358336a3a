// Package ai provides health check integration for the model client
package ai

import (
	"context"

	"github.com/alchemorsel/recipegen/pkg/healthcheck"
)

// CredentialReporter is implemented by model clients
type CredentialReporter interface {
	HasCredential() bool
}

// NewModelChecker reports the model integration as degraded, not unhealthy,
// when no credential is configured: requests are still answered from
// fallback recipes.
func NewModelChecker(provider, model string, client CredentialReporter) healthcheck.Checker {
	return healthcheck.NewCustomChecker("model", func(ctx context.Context) (healthcheck.Status, string, interface{}) {
		metadata := map[string]interface{}{
			"provider": provider,
			"model":    model,
		}
		if !client.HasCredential() {
			return healthcheck.StatusDegraded, "model credential not configured; serving fallback recipes", metadata
		}
		return healthcheck.StatusHealthy, "", metadata
	})
}
