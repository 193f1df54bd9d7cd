// Package secrets resolves the generative backend API key, preferring the
// managed secret store and falling back to static configuration. Resolution
// happens once at startup; an empty result leaves the backend in
// placeholder-only mode for the process lifetime.
package secrets

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/rs/zerolog"
)

// SecretsAPI is the slice of the Secrets Manager client the resolver uses.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Resolver fetches a named secret with a static fallback value.
type Resolver struct {
	client   SecretsAPI
	secretID string
	fallback string
	logger   zerolog.Logger
}

// NewResolver builds a resolver for secretID. A failure to load AWS
// configuration is not fatal; the resolver then serves only the fallback.
func NewResolver(ctx context.Context, secretID, fallback string, logger zerolog.Logger) *Resolver {
	r := &Resolver{secretID: secretID, fallback: fallback, logger: logger}
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("secrets: aws config unavailable, static fallback only")
		return r
	}
	r.client = secretsmanager.NewFromConfig(cfg)
	return r
}

// NewResolverWithClient injects the secret store client directly.
func NewResolverWithClient(client SecretsAPI, secretID, fallback string, logger zerolog.Logger) *Resolver {
	return &Resolver{client: client, secretID: secretID, fallback: fallback, logger: logger}
}

// Resolve returns the API key, or "" when neither the secret store nor the
// fallback yields a non-empty value.
func (r *Resolver) Resolve(ctx context.Context) string {
	if r.client != nil && r.secretID != "" {
		out, err := r.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(r.secretID),
		})
		switch {
		case err != nil:
			r.logger.Warn().Err(err).Str("secret_id", r.secretID).Msg("secrets: fetch failed, using configured fallback")
		case out.SecretString != nil:
			if key := strings.TrimSpace(*out.SecretString); key != "" {
				return key
			}
			r.logger.Warn().Str("secret_id", r.secretID).Msg("secrets: secret value empty, using configured fallback")
		case len(out.SecretBinary) > 0:
			if key := strings.TrimSpace(string(out.SecretBinary)); key != "" {
				return key
			}
			r.logger.Warn().Str("secret_id", r.secretID).Msg("secrets: secret value empty, using configured fallback")
		}
	}
	return strings.TrimSpace(r.fallback)
}
