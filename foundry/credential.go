package foundry

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"golang.org/x/oauth2"
)

// DefaultScope is the Entra ID scope accepted by Foundry project endpoints.
const DefaultScope = "https://ai.azure.com/.default"

// DefaultCredential discovers ambient credentials: environment variables,
// workload or managed identity, then the Azure CLI and Developer CLI logins.
func DefaultCredential() (azcore.TokenCredential, error) {
	return azidentity.NewDefaultAzureCredential(nil)
}

type credentialTokenSource struct {
	ctx    context.Context
	cred   azcore.TokenCredential
	scopes []string
}

func (s *credentialTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.cred.GetToken(s.ctx, policy.TokenRequestOptions{Scopes: s.scopes})
	if err != nil {
		return nil, fmt.Errorf("acquire token for %v: %w", s.scopes, err)
	}
	return &oauth2.Token{
		AccessToken: tok.Token,
		TokenType:   "Bearer",
		Expiry:      tok.ExpiresOn,
	}, nil
}

// NewTokenSource exposes an Azure credential as an oauth2.TokenSource. Tokens
// are cached until shortly before they expire.
func NewTokenSource(ctx context.Context, cred azcore.TokenCredential, scopes ...string) oauth2.TokenSource {
	if len(scopes) == 0 {
		scopes = []string{DefaultScope}
	}
	return oauth2.ReuseTokenSource(nil, &credentialTokenSource{
		ctx:    ctx,
		cred:   cred,
		scopes: scopes,
	})
}
