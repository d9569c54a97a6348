// Package ingest loads the student roster and elective quota sheets
// from Google Sheets and turns them into a model.Snapshot the core
// never has to know came from a spreadsheet.
package ingest

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/amoreau/repartition/internal/config"
)

// Client wraps a Sheets API service scoped to one OAuth token.
type Client struct {
	service *sheets.Service
	token   *oauth2.Token
}

// NewClient performs the OAuth flow (reusing a cached token when
// possible) and builds a Sheets-backed Client.
func NewClient(ctx context.Context, oauthCfg *config.OAuthClientConfig, env string) (*Client, error) {
	oauthConfig, err := getOAuthConfig(oauthCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build oauth config: %w", err)
	}

	token, err := getTokenWithFlow(ctx, oauthConfig, env)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain oauth token: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{service: service, token: token}, nil
}

// Token exposes the token currently backing this client.
func (c *Client) Token() *oauth2.Token {
	return c.token
}

// GetValues reads every row in sheetRange from spreadsheetID.
func (c *Client) GetValues(spreadsheetID, sheetRange string) ([][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, sheetRange).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet range %s: %w", sheetRange, err)
	}
	return resp.Values, nil
}
