package notion

import "context"

// Source binds a client to one database. It implements the retrieval seam
// the CV builder consumes, so the builder never touches HTTP directly.
type Source struct {
	Client      *Client
	DatabaseID  string
	VisibleProp string // checkbox property gating inclusion, e.g. "Show on CV?"
}

// Pages returns every visible database row.
func (s *Source) Pages(ctx context.Context) ([]Page, error) {
	return s.Client.QueryDatabase(ctx, s.DatabaseID, s.VisibleProp)
}

// Blocks returns the materialized block tree for a page body.
func (s *Source) Blocks(ctx context.Context, pageID string) ([]Block, error) {
	return s.Client.PageBlocks(ctx, pageID)
}
