package notion

import (
	"context"

	"github.com/jomei/notionapi"
	"github.com/rotisserie/eris"
)

// QueryAll walks a Notion database cursor to the end and returns every
// page. The filter, sort order, and page size come from req; cursor
// management happens here. Rule-module databases are small (tens of
// rows), so pages are fetched one at a time and the Client's rate
// limiter and retry policy govern each request.
func QueryAll(ctx context.Context, c Client, dbID string, req *notionapi.DatabaseQueryRequest) ([]notionapi.Page, error) {
	var pages []notionapi.Page
	var cursor notionapi.Cursor

	for {
		q := &notionapi.DatabaseQueryRequest{StartCursor: cursor}
		if req != nil {
			q.Filter = req.Filter
			q.Sorts = req.Sorts
			q.PageSize = req.PageSize
		}

		resp, err := c.QueryDatabase(ctx, dbID, q)
		if err != nil {
			return nil, eris.Wrapf(err, "notion: query all (cursor %q)", cursor)
		}

		pages = append(pages, resp.Results...)
		if !resp.HasMore {
			return pages, nil
		}
		cursor = resp.NextCursor
	}
}
