package gateway

import "context"

// DrainPages fully consumes a paginated data source into one ordered slice.
//
// fetch is called with the current continuation token (nil for the first
// page); extract pulls the page's items and the next token out of the
// response. Draining stops when the next token is nil or empty. Items keep
// page order: page 1 elements precede page 2 elements.
//
// A fetch failure mid-drain aborts the whole operation: pages already
// fetched are discarded and the error is returned alone. Partial success is
// not a supported mode.
func DrainPages[P, I any](
	ctx context.Context,
	fetch func(ctx context.Context, token *string) (P, error),
	extract func(page P) ([]I, *string),
) ([]I, error) {
	var items []I
	var token *string
	for {
		page, err := fetch(ctx, token)
		if err != nil {
			return nil, err
		}
		pageItems, next := extract(page)
		items = append(items, pageItems...)
		if next == nil || *next == "" {
			return items, nil
		}
		token = next
	}
}
