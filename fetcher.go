package symaudit

import "context"

// Fetcher retrieves the raw text of a documentation page.
type Fetcher interface {
	// Fetch performs a single request for the URL and returns the full body.
	// There is no retry; a failure is returned as an EFETCH error.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
