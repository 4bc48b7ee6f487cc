package suggest

import (
	"context"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

// httpGet performs a GET with a hard deadline and returns a copy of the
// body. fasthttp pools response buffers, so the body must be copied out
// before release.
func httpGet(ctx context.Context, client *fasthttp.Client, rawURL string, timeout time.Duration) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(rawURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	if err := client.DoTimeout(req, resp, timeout); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("upstream returned status %d: %s", resp.StatusCode(), resp.Body())
	}

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}
