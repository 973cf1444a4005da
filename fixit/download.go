package fixit

import (
	"context"
	"io"
	"mime"
	"net/http"
	"net/url"
)

// DownloadInfo describes a completed blob download.
type DownloadInfo struct {
	// Filename is taken from the Content-Disposition header when present.
	Filename    string
	ContentType string
	Size        int64
}

// download streams a binary response body into w. Error bodies are still
// JSON and go through the usual message extraction; a 401 tears down the
// session like any other endpoint.
func (c *Client) download(ctx context.Context, path string, query url.Values, w io.Writer) (*DownloadInfo, error) {
	resp, err := c.roundTrip(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		c.invalidate()
		return nil, statusError(resp.StatusCode, data)
	}
	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return nil, statusError(resp.StatusCode, data)
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &Error{Kind: KindAborted, Message: "request aborted", Cause: err}
		}
		return nil, &Error{Kind: KindNetwork, Message: "read download", Cause: err}
	}

	info := &DownloadInfo{
		ContentType: resp.Header.Get("Content-Type"),
		Size:        n,
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			info.Filename = params["filename"]
		}
	}
	return info, nil
}
