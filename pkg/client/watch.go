package client

import (
	"bufio"
	"context"
	"net/http"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/dusklight/dusk/pkg/events"
)

// Watch subscribes to the daemon's event stream and invokes fn for every
// event until the context is canceled or the daemon closes the stream.
func (c *Client) Watch(ctx context.Context, fn func(events.Event)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://unix/events", nil)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to create events request")
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to open event stream")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return pkgerrors.Errorf("got %d opening event stream", resp.StatusCode)
	}

	var current events.Event
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "event:"):
			current.Name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			current.Data = []byte(strings.TrimSpace(strings.TrimPrefix(line, "data:")))
		case line == "":
			// Blank line terminates one SSE message.
			if current.Name != "" {
				fn(current)
			}
			current = events.Event{}
		}
	}

	if ctx.Err() != nil {
		return nil
	}
	return scanner.Err()
}
