// Package notifier pushes alerts to ntfy.sh.
package notifier

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sgolla/polar/log"
)

type Noop struct{}

func (n Noop) Notify(_, _ string) error {
	return nil
}

func NewNoop() Noop {
	return Noop{}
}

// Ntfy posts messages to a ntfy.sh topic URL.
type Ntfy struct {
	url    string
	client *http.Client
}

func NewNtfy(url string) *Ntfy {
	return &Ntfy{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (n *Ntfy) Notify(title, message string) error {
	req, err := http.NewRequest(http.MethodPost, n.url, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("can't create ntfy request: %w", err)
	}

	req.Header.Set("Title", title)
	req.Header.Set("Priority", "high")
	req.Header.Set("Tags", "snowflake,thermometer")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("can't send notification: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("ntfy request failed with status: %d", resp.StatusCode)
	}

	log.Info.Printf("sent ntfy notification: %s", title)

	return nil
}
