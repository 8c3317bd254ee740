package sink

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ble-trails.klederson.com/internal/strip"
	"github.com/rs/zerolog/log"
)

const retryBackoff = 50 * time.Millisecond

type segment struct {
	ID     int         `json:"id"`
	Pixels strip.Frame `json:"i"`
}

type statePayload struct {
	On       bool      `json:"on"`
	Segments []segment `json:"seg"`
}

// HTTP posts frames to WLED's JSON state API. Slower than the realtime
// protocol but works over routed networks. Timeouts and connection
// errors are retried a bounded number of times with a short backoff;
// when retries are exhausted the frame is dropped and the animation
// carries on.
type HTTP struct {
	url        string
	maxRetries int
	client     *http.Client
}

// NewHTTP creates a sink for the controller at host.
func NewHTTP(host string, timeout time.Duration, maxRetries int) *HTTP {
	return &HTTP{
		url:        fmt.Sprintf("http://%s/json/state", host),
		maxRetries: maxRetries,
		client:     &http.Client{Timeout: timeout},
	}
}

// Update posts the frame as a single full-strip segment.
func (h *HTTP) Update(frame strip.Frame) {
	body, err := json.Marshal(statePayload{
		On:       true,
		Segments: []segment{{ID: 0, Pixels: frame}},
	})
	if err != nil {
		log.Error().Err(err).Msg("encoding wled state")
		return
	}

	for attempt := 1; attempt <= h.maxRetries; attempt++ {
		resp, err := h.client.Post(h.url, "application/json", bytes.NewReader(body))
		if err == nil {
			resp.Body.Close()
			return
		}

		if attempt < h.maxRetries {
			log.Warn().Err(err).Int("attempt", attempt).Int("max", h.maxRetries).
				Msg("wled request failed, retrying")
			time.Sleep(retryBackoff)
			continue
		}
		log.Error().Err(err).Int("attempts", h.maxRetries).Msg("wled request failed, frame dropped")
	}
}
