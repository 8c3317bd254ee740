// Package ingest feeds beacon sightings into the registry from MQTT,
// direct BLE scans, or a demo-mode generator.
package ingest

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Updater receives validated beacon sightings. Satisfied by
// *beacon.Registry and by decorators such as the simulator's stats
// tracker.
type Updater interface {
	Update(id string, rssi int)
}

// Reading is one validated beacon sighting.
type Reading struct {
	ID   string
	RSSI int
}

type payload struct {
	ID   string   `json:"id"`
	RSSI *float64 `json:"rssi"`
}

// ExtractReading validates an espresense message against the expected
// topic shape <root...>/<identity>/<location> and payload fields.
//
// ok=false with a nil error marks messages that are simply not for this
// listener: a topic with fewer than four segments or a location other
// than the configured one. A non-nil error marks a malformed message
// worth logging: undecodable payload, missing id or rssi, or an
// identity that differs between topic and payload. Fractional RSSI
// precision is discarded by truncation.
func ExtractReading(topic string, body []byte, location string) (Reading, bool, error) {
	parts := strings.Split(topic, "/")
	if len(parts) < 4 {
		return Reading{}, false, nil
	}

	topicLocation := parts[len(parts)-1]
	topicID := parts[len(parts)-2]

	if topicLocation != location {
		return Reading{}, false, nil
	}

	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return Reading{}, false, fmt.Errorf("decoding payload: %w", err)
	}
	if p.ID == "" || p.RSSI == nil {
		return Reading{}, false, fmt.Errorf("payload missing id or rssi for %q", topicID)
	}
	if p.ID != topicID {
		return Reading{}, false, fmt.Errorf("beacon id mismatch: topic %q, payload %q", topicID, p.ID)
	}

	return Reading{ID: topicID, RSSI: int(*p.RSSI)}, true, nil
}
