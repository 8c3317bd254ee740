// Package sink delivers finished frames to a WLED controller over the
// network. Both transports implement strip.Sink and never surface
// transient failures to the render loop.
package sink

import (
	"fmt"
	"net"

	"ble-trails.klederson.com/internal/strip"
	"github.com/rs/zerolog/log"
)

// DefaultUDPPort is WLED's realtime protocol port.
const DefaultUDPPort = 21324

var drgbHeader = []byte("DRGB")

// UDP streams frames with WLED's DRGB realtime protocol: a 4-byte
// header followed by one RGB triple per pixel, one datagram per frame.
// Fire-and-forget; a lost datagram is corrected by the next frame.
type UDP struct {
	conn net.Conn
}

// NewUDP dials the controller. Resolution failures surface here, at
// startup, rather than on the render path.
func NewUDP(host string, port int) (*UDP, error) {
	conn, err := net.Dial("udp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		return nil, fmt.Errorf("dialing wled %s:%d: %w", host, port, err)
	}
	return &UDP{conn: conn}, nil
}

// Update sends one DRGB datagram for the frame. Transport errors are
// swallowed; no retry is meaningful for an unreliable datagram.
func (u *UDP) Update(frame strip.Frame) {
	packet := make([]byte, 0, len(drgbHeader)+3*len(frame))
	packet = append(packet, drgbHeader...)
	for _, px := range frame {
		packet = append(packet, byte(px[0]), byte(px[1]), byte(px[2]))
	}

	if _, err := u.conn.Write(packet); err != nil {
		log.Debug().Err(err).Msg("udp frame dropped")
	}
}

// Close releases the socket.
func (u *UDP) Close() error {
	return u.conn.Close()
}
