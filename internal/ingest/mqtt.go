package ingest

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

// BaseTopic is the espresense device topic prefix. Beacons publish to
// BaseTopic/<identity>/<location>.
const BaseTopic = "espresense/devices"

const connectTimeout = 5 * time.Second

// ListenerConfig holds broker connection settings for a Listener.
type ListenerConfig struct {
	Broker   string
	Port     int
	Location string
	Username string
	Password string
}

// Listener subscribes to espresense beacon topics and forwards
// validated sightings to an Updater. Message handling runs on the paho
// client's own goroutines; the listener shares nothing with the render
// loop except the registry behind the Updater.
type Listener struct {
	updater  Updater
	location string
	client   mqtt.Client
}

// NewListener creates a listener. Call Start to connect.
func NewListener(updater Updater, cfg ListenerConfig) *Listener {
	l := &Listener{
		updater:  updater,
		location: cfg.Location,
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", cfg.Broker, cfg.Port))
	opts.SetAutoReconnect(true)
	opts.SetConnectRetryInterval(2 * time.Second)
	opts.SetMaxReconnectInterval(30 * time.Second)
	if cfg.Username != "" && cfg.Password != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	opts.OnConnect = func(c mqtt.Client) {
		topic := BaseTopic + "/+/+"
		token := c.Subscribe(topic, 0, l.handleMessage)
		go func() {
			token.Wait()
			if err := token.Error(); err != nil {
				log.Error().Err(err).Str("topic", topic).Msg("mqtt subscribe failed")
				return
			}
			log.Info().Str("topic", topic).Str("location", l.location).
				Msg("connected to mqtt broker")
		}()
	}
	opts.OnConnectionLost = func(c mqtt.Client, err error) {
		log.Warn().Err(err).Msg("mqtt connection lost, will auto-reconnect")
	}

	l.client = mqtt.NewClient(opts)
	return l
}

// Start connects to the broker. Subscription happens in the OnConnect
// handler so it survives reconnects.
func (l *Listener) Start() error {
	token := l.client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return fmt.Errorf("mqtt connect timeout after %s", connectTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("mqtt connect: %w", err)
	}
	return nil
}

// Stop disconnects from the broker.
func (l *Listener) Stop() {
	l.client.Disconnect(250)
}

func (l *Listener) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	reading, ok, err := ExtractReading(msg.Topic(), msg.Payload(), l.location)
	if err != nil {
		log.Warn().Err(err).Str("topic", msg.Topic()).Msg("discarding beacon message")
		return
	}
	if !ok {
		return
	}
	l.updater.Update(reading.ID, reading.RSSI)
}
