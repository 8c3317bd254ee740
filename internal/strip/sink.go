package strip

// Sink consumes completed frames. Implementations must accept a frame
// of the configured strip length and swallow transient delivery
// failures; the render loop never inspects sink errors.
type Sink interface {
	Update(frame Frame)
}
