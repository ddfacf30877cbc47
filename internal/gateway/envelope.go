package gateway

import "encoding/json"

// ContentTypeJSON is the media-type tag carried by every success envelope.
const ContentTypeJSON = "application/json"

// Envelope is the uniform success container returned by every tool
// invocation: a media-type tag plus the handler's payload. The envelope adds
// no semantics of its own; the surrounding transport delivers it as a single
// JSON text content.
type Envelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Wrap builds the success envelope for a handler payload.
func Wrap(data interface{}) *Envelope {
	return &Envelope{Type: ContentTypeJSON, Data: data}
}

// JSON serializes the envelope for transport.
func (e *Envelope) JSON() (string, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
