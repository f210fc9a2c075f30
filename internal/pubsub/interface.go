package pubsub

// PubSubClient publishes the pipeline's lifecycle events and decodes incoming
// payloads. Topics are the EventType constants declared in types.go.
type PubSubClient interface {
	SendMessage(topic EventType, data any) error
	ProcessMessage(data []byte, returnValue any) error
}
