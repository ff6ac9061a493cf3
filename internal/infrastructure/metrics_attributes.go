package infrastructure

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
)

const (
	httpMethodKey     = "http.method"
	httpPathKey       = "http.path"
	httpStatusCodeKey = "http.status_code"
	statusKey         = "status"
	commandNameKey    = "command.name"
	queueEventKey     = "messaging.event"
	queueNameKey      = "messaging.destination.name"
	requeueKey        = "messaging.requeue"
	eventTypeKey      = "outbox.event_type"
)

func HTTPMethodAttr(method string) attribute.KeyValue {
	return attribute.String(httpMethodKey, method)
}

func HTTPPathAttr(path string) attribute.KeyValue {
	return attribute.String(httpPathKey, path)
}

func HTTPStatusCodeAttr(code int) attribute.KeyValue {
	return attribute.String(httpStatusCodeKey, fmt.Sprintf("%d", code))
}

func StatusAttr(status string) attribute.KeyValue {
	return attribute.String(statusKey, status)
}

func CommandNameAttr(name string) attribute.KeyValue {
	return attribute.String(commandNameKey, name)
}

func QueueEventAttr(event string) attribute.KeyValue {
	return attribute.String(queueEventKey, event)
}

func QueueNameAttr(queue string) attribute.KeyValue {
	return attribute.String(queueNameKey, queue)
}

func RequeueAttr(requeue bool) attribute.KeyValue {
	return attribute.Bool(requeueKey, requeue)
}

func EventTypeAttr(eventType string) attribute.KeyValue {
	return attribute.String(eventTypeKey, eventType)
}
