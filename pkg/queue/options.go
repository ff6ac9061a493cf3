package queue

import (
	"time"
)

const (
	publishingTimeout = 3 * time.Second
)

type clientOptions struct {
	logger           Logger
	recorder         *Recorder
	requeueOnFailure bool
	retryTimeout     time.Duration
}

type ClientOption func(options *clientOptions)

// WithLogger returns a ClientOption which sets the logger used by the client.
func WithLogger(l Logger) ClientOption {
	return func(o *clientOptions) {
		o.logger = l
	}
}

// WithRecorder returns a ClientOption which shares an existing event recorder
// instead of creating a private one.
func WithRecorder(r *Recorder) ClientOption {
	return func(o *clientOptions) {
		o.recorder = r
	}
}

// WithRequeueOnFailure returns a ClientOption which sets the requeue flag used
// when a handler fails on a message that carries no maxRetries header.
func WithRequeueOnFailure(requeue bool) ClientOption {
	return func(o *clientOptions) {
		o.requeueOnFailure = requeue
	}
}

// WithRetryPublishingTimeout returns a ClientOption which sets the timeout used
// when a failed message is republished for another attempt.
func WithRetryPublishingTimeout(d time.Duration) ClientOption {
	return func(o *clientOptions) {
		if d > 0 {
			o.retryTimeout = d
		}
	}
}

func defaultClientOptions() clientOptions {
	return clientOptions{
		requeueOnFailure: true,
		retryTimeout:     publishingTimeout,
	}
}

// publisherOptions configure a single Publish or SendMessage call.
type publisherOptions struct {
	timeout    time.Duration
	messageID  string
	maxRetries *int
}

type PublisherOption func(options *publisherOptions)

// WithPublishingTimeout returns a PublisherOption which sets the timeout used when
// publishing the message. It does not travel with the message: retries use the
// client's WithRetryPublishingTimeout.
func WithPublishingTimeout(d time.Duration) PublisherOption {
	return func(o *publisherOptions) {
		o.timeout = d
	}
}

// WithMessageID returns a PublisherOption which sets the message identity.
// Without it a random UUID is assigned.
func WithMessageID(id string) PublisherOption {
	return func(o *publisherOptions) {
		o.messageID = id
	}
}

// WithMaxRetries returns a PublisherOption which opts the message into bounded
// retries: after n failed redeliveries it is dropped.
func WithMaxRetries(n int) PublisherOption {
	return func(o *publisherOptions) {
		if n < 0 {
			n = 0
		}

		o.maxRetries = &n
	}
}

func defaultPublisherOptions() publisherOptions {
	return publisherOptions{
		timeout: publishingTimeout,
	}
}

type consumerOptions struct {
	errHandler func(error)
}

type ConsumerOption func(*consumerOptions)

// WithErrorHandler returns a ConsumerOption which sets a handler for errors that occur when consuming messages.
// A nil handler keeps the default, which discards errors.
func WithErrorHandler(handler func(error)) ConsumerOption {
	return func(o *consumerOptions) {
		if handler != nil {
			o.errHandler = handler
		}
	}
}

func defaultConsumerOptions() consumerOptions {
	return consumerOptions{
		errHandler: func(_ error) {},
	}
}
