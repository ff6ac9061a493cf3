package decorator

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type (
	commandMetricsDecorator[C any, R any] struct {
		base   CommandHandler[C, R]
		client MetricsClient
	}

	queryMetricsDecorator[Q any, R any] struct {
		base   QueryHandler[Q, R]
		client MetricsClient
	}
)

func (d commandMetricsDecorator[C, R]) Handle(ctx context.Context, cmd C) (result R, err error) {
	start := time.Now()

	actionName := strings.ToLower(generateActionName(cmd))

	defer func() {
		d.record("commands", actionName, start, err)
	}()

	return d.base.Handle(ctx, cmd)
}

func (d queryMetricsDecorator[Q, R]) Execute(ctx context.Context, q Q) (result R, err error) {
	start := time.Now()

	actionName := strings.ToLower(generateActionName(q))

	defer func() {
		d.record("queries", actionName, start, err)
	}()

	return d.base.Execute(ctx, q)
}

func (d commandMetricsDecorator[C, R]) record(kind, actionName string, start time.Time, err error) {
	recordAction(d.client, kind, actionName, start, err)
}

func (d queryMetricsDecorator[Q, R]) record(kind, actionName string, start time.Time, err error) {
	recordAction(d.client, kind, actionName, start, err)
}

// recordAction reports <kind>.<action>.duration in milliseconds and a
// <kind>.<action>.success or .failure counter.
func recordAction(client MetricsClient, kind, actionName string, start time.Time, err error) {
	client.Inc(fmt.Sprintf("%s.%s.duration", kind, actionName), int(time.Since(start).Milliseconds()))

	if err == nil {
		client.Inc(fmt.Sprintf("%s.%s.success", kind, actionName), 1)
	} else {
		client.Inc(fmt.Sprintf("%s.%s.failure", kind, actionName), 1)
	}
}
