package middleware

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/felixgeelhaar/mpd-go/protocol"
)

const (
	instrumentationName = "github.com/felixgeelhaar/mpd-go"
)

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*otelConfig)

type otelConfig struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	serviceName    string
	skipCommands   map[string]bool
}

// WithTracerProvider sets a custom tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *otelConfig) {
		c.tracerProvider = tp
	}
}

// WithMeterProvider sets a custom meter provider.
func WithMeterProvider(mp metric.MeterProvider) OTelOption {
	return func(c *otelConfig) {
		c.meterProvider = mp
	}
}

// WithOTelServiceName sets the service name for telemetry.
func WithOTelServiceName(name string) OTelOption {
	return func(c *otelConfig) {
		c.serviceName = name
	}
}

// WithOTelSkipCommands specifies command names to skip for tracing.
func WithOTelSkipCommands(names ...string) OTelOption {
	return func(c *otelConfig) {
		for _, n := range names {
			c.skipCommands[n] = true
		}
	}
}

// OTel returns middleware that adds OpenTelemetry tracing and metrics.
// It creates a client span for each command and records command counts
// and latency.
func OTel(opts ...OTelOption) Middleware {
	cfg := &otelConfig{
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
		serviceName:    "mpd-client",
		skipCommands:   make(map[string]bool),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	tracer := cfg.tracerProvider.Tracer(
		instrumentationName,
		trace.WithInstrumentationVersion("1.0.0"),
	)

	meter := cfg.meterProvider.Meter(
		instrumentationName,
		metric.WithInstrumentationVersion("1.0.0"),
	)

	commandCounter, _ := meter.Int64Counter(
		"mpd.client.commands",
		metric.WithDescription("Total number of MPD commands sent"),
		metric.WithUnit("{command}"),
	)

	commandDuration, _ := meter.Float64Histogram(
		"mpd.client.command.duration",
		metric.WithDescription("Duration of MPD commands"),
		metric.WithUnit("ms"),
	)

	errorCounter, _ := meter.Int64Counter(
		"mpd.client.errors",
		metric.WithDescription("Total number of failed MPD commands"),
		metric.WithUnit("{error}"),
	)

	return func(next ExecFunc) ExecFunc {
		return func(ctx context.Context, cmd protocol.Command) (string, error) {
			name := protocol.Name(cmd)
			if cfg.skipCommands[name] {
				return next(ctx, cmd)
			}

			spanName := "mpd." + name
			ctx, span := tracer.Start(ctx, spanName,
				trace.WithSpanKind(trace.SpanKindClient),
				trace.WithAttributes(
					attribute.String("mpd.command", name),
					attribute.String("service.name", cfg.serviceName),
				),
			)
			defer span.End()

			if id := CommandIDFromContext(ctx); id != "" {
				span.SetAttributes(attribute.String("mpd.command_id", id))
			}

			startTime := time.Now()

			attrs := []attribute.KeyValue{
				attribute.String("mpd.command", name),
				attribute.String("service.name", cfg.serviceName),
			}

			commandCounter.Add(ctx, 1, metric.WithAttributes(attrs...))

			body, err := next(ctx, cmd)

			duration := float64(time.Since(startTime).Milliseconds())
			commandDuration.Record(ctx, duration, metric.WithAttributes(attrs...))

			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())

				var serr *protocol.ServerError
				if errors.As(err, &serr) {
					span.SetAttributes(attribute.Int("mpd.ack_code", serr.Code))
					errorCounter.Add(ctx, 1, metric.WithAttributes(
						append(attrs, attribute.Int("mpd.ack_code", serr.Code))...,
					))
				} else {
					errorCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
				}
			} else {
				span.SetStatus(codes.Ok, "")
			}

			return body, err
		}
	}
}

// SpanFromContext returns the current span from context.
// Returns a no-op span if no span is present.
func SpanFromContext(ctx context.Context) trace.Span {
	return trace.SpanFromContext(ctx)
}

// AddSpanEvent adds an event to the current span.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
