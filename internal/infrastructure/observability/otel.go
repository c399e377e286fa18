package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// Metrics holds all engine metrics
type Metrics struct {
	GradingCount      metric.Int64Counter
	SynthesisCount    metric.Int64Counter
	SynthesisDuration metric.Float64Histogram
	ReportCacheHits   metric.Int64Counter
	ReportCacheMisses metric.Int64Counter
}

// Setup initializes OpenTelemetry tracing
func Setup(ctx context.Context, serviceName, serviceVersion, endpoint string) (func(context.Context) error, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, err
	}

	traceExporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	shutdown := func(ctx context.Context) error {
		return tracerProvider.Shutdown(ctx)
	}

	return shutdown, nil
}

// InitMetrics initializes engine metrics
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter("github.com/tracemineral/synthesis-engine")

	gradingCount, err := meter.Int64Counter(
		"engine.grading.count",
		metric.WithDescription("Number of evidence records graded"),
	)
	if err != nil {
		return nil, err
	}

	synthesisCount, err := meter.Int64Counter(
		"engine.synthesis.count",
		metric.WithDescription("Number of synthesis records produced"),
	)
	if err != nil {
		return nil, err
	}

	synthesisDuration, err := meter.Float64Histogram(
		"engine.synthesis.duration",
		metric.WithDescription("Synthesis duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	reportCacheHits, err := meter.Int64Counter(
		"engine.report_cache.hit.count",
		metric.WithDescription("Number of rendered-report cache hits"),
	)
	if err != nil {
		return nil, err
	}

	reportCacheMisses, err := meter.Int64Counter(
		"engine.report_cache.miss.count",
		metric.WithDescription("Number of rendered-report cache misses"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		GradingCount:      gradingCount,
		SynthesisCount:    synthesisCount,
		SynthesisDuration: synthesisDuration,
		ReportCacheHits:   reportCacheHits,
		ReportCacheMisses: reportCacheMisses,
	}, nil
}
