package observability

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"interviewsim/internal/config"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// ObservabilityConfig holds configuration for observability
type ObservabilityConfig struct {
	ServiceName    string
	ServiceVersion string
	Enabled        bool
	ConsoleOutput  bool
	PrettyPrint    bool
	SampleRate     float64
	Prometheus     PrometheusConfig
}

// Metrics holds all custom metrics for the interview pipeline
type Metrics struct {
	// Pipeline operation metrics
	OperationDuration metric.Float64Histogram
	OperationCount    metric.Int64Counter
	OperationErrors   metric.Int64Counter

	// Session metrics
	SessionsCreated   metric.Int64Counter
	SessionsCompleted metric.Int64Counter
	AnswersScored     metric.Int64Counter
	ScoreDistribution metric.Float64Histogram

	// Question bank metrics
	BankReloadCount metric.Int64Counter

	// Rate limiting metrics
	RateLimitHits metric.Int64Counter
}

// ObservabilityManager manages OpenTelemetry setup
type ObservabilityManager struct {
	config           ObservabilityConfig
	fullConfig       *config.Config // Store full config for access to nested settings
	tracerProvider   *trace.TracerProvider
	meterProvider    *sdkmetric.MeterProvider
	metrics          *Metrics
	shutdownFuncs    []func(context.Context) error
	prometheusServer *http.ServeMux
}

// NewObservabilityManager creates a new observability manager
func NewObservabilityManager(obsConfig ObservabilityConfig, fullConfig *config.Config) (*ObservabilityManager, error) {
	if !obsConfig.Enabled {
		return &ObservabilityManager{config: obsConfig, fullConfig: fullConfig}, nil
	}

	om := &ObservabilityManager{
		config:        obsConfig,
		fullConfig:    fullConfig,
		shutdownFuncs: make([]func(context.Context) error, 0),
	}

	if err := om.initTracing(); err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	if err := om.initMetrics(); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	return om, nil
}

// initTracing sets up OpenTelemetry tracing
func (om *ObservabilityManager) initTracing() error {
	var exporter trace.SpanExporter
	var err error

	if om.config.ConsoleOutput {
		// Console exporter for development
		opts := []stdouttrace.Option{}
		if om.config.PrettyPrint {
			opts = append(opts, stdouttrace.WithPrettyPrint())
		}
		exporter, err = stdouttrace.New(opts...)
	} else if om.fullConfig != nil && om.fullConfig.Observability.OTLP.Enabled {
		// OTLP exporter for production
		exporter, err = om.createOTLPExporter()
	} else {
		// No-op exporter when no production exporter is configured
		exporter = &noOpSpanExporter{}
	}

	if err != nil {
		return fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := om.createResource()
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(res),
		trace.WithSampler(trace.TraceIDRatioBased(om.config.SampleRate)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	om.tracerProvider = tp
	om.shutdownFuncs = append(om.shutdownFuncs, tp.Shutdown)

	return nil
}

// initMetrics sets up OpenTelemetry metrics
func (om *ObservabilityManager) initMetrics() error {
	readers, err := om.setupMetricReaders()
	if err != nil {
		return err
	}

	res, err := om.createResource()
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	// Create meter provider with all readers
	meterProviderOptions := []sdkmetric.Option{
		sdkmetric.WithResource(res),
	}
	for _, reader := range readers {
		meterProviderOptions = append(meterProviderOptions, sdkmetric.WithReader(reader))
	}

	mp := sdkmetric.NewMeterProvider(meterProviderOptions...)

	otel.SetMeterProvider(mp)
	om.meterProvider = mp
	om.shutdownFuncs = append(om.shutdownFuncs, mp.Shutdown)

	// Initialize custom metrics
	return om.initCustomMetrics()
}

// setupMetricReaders sets up all metric readers based on configuration
func (om *ObservabilityManager) setupMetricReaders() ([]sdkmetric.Reader, error) {
	var readers []sdkmetric.Reader

	// Console exporter for development
	if err := om.setupConsoleReader(&readers); err != nil {
		return nil, err
	}

	// OTLP exporter for production metrics
	if err := om.setupOTLPReader(&readers); err != nil {
		return nil, err
	}

	// Prometheus exporter for scrape-based collection
	if err := om.setupPrometheusReader(&readers); err != nil {
		return nil, err
	}

	// If no readers configured, use manual reader as fallback
	if len(readers) == 0 {
		readers = append(readers, sdkmetric.NewManualReader())
	}

	return readers, nil
}

// setupConsoleReader sets up console metric reader if enabled
func (om *ObservabilityManager) setupConsoleReader(readers *[]sdkmetric.Reader) error {
	if !om.config.ConsoleOutput {
		return nil
	}

	exporter, err := stdoutmetric.New()
	if err != nil {
		return fmt.Errorf("failed to create console metric exporter: %w", err)
	}

	// Use configurable collection interval
	interval := om.getMetricsCollectionInterval()
	*readers = append(*readers, sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval)))
	return nil
}

// setupOTLPReader sets up OTLP metric reader if enabled
func (om *ObservabilityManager) setupOTLPReader(readers *[]sdkmetric.Reader) error {
	if om.fullConfig == nil || !om.fullConfig.Observability.OTLP.Enabled {
		return nil
	}

	otlpReader, err := om.createOTLPMetricsReader()
	if err != nil {
		return fmt.Errorf("failed to create OTLP metrics reader: %w", err)
	}
	if otlpReader != nil {
		*readers = append(*readers, otlpReader)
	}
	return nil
}

// setupPrometheusReader sets up Prometheus metric reader if enabled
func (om *ObservabilityManager) setupPrometheusReader(readers *[]sdkmetric.Reader) error {
	if !om.config.Prometheus.Enabled {
		return nil
	}

	prometheusReader, prometheusMux, err := SetupPrometheusExporter(om.config.Prometheus)
	if err != nil {
		return fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}
	if prometheusReader != nil {
		*readers = append(*readers, prometheusReader)
		om.prometheusServer = prometheusMux

		// Start Prometheus server
		if err := StartPrometheusServer(prometheusMux, om.config.Prometheus.Port); err != nil {
			return fmt.Errorf("failed to start Prometheus server: %w", err)
		}
	}
	return nil
}

// createResource creates the OpenTelemetry resource
func (om *ObservabilityManager) createResource() (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(om.config.ServiceName),
			semconv.ServiceVersion(om.config.ServiceVersion),
			attribute.String("service.instance.id", om.getServiceInstanceID()),
		),
	)
}

// initCustomMetrics creates all custom metrics for the interview pipeline
func (om *ObservabilityManager) initCustomMetrics() error {
	meter := om.meterProvider.Meter(om.config.ServiceName)
	om.metrics = &Metrics{}

	if err := om.createOperationMetrics(meter); err != nil {
		return err
	}

	if err := om.createSessionMetrics(meter); err != nil {
		return err
	}

	if err := om.createInfrastructureMetrics(meter); err != nil {
		return err
	}

	return nil
}

// createOperationMetrics creates pipeline operation metrics
func (om *ObservabilityManager) createOperationMetrics(meter metric.Meter) error {
	var err error

	om.metrics.OperationDuration, err = meter.Float64Histogram(
		"interviewsim_operation_duration_seconds",
		metric.WithDescription("Time spent on pipeline operations"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create operation duration metric: %w", err)
	}

	om.metrics.OperationCount, err = meter.Int64Counter(
		"interviewsim_operations_total",
		metric.WithDescription("Total number of pipeline operations"),
	)
	if err != nil {
		return fmt.Errorf("failed to create operation count metric: %w", err)
	}

	om.metrics.OperationErrors, err = meter.Int64Counter(
		"interviewsim_operation_errors_total",
		metric.WithDescription("Total number of pipeline operation errors"),
	)
	if err != nil {
		return fmt.Errorf("failed to create operation error count metric: %w", err)
	}

	return nil
}

// createSessionMetrics creates session-related metrics
func (om *ObservabilityManager) createSessionMetrics(meter metric.Meter) error {
	var err error

	om.metrics.SessionsCreated, err = meter.Int64Counter(
		"interviewsim_sessions_created_total",
		metric.WithDescription("Total number of interview sessions created"),
	)
	if err != nil {
		return fmt.Errorf("failed to create sessions created metric: %w", err)
	}

	om.metrics.SessionsCompleted, err = meter.Int64Counter(
		"interviewsim_sessions_completed_total",
		metric.WithDescription("Total number of interview sessions completed"),
	)
	if err != nil {
		return fmt.Errorf("failed to create sessions completed metric: %w", err)
	}

	om.metrics.AnswersScored, err = meter.Int64Counter(
		"interviewsim_answers_scored_total",
		metric.WithDescription("Total number of answers scored"),
	)
	if err != nil {
		return fmt.Errorf("failed to create answers scored metric: %w", err)
	}

	om.metrics.ScoreDistribution, err = meter.Float64Histogram(
		"interviewsim_session_overall_score",
		metric.WithDescription("Distribution of overall session scores (0-1)"),
	)
	if err != nil {
		return fmt.Errorf("failed to create score distribution metric: %w", err)
	}

	return nil
}

// createInfrastructureMetrics creates question bank and rate limit metrics
func (om *ObservabilityManager) createInfrastructureMetrics(meter metric.Meter) error {
	var err error

	om.metrics.BankReloadCount, err = meter.Int64Counter(
		"interviewsim_bank_reloads_total",
		metric.WithDescription("Total number of question bank reloads"),
	)
	if err != nil {
		return fmt.Errorf("failed to create bank reload count metric: %w", err)
	}

	om.metrics.RateLimitHits, err = meter.Int64Counter(
		"interviewsim_rate_limit_hits_total",
		metric.WithDescription("Total number of rate limit hits"),
	)
	if err != nil {
		return fmt.Errorf("failed to create rate limit hits metric: %w", err)
	}

	return nil
}

// GetMetrics returns the metrics instance
func (om *ObservabilityManager) GetMetrics() *Metrics {
	if om.metrics == nil {
		return &Metrics{} // Return empty metrics if not initialized
	}
	return om.metrics
}

// HTTPMiddleware returns HTTP middleware with OpenTelemetry instrumentation
func (om *ObservabilityManager) HTTPMiddleware() func(http.Handler) http.Handler {
	if !om.config.Enabled {
		return func(h http.Handler) http.Handler { return h }
	}

	return otelhttp.NewMiddleware(
		om.config.ServiceName,
		otelhttp.WithTracerProvider(om.tracerProvider),
		otelhttp.WithMeterProvider(om.meterProvider),
	)
}

// Tracer returns a tracer for the service
func (om *ObservabilityManager) Tracer(name string) oteltrace.Tracer {
	if !om.config.Enabled {
		return noop.NewTracerProvider().Tracer(name)
	}
	return otel.Tracer(name)
}

// Shutdown gracefully shuts down all observability components
func (om *ObservabilityManager) Shutdown(ctx context.Context) error {
	for _, shutdown := range om.shutdownFuncs {
		if err := shutdown(ctx); err != nil {
			return err
		}
	}
	return nil
}

// TrackOperation instruments a pipeline operation with tracing and metrics
func (m *Metrics) TrackOperation(ctx context.Context, operation string, fn func(context.Context) error) error {
	if m.OperationDuration == nil {
		// Metrics not initialized, just run the function
		return fn(ctx)
	}

	tracer := otel.Tracer("interviewsim.pipeline")
	ctx, span := tracer.Start(ctx, "pipeline."+operation)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	duration := time.Since(start).Seconds()

	attrs := []attribute.KeyValue{
		attribute.String("operation", operation),
		attribute.Bool("success", err == nil),
	}

	m.OperationDuration.Record(ctx, duration, metric.WithAttributes(attrs...))
	m.OperationCount.Add(ctx, 1, metric.WithAttributes(attrs...))
	if err != nil {
		m.OperationErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("error", true))
	}
	span.SetAttributes(attrs...)

	return err
}

// RecordSessionCreated counts a new interview session
func (m *Metrics) RecordSessionCreated(ctx context.Context, questionCount int) {
	if m.SessionsCreated != nil {
		m.SessionsCreated.Add(ctx, 1, metric.WithAttributes(
			attribute.Int("question_count", questionCount),
		))
	}
}

// RecordSessionCompleted counts a completed session and records its overall
// score in the distribution histogram
func (m *Metrics) RecordSessionCompleted(ctx context.Context, overallScore float64) {
	if m.SessionsCompleted != nil {
		m.SessionsCompleted.Add(ctx, 1)
	}
	if m.ScoreDistribution != nil {
		m.ScoreDistribution.Record(ctx, overallScore)
	}
}

// RecordAnswerScored counts a scored answer
func (m *Metrics) RecordAnswerScored(ctx context.Context, questionType string) {
	if m.AnswersScored != nil {
		m.AnswersScored.Add(ctx, 1, metric.WithAttributes(
			attribute.String("question_type", questionType),
		))
	}
}

// RecordBankReload counts a question bank reload
func (m *Metrics) RecordBankReload(ctx context.Context, success bool) {
	if m.BankReloadCount != nil {
		m.BankReloadCount.Add(ctx, 1, metric.WithAttributes(
			attribute.Bool("success", success),
		))
	}
}

// RecordRateLimitHit counts a rejected request
func (m *Metrics) RecordRateLimitHit(ctx context.Context, keyType string) {
	if m.RateLimitHits != nil {
		m.RateLimitHits.Add(ctx, 1, metric.WithAttributes(
			attribute.String("key_type", keyType),
		))
	}
}

// No-op exporters for when console output is disabled
type noOpSpanExporter struct{}

func (n *noOpSpanExporter) ExportSpans(ctx context.Context, spans []trace.ReadOnlySpan) error {
	return nil
}

func (n *noOpSpanExporter) Shutdown(ctx context.Context) error {
	return nil
}

// createOTLPExporter creates an OTLP HTTP trace exporter
func (om *ObservabilityManager) createOTLPExporter() (trace.SpanExporter, error) {
	if om.fullConfig == nil {
		return nil, fmt.Errorf("config not available for OTLP configuration")
	}

	otlpConfig := om.fullConfig.Observability.OTLP

	// Prepare OTLP options
	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpointURL(otlpConfig.Endpoint),
	}

	// Configure TLS
	if otlpConfig.Insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	// Add custom headers if provided
	if len(otlpConfig.Headers) > 0 {
		opts = append(opts, otlptracehttp.WithHeaders(otlpConfig.Headers))
	}

	// Create the OTLP exporter
	exporter, err := otlptracehttp.New(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	return exporter, nil
}

// createOTLPMetricsReader creates an OTLP HTTP metrics reader
func (om *ObservabilityManager) createOTLPMetricsReader() (sdkmetric.Reader, error) {
	if om.fullConfig == nil {
		return nil, fmt.Errorf("config not available for OTLP configuration")
	}

	otlpConfig := om.fullConfig.Observability.OTLP

	// Prepare OTLP options
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpointURL(otlpConfig.Endpoint),
	}

	// Configure TLS
	if otlpConfig.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	// Add custom headers if provided
	if len(otlpConfig.Headers) > 0 {
		opts = append(opts, otlpmetrichttp.WithHeaders(otlpConfig.Headers))
	}

	// Create the OTLP metrics exporter
	exporter, err := otlpmetrichttp.New(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metrics exporter: %w", err)
	}

	// Use configurable collection interval for OTLP metrics
	interval := om.getMetricsCollectionInterval()
	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))

	return reader, nil
}

// getServiceInstanceID returns the service instance ID from config or generates one
func (om *ObservabilityManager) getServiceInstanceID() string {
	if om.fullConfig != nil && om.fullConfig.Observability.ServiceInstance != "" {
		return om.fullConfig.Observability.ServiceInstance
	}
	// Fallback to default if config not available
	return "interviewsim-1"
}

// getMetricsCollectionInterval returns the configured metrics collection interval
func (om *ObservabilityManager) getMetricsCollectionInterval() time.Duration {
	if om.fullConfig != nil {
		return om.fullConfig.Observability.Metrics.CollectionInterval
	}
	// Fallback to default
	return 15 * time.Second
}
