package tracing

import (
	"fmt"
	"net/http"
	"strings"

	"contrib.go.opencensus.io/exporter/aws"
	"contrib.go.opencensus.io/exporter/jaeger"
	"contrib.go.opencensus.io/exporter/prometheus"
	"contrib.go.opencensus.io/exporter/stackdriver"
	"contrib.go.opencensus.io/exporter/zipkin"
	"contrib.go.opencensus.io/integrations/ocsql"
	datadog "github.com/DataDog/opencensus-go-exporter-datadog"
	zipkinhttp "github.com/openzipkin/zipkin-go/reporter/http"
	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/trace"

	"github.com/sagestone/sagestone/config"
	"github.com/sagestone/sagestone/pkg/logger"
)

type traceExporterFactory func(cfg *config.TracingConfig) (trace.Exporter, error)

type metricsExporterFactory func(cfg *config.TracingConfig, log logger.Logger) (view.Exporter, error)

var traceExporters = map[string]traceExporterFactory{
	"jaeger":      newJaegerExporter,
	"zipkin":      newZipkinExporter,
	"stackdriver": newStackdriverTraceExporter,
	"datadog":     newDatadogExporter,
	"xray":        newXRayExporter,
}

var metricsExporters = map[string]metricsExporterFactory{
	"prometheus":  newPrometheusExporter,
	"stackdriver": newStackdriverMetricsExporter,
	"datadog":     newDatadogMetricsExporter,
}

// InitTracing configures sampling, registers the selected trace and metrics
// exporters and the HTTP/SQL views. Disabled tracing is a no-op.
// codecov:ignore:start
func InitTracing(cfg *config.TracingConfig, log logger.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	trace.ApplyConfig(trace.Config{
		DefaultSampler: trace.ProbabilitySampler(cfg.SamplingProbability),
	})

	if err := initTraceExporter(cfg); err != nil {
		return err
	}

	if err := initMetricsExporters(cfg, log); err != nil {
		return err
	}

	if err := view.Register(ochttp.DefaultServerViews...); err != nil {
		return fmt.Errorf("failed to register HTTP server views: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"trace_exporter":   cfg.TraceExporter,
		"metrics_exporter": cfg.MetricsExporter,
		"sampling":         cfg.SamplingProbability,
	}).Info("OpenCensus initialized")
	return nil
}

// codecov:ignore:end

func initTraceExporter(cfg *config.TracingConfig) error {
	name := strings.TrimSpace(cfg.TraceExporter)
	if name == "" || name == "none" {
		return nil
	}

	factory, ok := traceExporters[name]
	if !ok {
		return fmt.Errorf("unsupported trace exporter: %s", name)
	}

	exporter, err := factory(cfg)
	if err != nil {
		return err
	}
	trace.RegisterExporter(exporter)
	return nil
}

// parseExporterList splits a comma separated exporter list, dropping blanks and "none"
func parseExporterList(value string) []string {
	var names []string
	for _, name := range strings.Split(value, ",") {
		name = strings.TrimSpace(name)
		if name == "" || name == "none" {
			continue
		}
		names = append(names, name)
	}
	return names
}

func initMetricsExporters(cfg *config.TracingConfig, log logger.Logger) error {
	names := parseExporterList(cfg.MetricsExporter)
	if len(names) == 0 {
		return nil
	}

	for _, name := range names {
		factory, ok := metricsExporters[name]
		if !ok {
			return fmt.Errorf("unsupported metrics exporter: %s", name)
		}
		exporter, err := factory(cfg, log)
		if err != nil {
			return fmt.Errorf("failed to initialize %s metrics exporter: %w", name, err)
		}
		view.RegisterExporter(exporter)
	}

	if err := view.Register(ocsql.DefaultViews...); err != nil {
		return fmt.Errorf("failed to register database views: %w", err)
	}
	return nil
}

func newJaegerExporter(cfg *config.TracingConfig) (trace.Exporter, error) {
	if cfg.JaegerEndpoint == "" {
		return nil, fmt.Errorf("Jaeger endpoint is required for Jaeger exporter")
	}

	je, err := jaeger.NewExporter(jaeger.Options{
		CollectorEndpoint: cfg.JaegerEndpoint,
		ServiceName:       cfg.ServiceName,
		Process: jaeger.Process{
			ServiceName: cfg.ServiceName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Jaeger exporter: %w", err)
	}
	return je, nil
}

func newZipkinExporter(cfg *config.TracingConfig) (trace.Exporter, error) {
	if cfg.ZipkinEndpoint == "" {
		return nil, fmt.Errorf("Zipkin endpoint is required for Zipkin exporter")
	}

	reporter := zipkinhttp.NewReporter(cfg.ZipkinEndpoint)
	return zipkin.NewExporter(reporter, nil), nil
}

func newStackdriverTraceExporter(cfg *config.TracingConfig) (trace.Exporter, error) {
	if cfg.StackdriverProjectID == "" {
		return nil, fmt.Errorf("Stackdriver project ID is required for Stackdriver exporter")
	}

	se, err := stackdriver.NewExporter(stackdriver.Options{
		ProjectID: cfg.StackdriverProjectID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Stackdriver exporter: %w", err)
	}
	return se, nil
}

func newDatadogExporter(cfg *config.TracingConfig) (trace.Exporter, error) {
	if cfg.DatadogAgentAddress == "" {
		return nil, fmt.Errorf("Datadog agent address is required for Datadog exporter")
	}

	exporter, err := datadog.NewExporter(datadog.Options{
		Service:   cfg.ServiceName,
		TraceAddr: cfg.DatadogAgentAddress,
		StatsAddr: cfg.DatadogAgentAddress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Datadog exporter: %w", err)
	}
	return exporter, nil
}

func newXRayExporter(cfg *config.TracingConfig) (trace.Exporter, error) {
	if cfg.XRayRegion == "" {
		return nil, fmt.Errorf("AWS region is required for X-Ray exporter")
	}

	exporter, err := aws.NewExporter(
		aws.WithRegion(cfg.XRayRegion),
		aws.WithVersion("latest"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS X-Ray exporter: %w", err)
	}
	return exporter, nil
}

func newPrometheusExporter(cfg *config.TracingConfig, log logger.Logger) (view.Exporter, error) {
	pe, err := prometheus.NewExporter(prometheus.Options{
		Namespace: strings.ReplaceAll(cfg.ServiceName, "-", "_"),
		OnError: func(err error) {
			log.WithField("error", err.Error()).Error("Prometheus exporter error")
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
	}

	if cfg.PrometheusPort > 0 {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", pe)

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", cfg.PrometheusPort),
				Handler: mux,
			}

			log.WithField("port", cfg.PrometheusPort).Info("Starting Prometheus metrics server")
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.WithField("error", err.Error()).Error("Prometheus metrics server stopped")
			}
		}()
	}

	return pe, nil
}

func newStackdriverMetricsExporter(cfg *config.TracingConfig, log logger.Logger) (view.Exporter, error) {
	if cfg.StackdriverProjectID == "" {
		return nil, fmt.Errorf("Stackdriver project ID is required for Stackdriver metrics exporter")
	}

	se, err := stackdriver.NewExporter(stackdriver.Options{
		ProjectID:    cfg.StackdriverProjectID,
		MetricPrefix: cfg.ServiceName,
		OnError: func(err error) {
			log.WithField("error", err.Error()).Error("Stackdriver metrics exporter error")
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Stackdriver metrics exporter: %w", err)
	}
	return se, nil
}

func newDatadogMetricsExporter(cfg *config.TracingConfig, log logger.Logger) (view.Exporter, error) {
	if cfg.DatadogAgentAddress == "" {
		return nil, fmt.Errorf("Datadog agent address is required for Datadog metrics exporter")
	}

	exporter, err := datadog.NewExporter(datadog.Options{
		Service:   cfg.ServiceName,
		TraceAddr: cfg.DatadogAgentAddress,
		StatsAddr: cfg.DatadogAgentAddress,
		OnError: func(err error) {
			log.WithField("error", err.Error()).Error("Datadog metrics exporter error")
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Datadog metrics exporter: %w", err)
	}
	return exporter, nil
}

// WrapDriver registers an ocsql-instrumented copy of driverName when tracing
// is enabled and returns the name to pass to sql.Open.
func WrapDriver(cfg *config.TracingConfig, driverName string) (string, error) {
	if !cfg.Enabled {
		return driverName, nil
	}
	wrapped, err := ocsql.Register(driverName, ocsql.WithAllTraceOptions())
	if err != nil {
		return "", fmt.Errorf("failed to register opencensus sql driver: %w", err)
	}
	return wrapped, nil
}
