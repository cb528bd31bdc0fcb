package utils

import (
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
)

type logCapabilities struct{}

func (logCapabilities) Reporting() bool { return true }
func (logCapabilities) Tagging() bool   { return true }

// logReporter flushes tally metrics to the debug log
type logReporter struct {
	logger *log.Entry
}

// NewLogReporter returns a tally reporter which writes every metric to logrus
func NewLogReporter() tally.StatsReporter {
	return &logReporter{
		logger: log.WithField("prefix", "metrics"),
	}
}

func (r *logReporter) entry(name string, tags map[string]string) *log.Entry {
	fields := log.Fields{"metric": name}
	for k, v := range tags {
		fields["tag_"+k] = v
	}
	return r.logger.WithFields(fields)
}

func (r *logReporter) ReportCounter(name string, tags map[string]string, value int64) {
	r.entry(name, tags).WithField("value", value).Debug("counter")
}

func (r *logReporter) ReportGauge(name string, tags map[string]string, value float64) {
	r.entry(name, tags).WithField("value", value).Debug("gauge")
}

func (r *logReporter) ReportTimer(name string, tags map[string]string, interval time.Duration) {
	r.entry(name, tags).WithField("value", interval).Debug("timer")
}

func (r *logReporter) ReportHistogramValueSamples(name string, tags map[string]string, _ tally.Buckets,
	bucketLowerBound, bucketUpperBound float64, samples int64) {
	r.entry(name, tags).WithFields(log.Fields{
		"lower":   bucketLowerBound,
		"upper":   bucketUpperBound,
		"samples": samples,
	}).Debug("histogram")
}

func (r *logReporter) ReportHistogramDurationSamples(name string, tags map[string]string, _ tally.Buckets,
	bucketLowerBound, bucketUpperBound time.Duration, samples int64) {
	r.entry(name, tags).WithFields(log.Fields{
		"lower":   bucketLowerBound,
		"upper":   bucketUpperBound,
		"samples": samples,
	}).Debug("histogram")
}

func (r *logReporter) Capabilities() tally.Capabilities {
	return logCapabilities{}
}

func (r *logReporter) Flush() {}

// NewMetricsScope creates the root metrics scope reported to the log every
// interval. The closer stops the reporting.
func NewMetricsScope(prefix string, interval time.Duration) (tally.Scope, io.Closer) {
	return tally.NewRootScope(tally.ScopeOptions{
		Prefix:   prefix,
		Reporter: NewLogReporter(),
	}, interval)
}
