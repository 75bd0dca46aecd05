package diag

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// 指标名：
// - uniqwin_scan_total{strategy,result}
// - uniqwin_error_total{comp,code}
// - uniqwin_scan_duration_seconds{strategy}
var (
	ScanCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "uniqwin",
			Name:      "scan_total",
			Help:      "Counter of strategy scans by result (found|not_found|error).",
		}, []string{"strategy", "result"})

	ErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "uniqwin",
			Name:      "error_total",
			Help:      "Counter of classified errors.",
		}, []string{"comp", "code"})

	ScanDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "uniqwin",
			Name:      "scan_duration_seconds",
			Help:      "Bucketed histogram of strategy scan time (s).",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14), // 1µs ~ 67s
		}, []string{"strategy"})
)

var registry = prometheus.NewRegistry()

func init() {
	registry.MustRegister(ScanCounter, ErrorCounter, ScanDuration)
}

// Registry 返回进程内指标注册表（不对外导出 HTTP）。
func Registry() *prometheus.Registry { return registry }

// IncScan 累加扫描计数。
func IncScan(strategy, result string) { ScanCounter.WithLabelValues(strategy, result).Inc() }

// IncError 按分类累加错误计数。
func IncError(comp string, code Code) { ErrorCounter.WithLabelValues(comp, string(code)).Inc() }

// ObserveScan 记录单次扫描耗时。
func ObserveScan(strategy string, d time.Duration) {
	ScanDuration.WithLabelValues(strategy).Observe(d.Seconds())
}
