package regexcache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// cacheHits counts lookups served from the cache without compiling.
	cacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "colfuncs",
			Subsystem: "regexcache",
			Name:      "hits_total",
			Help:      "Total pattern lookups served from the compiled-pattern cache",
		},
	)

	// cacheMisses counts lookups that required compiling the pattern.
	cacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "colfuncs",
			Subsystem: "regexcache",
			Name:      "misses_total",
			Help:      "Total pattern lookups that missed the compiled-pattern cache",
		},
	)

	// compileErrors counts pattern sources rejected by the compiler.
	compileErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "colfuncs",
			Subsystem: "regexcache",
			Name:      "compile_errors_total",
			Help:      "Total pattern compilations that failed",
		},
	)
)
