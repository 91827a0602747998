package comparator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	modeDirect = "direct"
	modeField  = "field"
)

var (
	// comparatorsBuilt counts comparators constructed by a Registry.
	//
	// Labels:
	//   - mode: "direct" or "field".
	//
	// A registry builds each (type, field) pair once, so a steadily growing
	// value usually means registries are being created per request.
	comparatorsBuilt = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "numstring_comparators_built_total",
		Help: "The total number of comparators constructed by registries",
	}, []string{"mode"})

	// comparatorBuildErrors counts rejected comparator configurations.
	//
	// Labels:
	//   - mode: "direct" or "field".
	comparatorBuildErrors = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "numstring_comparator_build_errors_total",
		Help: "The total number of comparator configurations rejected by registries",
	}, []string{"mode"})

	// registryLookups counts registry lookups.
	//
	// Labels:
	//   - result: "hit" when a cached comparator was returned, "miss" otherwise.
	registryLookups = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "numstring_comparator_registry_lookups_total",
		Help: "The total number of comparator registry lookups",
	}, []string{"result"})
)
