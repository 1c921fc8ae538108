// Package metrics exposes Prometheus collectors for the spawn engine.
// Label cardinality is bounded: tiers are a closed enum and claim
// outcomes a closed set.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Spawns counts placed spawns by rarity tier
	Spawns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spawn_engine_spawns_total",
			Help: "Total number of spawns placed, by rarity tier.",
		},
		[]string{"tier"},
	)

	// Claims counts guess resolutions by outcome
	Claims = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spawn_engine_claims_total",
			Help: "Total number of claim attempts, by outcome.",
		},
		[]string{"outcome"},
	)

	// Despawns counts sessions that expired unclaimed
	Despawns = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "spawn_engine_despawns_total",
			Help: "Total number of spawns that expired unclaimed.",
		},
	)
)

func init() {
	prometheus.MustRegister(Spawns, Claims, Despawns)
}
