// Package metrics expone los contadores Prometheus del motor de movimientos.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MovementsApplied movimientos confirmados, etiquetados por tipo (ENTRADA/SALIDA).
	MovementsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wom_movements_total",
		Help: "Movimientos de stock confirmados por tipo.",
	}, []string{"type"})

	// MovementsRejected movimientos rechazados, etiquetados por motivo
	// (insufficient_stock, invalid_quantity, not_found, conflict, error).
	MovementsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wom_movement_rejections_total",
		Help: "Movimientos de stock rechazados por motivo.",
	}, []string{"reason"})

	// MovementDuration duración de la operación de movimiento completa,
	// incluida la espera del bloqueo de fila.
	MovementDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wom_movement_duration_seconds",
		Help:    "Duración del registro de un movimiento, espera de bloqueo incluida.",
		Buckets: prometheus.DefBuckets,
	})
)
