// Package metrics records game counters on a private Prometheus registry.
// There is no HTTP endpoint; the registry is written to a textfile on exit,
// in the format node_exporter's textfile collector reads.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/diploma/pkg/domain"
)

// Recorder holds the collectors of one run.
type Recorder struct {
	registry *prometheus.Registry

	actions     *prometheus.CounterVec
	transitions *prometheus.CounterVec
	day         prometheus.Gauge
	stamina     prometheus.Gauge
	grade       prometheus.Gauge
	score       prometheus.Gauge
}

// NewRecorder creates and registers the collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "diploma_actions_total",
				Help: "Total number of performed actions",
			},
			[]string{"action"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "diploma_stage_transitions_total",
				Help: "Total number of stage changes",
			},
			[]string{"from", "to"},
		),
		day: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "diploma_day",
			Help: "Current day of the defense calendar",
		}),
		stamina: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "diploma_student_stamina",
			Help: "Current student stamina",
		}),
		grade: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "diploma_final_grade",
			Help: "Accumulated final grade",
		}),
		score: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "diploma_score",
			Help: "Accumulated score",
		}),
	}
	r.registry.MustRegister(r.actions, r.transitions, r.day, r.stamina, r.grade, r.score)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Hooks returns lifecycle hooks feeding the counters.
func (r *Recorder) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnAction: func(e *domain.ActionEvent) {
			r.actions.WithLabelValues(string(e.Action)).Inc()
			r.day.Set(float64(e.Day))
		},
		OnStageChange: func(e *domain.StageEvent) {
			r.transitions.WithLabelValues(e.From.String(), e.To.String()).Inc()
		},
	}
}

// ObserveStatus updates the gauges from a status view.
func (r *Recorder) ObserveStatus(s domain.Status) {
	r.day.Set(float64(s.Today))
	r.stamina.Set(float64(s.Stamina))
	r.grade.Set(float64(s.FinalGrade))
	r.score.Set(float64(s.Score))
}

// WriteTextfile writes the registry to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
