package status

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "escape"

// Teleport result labels
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
)

// Registry is the session metrics facade over a private prometheus registry
// The session is the only writer; scrapes read concurrently through the collectors
type Registry struct {
	reg *prometheus.Registry

	ticks       prometheus.Counter
	transitions prometheus.Counter
	teleports   *prometheus.CounterVec
	deaths      prometheus.Counter
	kills       prometheus.Counter
	live        prometheus.Gauge
}

// NewRegistry creates and registers every session metric
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Simulation steps executed.",
		}),
		transitions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "room_transitions_total",
			Help:      "Room changes, including respawn travel.",
		}),
		teleports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "teleports_total",
			Help:      "Completed teleport presses by result.",
		}, []string{"result"}),
		deaths: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deaths_total",
			Help:      "Character deaths.",
		}),
		kills: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enemies_killed_total",
			Help:      "Enemies crushed by dropped bodies.",
		}),
		live: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_entities",
			Help:      "Entities in the registry after the last step.",
		}),
	}
	r.reg.MustRegister(r.ticks, r.transitions, r.teleports, r.deaths, r.kills, r.live)
	return r
}

func (r *Registry) Tick()        { r.ticks.Inc() }
func (r *Registry) Transition()  { r.transitions.Inc() }
func (r *Registry) Death()       { r.deaths.Inc() }
func (r *Registry) EnemyKilled() { r.kills.Inc() }

// Teleport counts one teleport attempt under result
func (r *Registry) Teleport(result string) {
	r.teleports.WithLabelValues(result).Inc()
}

// SetLive records the registry population
func (r *Registry) SetLive(n int) {
	r.live.Set(float64(n))
}

// Gatherer exposes the underlying registry for scrapes and tests
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Handler serves the metrics in the prometheus text format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
