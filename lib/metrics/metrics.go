package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StateTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interview_state_transitions_total",
			Help: "Total number of interview state changes by source and target state",
		},
		[]string{"from", "to"},
	)
	Steps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interview_steps_total",
			Help: "Total number of interview steps by state the step started in and result",
		},
		[]string{"state", "status"},
	)
	CollaboratorFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "interview_collaborator_failures_total",
			Help: "Failures of external collaborators (question source, evaluator, synthesizer)",
		},
		[]string{"collaborator"},
	)
	CollaboratorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "interview_collaborator_duration_seconds",
			Help:    "Duration of external collaborator calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"collaborator"},
	)
	SessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "interview_sessions_created_total",
			Help: "Total number of interview sessions created from uploaded resumes",
		},
	)
	SessionsExpired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "interview_sessions_expired_total",
			Help: "Total number of abandoned interview sessions removed by the cleanup worker",
		},
	)
)

const (
	CollaboratorQuestions   = "question_source"
	CollaboratorEvaluator   = "evaluator"
	CollaboratorGreeting    = "greeting"
	CollaboratorSynthesizer = "synthesizer"
	CollaboratorResume      = "resume_parser"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

func ObserveTransition(from, to string) {
	StateTransitions.WithLabelValues(from, to).Inc()
}
