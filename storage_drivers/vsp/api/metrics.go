// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/netapp/gadctl/config"
)

var (
	apiOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.OrchestratorName,
			Subsystem: "vsp_api",
			Name:      "ops_total",
			Help:      "The total number of REST calls made to storage controllers",
		},
		[]string{"controller", "method", "status"},
	)
	apiOpsSecondsTotal = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace:  config.OrchestratorName,
			Subsystem:  "vsp_api",
			Name:       "ops_seconds_total",
			Help:       "The total number of seconds spent in REST calls to storage controllers",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"controller", "method"},
	)
	jobsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.OrchestratorName,
			Subsystem: "vsp_api",
			Name:      "jobs_total",
			Help:      "The total number of asynchronous controller jobs by final state",
		},
		[]string{"controller", "state"},
	)
)
