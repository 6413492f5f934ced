package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EligibilityPasses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "profile_matcher_eligibility_passes_total",
		Help: "The total number of profiles evaluated against the campaign set",
	})

	CampaignsMatched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "profile_matcher_campaigns_matched_total",
		Help: "The total number of campaigns matched across all eligibility passes",
	})

	MalformedCampaignWindows = promauto.NewCounter(prometheus.CounterOpts{
		Name: "profile_matcher_malformed_campaign_windows_total",
		Help: "The total number of campaigns excluded because their window did not parse",
	})

	ProfileLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profile_matcher_profile_lookups_total",
		Help: "Total number of player profile lookups",
	}, []string{"result"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "profile_matcher_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profile_matcher_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"route", "status"})
)
