package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "chatquest_http_requests_total"
	MetricNameHTTPRequestDuration  = "chatquest_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "chatquest_http_requests_in_flight"

	MetricNameCommandsTotal  = "chatquest_commands_total"
	MetricNameBossesDefeated = "chatquest_bosses_defeated_total"
	MetricNameCoinsGambled   = "chatquest_coins_gambled_total"
	MetricNameItemsBought    = "chatquest_items_bought_total"
	MetricNameItemsSold      = "chatquest_items_sold_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextCommandsTotal  = "Chat commands processed, by command and outcome"
	HelpTextBossesDefeated = "Channel bosses defeated"
	HelpTextCoinsGambled   = "Total coins staked on gambles"
	HelpTextItemsBought    = "Shop items bought, by stock key"
	HelpTextItemsSold      = "Items sold back to the shop, by name"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelCommand = "command"
	LabelOutcome = "outcome"
	LabelItem    = "item"
)

// Command outcome label values
const (
	OutcomeSuccess  = "success"
	OutcomeCooldown = "cooldown"
	OutcomeBlocked  = "blocked"
	OutcomeError    = "error"
)

// HTTPLatencyBuckets covers the expected fast, CPU-bound handlers plus a
// tail for slow disk writes.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
