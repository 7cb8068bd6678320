package response_models

type DashboardSummary struct {
	Students        int64           `json:"students"`
	Teachers        int64           `json:"teachers"`
	Classes         int64           `json:"classes"`
	Notices         int64           `json:"notices"`
	Vehicles        int64           `json:"vehicles"`
	FeesCollected   int64           `json:"fees_collected"`
	FeesOutstanding int64           `json:"fees_outstanding"`
	RecentActivity  []ActivityEntry `json:"recent_activity"`
}

type ActivityEntry struct {
	Action    string `json:"action"`
	Actor     string `json:"actor"`
	CreatedAt int64  `json:"created_at"`
}
