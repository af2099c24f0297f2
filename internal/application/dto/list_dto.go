package dto

// ResultFilter narrows a result listing. Empty fields do not filter.
type ResultFilter struct {
	City     string
	Category string
}

// ResultListResponse is returned by the result listing endpoints. City and
// Category echo the filter that produced the listing.
type ResultListResponse struct {
	City         string           `json:"city,omitempty"`
	Category     string           `json:"category,omitempty"`
	TotalResults int              `json:"total_results"`
	Results      []ResultResponse `json:"results"`
}

// RecentListResponse is returned by the recent predictions endpoint.
type RecentListResponse struct {
	TotalResults int                        `json:"total_results"`
	Results      []RecentPredictionResponse `json:"results"`
}
