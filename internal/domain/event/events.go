package event

import (
	"strconv"
	"time"
)

const (
	// EventTypePredictionCompleted is emitted for every stored prediction.
	EventTypePredictionCompleted = "premium.prediction.completed"

	// EventTypePredictionFlagged is emitted when plausibility warnings fired.
	EventTypePredictionFlagged = "premium.prediction.flagged"
)

// PredictionCompleted is published once a prediction has been persisted.
type PredictionCompleted struct {
	ResultID          int64     `json:"result_id"`
	PredictedCategory string    `json:"predicted_category"`
	CityTier          int       `json:"city_tier"`
	LifestyleRisk     string    `json:"lifestyle_risk"`
	AgeGroup          string    `json:"age_group"`
	Warnings          []string  `json:"warnings"`
	CompletedAt       time.Time `json:"completed_at"`
}

// EventType returns the event type identifier.
func (e PredictionCompleted) EventType() string {
	return EventTypePredictionCompleted
}

// AggregateID returns the result id.
func (e PredictionCompleted) AggregateID() string {
	return strconv.FormatInt(e.ResultID, 10)
}

// OccurredAt returns when the prediction was stored.
func (e PredictionCompleted) OccurredAt() time.Time {
	return e.CompletedAt
}

// PredictionFlagged is published alongside PredictionCompleted when the
// input tripped one or more plausibility rules, so reviewers can follow up.
type PredictionFlagged struct {
	ResultID  int64     `json:"result_id"`
	Warnings  []string  `json:"warnings"`
	FlaggedAt time.Time `json:"flagged_at"`
}

// EventType returns the event type identifier.
func (e PredictionFlagged) EventType() string {
	return EventTypePredictionFlagged
}

// AggregateID returns the result id.
func (e PredictionFlagged) AggregateID() string {
	return strconv.FormatInt(e.ResultID, 10)
}

// OccurredAt returns when the warnings were raised.
func (e PredictionFlagged) OccurredAt() time.Time {
	return e.FlaggedAt
}
