package models

import "time"

// IdempotencyKey is a cached response for a replayable request
type IdempotencyKey struct {
	CreatedAt      time.Time `json:"created_at"`
	Key            string    `json:"key"`
	Scope          string    `json:"scope"`
	RequestPath    string    `json:"request_path"`
	ResponseBody   string    `json:"response_body"`
	ResponseStatus int       `json:"response_status"`
}
