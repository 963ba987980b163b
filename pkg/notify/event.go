package notify

import "time"

// MockupFile identifies a generated mockup image.
type MockupFile struct {
	Placement string `json:"placement,omitempty"`
	URL       string `json:"url"`
	LocalPath string `json:"local_path,omitempty"`
}

// Event represents the payload published downstream when a mockup render
// completes and its image has been downloaded.
type Event struct {
	JobID       string     `json:"job_id"`
	StoreID     int64      `json:"store_id,omitempty"`
	ProductID   int64      `json:"product_id"`
	TaskKey     string     `json:"task_key"`
	Mockup      MockupFile `json:"mockup"`
	GeneratedAt time.Time  `json:"generated_at"`
}

// NewEvent constructs an Event for the given job + mockup file.
func NewEvent(jobID string, productID int64, taskKey string, mockup MockupFile) Event {
	return Event{
		JobID:       jobID,
		ProductID:   productID,
		TaskKey:     taskKey,
		Mockup:      mockup,
		GeneratedAt: time.Now().UTC(),
	}
}
