package server

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/fireflyai/essaylytics/models"
)

// Job lifecycle states for the bulk endpoint.
const (
	StatusProcessing = "processing"
	StatusProcessed  = "processed"
	StatusFailed     = "failed"
)

// Job is the state of one bulk analysis. Jobs are immutable once stored;
// state transitions replace the whole entry.
type Job struct {
	ID       string           `json:"file_id"`
	FileName string           `json:"file_name"`
	Status   string           `json:"status"`
	Result   *models.Analysis `json:"result,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// JobStore keeps bulk jobs in a bounded in-memory LRU. Nothing is written to
// disk: finished jobs age out once the capacity is reached.
type JobStore struct {
	cache *lru.Cache[string, Job]
}

// NewJobStore returns a store holding at most capacity jobs.
func NewJobStore(capacity int) (*JobStore, error) {
	cache, err := lru.New[string, Job](capacity)
	if err != nil {
		return nil, err
	}
	return &JobStore{cache: cache}, nil
}

// Put records or replaces a job.
func (s *JobStore) Put(job Job) {
	s.cache.Add(job.ID, job)
}

// Get looks up a job by id.
func (s *JobStore) Get(id string) (Job, bool) {
	return s.cache.Get(id)
}
