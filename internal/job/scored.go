package job

// ScoredJob is a posting together with its match score. Scores are derived
// state: they are recomputed on every filter pass and only persisted inside
// a frozen digest snapshot.
type ScoredJob struct {
	Job
	MatchScore int `json:"matchScore"`
}

type ScoredJobs struct {
	Items []*ScoredJob
}

func (s *ScoredJobs) Len() int {
	return len(s.Items)
}

func (s *ScoredJobs) FindByID(id string) *ScoredJob {
	for _, posting := range s.Items {
		if posting.ID == id {
			return posting
		}
	}
	return nil
}
