// Package dashboard summarizes portal activity for the admin landing page.
package dashboard

import (
	"context"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/submissions"
)

// Stats are the counters shown on the dashboard.
type Stats struct {
	Submissions      map[submissions.Status]int64 `json:"submissions"`
	TotalSubmissions int64                        `json:"totalSubmissions"`
	Users            int64                        `json:"users"`
	ActiveUsers      int64                        `json:"activeUsers"`
	BlogPosts        int64                        `json:"blogPosts"`
	Notices          int64                        `json:"notices"`
	Gazettes         int64                        `json:"gazettes"`
}

// Service computes Stats.
type Service interface {
	Stats(ctx context.Context) (*Stats, error)
}
