package app

import (
	"context"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/dashboard"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/submissions"
)

type dashboardService struct {
	submissions submissions.Repository
	users       accounts.UserRepository
	blogs       content.Repository[content.BlogPost]
	notices     content.Repository[content.Notice]
	gazettes    content.Repository[content.Gazette]
	now         func() time.Time
}

// NewDashboardService creates a new dashboard Service
func NewDashboardService(
	submissionRepo submissions.Repository,
	userRepo accounts.UserRepository,
	blogRepo content.Repository[content.BlogPost],
	noticeRepo content.Repository[content.Notice],
	gazetteRepo content.Repository[content.Gazette],
) (dashboard.Service, error) {
	return &dashboardService{
		submissions: submissionRepo,
		users:       userRepo,
		blogs:       blogRepo,
		notices:     noticeRepo,
		gazettes:    gazetteRepo,
		now:         utcNow,
	}, nil
}

func (s *dashboardService) Stats(ctx context.Context) (*dashboard.Stats, error) {
	byStatus, err := s.submissions.CountByStatus(ctx, time.Unix(0, 0).UTC(), s.now())
	if err != nil {
		return nil, err
	}
	stats := &dashboard.Stats{Submissions: byStatus}
	for _, n := range byStatus {
		stats.TotalSubmissions += n
	}

	if stats.Users, err = s.users.Count(ctx, false); err != nil {
		return nil, err
	}
	if stats.ActiveUsers, err = s.users.Count(ctx, true); err != nil {
		return nil, err
	}
	if stats.BlogPosts, err = s.blogs.Count(ctx, content.NewQuery()); err != nil {
		return nil, err
	}
	if stats.Notices, err = s.notices.Count(ctx, content.NewQuery()); err != nil {
		return nil, err
	}
	if stats.Gazettes, err = s.gazettes.Count(ctx, content.NewQuery()); err != nil {
		return nil, err
	}
	return stats, nil
}
