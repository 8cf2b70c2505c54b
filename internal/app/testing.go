//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/attachments"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/auth"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/dashboard"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/submissions"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/infrastructure/connector"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/infrastructure/persistence"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/infrastructure/security"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/config"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Test constants for auth
const (
	TestJWTSecret        = "integration-test-secret-with-32-bytes!"
	TestMaxLoginAttempts = 5
	TestLockoutWindow    = 15 * time.Minute
	TestMaxUploadSize    = 1 << 20
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AuditService      audit.Service
	AuthService       auth.Service
	UserService       accounts.UserService
	SubmissionService submissions.Service
	AttachmentService attachments.Service
	DashboardService  dashboard.Service
	BlogService       content.Service[content.BlogPost]
	FAQService        content.Service[content.FAQ]
	NoticeService     content.Service[content.Notice]
	GazetteService    content.Service[content.Gazette]

	Hasher    auth.PasswordHasher
	Limiter   auth.LoginLimiter
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	return setupTestServices(t, dbType, false)
}

func setupTestServices(t *testing.T, dbType string, development bool) *TestServices {
	t.Helper()

	ctx := context.Background()
	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	store, err := connector.NewAttachmentConnector(ctx, &config.AttachmentSettings{
		Provider:  config.LocalStorageProvider,
		Directory: t.TempDir(),
	}, logger)
	require.NoError(t, err)

	hasher, err := security.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	tokens, err := security.NewJWTManager(TestJWTSecret, "neic-test", time.Hour)
	require.NoError(t, err)
	limiter := security.NewMemoryLimiter(TestMaxLoginAttempts, TestLockoutWindow)

	s := &TestServices{Hasher: hasher, Limiter: limiter, DBContext: dbContext}

	s.AuditService, err = NewAuditService(dbContext.AuditRepo, logger)
	require.NoError(t, err)
	s.AuthService, err = NewAuthService(dbContext.UserRepo, hasher, tokens, limiter, s.AuditService, development, logger)
	require.NoError(t, err)
	s.UserService, err = NewUserService(dbContext.UserRepo, hasher, s.AuditService, logger)
	require.NoError(t, err)
	s.SubmissionService, err = NewSubmissionService(dbContext.SubmissionRepo, s.AuditService, logger)
	require.NoError(t, err)
	s.AttachmentService, err = NewAttachmentService(dbContext.AttachmentRepo, store, s.AuditService, TestMaxUploadSize, logger)
	require.NoError(t, err)
	s.DashboardService, err = NewDashboardService(dbContext.SubmissionRepo, dbContext.UserRepo, dbContext.BlogRepo, dbContext.NoticeRepo, dbContext.GazetteRepo)
	require.NoError(t, err)

	s.BlogService, err = NewContentService(content.KindBlog, dbContext.BlogRepo, s.AuditService, logger)
	require.NoError(t, err)
	s.FAQService, err = NewContentService(content.KindFAQ, dbContext.FAQRepo, s.AuditService, logger)
	require.NoError(t, err)
	s.NoticeService, err = NewContentService(content.KindNotice, dbContext.NoticeRepo, s.AuditService, logger)
	require.NoError(t, err)
	s.GazetteService, err = NewContentService(content.KindGazette, dbContext.GazetteRepo, s.AuditService, logger)
	require.NoError(t, err)

	return s
}

// CreateUser stores an active user with a real password hash.
func (s *TestServices) CreateUser(t *testing.T, email, password string, role accounts.Role) *accounts.User {
	t.Helper()

	user := persistence.CreateTestUser(t, email, role)
	hash, err := s.Hasher.Hash(password)
	require.NoError(t, err)
	user.PasswordHash = hash
	require.NoError(t, s.DBContext.UserRepo.Create(context.Background(), user))
	return user
}

// AuditActions lists the recorded actions, newest first.
func (s *TestServices) AuditActions(t *testing.T) []audit.Action {
	t.Helper()

	entries, _, err := s.AuditService.List(context.Background(), audit.NewQuery())
	require.NoError(t, err)
	actions := make([]audit.Action, len(entries))
	for i, e := range entries {
		actions[i] = e.Action
	}
	return actions
}
