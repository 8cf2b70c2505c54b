//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/attachments"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/submissions"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/config"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB             *gorm.DB
	UserRepo       accounts.UserRepository
	AuditRepo      audit.Repository
	SubmissionRepo submissions.Repository
	AttachmentRepo attachments.Repository
	BlogRepo       content.Repository[content.BlogPost]
	FAQRepo        content.Repository[content.FAQ]
	NoticeRepo     content.Repository[content.Notice]
	GazetteRepo    content.Repository[content.Gazette]
	ContactRepo    content.Repository[content.ContactInfo]
	MemberRepo     content.Repository[content.Person]
	OfficialRepo   content.Repository[content.Person]
	GalleryRepo    content.Repository[content.GalleryItem]
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  "file:" + uuid.NewString() + "?mode=memory&cache=shared",
		}
		cleanupFunc = func() {}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)
	tc := &TestContext{DB: db}

	tc.UserRepo, err = NewGormUserRepository(db, log)
	require.NoError(t, err)
	tc.AuditRepo, err = NewGormAuditRepository(db, log)
	require.NoError(t, err)
	tc.SubmissionRepo, err = NewGormSubmissionRepository(db, log)
	require.NoError(t, err)
	tc.AttachmentRepo, err = NewGormAttachmentRepository(db, log)
	require.NoError(t, err)
	tc.BlogRepo, err = NewGormBlogRepository(db, log)
	require.NoError(t, err)
	tc.FAQRepo, err = NewGormFAQRepository(db, log)
	require.NoError(t, err)
	tc.NoticeRepo, err = NewGormNoticeRepository(db, log)
	require.NoError(t, err)
	tc.GazetteRepo, err = NewGormGazetteRepository(db, log)
	require.NoError(t, err)
	tc.ContactRepo, err = NewGormContactRepository(db, log)
	require.NoError(t, err)
	tc.MemberRepo, err = NewGormMemberRepository(db, log)
	require.NoError(t, err)
	tc.OfficialRepo, err = NewGormOfficialRepository(db, log)
	require.NoError(t, err)
	tc.GalleryRepo, err = NewGormGalleryRepository(db, log)
	require.NoError(t, err)

	return tc
}

// CreateTestUser builds a valid active user with the given role.
func CreateTestUser(t *testing.T, email string, role accounts.Role) *accounts.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Millisecond)
	return &accounts.User{
		ID:           uuid.NewString(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$04$abcdefghijklmnopqrstuuFakeHashForTestsOnly000000000000",
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// CreateTestSubmission builds a valid pending submission.
func CreateTestSubmission(t *testing.T, constituency string, createdAt time.Time) *submissions.Submission {
	t.Helper()

	s := submissions.NewSubmission(uuid.NewString(), submissions.SubmitInput{
		Name:         "Karim",
		Email:        "karim@example.com",
		Constituency: constituency,
		Subject:      "Voter list error",
		Message:      "My name is missing from the published voter list.",
	}, createdAt.UTC().Truncate(time.Millisecond))
	return s
}
