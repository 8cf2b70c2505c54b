//go:build unit
// +build unit

package v1

import (
	"context"
	"io"
	"mime/multipart"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/attachments"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/auth"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/content"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/dashboard"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/submissions"

	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of auth.Service
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string, client audit.ClientMeta) (*auth.Session, error) {
	args := m.Called(ctx, email, password, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, userID string, client audit.ClientMeta) {
	m.Called(ctx, userID, client)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*accounts.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string, client audit.ClientMeta) error {
	args := m.Called(ctx, userID, currentPassword, newPassword, client)
	return args.Error(0)
}

// MockUserService is a mock implementation of accounts.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context, query *accounts.UserQuery) ([]*accounts.User, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*accounts.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserService) GetByID(ctx context.Context, userID string) (*accounts.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockUserService) Create(ctx context.Context, actorID string, input accounts.CreateUserInput) (*accounts.User, error) {
	args := m.Called(ctx, actorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, actorID, userID string, input accounts.UpdateUserInput) (*accounts.User, error) {
	args := m.Called(ctx, actorID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockUserService) ResetPassword(ctx context.Context, actorID, userID, newPassword string) error {
	args := m.Called(ctx, actorID, userID, newPassword)
	return args.Error(0)
}

func (m *MockUserService) Delete(ctx context.Context, actorID, userID string) error {
	args := m.Called(ctx, actorID, userID)
	return args.Error(0)
}

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, record audit.Record) {
	m.Called(ctx, record)
}

func (m *MockAuditService) List(ctx context.Context, query *audit.Query) ([]*audit.Entry, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*audit.Entry), args.Get(1).(int64), args.Error(2)
}

// MockSubmissionService is a mock implementation of submissions.Service
type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) Submit(ctx context.Context, input submissions.SubmitInput) (*submissions.Submission, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*submissions.Submission), args.Error(1)
}

func (m *MockSubmissionService) List(ctx context.Context, query *submissions.Query) ([]*submissions.Submission, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*submissions.Submission), args.Get(1).(int64), args.Error(2)
}

func (m *MockSubmissionService) GetByID(ctx context.Context, submissionID string) (*submissions.Submission, error) {
	args := m.Called(ctx, submissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*submissions.Submission), args.Error(1)
}

func (m *MockSubmissionService) Review(ctx context.Context, actorID, submissionID string, input submissions.ReviewInput) (*submissions.Submission, error) {
	args := m.Called(ctx, actorID, submissionID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*submissions.Submission), args.Error(1)
}

func (m *MockSubmissionService) Delete(ctx context.Context, actorID, submissionID string) error {
	args := m.Called(ctx, actorID, submissionID)
	return args.Error(0)
}

func (m *MockSubmissionService) Report(ctx context.Context, r submissions.ReportRange) (*submissions.Report, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*submissions.Report), args.Error(1)
}

// ExportCSV writes the string passed as the first return value to w.
func (m *MockSubmissionService) ExportCSV(ctx context.Context, actorID string, query *submissions.Query, w io.Writer) (int, error) {
	args := m.Called(ctx, actorID, query, w)
	if body, ok := args.Get(0).(string); ok {
		_, _ = io.WriteString(w, body)
	}
	return args.Int(1), args.Error(2)
}

// MockAttachmentService is a mock implementation of attachments.Service
type MockAttachmentService struct {
	mock.Mock
}

func (m *MockAttachmentService) Upload(ctx context.Context, actorID string, file *multipart.FileHeader) (*attachments.Attachment, error) {
	args := m.Called(ctx, actorID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attachments.Attachment), args.Error(1)
}

func (m *MockAttachmentService) List(ctx context.Context, query *attachments.Query) ([]*attachments.Attachment, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*attachments.Attachment), args.Get(1).(int64), args.Error(2)
}

func (m *MockAttachmentService) GetByID(ctx context.Context, attachmentID string) (*attachments.Attachment, error) {
	args := m.Called(ctx, attachmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attachments.Attachment), args.Error(1)
}

func (m *MockAttachmentService) Download(ctx context.Context, attachmentID string) (*attachments.Attachment, []byte, error) {
	args := m.Called(ctx, attachmentID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*attachments.Attachment), args.Get(1).([]byte), args.Error(2)
}

func (m *MockAttachmentService) Delete(ctx context.Context, actorID, attachmentID string) error {
	args := m.Called(ctx, actorID, attachmentID)
	return args.Error(0)
}

// MockDashboardService is a mock implementation of dashboard.Service
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Stats(ctx context.Context) (*dashboard.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.Stats), args.Error(1)
}

// MockContentService is a mock implementation of content.Service for any collection
type MockContentService[T any] struct {
	mock.Mock
	kind content.Kind
}

func NewMockContentService[T any](kind content.Kind) *MockContentService[T] {
	return &MockContentService[T]{kind: kind}
}

func (m *MockContentService[T]) Kind() content.Kind {
	return m.kind
}

func (m *MockContentService[T]) List(ctx context.Context, query *content.Query) ([]*T, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*T), args.Get(1).(int64), args.Error(2)
}

func (m *MockContentService[T]) GetByID(ctx context.Context, id string) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockContentService[T]) Create(ctx context.Context, actorID string, item *T) (*T, error) {
	args := m.Called(ctx, actorID, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockContentService[T]) Update(ctx context.Context, actorID, id string, item *T) (*T, error) {
	args := m.Called(ctx, actorID, id, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockContentService[T]) Patch(ctx context.Context, actorID, id string, patch content.FlagPatch) (*T, error) {
	args := m.Called(ctx, actorID, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockContentService[T]) Delete(ctx context.Context, actorID, id string) error {
	args := m.Called(ctx, actorID, id)
	return args.Error(0)
}

func (m *MockContentService[T]) Count(ctx context.Context, query *content.Query) (int64, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContentService[T]) ListPublic(ctx context.Context, query *content.Query) ([]*T, int64, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*T), args.Get(1).(int64), args.Error(2)
}

func (m *MockContentService[T]) GetPublic(ctx context.Context, key string) (*T, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}
