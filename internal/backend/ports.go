package backend

import (
	"context"
	"io"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// The interfaces below slice the client by concern so handlers depend
// only on the calls they make and tests can mock them narrowly. *Client
// implements all of them.

// AuthAPI covers the authentication endpoints.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	ChangePassword(ctx context.Context, token, newPassword string) error
	ForgotPassword(ctx context.Context, email string) error
	VerifyResetCode(ctx context.Context, email, code string) (*VerifyCodeResult, error)
	ConfirmPasswordReset(ctx context.Context, resetToken, newPassword string) error
	Me(ctx context.Context, token string) (*domain.UserProfile, error)
}

// TenantAPI covers super-admin tenant management.
type TenantAPI interface {
	ListTenants(ctx context.Context, token string) ([]domain.Tenant, error)
	GetTenantDetails(ctx context.Context, token string, id int64) (*domain.TenantDetails, error)
	CreateTenant(ctx context.Context, token string, input CreateTenantInput) (*domain.CreateTenantResult, error)
	UpdateTenantStatus(ctx context.Context, token string, id int64, isActive bool) error
	RenewTenant(ctx context.Context, token string, id int64) error
	DeleteTenant(ctx context.Context, token string, id int64) error
	RunBillingCycle(ctx context.Context, token string) error
}

// DepartmentAPI covers department ("secretaria") management.
type DepartmentAPI interface {
	ListDepartments(ctx context.Context, token string) ([]domain.Department, error)
	GetDepartmentDetails(ctx context.Context, token string, id int64) (*domain.DepartmentDetails, error)
	CreateDepartment(ctx context.Context, token string, input CreateDepartmentInput) error
	DeleteDepartment(ctx context.Context, token string, id int64) error
}

// UserAPI covers team management within the logged-in tenant.
type UserAPI interface {
	ListUsers(ctx context.Context, token string) ([]domain.User, error)
	CreateUser(ctx context.Context, token string, input CreateUserInput) error
	DeleteUser(ctx context.Context, token string, id int64) error
}

// DocumentAPI covers document operations.
type DocumentAPI interface {
	Upload(ctx context.Context, token, title, filename string, file io.Reader) (*domain.UploadResult, error)
	Search(ctx context.Context, token, query string, filters domain.SearchFilters) ([]domain.SearchResult, error)
	DocumentTypes(ctx context.Context, token string) ([]string, error)
	DeleteDocument(ctx context.Context, token string, id int64) error
	Chat(ctx context.Context, token string, id int64, message string) (*domain.ChatReply, error)
	PageMetadata(ctx context.Context, token string, id int64, page int) ([]domain.OCRWord, error)
	DocumentLinks(ctx context.Context, token string, id int64) ([]domain.ShareLink, error)
	CreateShareLink(ctx context.Context, token string, id int64, hours int) (*domain.ShareLink, error)
	PublishDocument(ctx context.Context, token string, id int64) (*domain.ShareLink, error)
	DownloadURL(tenantID, docID int64, page int) string
}

// ReportAPI covers dashboard statistics and BI analysis.
type ReportAPI interface {
	DashboardStats(ctx context.Context, token string) (*domain.DashboardStats, error)
	BIAnalysis(ctx context.Context, token, query, docType string) (*domain.BIReport, error)
}

// NotificationAPI covers the notification bell and system broadcasts.
type NotificationAPI interface {
	Notifications(ctx context.Context, token string) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, token string, id int64) error
	MarkAllNotificationsRead(ctx context.Context, token string) error
	SendNotification(ctx context.Context, token string, n domain.SystemNotification) error
}

// AuditAPI covers the audit trail.
type AuditAPI interface {
	AuditLogs(ctx context.Context, token string, filters domain.AuditFilters) ([]domain.AuditLog, error)
}

// PublicAPI covers the unauthenticated share-link viewer.
type PublicAPI interface {
	PublicDocument(ctx context.Context, shareToken string) (*domain.PublicDocument, error)
}

// IntegrationAPI covers machine-to-machine API keys.
type IntegrationAPI interface {
	ListIntegrationKeys(ctx context.Context, token string) ([]domain.IntegrationKey, error)
	CreateIntegrationKey(ctx context.Context, token, name string) (*domain.IntegrationKey, error)
	RevokeIntegrationKey(ctx context.Context, token string, id int64) error
}
