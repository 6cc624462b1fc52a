package domain

// View models exchanged with the IntelliDocs backend. Field names follow
// the wire contract; the backend owns all of this data, the gateway only
// passes it through to the browser.

// User is a team member within the logged-in tenant.
type User struct {
	ID                int64  `json:"id"`
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	Role              Role   `json:"role"`
	Department        string `json:"department"`
	PagesScannedCount int    `json:"pages_scanned_count"`
}

// UserProfile is the expanded record returned by /auth/me.
type UserProfile struct {
	ID         int64        `json:"id"`
	FullName   string       `json:"full_name"`
	Email      string       `json:"email"`
	Role       Role         `json:"role"`
	Department string       `json:"department"`
	TenantName string       `json:"tenant_name"`
	Stats      ProfileStats `json:"stats"`
}

// ProfileStats summarizes a user's activity.
type ProfileStats struct {
	DocumentsUploaded int `json:"documents_uploaded"`
	PagesScanned      int `json:"pages_scanned"`
}

// Tenant is a municipality/customer organization, the top-level isolation
// boundary of the platform.
type Tenant struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	CNPJ            string  `json:"cnpj"`
	PlanType        string  `json:"plan_type"`
	PlanValue       float64 `json:"plan_value"`
	NextBillingDate string  `json:"next_billing_date"`
	PaymentStatus   string  `json:"payment_status"`
	IsActive        bool    `json:"is_active"`
	CreatedAt       string  `json:"created_at"`
}

// TenantDetails is the drill-down view of a tenant.
type TenantDetails struct {
	Tenant
	TotalDocs      int              `json:"total_docs"`
	TotalPages     int              `json:"total_pages"`
	TotalStorageGB float64          `json:"total_storage_gb"`
	Departments    []DepartmentStat `json:"departments"`
	Users          []UserStat       `json:"users"`
}

// DepartmentStat aggregates document volume per department.
type DepartmentStat struct {
	Name      string  `json:"name"`
	DocCount  int     `json:"doc_count"`
	PageCount int     `json:"page_count"`
	StorageMB float64 `json:"storage_mb"`
}

// UserStat is the per-user row inside TenantDetails.
type UserStat struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       Role   `json:"role"`
	Department string `json:"department"`
}

// Department is a "secretaria" within a tenant.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DepartmentDetails is the drill-down view of a department.
type DepartmentDetails struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	ManagerName       string  `json:"manager_name"`
	ManagerEmail      string  `json:"manager_email"`
	UserCount         int     `json:"user_count"`
	DocCount          int     `json:"doc_count"`
	PageCount         int     `json:"page_count"`
	StorageEstimateMB float64 `json:"storage_estimate_mb"`
}

// CreateTenantResult is returned by tenant provisioning; the generated
// credentials are shown once and never stored by the gateway.
type CreateTenantResult struct {
	Message           string `json:"message"`
	TenantID          int64  `json:"tenant_id"`
	GeneratedLogin    string `json:"generated_login"`
	GeneratedPassword string `json:"generated_password"`
}

// SearchResult is one page-level hit from full-text search.
type SearchResult struct {
	DocID         int64   `json:"doc_id"`
	Score         float64 `json:"score"`
	DocumentTitle string  `json:"document_title"`
	DocType       string  `json:"doc_type"`
	PageNumber    int     `json:"page_number"`
	PreviewURL    string  `json:"preview_url"`
	TextSnippet   string  `json:"text_snippet"`
	CreatedAt     string  `json:"created_at"`
}

// SearchFilters narrows a document search.
type SearchFilters struct {
	DocType    string
	Department string
	StartDate  string
	EndDate    string
}

// DashboardStats feeds the home dashboard.
type DashboardStats struct {
	DepartmentView  string          `json:"department_view"`
	TotalDocuments  int             `json:"total_documents"`
	TotalPages      int             `json:"total_pages"`
	StorageUsedMB   float64         `json:"storage_used_mb"`
	DocumentsByType []TypeCount     `json:"documents_by_type"`
	RecentUploads   []RecentUpload  `json:"recent_uploads"`
	WeeklyActivity  []ActivityPoint `json:"weekly_activity"`
}

// TypeCount is a document count bucketed by type.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// RecentUpload is one row of the recent-uploads widget.
type RecentUpload struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Type  string `json:"type"`
}

// ActivityPoint is one bar of the weekly activity chart.
type ActivityPoint struct {
	Name     string `json:"name"`
	Value    int    `json:"value"`
	FullDate string `json:"fullDate"`
}

// UploadResult acknowledges a document upload.
type UploadResult struct {
	Message    string `json:"message"`
	DocumentID int64  `json:"document_id"`
	Status     string `json:"status"`
}

// OCRWord is a recognized token with its bounding box in natural-image
// pixel coordinates, as returned by the page metadata endpoint. The wire
// format uses short keys to keep per-page payloads small.
type OCRWord struct {
	Text string     `json:"t"`
	Box  [4]float64 `json:"b"`
}

// BIReport is the AI-generated business-intelligence analysis.
type BIReport struct {
	ReportTitle       string            `json:"report_title"`
	ExecutiveSummary  string            `json:"executive_summary"`
	KPIs              []KPI             `json:"kpis"`
	ChartConfig       BIChartConfig     `json:"chart_config"`
	MainChart         []map[string]any  `json:"main_chart"`
	DistributionChart []NamedValue      `json:"distribution_chart"`
	Insights          []string          `json:"insights"`
	RawData           []BIRawDataRecord `json:"raw_data"`
}

// KPI is one key-performance-indicator card in a BI report.
type KPI struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Trend  string `json:"trend,omitempty"`
	Status string `json:"status"`
}

// BIChartConfig labels the two series of the main BI chart.
type BIChartConfig struct {
	Value1Label string `json:"value1_label"`
	Value2Label string `json:"value2_label"`
}

// NamedValue is a generic name/value chart point.
type NamedValue struct {
	Name  string `json:"name"`
	Value float64 `json:"value"`
}

// BIRawDataRecord is one row of the raw-data table under a BI report.
type BIRawDataRecord struct {
	Document string `json:"document"`
	Date     string `json:"date"`
	Value    string `json:"value"`
	Status   string `json:"status"`
}

// AuditLog is one entry from the tenant audit trail.
type AuditLog struct {
	ID           int64  `json:"id"`
	UserEmail    string `json:"user_email"`
	Action       string `json:"action"`
	ResourceType string `json:"resource_type"`
	Details      string `json:"details"`
	IPAddress    string `json:"ip_address"`
	CreatedAt    string `json:"created_at"`
}

// AuditFilters narrows an audit log query.
type AuditFilters struct {
	UserID    string
	Action    string
	StartDate string
	EndDate   string
	Limit     int
}

// Notification is one entry of the notification bell.
type Notification struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

// SystemNotification is a broadcast composed by a super admin; a nil
// TargetTenantID addresses every tenant.
type SystemNotification struct {
	Title          string `json:"title"`
	Message        string `json:"message"`
	Type           string `json:"type"`
	TargetTenantID *int64 `json:"target_tenant_id,omitempty"`
}

// ShareLink is an expiring public link to a document.
type ShareLink struct {
	Token     string `json:"token"`
	URL       string `json:"url"`
	ExpiresAt string `json:"expires_at"`
}

// PublicDocument is the unauthenticated share-link view of a document.
type PublicDocument struct {
	Title      string       `json:"title"`
	Type       string       `json:"type"`
	CreatedAt  string       `json:"created_at"`
	TotalPages int          `json:"total_pages"`
	Pages      []PublicPage `json:"pages"`
}

// PublicPage is one rendered page within a PublicDocument.
type PublicPage struct {
	PageNumber int    `json:"page_number"`
	ImageURL   string `json:"image_url"`
	Text       string `json:"text"`
}

// ChatReply is the answer from the per-document AI chat.
type ChatReply struct {
	Reply string `json:"reply"`
}

// IntegrationKey is an API key issued for machine-to-machine access.
type IntegrationKey struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Prefix    string `json:"prefix"`
	Key       string `json:"key,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}
