package fixit

import (
	"time"

	"github.com/google/uuid"
)

// Property is a managed building or complex.
type Property struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	Country    string    `json:"country"`
	Type       string    `json:"type"`
	UnitCount  int       `json:"unitCount"`
	LandlordID uuid.UUID `json:"landlordId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Unit is a rentable unit within a property.
type Unit struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"propertyId"`
	Name       string    `json:"name"`
	Floor      string    `json:"floor"`
	Bedrooms   int       `json:"bedrooms"`
	Bathrooms  int       `json:"bathrooms"`
	RentAmount float64   `json:"rentAmount"`
	Status     string    `json:"status"`
	TenantID   uuid.UUID `json:"tenantId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Lease binds a tenant to a unit for a period.
type Lease struct {
	ID           uuid.UUID `json:"id"`
	PropertyID   uuid.UUID `json:"propertyId"`
	UnitID       uuid.UUID `json:"unitId"`
	TenantID     uuid.UUID `json:"tenantId"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	RentAmount   float64   `json:"rentAmount"`
	Currency     string    `json:"currency"`
	Status       string    `json:"status"`
	DocumentURL  string    `json:"documentUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RentRecord is one rent period for a lease.
type RentRecord struct {
	ID        uuid.UUID  `json:"id"`
	LeaseID   uuid.UUID  `json:"leaseId"`
	Period    string     `json:"period"`
	AmountDue float64    `json:"amountDue"`
	Paid      float64    `json:"amountPaid"`
	Status    string     `json:"status"`
	DueDate   time.Time  `json:"dueDate"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
}

// MaintenanceRequest is a tenant-reported issue.
type MaintenanceRequest struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	PropertyID  uuid.UUID  `json:"propertyId"`
	UnitID      uuid.UUID  `json:"unitId"`
	CreatedBy   uuid.UUID  `json:"createdBy"`
	AssignedTo  *uuid.UUID `json:"assignedTo,omitempty"`
	MediaURLs   []string   `json:"mediaUrls"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ScheduledTask is a recurring or planned maintenance job.
type ScheduledTask struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Frequency   string     `json:"frequency"`
	Status      string     `json:"status"`
	PropertyID  uuid.UUID  `json:"propertyId"`
	UnitID      uuid.UUID  `json:"unitId"`
	AssignedTo  *uuid.UUID `json:"assignedTo,omitempty"`
	NextDueAt   time.Time  `json:"nextDueAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Vendor is a service provider assignable to maintenance work.
type Vendor struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Services  []string  `json:"services"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// User is a full account record, role included.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role"`
	Approved  bool      `json:"approved"`
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// Invite asks a user to join a property under a role.
type Invite struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	PropertyID uuid.UUID `json:"propertyId"`
	UnitID     uuid.UUID `json:"unitId"`
	Status     string    `json:"status"`
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expiresAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MediaItem is an uploaded file attached to some context (request, lease,
// property) identified by ContextType + ContextID.
type MediaItem struct {
	ID          uuid.UUID `json:"id"`
	URL         string    `json:"url"`
	Filename    string    `json:"filename"`
	MimeType    string    `json:"mimeType"`
	Size        int64     `json:"size"`
	ContextType string    `json:"contextType"`
	ContextID   uuid.UUID `json:"contextId"`
	UploadedBy  uuid.UUID `json:"uploadedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Message is a direct message between users.
type Message struct {
	ID          uuid.UUID  `json:"id"`
	SenderID    uuid.UUID  `json:"senderId"`
	RecipientID uuid.UUID  `json:"recipientId"`
	Body        string     `json:"body"`
	MediaURLs   []string   `json:"mediaUrls"`
	ReadAt      *time.Time `json:"readAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Notification is a per-user event notification.
type Notification struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	Link      string     `json:"link"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Comment is a threaded note on a request, lease, or property.
type Comment struct {
	ID          uuid.UUID `json:"id"`
	ContextType string    `json:"contextType"`
	ContextID   uuid.UUID `json:"contextId"`
	AuthorID    uuid.UUID `json:"authorId"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuditLog is one recorded admin-visible action.
type AuditLog struct {
	ID        uuid.UUID `json:"id"`
	ActorID   uuid.UUID `json:"actorId"`
	Action    string    `json:"action"`
	Resource  string    `json:"resource"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReportSummary is the dashboard aggregate returned by report endpoints.
type ReportSummary struct {
	Properties    int       `json:"properties"`
	Units         int       `json:"units"`
	OpenRequests  int       `json:"openRequests"`
	OverdueRent   float64   `json:"overdueRent"`
	ActiveLeases  int       `json:"activeLeases"`
	UpcomingTasks int       `json:"upcomingTasks"`
	GeneratedAt   time.Time `json:"generatedAt"`
}

// VacancyListing is the public, unauthenticated view of an available unit.
type VacancyListing struct {
	PropertyName string  `json:"propertyName"`
	UnitName     string  `json:"unitName"`
	City         string  `json:"city"`
	Bedrooms     int     `json:"bedrooms"`
	RentAmount   float64 `json:"rentAmount"`
	Currency     string  `json:"currency"`
}
