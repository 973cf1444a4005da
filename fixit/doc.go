// Package fixit is the Go client for the Fix It property-management API.
//
// One Client carries the transport configuration (origin + /api base path,
// bearer auth resolved from a session Store on every request, forced logout
// on 401) and exposes a service per backend resource: Properties, Units,
// Leases, Rent, Requests, Scheduled, Vendors, Users, Invites, Media,
// Messages, Notifications, Comments, Reports, Admin, AuditLogs, Public.
//
// The backend's list endpoints never converged on one response envelope;
// each service declares its envelope shape once and every list call resolves
// to the canonical Page type. Operations with file attachments switch the
// whole payload to multipart, with field names kept in one upload contract
// table. All failures surface as *Error with a machine-checkable Kind.
package fixit
