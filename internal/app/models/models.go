package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleAdmin   RoleType = "admin"
)

// ParseRole maps a request-supplied role string to a RoleType.
// Empty input defaults to student; anything else unknown is rejected.
func ParseRole(s string) (RoleType, bool) {
	switch RoleType(s) {
	case "":
		return RoleStudent, true
	case RoleStudent:
		return RoleStudent, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// ApplicationStatus is the admin-controlled review state of a submission.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusReviewed ApplicationStatus = "reviewed"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)
