package models

// Role tags an account with its professional category. It is immutable
// after the account is created.
type Role string

const (
	RoleLawyer    Role = "Lawyer"
	RoleLawFirm   Role = "LawFirm"
	RoleParalegal Role = "Paralegal"
	RoleMediator  Role = "Mediator"
	RoleClient    Role = "Client"
	RoleCorporate Role = "Corporate"
	RoleAdmin     Role = "Admin"
)

// ProfileRoles are the roles that carry a profile record. Admin accounts
// are seeded directly and have no profile.
var ProfileRoles = []Role{
	RoleLawyer, RoleLawFirm, RoleParalegal, RoleMediator, RoleClient, RoleCorporate,
}

// Valid reports whether r is a known role tag.
func (r Role) Valid() bool {
	switch r {
	case RoleLawyer, RoleLawFirm, RoleParalegal, RoleMediator, RoleClient, RoleCorporate, RoleAdmin:
		return true
	}
	return false
}

// Label returns the human-readable name used in response messages.
func (r Role) Label() string {
	switch r {
	case RoleLawFirm:
		return "Law Firm"
	case RoleCorporate:
		return "Corporate entity"
	default:
		return string(r)
	}
}

// Collection returns the Mongo collection name holding profiles for r.
func (r Role) Collection() string {
	switch r {
	case RoleLawyer:
		return "lawyers"
	case RoleLawFirm:
		return "lawfirms"
	case RoleParalegal:
		return "paralegals"
	case RoleMediator:
		return "mediators"
	case RoleClient:
		return "clients"
	case RoleCorporate:
		return "corporates"
	}
	return ""
}

// PathSegment returns the URL segment for profile routes, e.g. "lawyers"
// in GET /api/users/lawyers/getprofile/:userId.
func (r Role) PathSegment() string {
	return r.Collection()
}

// SignupSegment returns the URL segment for the signup route, e.g.
// "lawyer" in POST /api/users/signup/lawyer.
func (r Role) SignupSegment() string {
	switch r {
	case RoleLawyer:
		return "lawyer"
	case RoleLawFirm:
		return "lawfirm"
	case RoleParalegal:
		return "paralegal"
	case RoleMediator:
		return "mediator"
	case RoleClient:
		return "client"
	case RoleCorporate:
		return "corporate"
	}
	return ""
}
