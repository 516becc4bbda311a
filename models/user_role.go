package models

type UserRole string

const (
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleFaculty    UserRole = "FACULTY"
	UserRoleWarden     UserRole = "WARDEN"
	UserRoleHod        UserRole = "HOD"
	UserRoleStudent    UserRole = "STUDENT"
	UserRoleParent     UserRole = "PARENT"
	UserRoleStaff      UserRole = "STAFF"
)

var roleHumanName = map[UserRole]string{
	UserRoleSuperAdmin: "Super admin",
	UserRoleAdmin:      "Administrator",
	UserRoleFaculty:    "Faculty",
	UserRoleWarden:     "Hostel warden",
	UserRoleHod:        "Head of department",
	UserRoleStudent:    "Student",
	UserRoleParent:     "Parent",
	UserRoleStaff:      "Staff",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin || r == UserRoleSuperAdmin
}

// CanDecideStage reports whether the role may decide the given approval stage.
// HOD decisions are also open to admins, warden decisions to warden only.
func (r UserRole) CanDecideStage(stage StageRole) bool {
	switch stage {
	case StageWarden:
		return r == UserRoleWarden
	case StageHod:
		return r == UserRoleHod || r.IsAdmin()
	}
	return false
}

const SystemUser = "system"

// Identity is the authenticated caller, passed explicitly into every
// workflow operation instead of being read from ambient session state.
type Identity struct {
	UserID   string
	FullName string
	Role     UserRole
}
