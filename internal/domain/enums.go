package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleBishop UserRole = "bishop"
	UserRoleLeader UserRole = "leader"
	UserRoleMember UserRole = "member"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleBishop, UserRoleLeader, UserRoleMember:
		return true
	}
	return false
}

// CanLogin reports whether accounts with this role may authenticate.
// Members are roster entries only.
func (r UserRole) CanLogin() bool {
	return r == UserRoleBishop || r == UserRoleLeader
}

// SortOrder is the direction of a list ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// MemberSortKey selects the column used to order dashboard members.
type MemberSortKey string

const (
	MemberSortName               MemberSortKey = "name"
	MemberSortAttendanceCount    MemberSortKey = "attendanceCount"
	MemberSortLastAttendanceDate MemberSortKey = "lastAttendanceDate"
	MemberSortRating             MemberSortKey = "rating"
)

func (k MemberSortKey) IsValid() bool {
	switch k {
	case MemberSortName, MemberSortAttendanceCount, MemberSortLastAttendanceDate, MemberSortRating:
		return true
	}
	return false
}
