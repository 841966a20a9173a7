package models

// Role is the closed set of member roles in the class
type Role string

const (
	RoleAdmin         Role = "Admin"
	RoleLopTruong     Role = "Lớp trưởng"
	RoleLopPhoHocTap  Role = "Lớp phó học tập"
	RoleLopPhoDoiSong Role = "Lớp phó đời sống"
	RoleBiThu         Role = "Bí thư"
	RolePhoBiThu      Role = "Phó bí thư"
	RoleThanhVien     Role = "Thành viên"
)

// AllRoles lists every assignable role
func AllRoles() []Role {
	return []Role{
		RoleAdmin,
		RoleLopTruong,
		RoleLopPhoHocTap,
		RoleLopPhoDoiSong,
		RoleBiThu,
		RolePhoBiThu,
		RoleThanhVien,
	}
}

// CommitteeRoles is the class leadership subset, used for restricted
// chat room visibility
var CommitteeRoles = []Role{
	RoleAdmin,
	RoleLopTruong,
	RoleLopPhoHocTap,
	RoleLopPhoDoiSong,
	RoleBiThu,
	RolePhoBiThu,
}

// RoleColor is the display color triple for a role
type RoleColor struct {
	Primary string `json:"primary"`
	Text    string `json:"text"`
	Border  string `json:"border"`
}

var roleColors = map[Role]RoleColor{
	RoleAdmin:         {Primary: "#FF3B30", Text: "text-red-500", Border: "border-red-500"},
	RoleLopTruong:     {Primary: "#FF9500", Text: "text-orange-500", Border: "border-orange-500"},
	RoleLopPhoHocTap:  {Primary: "#34C759", Text: "text-green-500", Border: "border-green-500"},
	RoleLopPhoDoiSong: {Primary: "#AF52DE", Text: "text-purple-500", Border: "border-purple-500"},
	RoleBiThu:         {Primary: "#007AFF", Text: "text-blue-500", Border: "border-blue-500"},
	RolePhoBiThu:      {Primary: "#FFD60A", Text: "text-yellow-500", Border: "border-yellow-500"},
	RoleThanhVien:     {Primary: "#8E8E93", Text: "text-gray-500", Border: "border-gray-500"},
}

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	_, ok := roleColors[r]
	return ok
}

// Colors returns the display color triple for the role
func (r Role) Colors() RoleColor {
	if c, ok := roleColors[r]; ok {
		return c
	}
	return roleColors[RoleThanhVien]
}

// IsCommittee reports whether the role belongs to class leadership
func (r Role) IsCommittee() bool {
	for _, c := range CommitteeRoles {
		if r == c {
			return true
		}
	}
	return false
}
