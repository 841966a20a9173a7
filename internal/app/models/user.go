package models

// Contact holds a member's contact details
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Socials holds optional social profile links
type Socials struct {
	Facebook string `json:"facebook,omitempty"`
	Github   string `json:"github,omitempty"`
}

// User is a class member. Badges are owned copies of the central badge
// definitions, not references; editing or deleting a definition must be
// fanned out to each holder. Content counters (posts, documents,
// comments) are derived on read, only Points is stored.
type User struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Avatar     string  `json:"avatar"`
	CoverImage string  `json:"coverImage"`
	Role       Role    `json:"role"`
	Bio        string  `json:"bio"`
	Major      string  `json:"major"`
	JoinDate   string  `json:"joinDate"`
	Birthday   string  `json:"birthday,omitempty"` // dd/mm, no year
	Contact    Contact `json:"contact"`
	Socials    Socials `json:"socials"`

	Points int     `json:"points"`
	Badges []Badge `json:"badges"`

	Locked             bool   `json:"locked"`
	MustChangePassword bool   `json:"mustChangePassword"`
	Password           string `json:"-"` // bcrypt hash
}

// Clone returns a deep copy of the user
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Badges = append([]Badge(nil), u.Badges...)
	return &c
}
