package domain

type User struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	Avatar *string  `json:"avatar,omitempty"`
}

func (u User) IsTeacher() bool {
	return u.Role == UserRoleTeacher
}

func (u User) IsStudent() bool {
	return u.Role == UserRoleStudent
}

func (u User) Clone() User {
	if u.Avatar != nil {
		avatar := *u.Avatar
		u.Avatar = &avatar
	}
	return u
}
