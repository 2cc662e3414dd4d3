package models

type UserRole string

const (
	CompanyAdminRole UserRole = "COMPANY_ADMIN"
	RecruiterRole    UserRole = "RECRUITER"
	ManagerRole      UserRole = "MANAGER"
)

var roleHumanName = map[UserRole]string{
	CompanyAdminRole: "Администратор",
	RecruiterRole:    "Рекрутер",
	ManagerRole:      "Руководитель",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsCompanyAdmin() bool {
	return r == CompanyAdminRole
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

const SystemUser = "Система"
