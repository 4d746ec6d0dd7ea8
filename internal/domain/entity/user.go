package entity

// User represents an account in the identity service.
type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"type:varchar(80);uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:varchar(200);not null" json:"-"`
	Rol      string `gorm:"type:varchar(20);not null" json:"rol"`
}

func (User) TableName() string {
	return "users"
}

// Role constants
const (
	RolAdmin      = "admin"
	RolMedico     = "medico"
	RolSecretaria = "secretaria"
	RolPaciente   = "paciente"
)

// IsValidRol reports whether rol is one of the known roles.
func IsValidRol(rol string) bool {
	switch rol {
	case RolAdmin, RolMedico, RolSecretaria, RolPaciente:
		return true
	}
	return false
}

func (u *User) IsAdmin() bool {
	return u.Rol == RolAdmin
}
