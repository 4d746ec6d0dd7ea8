package entity

// Patient represents a patient record owned by the identity service.
type Patient struct {
	ID        uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre    string       `gorm:"type:varchar(100);not null" json:"nombre"`
	Telefono  string       `gorm:"type:varchar(20)" json:"telefono"`
	Estado    RecordStatus `gorm:"type:varchar(20);not null;default:'ACTIVO';index" json:"estado"`
	IDUsuario *uint        `gorm:"column:id_usuario" json:"id_usuario,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p *Patient) IsActive() bool {
	return p.Estado == RecordStatusActive
}

// Deactivate performs the soft delete.
func (p *Patient) Deactivate() {
	p.Estado = RecordStatusInactive
}
