package entity

// Doctor represents a doctor record owned by the identity service.
type Doctor struct {
	ID           uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre       string       `gorm:"type:varchar(100);not null" json:"nombre"`
	Especialidad string       `gorm:"type:varchar(50)" json:"especialidad"`
	Estado       RecordStatus `gorm:"type:varchar(20);not null;default:'ACTIVO';index" json:"estado"`
	IDUsuario    *uint        `gorm:"column:id_usuario" json:"id_usuario,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (d *Doctor) IsActive() bool {
	return d.Estado == RecordStatusActive
}

func (d *Doctor) Deactivate() {
	d.Estado = RecordStatusInactive
}
