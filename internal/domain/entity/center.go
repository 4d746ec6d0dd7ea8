package entity

// Center represents a medical center record owned by the identity service.
type Center struct {
	ID        uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre    string       `gorm:"type:varchar(100);not null" json:"nombre"`
	Direccion string       `gorm:"type:varchar(200)" json:"direccion"`
	Estado    RecordStatus `gorm:"type:varchar(20);not null;default:'ACTIVO';index" json:"estado"`
}

func (Center) TableName() string {
	return "centers"
}

func (c *Center) IsActive() bool {
	return c.Estado == RecordStatusActive
}

func (c *Center) Deactivate() {
	c.Estado = RecordStatusInactive
}
