package model

// Categoria groups products. Names are unique and listings are sorted by name.
type Categoria struct {
	Base
	Nombre      string `gorm:"uniqueIndex;not null"`
	Descripcion *string
}

// TableName overrides GORM's default singular → plural logic for Spanish names.
func (Categoria) TableName() string { return "categorias" }
