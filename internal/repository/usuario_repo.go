package repository

import (
	"context"

	"gestionpos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UsuarioRepository interface {
	// CrearConRoles inserts the user, attaches roles and, when emp is not nil,
	// inserts the linked employee profile. Everything happens in one transaction.
	CrearConRoles(ctx context.Context, u *model.Usuario, roles []model.Rol, emp *model.Empleado) error
	FindByUsername(ctx context.Context, username string) (*model.Usuario, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	List(ctx context.Context) ([]model.Usuario, error)
	// Actualizar saves the user and, in the same transaction, replaces its
	// roles when roles is not nil and saves emp when it is not nil.
	Actualizar(ctx context.Context, u *model.Usuario, roles []model.Rol, emp *model.Empleado) error
	SetActivo(ctx context.Context, id uuid.UUID, activo bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) CrearConRoles(ctx context.Context, u *model.Usuario, roles []model.Rol, emp *model.Empleado) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(u).Error; err != nil {
			return err
		}
		if len(roles) > 0 {
			if err := tx.Model(u).Association("Roles").Replace(roles); err != nil {
				return err
			}
		}
		if emp != nil {
			emp.UsuarioID = &u.ID
			if err := tx.Omit(clause.Associations).Create(emp).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByUsername only matches active accounts.
func (r *usuarioRepo) FindByUsername(ctx context.Context, username string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Where("username = ? AND activo = ?", username, true).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Preload("Roles").Preload("Empleado").First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	var users []model.Usuario
	err := r.db.WithContext(ctx).Preload("Roles").Preload("Empleado").Order("username asc").Find(&users).Error
	return users, err
}

func (r *usuarioRepo) Actualizar(ctx context.Context, u *model.Usuario, roles []model.Rol, emp *model.Empleado) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(u).Error; err != nil {
			return err
		}
		if roles != nil {
			if err := tx.Model(u).Association("Roles").Replace(roles); err != nil {
				return err
			}
		}
		if emp != nil {
			if err := tx.Omit(clause.Associations).Save(emp).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *usuarioRepo) SetActivo(ctx context.Context, id uuid.UUID, activo bool) error {
	res := r.db.WithContext(ctx).Model(&model.Usuario{}).Where("id = ?", id).Update("activo", activo)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the account. A linked employee profile survives, unlinked.
func (r *usuarioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Empleado{}).Where("usuario_id = ?", id).Update("usuario_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM usuario_roles WHERE usuario_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Usuario{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
