package repository

import (
	"context"
	"time"

	"gestionpos/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardRepository runs the read-only aggregates behind the summary panel.
type DashboardRepository interface {
	ContarPedidos(ctx context.Context, estado string) (int64, error)
	ContarIncidentes(ctx context.Context, estado string) (int64, error)
	ContarAlquileres(ctx context.Context, estado string) (int64, error)
	// SumarFacturas totals invoices in estado issued in [desde, hasta).
	SumarFacturas(ctx context.Context, estado string, desde, hasta time.Time) (decimal.Decimal, error)
}

type dashboardRepo struct{ db *gorm.DB }

func NewDashboardRepository(db *gorm.DB) DashboardRepository { return &dashboardRepo{db: db} }

func (r *dashboardRepo) count(ctx context.Context, m any, estado string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(m).Where("estado = ?", estado).Count(&n).Error
	return n, err
}

func (r *dashboardRepo) ContarPedidos(ctx context.Context, estado string) (int64, error) {
	return r.count(ctx, &model.Pedido{}, estado)
}

func (r *dashboardRepo) ContarIncidentes(ctx context.Context, estado string) (int64, error) {
	return r.count(ctx, &model.Incidente{}, estado)
}

func (r *dashboardRepo) ContarAlquileres(ctx context.Context, estado string) (int64, error) {
	return r.count(ctx, &model.Alquiler{}, estado)
}

func (r *dashboardRepo) SumarFacturas(ctx context.Context, estado string, desde, hasta time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	row := r.db.WithContext(ctx).
		Model(&model.Factura{}).
		Select("SUM(total)").
		Where("estado = ? AND fecha_emision >= ? AND fecha_emision < ?", estado, desde, hasta).
		Row()
	if err := row.Scan(&total); err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
