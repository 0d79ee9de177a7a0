package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestionpos/internal/model"
	"gestionpos/internal/repository"
	"gestionpos/internal/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct{}

func (fakeRenderer) RenderFactura(f *model.Factura) ([]byte, error) {
	return []byte("%PDF-" + f.Numero), nil
}

type fakeMailer struct {
	err        error
	to         string
	attachment string
	body       []byte
}

func (m *fakeMailer) Send(_ context.Context, to, _, _, attachmentName string, attachment []byte) error {
	m.to, m.attachment, m.body = to, attachmentName, attachment
	return m.err
}

func seedFacturaDoc(t *testing.T) (repository.Repository[model.Factura], uuid.UUID) {
	t.Helper()
	db := testutil.NewDB(t)
	f := &model.Factura{Numero: "0001-00000042", FechaEmision: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(120), Estado: model.FacturaPagada}
	require.NoError(t, db.Create(f).Error)
	return repository.NewFacturaRepository(db), f.ID
}

func TestFacturaPDF(t *testing.T) {
	repo, id := seedFacturaDoc(t)
	svc := NewFacturaDocumentosService(repo, fakeRenderer{}, nil)

	nombre, pdf, err := svc.PDF(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "factura_0001-00000042.pdf", nombre)
	assert.Equal(t, "%PDF-0001-00000042", string(pdf))

	_, _, err = svc.PDF(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFacturaEnviar(t *testing.T) {
	repo, id := seedFacturaDoc(t)

	t.Run("sin SMTP", func(t *testing.T) {
		svc := NewFacturaDocumentosService(repo, fakeRenderer{}, nil)
		assert.ErrorIs(t, svc.Enviar(context.Background(), id, "a@b.com"), ErrUnavailable)
	})

	t.Run("enviada", func(t *testing.T) {
		m := &fakeMailer{}
		svc := NewFacturaDocumentosService(repo, fakeRenderer{}, m)
		require.NoError(t, svc.Enviar(context.Background(), id, "a@b.com"))
		assert.Equal(t, "a@b.com", m.to)
		assert.Equal(t, "factura_0001-00000042.pdf", m.attachment)
		assert.NotEmpty(t, m.body)
	})

	t.Run("relay caido", func(t *testing.T) {
		svc := NewFacturaDocumentosService(repo, fakeRenderer{}, &fakeMailer{err: errors.New("dial tcp: refused")})
		assert.ErrorIs(t, svc.Enviar(context.Background(), id, "a@b.com"), ErrUpstream)
	})
}
