package service

import (
	"context"
	"fmt"

	"gestionpos/internal/model"
	"gestionpos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// FacturaRenderer renders an invoice as a PDF document.
type FacturaRenderer interface {
	RenderFactura(f *model.Factura) ([]byte, error)
}

// Mailer delivers a message with one attachment.
type Mailer interface {
	Send(ctx context.Context, to, subject, body, attachmentName string, attachment []byte) error
}

// FacturaDocumentosService produces invoice documents and e-mails them.
type FacturaDocumentosService interface {
	PDF(ctx context.Context, id uuid.UUID) (nombre string, pdf []byte, err error)
	Enviar(ctx context.Context, id uuid.UUID, email string) error
}

type facturaDocumentosService struct {
	repo     repository.Repository[model.Factura]
	renderer FacturaRenderer
	mailer   Mailer
}

// NewFacturaDocumentosService: mailer may be nil when SMTP is not configured;
// Enviar then fails with ErrUnavailable.
func NewFacturaDocumentosService(repo repository.Repository[model.Factura], renderer FacturaRenderer, mailer Mailer) FacturaDocumentosService {
	return &facturaDocumentosService{repo: repo, renderer: renderer, mailer: mailer}
}

func nombrePDF(f *model.Factura) string {
	return fmt.Sprintf("factura_%s.pdf", f.Numero)
}

func (s *facturaDocumentosService) PDF(ctx context.Context, id uuid.UUID) (string, []byte, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", nil, storeErr(err, "factura")
	}
	pdf, err := s.renderer.RenderFactura(f)
	if err != nil {
		return "", nil, fmt.Errorf("generando PDF: %w", err)
	}
	return nombrePDF(f), pdf, nil
}

func (s *facturaDocumentosService) Enviar(ctx context.Context, id uuid.UUID, email string) error {
	if s.mailer == nil {
		return fmt.Errorf("envío de e-mail no configurado: %w", ErrUnavailable)
	}
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return storeErr(err, "factura")
	}
	pdf, err := s.renderer.RenderFactura(f)
	if err != nil {
		return fmt.Errorf("generando PDF: %w", err)
	}

	subject := fmt.Sprintf("Factura %s", f.Numero)
	body := fmt.Sprintf("Adjuntamos la factura %s por un total de $%s.", f.Numero, f.Total.StringFixed(2))
	if err := s.mailer.Send(ctx, email, subject, body, nombrePDF(f), pdf); err != nil {
		log.Warn().Err(err).Str("factura", f.Numero).Msg("envío de factura fallido")
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	log.Info().Str("factura", f.Numero).Str("to", email).Msg("factura enviada")
	return nil
}
