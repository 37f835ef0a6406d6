// internal/payment/provider.go
//
// La pasarela de pagos es un seam: el flujo real queda fuera de alcance y
// el provider por defecto siempre aprueba.
package payment

import "context"

// Charge es el cobro que la cuenta pide ejecutar antes de mutar estado.
type Charge struct {
	UserID      int
	Amount      float64
	Description string
}

// Provider ejecuta cobros. Una implementación real devolvería errores de
// tarjeta rechazada, fondos, etc.; el stub nunca falla.
type Provider interface {
	Charge(ctx context.Context, c Charge) error
}

// StubProvider aprueba todos los cobros.
type StubProvider struct{}

func NewStubProvider() *StubProvider { return &StubProvider{} }

func (*StubProvider) Charge(ctx context.Context, c Charge) error { return nil }
