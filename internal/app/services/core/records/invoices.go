package records

import (
	"context"

	"policlinico-service/internal/app/models"
	"policlinico-service/internal/pkg/constvars"
	"policlinico-service/internal/pkg/exceptions"
)

func (s *RecordStore) ListInvoices() []models.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Invoice, len(s.db.Invoices))
	copy(out, s.db.Invoices)
	return out
}

func (s *RecordStore) GetInvoice(id string) (models.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.db.Invoices {
		if f.ID == id {
			return f, nil
		}
	}
	return models.Invoice{}, exceptions.ErrRecordNotFound(constvars.CollectionInvoices)
}

func (s *RecordStore) CreateInvoice(ctx context.Context, invoice models.Invoice) error {
	return s.mutate(ctx, func(db *models.Database) error {
		db.Invoices = append(db.Invoices, invoice)
		return nil
	})
}

func (s *RecordStore) UpdateInvoice(ctx context.Context, id string, invoice models.Invoice) error {
	return s.mutate(ctx, func(db *models.Database) error {
		for i := range db.Invoices {
			if db.Invoices[i].ID == id {
				invoice.ID = id
				invoice.Number = db.Invoices[i].Number
				invoice.RegisteredAt = db.Invoices[i].RegisteredAt
				db.Invoices[i] = invoice
				return nil
			}
		}
		return exceptions.ErrRecordNotFound(constvars.CollectionInvoices)
	})
}

func (s *RecordStore) DeleteInvoice(ctx context.Context, id string) error {
	return s.mutate(ctx, func(db *models.Database) error {
		for i := range db.Invoices {
			if db.Invoices[i].ID == id {
				db.Invoices = append(db.Invoices[:i], db.Invoices[i+1:]...)
				return nil
			}
		}
		return exceptions.ErrRecordNotFound(constvars.CollectionInvoices)
	})
}
