package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/db"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/importer"
	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/repository"
)

type importService struct {
	uow db.UnitOfWork
}

func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportLeads(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportLeadsFromSchema(ctx, schema)
}

func (s *importService) ImportLeadsFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		return nil, fmt.Errorf("import validation failed:\n  %s", strings.Join(msgs, "\n  "))
	}

	leads := importer.Convert(schema, time.Now().UTC())

	// All-or-nothing: a failure on lead N must not leave leads 1..N-1 behind.
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteLeadRepo(tx)
		for _, l := range leads {
			if err := repo.Create(ctx, l); err != nil {
				return fmt.Errorf("importing lead %s: %w", l.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{LeadCount: len(leads)}, nil
}
