package exports

import (
	"context"

	"policlinico-service/internal/pkg/dto/requests"
	"policlinico-service/internal/pkg/dto/responses"
)

type ExportUsecase interface {
	BuildDocument(ctx context.Context, request *requests.Export) (*responses.ExportDocument, error)
	Archive(ctx context.Context, request *requests.Export) (*responses.ExportArchived, error)
}
