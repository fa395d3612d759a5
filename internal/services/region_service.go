package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"regionsBack/internal/models"
	"regionsBack/internal/repositories"
)

type RegionService struct {
	RegionRepo *repositories.RegionFileRepository
}

// GetRegions returns the document bytes untouched once they pass the UTF-8 check.
func (s *RegionService) GetRegions(ctx context.Context) ([]byte, error) {
	data, err := s.RegionRepo.Read(ctx)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidEncoding, s.RegionRepo.Path)
	}
	return data, nil
}
