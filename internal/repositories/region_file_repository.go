package repositories

import (
	"context"
	"fmt"
	"os"

	"regionsBack/internal/models"
)

// RegionFileRepository reads one regions document from disk.
type RegionFileRepository struct {
	Path string
}

// Read returns the whole file. Nothing is cached, every call hits the disk.
func (r *RegionFileRepository) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrReadFile, r.Path, err)
	}
	return data, nil
}
