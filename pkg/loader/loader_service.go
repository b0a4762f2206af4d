package loader

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/utils"
	"Food-Wastage-Management/pkg/snapshot"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

const CleanedPrefix = "cleaned_"

type (
	LoaderService interface {
		// Clean reads "<prefix><table>.csv" from src and writes
		// "cleaned_<table>.csv" into outDir.
		Clean(ctx context.Context, src Source, prefix string, outDir string) ([]CleanStats, error)
		// Load cleans and inserts all four tables, parents first.
		Load(ctx context.Context, src Source, prefix string) ([]LoadStats, error)
	}

	LoadStats struct {
		CleanStats
		Inserted int64 `json:"inserted"`
	}

	loaderService struct {
		loaderRepository LoaderRepository
		invalidator      snapshot.Invalidator
		logger           *logrus.Logger
	}
)

// NewLoaderService wires the bulk loader. invalidator may be nil when no
// snapshot caches exist, as in the CLI.
func NewLoaderService(loaderRepository LoaderRepository, invalidator snapshot.Invalidator) LoaderService {
	return &loaderService{
		loaderRepository: loaderRepository,
		invalidator:      invalidator,
		logger:           utils.GetLogger(),
	}
}

func fileName(prefix, table string) string {
	return prefix + table + ".csv"
}

func (s *loaderService) readClean(ctx context.Context, src Source, prefix, table string) (*rawTable, CleanStats, error) {
	name := fileName(prefix, table)
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, CleanStats{}, fmt.Errorf("open %s from %s: %w", name, src, err)
	}
	defer rc.Close()

	t, err := readTable(table, rc)
	if err != nil {
		return nil, CleanStats{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	stats, err := cleanTable(t)
	if err != nil {
		return nil, CleanStats{}, err
	}
	return t, stats, nil
}

func (s *loaderService) Clean(ctx context.Context, src Source, prefix string, outDir string) ([]CleanStats, error) {
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return nil, err
	}

	all := make([]CleanStats, 0, len(Tables))
	for _, table := range Tables {
		t, stats, err := s.readClean(ctx, src, prefix, table)
		if err != nil {
			return all, err
		}

		out, err := os.Create(filepath.Join(outDir, fileName(CleanedPrefix, table)))
		if err != nil {
			return all, err
		}
		if err := t.write(out); err != nil {
			out.Close()
			return all, err
		}
		if err := out.Close(); err != nil {
			return all, err
		}

		s.logger.WithFields(logrus.Fields{
			"table":      table,
			"rows":       stats.Rows,
			"duplicates": stats.DuplicatesDropped,
		}).Info("cleaned table")
		all = append(all, stats)
	}
	return all, nil
}

func (s *loaderService) Load(ctx context.Context, src Source, prefix string) ([]LoadStats, error) {
	all := make([]LoadStats, 0, len(Tables))
	for _, table := range Tables {
		t, stats, err := s.readClean(ctx, src, prefix, table)
		if err != nil {
			return all, err
		}

		inserted, err := s.insertTable(ctx, t)
		if err != nil {
			utils.LogError(s.logger, "loader", "Load", "insert table", table, err)
			return all, err
		}

		s.logger.WithFields(logrus.Fields{
			"table":    table,
			"rows":     stats.Rows,
			"inserted": inserted,
		}).Info("loaded table")
		all = append(all, LoadStats{CleanStats: stats, Inserted: inserted})
	}

	if s.invalidator != nil {
		s.invalidator.InvalidateAll()
	}
	return all, nil
}

func (s *loaderService) insertTable(ctx context.Context, t *rawTable) (int64, error) {
	switch t.name {
	case TableProviders:
		rows, err := toProviders(t)
		if err != nil {
			return 0, err
		}
		n, err := s.loaderRepository.InsertProviders(ctx, rows)
		return n, domain.StoreError(err)
	case TableReceivers:
		rows, err := toReceivers(t)
		if err != nil {
			return 0, err
		}
		n, err := s.loaderRepository.InsertReceivers(ctx, rows)
		return n, domain.StoreError(err)
	case TableFoodListings:
		rows, err := toFoodListings(t)
		if err != nil {
			return 0, err
		}
		n, err := s.loaderRepository.InsertFoodListings(ctx, rows)
		return n, domain.StoreError(err)
	case TableClaims:
		rows, err := toClaims(t)
		if err != nil {
			return 0, err
		}
		n, err := s.loaderRepository.InsertClaims(ctx, rows)
		return n, domain.StoreError(err)
	default:
		return 0, fmt.Errorf("unknown table %q", t.name)
	}
}
