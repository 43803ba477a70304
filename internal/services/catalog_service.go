package services

import (
	"context"
	"fmt"

	"github.com/andregumieri/fiap-brigalab/internal/catalog"
	"github.com/andregumieri/fiap-brigalab/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel changes the level of the services logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// CatalogService stores the storefront catalog in the database
type CatalogService interface {
	// Migrate creates or updates the catalog_options table
	Migrate(ctx context.Context) error
	// Seed writes cat to the database if the table is empty.
	// It reports whether anything was written.
	Seed(ctx context.Context, cat catalog.Catalog) (bool, error)
	// Load reads the catalog back in display order and validates it
	Load(ctx context.Context) (catalog.Catalog, error)
}

// catalogService is the gorm implementation of CatalogService
type catalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(db *gorm.DB) CatalogService {
	return &catalogService{db: db}
}

func (s *catalogService) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&models.CatalogOption{})
}

func (s *catalogService) Seed(ctx context.Context, cat catalog.Catalog) (bool, error) {
	if err := cat.Validate(); err != nil {
		return false, fmt.Errorf("refusing to seed invalid catalog: %w", err)
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.CatalogOption{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		log.WithField("rows", count).Info("Catalog already seeded")
		return false, nil
	}

	rows := make([]models.CatalogOption, 0, len(cat.Bases)+len(cat.Toppings))
	rows = appendRows(rows, catalog.KindBase, cat.Bases, cat.DefaultBase)
	rows = appendRows(rows, catalog.KindTopping, cat.Toppings, cat.DefaultTopping)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	if err != nil {
		return false, err
	}
	log.WithFields(logrus.Fields{
		"bases":    len(cat.Bases),
		"toppings": len(cat.Toppings),
	}).Info("Catalog seeded")
	return true, nil
}

func appendRows(rows []models.CatalogOption, kind catalog.Kind, opts []catalog.Option, defaultID string) []models.CatalogOption {
	for i, opt := range opts {
		rows = append(rows, models.CatalogOption{
			Kind:      string(kind),
			OptionID:  opt.ID,
			Name:      opt.Name,
			Style:     opt.Style,
			Position:  i,
			IsDefault: opt.ID == defaultID,
		})
	}
	return rows
}

func (s *catalogService) Load(ctx context.Context) (catalog.Catalog, error) {
	var rows []models.CatalogOption
	if err := s.db.WithContext(ctx).Order("kind, position").Find(&rows).Error; err != nil {
		return catalog.Catalog{}, err
	}

	var cat catalog.Catalog
	for _, row := range rows {
		opt := catalog.Option{ID: row.OptionID, Name: row.Name, Style: row.Style}
		switch catalog.Kind(row.Kind) {
		case catalog.KindBase:
			cat.Bases = append(cat.Bases, opt)
			if row.IsDefault {
				cat.DefaultBase = opt.ID
			}
		case catalog.KindTopping:
			cat.Toppings = append(cat.Toppings, opt)
			if row.IsDefault {
				cat.DefaultTopping = opt.ID
			}
		default:
			log.WithFields(logrus.Fields{
				"kind":      row.Kind,
				"option_id": row.OptionID,
			}).Warn("Skipping catalog row with unknown kind")
		}
	}

	if err := cat.Validate(); err != nil {
		return catalog.Catalog{}, fmt.Errorf("stored catalog is invalid: %w", err)
	}
	log.WithFields(logrus.Fields{
		"bases":    len(cat.Bases),
		"toppings": len(cat.Toppings),
	}).Debug("Catalog loaded")
	return cat, nil
}
