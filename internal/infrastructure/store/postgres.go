package store

import (
	"context"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"smart-recipe-generator/internal/infrastructure/config"
	"smart-recipe-generator/internal/pkg/common"
)

// recipeModel is the persistence shape. List-valued fields are stored as
// JSON columns; diet-tag and ingredient matching happen in Go after the
// structural SQL filters.
type recipeModel struct {
	ID          string              `gorm:"primaryKey;type:varchar(36)"`
	Title       string              `gorm:"not null"`
	Ingredients []common.Ingredient `gorm:"serializer:json;not null"`
	Steps       []string            `gorm:"serializer:json;not null"`
	TimeMinutes int                 `gorm:"not null;index"`
	Difficulty  string              `gorm:"type:varchar(10);index"`
	Cuisine     string              `gorm:"index"`
	DietTags    []string            `gorm:"serializer:json"`
	Nutrition   *common.Nutrition   `gorm:"serializer:json"`
	Source      string              `gorm:"type:varchar(10);not null;index"`
	CreatedBy   string
	CreatedAt   time.Time
}

func (recipeModel) TableName() string {
	return "recipes"
}

func (m *recipeModel) toRecipe() common.Recipe {
	return common.Recipe{
		ID:          m.ID,
		Title:       m.Title,
		Ingredients: m.Ingredients,
		Steps:       m.Steps,
		TimeMinutes: m.TimeMinutes,
		Difficulty:  common.Difficulty(m.Difficulty),
		Cuisine:     m.Cuisine,
		DietTags:    m.DietTags,
		Nutrition:   m.Nutrition,
		Source:      common.Source(m.Source),
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}

func toModel(r *common.Recipe) recipeModel {
	return recipeModel{
		ID:          r.ID,
		Title:       r.Title,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		TimeMinutes: r.TimeMinutes,
		Difficulty:  string(r.Difficulty),
		Cuisine:     r.Cuisine,
		DietTags:    r.DietTags,
		Nutrition:   r.Nutrition,
		Source:      string(r.Source),
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
	}
}

// RecipeStore is the GORM-backed persistent recipe store.
type RecipeStore struct {
	db *gorm.DB
}

// NewRecipeStore connects to Postgres and migrates the recipes table.
func NewRecipeStore(cfg config.DatabaseConfig) (*RecipeStore, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, common.ErrStoreUnavailable.WithCause(err)
	}

	if err := db.AutoMigrate(&recipeModel{}); err != nil {
		return nil, common.ErrStoreUnavailable.WithCause(err)
	}

	return &RecipeStore{db: db}, nil
}

// FindCandidates returns recipes passing the query's structural filters.
// Cuisine and max time and difficulty go into SQL; diet tags need a superset
// check over a JSON column, so that filter runs in Go.
func (s *RecipeStore) FindCandidates(ctx context.Context, q *common.RecipeQuery) ([]common.Recipe, error) {
	tx := s.db.WithContext(ctx).Model(&recipeModel{})

	if q.Cuisine != "" {
		tx = tx.Where("LOWER(cuisine) = ?", strings.ToLower(q.Cuisine))
	}
	if q.MaxTimeMinutes > 0 {
		tx = tx.Where("time_minutes <= ?", q.MaxTimeMinutes)
	}
	if q.Difficulty != "" {
		tx = tx.Where("difficulty = ?", string(q.Difficulty))
	}

	var models []recipeModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, common.ErrStoreUnavailable.WithCause(err)
	}

	recipes := make([]common.Recipe, 0, len(models))
	for i := range models {
		r := models[i].toRecipe()
		if !hasAllTags(r.DietTags, q.DietTags) {
			continue
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}

// hasAllTags reports whether the recipe's tags are a superset of the
// requested tags. Comparison is case-insensitive.
func hasAllTags(recipeTags, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	have := make(map[string]struct{}, len(recipeTags))
	for _, t := range recipeTags {
		have[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
	for _, w := range wanted {
		if _, ok := have[strings.ToLower(strings.TrimSpace(w))]; !ok {
			return false
		}
	}
	return true
}

// Save inserts a recipe.
func (s *RecipeStore) Save(ctx context.Context, r *common.Recipe) error {
	m := toModel(r)
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return common.ErrStoreUnavailable.WithCause(err)
	}
	return nil
}

// DeleteBySource removes every recipe with the given provenance.
func (s *RecipeStore) DeleteBySource(ctx context.Context, source common.Source) error {
	if err := s.db.WithContext(ctx).Where("source = ?", string(source)).Delete(&recipeModel{}).Error; err != nil {
		return common.ErrStoreUnavailable.WithCause(err)
	}
	return nil
}

// Count returns the number of stored recipes.
func (s *RecipeStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&recipeModel{}).Count(&count).Error; err != nil {
		return 0, common.ErrStoreUnavailable.WithCause(err)
	}
	return count, nil
}

// Ping verifies database connectivity for readiness checks.
func (s *RecipeStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return common.ErrStoreUnavailable.WithCause(err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return common.ErrStoreUnavailable.WithCause(err)
	}
	return nil
}
