package postgres

import (
	"context"
	"slices"

	"bookshop/internal/domain/entity"
	"bookshop/internal/domain/repository"
	"bookshop/internal/errors"
	"bookshop/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository returns the GORM-backed CatalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (repo *catalogRepository) create(ctx context.Context, op string, value any) error {
	if err := repo.db.WithContext(ctx).Create(value).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCatalogConflict
		}

		return errors.Wrap(err, op)
	}

	return nil
}

func (repo *catalogRepository) first(ctx context.Context, op string, dest any, notFound error, query string, args ...any) error {
	err := repo.db.WithContext(ctx).Where(query, args...).Order("id").First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	if err != nil {
		return errors.Wrap(err, op)
	}

	return nil
}

func (repo *catalogRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	m := &model.CategoryModel{Name: category.Name, Description: category.Description}
	if err := repo.create(ctx, "create category", m); err != nil {
		return err
	}
	category.ID = m.ID

	return nil
}

func (repo *catalogRepository) FindCategoryByID(ctx context.Context, id int64) (*entity.Category, error) {
	var m model.CategoryModel
	if err := repo.first(ctx, "find category by id", &m, repository.ErrCategoryNotFound, "id = ?", id); err != nil {
		return nil, err
	}

	return toCategoryDomain(&m), nil
}

// FindCategoryByName matches names case-insensitively.
func (repo *catalogRepository) FindCategoryByName(ctx context.Context, name string) (*entity.Category, error) {
	var m model.CategoryModel
	if err := repo.first(ctx, "find category by name", &m, repository.ErrCategoryNotFound, "LOWER(name) = LOWER(?)", name); err != nil {
		return nil, err
	}

	return toCategoryDomain(&m), nil
}

func (repo *catalogRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var rows []model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list categories")
	}

	out := make([]*entity.Category, 0, len(rows))
	for i := range rows {
		out = append(out, toCategoryDomain(&rows[i]))
	}

	return out, nil
}

func (repo *catalogRepository) CreateAuthor(ctx context.Context, author *entity.Author) error {
	m := &model.AuthorModel{Name: author.Name, Bio: author.Bio}
	if err := repo.create(ctx, "create author", m); err != nil {
		return err
	}
	author.ID = m.ID

	return nil
}

func (repo *catalogRepository) FindAuthorByID(ctx context.Context, id int64) (*entity.Author, error) {
	var m model.AuthorModel
	if err := repo.first(ctx, "find author by id", &m, repository.ErrAuthorNotFound, "id = ?", id); err != nil {
		return nil, err
	}

	return toAuthorDomain(&m), nil
}

// FindAuthorByName matches names case-insensitively.
func (repo *catalogRepository) FindAuthorByName(ctx context.Context, name string) (*entity.Author, error) {
	var m model.AuthorModel
	if err := repo.first(ctx, "find author by name", &m, repository.ErrAuthorNotFound, "LOWER(name) = LOWER(?)", name); err != nil {
		return nil, err
	}

	return toAuthorDomain(&m), nil
}

func (repo *catalogRepository) ListAuthors(ctx context.Context) ([]*entity.Author, error) {
	var rows []model.AuthorModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list authors")
	}

	out := make([]*entity.Author, 0, len(rows))
	for i := range rows {
		out = append(out, toAuthorDomain(&rows[i]))
	}

	return out, nil
}

func (repo *catalogRepository) CreateTag(ctx context.Context, tag *entity.Tag) error {
	m := &model.TagModel{Name: tag.Name}
	if err := repo.create(ctx, "create tag", m); err != nil {
		return err
	}
	tag.ID = m.ID

	return nil
}

// FindTagByName matches names case-insensitively.
func (repo *catalogRepository) FindTagByName(ctx context.Context, name string) (*entity.Tag, error) {
	var m model.TagModel
	if err := repo.first(ctx, "find tag by name", &m, repository.ErrTagNotFound, "LOWER(name) = LOWER(?)", name); err != nil {
		return nil, err
	}

	return &entity.Tag{ID: m.ID, Name: m.Name}, nil
}

func (repo *catalogRepository) ListTags(ctx context.Context) ([]*entity.Tag, error) {
	var rows []model.TagModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list tags")
	}

	out := make([]*entity.Tag, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entity.Tag{ID: row.ID, Name: row.Name})
	}

	return out, nil
}

func (repo *catalogRepository) CountTags(ctx context.Context, ids []int64) (int64, error) {
	unique := uniqueIDs(ids)
	if len(unique) == 0 {
		return 0, nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.TagModel{}).Where("id IN ?", unique).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count tags")
	}

	return count, nil
}

// uniqueIDs returns the sorted distinct ids.
func uniqueIDs(ids []int64) []int64 {
	out := slices.Clone(ids)
	slices.Sort(out)

	return slices.Compact(out)
}

func toCategoryDomain(m *model.CategoryModel) *entity.Category {
	return &entity.Category{ID: m.ID, Name: m.Name, Description: m.Description}
}

func toAuthorDomain(m *model.AuthorModel) *entity.Author {
	return &entity.Author{ID: m.ID, Name: m.Name, Bio: m.Bio}
}
