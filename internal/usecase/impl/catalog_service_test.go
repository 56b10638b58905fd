package impl

import (
	"context"
	"testing"

	"bookshop/internal/domain/entity"
	domainerrors "bookshop/internal/domain/errors"
	"bookshop/internal/domain/repository"
	mockRepo "bookshop/internal/mocks/repository"
	"bookshop/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	txManager   *mockRepo.MockTransactionManager
	tx          *txFixture
	catalogRepo *mockRepo.MockCatalogRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	f := catalogServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		tx:          newTxFixture(t),
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
	}
	f.service = NewCatalogService(CatalogServiceParams{
		TxManager:   f.txManager,
		CatalogRepo: f.catalogRepo,
		Logger:      newDiscardLogger(),
	})

	return f
}

func TestCatalogService_CreateCategory(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := createTestCatalogService(t)
		expectTx(f.txManager, f.tx)
		f.tx.catalogRepo.EXPECT().FindCategoryByName(mock.Anything, "Fantasy").Return(nil, repository.ErrCategoryNotFound)
		f.tx.catalogRepo.EXPECT().CreateCategory(mock.Anything, mock.AnythingOfType("*entity.Category")).
			RunAndReturn(func(_ context.Context, c *entity.Category) error {
				c.ID = 11

				return nil
			})

		got, err := f.service.CreateCategory(context.Background(), usecase.CreateCategoryInput{Name: "Fantasy", Description: ptr("dragons")})

		require.NoError(t, err)
		assert.Equal(t, int64(11), got.ID)
		assert.Equal(t, "dragons", *got.Description)
	})

	t.Run("name exists", func(t *testing.T) {
		f := createTestCatalogService(t)
		expectTx(f.txManager, f.tx)
		f.tx.catalogRepo.EXPECT().FindCategoryByName(mock.Anything, "Fantasy").Return(&entity.Category{ID: 1}, nil)

		_, err := f.service.CreateCategory(context.Background(), usecase.CreateCategoryInput{Name: "Fantasy"})

		assert.True(t, errors.Is(err, domainerrors.ErrCategoryAlreadyExists))
	})
}

func TestCatalogService_CreateAuthor_InsertRace(t *testing.T) {
	f := createTestCatalogService(t)
	expectTx(f.txManager, f.tx)
	f.tx.catalogRepo.EXPECT().FindAuthorByName(mock.Anything, "Le Guin").Return(nil, repository.ErrAuthorNotFound)
	f.tx.catalogRepo.EXPECT().CreateAuthor(mock.Anything, mock.Anything).Return(repository.ErrCatalogConflict)

	_, err := f.service.CreateAuthor(context.Background(), usecase.CreateAuthorInput{Name: "Le Guin"})

	assert.True(t, errors.Is(err, domainerrors.ErrAuthorAlreadyExists))
}

func TestCatalogService_CreateTag(t *testing.T) {
	f := createTestCatalogService(t)
	expectTx(f.txManager, f.tx)
	f.tx.catalogRepo.EXPECT().FindTagByName(mock.Anything, "classic").Return(&entity.Tag{ID: 2, Name: "classic"}, nil)

	_, err := f.service.CreateTag(context.Background(), "classic")

	assert.True(t, errors.Is(err, domainerrors.ErrTagAlreadyExists))
}

func TestCatalogService_Lists(t *testing.T) {
	f := createTestCatalogService(t)
	ctx := context.Background()
	f.catalogRepo.EXPECT().ListCategories(ctx).Return([]*entity.Category{{ID: 1}}, nil)
	f.catalogRepo.EXPECT().ListAuthors(ctx).Return([]*entity.Author{{ID: 1}, {ID: 2}}, nil)
	f.catalogRepo.EXPECT().ListTags(ctx).Return(nil, errors.New("boom"))

	categories, err := f.service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	authors, err := f.service.ListAuthors(ctx)
	require.NoError(t, err)
	assert.Len(t, authors, 2)

	_, err = f.service.ListTags(ctx)
	assert.ErrorContains(t, err, "failed to list tags")
}
