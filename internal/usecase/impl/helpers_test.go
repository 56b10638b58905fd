package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"bookshop/internal/domain/repository"
	mockRepo "bookshop/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txFixture is a repository factory whose repositories are mocks.
type txFixture struct {
	factory     *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	bookRepo    *mockRepo.MockBookRepository
	catalogRepo *mockRepo.MockCatalogRepository
}

func newTxFixture(t *testing.T) *txFixture {
	fixture := &txFixture{
		factory:     mockRepo.NewMockRepositoryFactory(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		bookRepo:    mockRepo.NewMockBookRepository(t),
		catalogRepo: mockRepo.NewMockCatalogRepository(t),
	}
	fixture.factory.EXPECT().UserRepo().Return(fixture.userRepo).Maybe()
	fixture.factory.EXPECT().BookRepo().Return(fixture.bookRepo).Maybe()
	fixture.factory.EXPECT().CatalogRepo().Return(fixture.catalogRepo).Maybe()

	return fixture
}

// expectTx makes txManager run the callback against the fixture's repositories
// and return whatever the callback returns.
func expectTx(txManager *mockRepo.MockTransactionManager, fixture *txFixture) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fixture.factory)
		}).
		Once()
}

func ptr[T any](v T) *T {
	return &v
}

func newReader(s string) io.Reader {
	return strings.NewReader(s)
}
