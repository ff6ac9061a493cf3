package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/architeacher/svc-order-events/internal/domain"
	"github.com/architeacher/svc-order-events/internal/infrastructure"
	"github.com/architeacher/svc-order-events/internal/mocks"
)

var errStorageDown = errors.New("connection refused")

type (
	OrderServiceTestSuite struct {
		suite.Suite
		fakeOrderRepo *mocks.FakeOrderRepository
		fakeCacheRepo *mocks.FakeCacheRepository
		logger        infrastructure.Logger
		service       OrderService
	}
)

func TestOrderServiceTestSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.fakeOrderRepo = &mocks.FakeOrderRepository{}
	s.fakeCacheRepo = &mocks.FakeCacheRepository{}
	s.logger = infrastructure.NewTestLogger()
	s.service = NewOrderService(s.fakeOrderRepo, s.fakeCacheRepo, s.logger)
}

func (s *OrderServiceTestSuite) TestDeleteOrder_InvalidatesCache() {
	err := s.service.DeleteOrder(s.T().Context(), 42)

	s.Require().NoError(err)
	s.Require().Equal(1, s.fakeOrderRepo.DeleteCallCount())
	s.Require().Equal(1, s.fakeCacheRepo.DeleteCallCount())

	_, deletedID := s.fakeOrderRepo.DeleteArgsForCall(0)
	_, invalidatedID := s.fakeCacheRepo.DeleteArgsForCall(0)
	s.Require().Equal(int64(42), deletedID)
	s.Require().Equal(int64(42), invalidatedID)
}

func (s *OrderServiceTestSuite) TestDeleteOrder_RepositoryFailure() {
	s.fakeOrderRepo.DeleteReturns(errStorageDown)

	err := s.service.DeleteOrder(s.T().Context(), 42)

	s.Require().ErrorIs(err, errStorageDown)
	s.Require().Equal(0, s.fakeCacheRepo.DeleteCallCount())
}

func (s *OrderServiceTestSuite) TestDeleteOrder_CacheFailureIsIgnored() {
	s.fakeCacheRepo.DeleteReturns(domain.ErrCacheUnavailable)

	err := s.service.DeleteOrder(s.T().Context(), 42)

	s.Require().NoError(err)
}

func (s *OrderServiceTestSuite) TestDeleteUserOrders_InvalidatesEveryOrder() {
	s.fakeOrderRepo.DeleteByUserReturns([]int64{3, 5, 8}, nil)

	deleted, err := s.service.DeleteUserOrders(s.T().Context(), 7)

	s.Require().NoError(err)
	s.Require().Equal([]int64{3, 5, 8}, deleted)
	s.Require().Equal(3, s.fakeCacheRepo.DeleteCallCount())

	_, userID := s.fakeOrderRepo.DeleteByUserArgsForCall(0)
	s.Require().Equal(int64(7), userID)

	for i, expected := range deleted {
		_, orderID := s.fakeCacheRepo.DeleteArgsForCall(i)
		s.Require().Equal(expected, orderID)
	}
}

func (s *OrderServiceTestSuite) TestDeleteUserOrders_RepositoryFailure() {
	s.fakeOrderRepo.DeleteByUserReturns(nil, errStorageDown)

	deleted, err := s.service.DeleteUserOrders(s.T().Context(), 7)

	s.Require().ErrorIs(err, errStorageDown)
	s.Require().Nil(deleted)
	s.Require().Equal(0, s.fakeCacheRepo.DeleteCallCount())
}

func (s *OrderServiceTestSuite) TestFetchOrder_CacheHit() {
	expected := s.createOrder(42)
	s.fakeCacheRepo.FindReturns(expected, nil)

	result, err := s.service.FetchOrder(s.T().Context(), 42)

	s.Require().NoError(err)
	s.Require().Equal(expected, result)
	s.Require().Equal(0, s.fakeOrderRepo.FindCallCount())
}

func (s *OrderServiceTestSuite) TestFetchOrder_CacheMiss() {
	expected := s.createOrder(42)
	s.fakeCacheRepo.FindReturns(nil, domain.ErrCacheMiss)
	s.fakeOrderRepo.FindReturns(expected, nil)

	result, err := s.service.FetchOrder(s.T().Context(), 42)

	s.Require().NoError(err)
	s.Require().Equal(expected, result)
	s.Require().Equal(1, s.fakeOrderRepo.FindCallCount())
	s.Require().Equal(1, s.fakeCacheRepo.SetCallCount())

	_, cached := s.fakeCacheRepo.SetArgsForCall(0)
	s.Require().Equal(expected, cached)
}

func (s *OrderServiceTestSuite) TestFetchOrder_NotFound() {
	s.fakeCacheRepo.FindReturns(nil, domain.ErrCacheMiss)
	s.fakeOrderRepo.FindReturns(nil, domain.NewOrderNotFoundError(42))

	result, err := s.service.FetchOrder(s.T().Context(), 42)

	s.Require().ErrorIs(err, domain.ErrOrderNotFound)
	s.Require().Nil(result)
	s.Require().Equal(0, s.fakeCacheRepo.SetCallCount())
}

func (s *OrderServiceTestSuite) createOrder(id int64) *domain.Order {
	now := time.Now().UTC()

	return &domain.Order{
		ID:        id,
		Mode:      domain.OrderModeDraft,
		UserID:    7,
		ProductID: 11,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
