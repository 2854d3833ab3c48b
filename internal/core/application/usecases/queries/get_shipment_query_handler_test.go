package queries_test

import (
	"testing"
	"time"

	"tracking/internal/adapters/out/memory/shipmentrepo"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type GetShipmentQueryHandlerTestSuite struct {
	suite.Suite
	repo    *shipmentrepo.InMemoryShipmentRepository
	factory shipment.Factory
	handler queries.GetShipmentQueryHandler
}

func (suite *GetShipmentQueryHandlerTestSuite) SetupTest() {
	suite.repo = shipmentrepo.NewInMemoryShipmentRepository()
	suite.factory = shipment.NewFactory(kernel.NewEpochFormatter(time.UTC))
	suite.handler = queries.NewGetShipmentQueryHandler(suite.repo)
}

func (suite *GetShipmentQueryHandlerTestSuite) add(raw string) *shipment.Shipment {
	rec, err := shipment.ParseRecord(raw)
	suite.Require().NoError(err)
	s, err := suite.factory.Create(rec)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(suite.T().Context(), s))
	return s
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_ReturnsSnapshot() {
	s := suite.add("1690000000000,ABC123,created,Bulk,1690000100000")
	rec, err := shipment.ParseRecord("1690100000000,ABC123,location,Chicago")
	suite.Require().NoError(err)
	suite.Require().NoError(s.Location(rec))

	query, err := queries.NewGetShipmentQuery("ABC123")
	suite.Require().NoError(err)

	snap, err := suite.handler.Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.Equal("ABC123", snap.ID)
	suite.Equal("Bulk", snap.Type)
	suite.Equal("Arrived at New Location", snap.Status)
	suite.Equal("Chicago", snap.Location)
	suite.Len(snap.Updates, 2)
	suite.Equal([]string{"Expected delivery date less than 3 day expected minimum for bulk shipments"}, snap.Notes)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_NotFound() {
	query, err := queries.NewGetShipmentQuery("MISSING")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(suite.T().Context(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetShipmentQueryHandlerTestSuite) TestHandle_InvalidQuery() {
	_, err := suite.handler.Handle(suite.T().Context(), queries.GetShipmentQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetShipmentQueryIsNotConstructed)
}

func TestGetShipmentQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetShipmentQueryHandlerTestSuite))
}
