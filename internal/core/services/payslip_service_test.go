package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zbpay/payroll_processing_app/internal/apperrors"
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	portssvc "github.com/zbpay/payroll_processing_app/internal/core/ports/services"
	"github.com/zbpay/payroll_processing_app/internal/core/services"
)

type PayslipServiceTestSuite struct {
	suite.Suite
	mockPayslipRepo *MockPayslipRepository
	service         portssvc.PayslipSvcFacade
}

func (suite *PayslipServiceTestSuite) SetupTest() {
	suite.mockPayslipRepo = new(MockPayslipRepository)
	suite.service = services.NewPayslipService(suite.mockPayslipRepo)
}

func (suite *PayslipServiceTestSuite) payslipWithStatus(status domain.PayslipStatus) *domain.Payslip {
	return &domain.Payslip{
		PayslipID:  uuid.NewString(),
		EmployeeID: uuid.NewString(),
		PayrollID:  uuid.NewString(),
		PeriodID:   uuid.NewString(),
		Status:     status,
		GrossUSD:   decimal.NewFromInt(1000),
		NetUSD:     decimal.NewFromInt(850),
	}
}

func (suite *PayslipServiceTestSuite) TestGetPayslipByID_AttachesLines() {
	ctx := context.Background()
	payslip := suite.payslipWithStatus(domain.PayslipDraft)
	lines := []domain.PayslipTransaction{
		{TransactionID: uuid.NewString(), PayslipID: payslip.PayslipID, Description: domain.LineBasicSalary, Type: domain.LineEarning},
		{TransactionID: uuid.NewString(), PayslipID: payslip.PayslipID, Description: domain.LinePAYETax, Type: domain.LineDeduction},
	}

	suite.mockPayslipRepo.On("FindPayslipByID", ctx, payslip.PayslipID).Return(payslip, nil).Once()
	suite.mockPayslipRepo.On("FindTransactionsByPayslipID", ctx, payslip.PayslipID).Return(lines, nil).Once()

	found, err := suite.service.GetPayslipByID(ctx, payslip.PayslipID)

	suite.Require().NoError(err)
	suite.Require().Len(found.Transactions, 2)
	suite.Equal(domain.LineBasicSalary, found.Transactions[0].Description)
	suite.mockPayslipRepo.AssertExpectations(suite.T())
}

func (suite *PayslipServiceTestSuite) TestGetPayslipByID_NotFound() {
	ctx := context.Background()
	payslipID := uuid.NewString()

	suite.mockPayslipRepo.On("FindPayslipByID", ctx, payslipID).
		Return(nil, apperrors.NewNotFoundError("payslip not found")).Once()

	found, err := suite.service.GetPayslipByID(ctx, payslipID)

	suite.Require().Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPayslipRepo.AssertNotCalled(suite.T(), "FindTransactionsByPayslipID")
}

func (suite *PayslipServiceTestSuite) TestDistributePayslip_FromFinalized() {
	ctx := context.Background()
	payslip := suite.payslipWithStatus(domain.PayslipFinalized)
	actorID := uuid.NewString()

	suite.mockPayslipRepo.On("FindPayslipByID", ctx, payslip.PayslipID).Return(payslip, nil).Once()
	suite.mockPayslipRepo.On("UpdatePayslipStatus", ctx, payslip.PayslipID,
		domain.PayslipFinalized, domain.PayslipDistributed, actorID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.DistributePayslip(ctx, payslip.PayslipID, actorID)

	suite.Require().NoError(err)
	suite.mockPayslipRepo.AssertExpectations(suite.T())
}

func (suite *PayslipServiceTestSuite) TestDistributePayslip_FromDraftRejected() {
	ctx := context.Background()
	payslip := suite.payslipWithStatus(domain.PayslipDraft)

	suite.mockPayslipRepo.On("FindPayslipByID", ctx, payslip.PayslipID).Return(payslip, nil).Once()

	err := suite.service.DistributePayslip(ctx, payslip.PayslipID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "cannot move to")
	suite.mockPayslipRepo.AssertNotCalled(suite.T(), "UpdatePayslipStatus")
}

func (suite *PayslipServiceTestSuite) TestCancelPayslip_FromDraft() {
	ctx := context.Background()
	payslip := suite.payslipWithStatus(domain.PayslipDraft)
	actorID := uuid.NewString()

	suite.mockPayslipRepo.On("FindPayslipByID", ctx, payslip.PayslipID).Return(payslip, nil).Once()
	suite.mockPayslipRepo.On("UpdatePayslipStatus", ctx, payslip.PayslipID,
		domain.PayslipDraft, domain.PayslipCancelled, actorID, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.CancelPayslip(ctx, payslip.PayslipID, actorID)

	suite.Require().NoError(err)
	suite.mockPayslipRepo.AssertExpectations(suite.T())
}

func (suite *PayslipServiceTestSuite) TestCancelPayslip_FromDistributedRejected() {
	ctx := context.Background()
	payslip := suite.payslipWithStatus(domain.PayslipDistributed)

	suite.mockPayslipRepo.On("FindPayslipByID", ctx, payslip.PayslipID).Return(payslip, nil).Once()

	err := suite.service.CancelPayslip(ctx, payslip.PayslipID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPayslipRepo.AssertNotCalled(suite.T(), "UpdatePayslipStatus")
}

func (suite *PayslipServiceTestSuite) TestDeletePayslip_Success() {
	ctx := context.Background()
	payslip := suite.payslipWithStatus(domain.PayslipCancelled)

	suite.mockPayslipRepo.On("FindPayslipByID", ctx, payslip.PayslipID).Return(payslip, nil).Once()
	suite.mockPayslipRepo.On("DeletePayslip", ctx, payslip.PayslipID).Return(nil).Once()

	err := suite.service.DeletePayslip(ctx, payslip.PayslipID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockPayslipRepo.AssertExpectations(suite.T())
}

func (suite *PayslipServiceTestSuite) TestDeletePayslip_DistributedRejected() {
	ctx := context.Background()
	payslip := suite.payslipWithStatus(domain.PayslipDistributed)

	suite.mockPayslipRepo.On("FindPayslipByID", ctx, payslip.PayslipID).Return(payslip, nil).Once()

	err := suite.service.DeletePayslip(ctx, payslip.PayslipID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "distributed payslip cannot be deleted")
	suite.mockPayslipRepo.AssertNotCalled(suite.T(), "DeletePayslip")
}

func (suite *PayslipServiceTestSuite) TestStatusTransitions() {
	cases := []struct {
		from    domain.PayslipStatus
		to      domain.PayslipStatus
		allowed bool
	}{
		{domain.PayslipDraft, domain.PayslipFinalized, true},
		{domain.PayslipDraft, domain.PayslipCancelled, true},
		{domain.PayslipDraft, domain.PayslipDistributed, false},
		{domain.PayslipFinalized, domain.PayslipDistributed, true},
		{domain.PayslipFinalized, domain.PayslipCancelled, true},
		{domain.PayslipFinalized, domain.PayslipDraft, false},
		{domain.PayslipDistributed, domain.PayslipCancelled, false},
		{domain.PayslipCancelled, domain.PayslipDraft, false},
	}
	for _, tc := range cases {
		suite.Equal(tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestPayslipService(t *testing.T) {
	suite.Run(t, new(PayslipServiceTestSuite))
}
