package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/zbpay/payroll_processing_app/internal/apperrors"
	"github.com/zbpay/payroll_processing_app/internal/core/domain"
	portssvc "github.com/zbpay/payroll_processing_app/internal/core/ports/services"
	"github.com/zbpay/payroll_processing_app/internal/core/services"
	"github.com/zbpay/payroll_processing_app/internal/dto"
	"github.com/zbpay/payroll_processing_app/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo   *MockUserRepository
	mockCenterRepo *MockCostCenterRepository
	mockAuditRepo  *MockAuditRepository
	userSvc        portssvc.UserSvcFacade
	auditSvc       portssvc.AuditSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCenterRepo = new(MockCostCenterRepository)
	suite.mockAuditRepo = new(MockAuditRepository)
	suite.userSvc = services.NewUserService(suite.mockUserRepo, suite.mockCenterRepo)
	suite.auditSvc = services.NewAuditService(suite.mockAuditRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_OfficerWithCenter() {
	ctx := context.Background()
	centerID := uuid.NewString()
	req := dto.CreateUserRequest{
		Username: "JSmith",
		Name:     "J. Smith",
		Password: "s3cret-pass",
		Role:     string(domain.RoleOfficer),
		CenterID: &centerID,
	}

	suite.mockCenterRepo.On("FindCenterByID", ctx, centerID).
		Return(&domain.CostCenter{CenterID: centerID, IsActive: true}, nil).Once()

	var saved domain.User
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.User)
		}).Return(nil).Once()

	user, err := suite.userSvc.CreateUser(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("jsmith", user.Username)
	suite.Equal(domain.RoleOfficer, user.Role)
	suite.Require().NotNil(user.CenterID)
	suite.Equal(centerID, *user.CenterID)
	suite.NotEqual("s3cret-pass", saved.PasswordHash)
	suite.True(utils.CheckPasswordHash("s3cret-pass", saved.PasswordHash))
}

func (suite *UserServiceTestSuite) TestCreateUser_OfficerWithoutCenterRejected() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "jsmith",
		Name:     "J. Smith",
		Password: "s3cret-pass",
		Role:     string(domain.RoleOfficer),
	}

	user, err := suite.userSvc.CreateUser(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "requires a cost center")
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestCreateUser_AdminWithCenterRejected() {
	ctx := context.Background()
	centerID := uuid.NewString()
	req := dto.CreateUserRequest{
		Username: "root",
		Name:     "Root",
		Password: "s3cret-pass",
		Role:     string(domain.RoleAdmin),
		CenterID: &centerID,
	}

	user, err := suite.userSvc.CreateUser(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "cannot carry a cost center")
}

func (suite *UserServiceTestSuite) TestCreateUser_UnknownRoleRejected() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "jsmith",
		Name:     "J. Smith",
		Password: "s3cret-pass",
		Role:     "SUPERVISOR",
	}

	user, err := suite.userSvc.CreateUser(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "unsupported role")
}

func (suite *UserServiceTestSuite) TestGetUserByUsername_Lowercases() {
	ctx := context.Background()
	user := &domain.User{UserID: uuid.NewString(), Username: "jsmith", Role: domain.RoleAdmin}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "jsmith").Return(user, nil).Once()

	found, err := suite.userSvc.GetUserByUsername(ctx, "JSmith")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, found.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthorizeProcessing_AdminAnyCenter() {
	ctx := context.Background()
	actorID := uuid.NewString()
	admin := &domain.User{UserID: actorID, Username: "root", Role: domain.RoleAdmin}

	suite.mockUserRepo.On("FindUserByID", ctx, actorID).Return(admin, nil).Once()

	err := suite.userSvc.AuthorizeProcessing(ctx, actorID, uuid.NewString())

	suite.Require().NoError(err)
}

func (suite *UserServiceTestSuite) TestAuthorizeProcessing_OfficerOwnCenter() {
	ctx := context.Background()
	actorID := uuid.NewString()
	centerID := uuid.NewString()
	officer := &domain.User{UserID: actorID, Username: "jsmith", Role: domain.RoleOfficer, CenterID: &centerID}

	suite.mockUserRepo.On("FindUserByID", ctx, actorID).Return(officer, nil).Once()

	err := suite.userSvc.AuthorizeProcessing(ctx, actorID, centerID)

	suite.Require().NoError(err)
}

func (suite *UserServiceTestSuite) TestAuthorizeProcessing_OfficerForeignCenterForbidden() {
	ctx := context.Background()
	actorID := uuid.NewString()
	ownCenter := uuid.NewString()
	officer := &domain.User{UserID: actorID, Username: "jsmith", Role: domain.RoleOfficer, CenterID: &ownCenter}

	suite.mockUserRepo.On("FindUserByID", ctx, actorID).Return(officer, nil).Once()

	err := suite.userSvc.AuthorizeProcessing(ctx, actorID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Contains(err.Error(), "may not process center")
}

func (suite *UserServiceTestSuite) TestRecordTransition_FillsDefaults() {
	ctx := context.Background()

	var saved domain.AuditEvent
	suite.mockAuditRepo.On("SaveEvent", ctx, mock.AnythingOfType("domain.AuditEvent")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.AuditEvent)
		}).Return(nil).Once()

	err := suite.auditSvc.RecordTransition(ctx, domain.AuditEvent{
		ActorID:     uuid.NewString(),
		Action:      domain.AuditPeriodRun,
		PeriodID:    uuid.NewString(),
		CenterID:    uuid.NewString(),
		BeforeState: string(domain.ProcessingPending),
		AfterState:  string(domain.ProcessingProcessed),
	})

	suite.Require().NoError(err)
	suite.NotEmpty(saved.EventID)
	suite.False(saved.OccurredAt.IsZero())
}

func (suite *UserServiceTestSuite) TestListRecentEvents_ClampsLimit() {
	ctx := context.Background()

	suite.mockAuditRepo.On("ListRecentEvents", ctx, 100).Return([]domain.AuditEvent{}, nil).Twice()
	suite.mockAuditRepo.On("ListRecentEvents", ctx, 25).Return([]domain.AuditEvent{}, nil).Once()

	_, err := suite.auditSvc.ListRecentEvents(ctx, 0)
	suite.Require().NoError(err)
	_, err = suite.auditSvc.ListRecentEvents(ctx, 5000)
	suite.Require().NoError(err)
	_, err = suite.auditSvc.ListRecentEvents(ctx, 25)
	suite.Require().NoError(err)

	suite.mockAuditRepo.AssertExpectations(suite.T())
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
