package services

import (
	"context"
	"log"
	"time"

	"schoolhub/internal/models/db_models"
	"schoolhub/internal/models/request_models"
	"schoolhub/internal/models/response_models"
	"schoolhub/internal/repositories"
	mem "schoolhub/pkg/memcache"
	"schoolhub/pkg/utils"
)

type AccountServiceInterface interface {
	RegisterSchool(ctx context.Context, request request_models.RegisterSchoolRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type AccountService struct {
	accountRepo  repositories.AccountRepository
	schoolRepo   repositories.SchoolRepository
	referralRepo repositories.ReferralRepository
	catalog      *PlanCatalog
	mailService  IMailService
	resetTokens  mem.ResetTokenStore
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	schoolRepo repositories.SchoolRepository,
	referralRepo repositories.ReferralRepository,
	catalog *PlanCatalog,
	mailService IMailService,
	resetTokens mem.ResetTokenStore,
) AccountServiceInterface {
	return &AccountService{
		accountRepo:  accountRepo,
		schoolRepo:   schoolRepo,
		referralRepo: referralRepo,
		catalog:      catalog,
		mailService:  mailService,
		resetTokens:  resetTokens,
	}
}

// RegisterSchool creates the tenant with trial defaults from the catalog and
// its first admin account. This is the only place besides a verified payment
// that writes plan fields.
func (a *AccountService) RegisterSchool(ctx context.Context, request request_models.RegisterSchoolRequest) error {
	existing, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	trial, err := a.catalog.Get("trial")
	if err != nil {
		return err
	}

	expiry := time.Now().AddDate(0, 0, trial.DurationDays).Unix()
	school := &db_models.School{
		Name:          request.SchoolName,
		Email:         request.Email,
		Phone:         request.Phone,
		Address:       request.Address,
		PlanType:      trial.ID,
		PlanExpiresAt: &expiry,
		MaxStudents:   trial.MaxStudents,
		MaxClasses:    trial.MaxClasses,
	}

	if request.ReferralCode != "" {
		partner, err := a.referralRepo.FindPartnerByCode(ctx, request.ReferralCode)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if partner != nil {
			id := partner.ID
			school.ReferralPartnerID = &id
		}
	}

	if err := a.schoolRepo.Insert(ctx, school); err != nil {
		return utils.ErrDatabaseError
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	account := &db_models.Account{
		SchoolID:     school.ID,
		Name:         request.AdminName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         db_models.RoleAdmin,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.SchoolID, account.Role)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	planType := ""
	if school, err := a.schoolRepo.FindById(ctx, account.SchoolID.String()); err == nil && school != nil {
		planType = school.PlanType
	}

	return &response_models.LoginResponse{
		Token:    token,
		SchoolID: account.SchoolID.String(),
		Role:     account.Role,
		PlanType: planType,
	}, nil
}

func (a *AccountService) ForgotPassword(ctx context.Context, email string) error {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if account == nil {
		// Do not reveal whether the email exists.
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}

	a.resetTokens.Set(token, account.Email, 15*time.Minute)

	if err := a.mailService.SendMailToResetPassword(account.Email, token); err != nil {
		log.Printf("failed to send reset mail to %s: %v", account.Email, err)
	}
	return nil
}

func (a *AccountService) ResetPassword(ctx context.Context, token, newPassword string) error {
	email := a.resetTokens.Consume(token)
	if email == "" {
		return utils.ErrInvalidCredentials
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := a.accountRepo.UpdatePassword(ctx, email, hashedPassword); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
