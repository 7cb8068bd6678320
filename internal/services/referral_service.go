package services

import (
	"context"
	"strings"

	"schoolhub/internal/models/db_models"
	"schoolhub/internal/models/request_models"
	"schoolhub/internal/repositories"
	"schoolhub/pkg/utils"
)

type ReferralServiceInterface interface {
	CreatePartner(ctx context.Context, request request_models.CreatePartnerRequest) (*db_models.Partner, error)
	ListPartners(ctx context.Context) ([]db_models.Partner, error)
	ListCommissions(ctx context.Context, partnerID string) ([]db_models.ReferralCommission, error)
}

type ReferralService struct {
	referralRepo repositories.ReferralRepository
}

func NewReferralService(referralRepo repositories.ReferralRepository) ReferralServiceInterface {
	return &ReferralService{referralRepo: referralRepo}
}

func (s *ReferralService) CreatePartner(ctx context.Context, request request_models.CreatePartnerRequest) (*db_models.Partner, error) {
	rate := request.CommissionRate
	if rate <= 0 {
		rate = 10
	}

	code, err := utils.NewReferralCode()
	if err != nil {
		return nil, err
	}

	partner := &db_models.Partner{
		Name:           request.Name,
		Email:          strings.ToLower(request.Email),
		ReferralCode:   strings.ToUpper(code),
		CommissionRate: rate,
	}

	if err := s.referralRepo.InsertPartner(ctx, partner); err != nil {
		if err == utils.ErrDuplicateCode {
			return nil, err
		}
		return nil, utils.ErrDatabaseError
	}
	return partner, nil
}

func (s *ReferralService) ListPartners(ctx context.Context) ([]db_models.Partner, error) {
	partners, err := s.referralRepo.ListPartners(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return partners, nil
}

func (s *ReferralService) ListCommissions(ctx context.Context, partnerID string) ([]db_models.ReferralCommission, error) {
	commissions, err := s.referralRepo.ListCommissionsByPartner(ctx, partnerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return commissions, nil
}
