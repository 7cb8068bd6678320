package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub/internal/models/db_models"
	"schoolhub/internal/models/request_models"
	"schoolhub/internal/services"
	mem "schoolhub/pkg/memcache"
	"schoolhub/pkg/utils"
)

type fakeAccountRepo struct {
	accounts map[string]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*db_models.Account{}}
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts[account.Email] = account
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	for _, a := range f.accounts {
		if a.ID.String() == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return f.accounts[email], nil
}

func (f *fakeAccountRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	if a, ok := f.accounts[email]; ok {
		a.PasswordHash = passwordHash
	}
	return nil
}

type receipt struct {
	email     string
	planName  string
	amount    int64
	orderCode string
}

type fakeMail struct {
	resetTokens []string
	receipts    []receipt
	receiptErr  error
}

func (f *fakeMail) SendMailToNotifyUser(to, subject, body, ctaText, ctaURL string) error { return nil }

func (f *fakeMail) SendMailToResetPassword(email, token string) error {
	f.resetTokens = append(f.resetTokens, token)
	return nil
}

func (f *fakeMail) SendPaymentReceipt(email, planName string, amount int64, orderCode string) error {
	if f.receiptErr != nil {
		return f.receiptErr
	}
	f.receipts = append(f.receipts, receipt{email: email, planName: planName, amount: amount, orderCode: orderCode})
	return nil
}

type accountFixture struct {
	accounts *fakeAccountRepo
	store    *fakeStore
	mail     *fakeMail
	tokens   mem.ResetTokenStore
	svc      services.AccountServiceInterface
}

func newAccountFixture() *accountFixture {
	accounts := newFakeAccountRepo()
	store := newFakeStore()
	mail := &fakeMail{}
	tokens := mem.NewResetTokens()

	svc := services.NewAccountService(accounts, store, store, services.DefaultPlanCatalog(), mail, tokens)
	return &accountFixture{accounts: accounts, store: store, mail: mail, tokens: tokens, svc: svc}
}

func registerRequest() request_models.RegisterSchoolRequest {
	return request_models.RegisterSchoolRequest{
		SchoolName: "Sunrise Public School",
		Email:      "admin@sunrise.example",
		Password:   "s3cret-pass",
		AdminName:  "Meera",
	}
}

func TestAccountService_RegisterSchool(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("creates tenant with trial defaults", func(t *testing.T) {
		t.Parallel()
		fx := newAccountFixture()

		require.NoError(t, fx.svc.RegisterSchool(ctx, registerRequest()))

		school, err := fx.store.FindByEmail(ctx, "admin@sunrise.example")
		require.NoError(t, err)
		require.NotNil(t, school)
		assert.Equal(t, "trial", school.PlanType)
		assert.Equal(t, int64(50), school.MaxStudents)
		assert.Equal(t, int64(2), school.MaxClasses)
		require.NotNil(t, school.PlanExpiresAt)
		assert.InDelta(t, time.Now().AddDate(0, 0, 14).Unix(), *school.PlanExpiresAt, 5)

		account := fx.accounts.accounts["admin@sunrise.example"]
		require.NotNil(t, account)
		assert.Equal(t, db_models.RoleAdmin, account.Role)
		assert.Equal(t, school.ID, account.SchoolID)
		assert.NotEqual(t, "s3cret-pass", account.PasswordHash)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		t.Parallel()
		fx := newAccountFixture()

		require.NoError(t, fx.svc.RegisterSchool(ctx, registerRequest()))
		assert.ErrorIs(t, fx.svc.RegisterSchool(ctx, registerRequest()), utils.ErrEmailAlreadyExists)
	})

	t.Run("referral code links the partner", func(t *testing.T) {
		t.Parallel()
		fx := newAccountFixture()

		partner := &db_models.Partner{Name: "EduGrow", ReferralCode: "REF-GROW"}
		fx.store.addPartner(partner)

		req := registerRequest()
		req.ReferralCode = "REF-GROW"
		require.NoError(t, fx.svc.RegisterSchool(ctx, req))

		school, _ := fx.store.FindByEmail(ctx, req.Email)
		require.NotNil(t, school.ReferralPartnerID)
		assert.Equal(t, partner.ID, *school.ReferralPartnerID)
	})

	t.Run("unknown referral code registers without a link", func(t *testing.T) {
		t.Parallel()
		fx := newAccountFixture()

		req := registerRequest()
		req.ReferralCode = "REF-NOPE"
		require.NoError(t, fx.svc.RegisterSchool(ctx, req))

		school, _ := fx.store.FindByEmail(ctx, req.Email)
		assert.Nil(t, school.ReferralPartnerID)
	})
}

func TestAccountService_Login(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()
		fx := newAccountFixture()
		require.NoError(t, fx.svc.RegisterSchool(ctx, registerRequest()))

		resp, err := fx.svc.Login(ctx, request_models.LoginRequest{
			Email:    "admin@sunrise.example",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, db_models.RoleAdmin, resp.Role)
		assert.Equal(t, "trial", resp.PlanType)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		fx := newAccountFixture()
		require.NoError(t, fx.svc.RegisterSchool(ctx, registerRequest()))

		_, err := fx.svc.Login(ctx, request_models.LoginRequest{
			Email:    "admin@sunrise.example",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()
		fx := newAccountFixture()

		_, err := fx.svc.Login(ctx, request_models.LoginRequest{
			Email:    "ghost@nowhere.example",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, utils.ErrAccountNotFound)
	})
}

func TestAccountService_PasswordReset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("full reset round trip", func(t *testing.T) {
		t.Parallel()
		fx := newAccountFixture()
		require.NoError(t, fx.svc.RegisterSchool(ctx, registerRequest()))

		require.NoError(t, fx.svc.ForgotPassword(ctx, "admin@sunrise.example"))
		require.Len(t, fx.mail.resetTokens, 1)
		token := fx.mail.resetTokens[0]

		require.NoError(t, fx.svc.ResetPassword(ctx, token, "new-password-9"))

		_, err := fx.svc.Login(ctx, request_models.LoginRequest{
			Email:    "admin@sunrise.example",
			Password: "new-password-9",
		})
		assert.NoError(t, err)
	})

	t.Run("token is single use", func(t *testing.T) {
		t.Parallel()
		fx := newAccountFixture()
		require.NoError(t, fx.svc.RegisterSchool(ctx, registerRequest()))
		require.NoError(t, fx.svc.ForgotPassword(ctx, "admin@sunrise.example"))
		token := fx.mail.resetTokens[0]

		require.NoError(t, fx.svc.ResetPassword(ctx, token, "new-password-9"))
		assert.ErrorIs(t, fx.svc.ResetPassword(ctx, token, "another-pass"), utils.ErrInvalidCredentials)
	})

	t.Run("unknown email stays silent", func(t *testing.T) {
		t.Parallel()
		fx := newAccountFixture()

		assert.NoError(t, fx.svc.ForgotPassword(ctx, "ghost@nowhere.example"))
		assert.Empty(t, fx.mail.resetTokens)
	})

	t.Run("bogus token", func(t *testing.T) {
		t.Parallel()
		fx := newAccountFixture()

		assert.ErrorIs(t, fx.svc.ResetPassword(ctx, "bogus", "pass-123456"), utils.ErrInvalidCredentials)
	})
}
