package usecase

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"pslab/internal/domain/model"
	repo "pslab/internal/repository"
	"pslab/internal/validator"
)

// TokenIssuer はOTP検証に成功したときのセッショントークンを発行する。
type TokenIssuer interface {
	Issue(mobile string, now time.Time) (string, time.Time, error)
}

type PasswordVerifier interface {
	Verify(hash string, plain string) bool
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
}

type bcryptPasswordVerifier struct{}

func NewBcryptPasswordVerifier() PasswordVerifier {
	return &bcryptPasswordVerifier{}
}

func (v *bcryptPasswordVerifier) Verify(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

type bcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) PasswordHasher {
	return &bcryptPasswordHasher{cost: cost}
}

func (h *bcryptPasswordHasher) Hash(plain string) (string, error) {
	raw, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// AuthUsecase はモックのOTPログインと管理者ログイン。
// 本物のバックエンドが無いので、OTPはログに出すだけで必ず成功する。
type AuthUsecase struct {
	accountRepo repo.AccountRepository
	issuer      TokenIssuer
	verifier    PasswordVerifier
	clock       Clock

	adminUsername     string
	adminPasswordHash string

	mobilePolicy validator.MobilePolicy

	// 発行済みOTP（モバイル番号→コード）。プロセス内だけで持つ。
	mu         sync.Mutex
	pendingOTP map[string]string

	// trueなら保存していない6桁コードも受け付ける（元実装と同じ挙動）
	Permissive bool
}

func NewAuthUsecase(
	accountRepo repo.AccountRepository,
	issuer TokenIssuer,
	verifier PasswordVerifier,
	clock Clock,
	adminUsername string,
	adminPasswordHash string,
) *AuthUsecase {
	return &AuthUsecase{
		accountRepo:       accountRepo,
		issuer:            issuer,
		verifier:          verifier,
		clock:             clock,
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		mobilePolicy:      validator.TenDigits{},
		pendingOTP:        map[string]string{},
		Permissive:        true,
	}
}

// RequestOTP は 6桁コードを発行してログに出す（メールもSMSも送らない）。
func (u *AuthUsecase) RequestOTP(ctx context.Context, mobile string) error {
	if !u.mobilePolicy.Validate(mobile) {
		return NewValidationError(map[string]string{"mobile": "must be a valid 10-digit mobile number"})
	}

	otp := fmt.Sprintf("%06d", 100000+rand.Intn(900000))

	u.mu.Lock()
	u.pendingOTP[mobile] = otp
	u.mu.Unlock()

	log.Printf("auth: mock OTP for %s: %s", mobile, otp)
	return nil
}

// VerifyOTP は一致するコード（または寛容モードなら任意の6桁）を受けて
// トークンを返す。
func (u *AuthUsecase) VerifyOTP(ctx context.Context, mobile string, otp string) (string, error) {
	u.mu.Lock()
	pending, ok := u.pendingOTP[mobile]
	u.mu.Unlock()

	matched := ok && pending == otp
	if !matched && u.Permissive && len(otp) == 6 {
		matched = true
	}
	if !matched {
		return "", NewValidationError(map[string]string{"otp": "invalid code"})
	}

	u.mu.Lock()
	delete(u.pendingOTP, mobile)
	u.mu.Unlock()

	token, _, err := u.issuer.Issue(mobile, u.clock.Now())
	if err != nil {
		return "", err
	}
	return token, nil
}

func (u *AuthUsecase) Profile(ctx context.Context) (model.Profile, bool, error) {
	return u.accountRepo.Profile(ctx)
}

func (u *AuthUsecase) UpdateProfile(ctx context.Context, p model.Profile) (model.Profile, error) {
	if err := u.accountRepo.SaveProfile(ctx, p); err != nil {
		return model.Profile{}, err
	}
	return p, nil
}

// AdminLogin は成功すればログイン状態を保存して true。
func (u *AuthUsecase) AdminLogin(ctx context.Context, username string, password string) (bool, error) {
	if username != u.adminUsername || !u.verifier.Verify(u.adminPasswordHash, password) {
		return false, nil
	}
	if err := u.accountRepo.SetAdminAuthenticated(ctx, true); err != nil {
		return false, err
	}
	return true, nil
}

func (u *AuthUsecase) AdminLogout(ctx context.Context) error {
	return u.accountRepo.ClearAdminAuthenticated(ctx)
}

func (u *AuthUsecase) IsAdminAuthenticated(ctx context.Context) (bool, error) {
	return u.accountRepo.IsAdminAuthenticated(ctx)
}
