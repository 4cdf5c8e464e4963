package service

import (
	"context"
	"time"

	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/entity"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/repository"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok || !user.IsActive {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email && user.IsActive {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) VerifyEmail(_ context.Context, userID uuid.UUID) error {
	if user, ok := r.users[userID]; ok {
		now := time.Now()
		user.EmailVerifiedAt = &now
	}
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	if user, ok := r.users[userID]; ok {
		user.PasswordHash = &passwordHash
	}
	return nil
}

func (r *fakeUserRepo) BumpTokenGeneration(_ context.Context, userID uuid.UUID) error {
	if user, ok := r.users[userID]; ok {
		user.TokenGeneration++
	}
	return nil
}

type otpKey struct {
	email   string
	purpose entity.OTPPurpose
}

type fakeOTPRepo struct {
	otps map[otpKey]*entity.OTP
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{otps: make(map[otpKey]*entity.OTP)}
}

func (r *fakeOTPRepo) Upsert(_ context.Context, otp *entity.OTP) error {
	clone := *otp
	r.otps[otpKey{otp.Email, otp.Purpose}] = &clone
	return nil
}

func (r *fakeOTPRepo) Find(_ context.Context, email string, purpose entity.OTPPurpose) (*entity.OTP, error) {
	otp, ok := r.otps[otpKey{email, purpose}]
	if !ok {
		return nil, nil
	}
	clone := *otp
	return &clone, nil
}

func (r *fakeOTPRepo) Consume(_ context.Context, email string, purpose entity.OTPPurpose) error {
	delete(r.otps, otpKey{email, purpose})
	return nil
}

type fakeEmailSender struct {
	verificationCodes map[string]string
	resetCodes        map[string]string
	sent              int
}

func newFakeEmailSender() *fakeEmailSender {
	return &fakeEmailSender{
		verificationCodes: make(map[string]string),
		resetCodes:        make(map[string]string),
	}
}

func (s *fakeEmailSender) SendVerificationOTP(_ context.Context, email string, code string) error {
	s.verificationCodes[email] = code
	s.sent++
	return nil
}

func (s *fakeEmailSender) SendPasswordResetOTP(_ context.Context, email string, code string) error {
	s.resetCodes[email] = code
	s.sent++
	return nil
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.CreatedAt = time.Now()
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok || product.Status == entity.ProductDeleted {
		return nil, nil
	}
	clone := *product
	return &clone, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.ProductStatus) error {
	if product, ok := r.products[id]; ok {
		product.Status = status
	}
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]entity.Product, int64, error) {
	status := filter.Status
	if status == "" {
		status = entity.ProductActive
	}
	var matched []entity.Product
	for _, product := range r.products {
		if product.Status == status {
			matched = append(matched, *product)
		}
	}
	return matched, int64(len(matched)), nil
}

type favKey struct {
	userID    uuid.UUID
	productID uuid.UUID
}

type fakeFavoriteRepo struct {
	favorites map[favKey]bool
	byUser    map[uuid.UUID][]entity.Favorite
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{
		favorites: make(map[favKey]bool),
		byUser:    make(map[uuid.UUID][]entity.Favorite),
	}
}

func (r *fakeFavoriteRepo) Add(_ context.Context, favorite *entity.Favorite) error {
	key := favKey{favorite.UserID, favorite.ProductID}
	if r.favorites[key] {
		return nil
	}
	r.favorites[key] = true
	r.byUser[favorite.UserID] = append(r.byUser[favorite.UserID], *favorite)
	return nil
}

func (r *fakeFavoriteRepo) Remove(_ context.Context, userID, productID uuid.UUID) error {
	delete(r.favorites, favKey{userID, productID})
	kept := r.byUser[userID][:0]
	for _, favorite := range r.byUser[userID] {
		if favorite.ProductID != productID {
			kept = append(kept, favorite)
		}
	}
	r.byUser[userID] = kept
	return nil
}

func (r *fakeFavoriteRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.Favorite, error) {
	return r.byUser[userID], nil
}

type fakeMessageRepo struct {
	messages []entity.Message
}

func (r *fakeMessageRepo) Create(_ context.Context, message *entity.Message) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	message.CreatedAt = time.Now()
	r.messages = append(r.messages, *message)
	return nil
}

func (r *fakeMessageRepo) ListByRoom(_ context.Context, roomID string, _ int) ([]entity.Message, error) {
	var matched []entity.Message
	for _, message := range r.messages {
		if message.RoomID == roomID {
			matched = append(matched, message)
		}
	}
	return matched, nil
}
