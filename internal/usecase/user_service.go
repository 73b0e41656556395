package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wichananm65/user-registry/internal/domain/entity"
	"github.com/wichananm65/user-registry/internal/domain/repository"
	"github.com/wichananm65/user-registry/pkg/logger"
)

// DefaultMinimumAge is the youngest age, in whole years, accepted on create.
const DefaultMinimumAge = 18

// Clock returns the current time; the calendar date of its result is "today".
type Clock func() time.Time

// Option configures a UserService.
type Option func(*UserService)

func WithMinimumAge(age int) Option {
	return func(s *UserService) { s.minimumAge = age }
}

func WithClock(clock Clock) Option {
	return func(s *UserService) { s.now = clock }
}

// UserService implements UserUsecase with repository dependency.
type UserService struct {
	repo       repository.UserRepository
	validate   *Validator
	now        Clock
	minimumAge int
}

var _ UserUsecase = (*UserService)(nil)

func NewUserService(repo repository.UserRepository, opts ...Option) *UserService {
	s := &UserService{
		repo:       repo,
		now:        time.Now,
		minimumAge: DefaultMinimumAge,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.validate = NewValidator()
	return s
}

func (s *UserService) MinimumAge() int {
	return s.minimumAge
}

func (s *UserService) today() entity.Date {
	return entity.DateOf(s.now())
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*entity.User, error) {
	log := logger.Log(ctx).With(zap.String("usecase", "UserService.Create"))

	input.Email = strings.TrimSpace(input.Email)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Address = trimOptional(input.Address)
	input.PhoneNumber = trimOptional(input.PhoneNumber)

	violations := s.validate.Struct(input)
	today := s.today()
	if input.BirthDate != nil && !input.BirthDate.Before(today) {
		violations = append(violations, Violation{Field: "birthDate", Message: "must be a past date"})
	}
	if len(violations) > 0 {
		log.Debug(ctx, "rejected create payload", zap.Int("violations", len(violations)))
		return nil, newValidationError(violations...)
	}

	if age := input.BirthDate.YearsUntil(today); age < s.minimumAge {
		log.Debug(ctx, "rejected underage user", zap.Int("age", age), zap.Int("minimum_age", s.minimumAge))
		return nil, newValidationError(Violation{
			Field:   "birthDate",
			Message: fmt.Sprintf("user must be at least %d years old", s.minimumAge),
		})
	}

	saved, err := s.repo.Save(ctx, &entity.User{
		Email:       input.Email,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		BirthDate:   *input.BirthDate,
		Address:     input.Address,
		PhoneNumber: input.PhoneNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	log.Info(ctx, "user created", zap.Int64("user_id", saved.ID))
	return saved, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id int64, input UpdateUserInput) (*entity.User, error) {
	log := logger.Log(ctx).With(zap.String("usecase", "UserService.Update"), zap.Int64("user_id", id))

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}

	var violations []Violation
	if input.Email.HasValue() {
		email := strings.TrimSpace(input.Email.Value)
		violations = append(violations, s.validate.Var("email", email, emailRules)...)
		user.Email = email
	}
	if input.FirstName.HasValue() {
		name := strings.TrimSpace(input.FirstName.Value)
		violations = append(violations, s.validate.Var("firstName", name, nameRules)...)
		user.FirstName = name
	}
	if input.LastName.HasValue() {
		name := strings.TrimSpace(input.LastName.Value)
		violations = append(violations, s.validate.Var("lastName", name, nameRules)...)
		user.LastName = name
	}
	if input.BirthDate.HasValue() {
		if input.BirthDate.Value.After(s.today()) {
			violations = append(violations, Violation{Field: "birthDate", Message: "must not be in the future"})
		}
		user.BirthDate = input.BirthDate.Value
	}
	if input.Address.Present {
		user.Address = optionalString(input.Address)
	}
	if input.PhoneNumber.Present {
		user.PhoneNumber = optionalString(input.PhoneNumber)
		if user.PhoneNumber != nil {
			violations = append(violations, s.validate.Var("phoneNumber", *user.PhoneNumber, phoneRules)...)
		}
	}

	// user is a copy, so rejecting here leaves the stored record untouched
	if len(violations) > 0 {
		log.Debug(ctx, "rejected update payload", zap.Int("violations", len(violations)))
		return nil, newValidationError(violations...)
	}

	saved, err := s.repo.Save(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("save user %d: %w", id, err)
	}

	log.Info(ctx, "user updated")
	return saved, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("find user %d: %w", id, err)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}

	logger.Log(ctx).Info(ctx, "user deleted", zap.Int64("user_id", id))
	return nil
}

func (s *UserService) Search(ctx context.Context, input SearchUsersInput) ([]*entity.User, error) {
	if violations := s.validate.Struct(input); len(violations) > 0 {
		return nil, newValidationError(violations...)
	}

	// the datetime rule above already guarantees both strings parse
	from, to := entity.MustParseDate(input.From), entity.MustParseDate(input.To)
	if from.After(to) {
		return nil, newValidationError(Violation{Field: "from", Message: "must not be after to"})
	}

	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	matches := make([]*entity.User, 0, len(users))
	for _, user := range users {
		if user.BirthDate.After(from) && user.BirthDate.Before(to) {
			matches = append(matches, user)
		}
	}

	logger.Log(ctx).Debug(ctx, "users searched",
		zap.Stringer("from", from), zap.Stringer("to", to), zap.Int("matches", len(matches)))
	return matches, nil
}

func (s *UserService) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// trimOptional trims an optional string and treats blank as absent.
func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func optionalString(o Optional[string]) *string {
	if !o.HasValue() {
		return nil
	}
	return trimOptional(&o.Value)
}
