package auth

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-api/internal/application/dto"
	"github.com/jhoicas/Inventario-api/internal/domain"
	"github.com/jhoicas/Inventario-api/internal/domain/entity"
	"github.com/jhoicas/Inventario-api/internal/domain/password"
	"github.com/jhoicas/Inventario-api/internal/domain/repository"
	"github.com/jhoicas/Inventario-api/pkg/jwt"
)

// JWTConfig configuración para emisión de tokens.
type JWTConfig struct {
	Secret        string
	AccessMinutes int
	RefreshHours  int
	Issuer        string
}

// TxRunner ejecuta fn con un repositorio de refresh tokens atado a una transacción.
// La rotación (borrar el token usado + emitir el nuevo) debe ser atómica.
type TxRunner interface {
	RunTokens(ctx context.Context, fn func(tokens repository.RefreshTokenRepository) error) error
}

var validate = validator.New()

// AuthUseCase casos de uso de autenticación: registro, login, refresh y perfil.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.RefreshTokenRepository
	txRunner  TxRunner
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokenRepo repository.RefreshTokenRepository, txRunner TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokenRepo: tokenRepo, txRunner: txRunner, jwtCfg: jwtCfg}
}

// Register crea un usuario normal: valida email y política de contraseñas,
// hashea con bcrypt y persiste con is_active=true. Devuelve ErrEmailAlreadyExists
// si el email ya existe (sin distinguir mayúsculas).
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	user, err := uc.createUser(in)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// RegisterSuperuser crea un usuario con is_staff e is_superuser en true.
// Ambos flags se activan siempre juntos, nunca uno solo.
func (uc *AuthUseCase) RegisterSuperuser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	user, err := uc.buildUser(in)
	if err != nil {
		return nil, err
	}
	user.IsStaff = true
	user.IsSuperuser = true
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (uc *AuthUseCase) createUser(in dto.RegisterRequest) (*entity.User, error) {
	user, err := uc.buildUser(in)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// buildUser valida la entrada completa y devuelve la entidad lista para persistir.
// Nunca persiste: la separación permite que RegisterSuperuser ajuste flags antes del insert.
func (uc *AuthUseCase) buildUser(in dto.RegisterRequest) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	ve := &domain.ValidationError{}
	if email == "" {
		ve.Add("email", "The Email field must be set.")
	} else if err := validate.Var(email, "email"); err != nil {
		ve.Add("email", "Enter a valid email address.")
	}
	if in.Password == "" {
		ve.Add("password", "Password must be provided.")
	} else if err := password.Validate(in.Password, email, in.FirstName, in.LastName); err != nil {
		if pve, ok := domain.AsValidationError(err); ok {
			for field, msgs := range pve.Fields {
				for _, m := range msgs {
					ve.Add(field, m)
				}
			}
		} else {
			return nil, err
		}
	}
	if !ve.Empty() {
		return nil, ve
	}

	if existing, err := uc.userRepo.GetByEmail(email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Login verifica email/password y emite un par access/refresh. El mensaje de
// fallo es el mismo para usuario inexistente, inactivo o password incorrecto:
// no se filtra cuál de las tres causas falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.TokenPairResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive || !password.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	pair, err := uc.issuePair(user.ID, uc.tokenRepo)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.UpdateLastLogin(user.ID, time.Now()); err != nil {
		return nil, err
	}
	return pair, nil
}

// Refresh rota un refresh token: lo invalida y emite un par nuevo dentro de
// una transacción. Tokens desconocidos o vencidos fallan como credenciales inválidas.
func (uc *AuthUseCase) Refresh(in dto.RefreshRequest) (*dto.TokenPairResponse, error) {
	stored, err := uc.tokenRepo.Find(in.Refresh)
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.Expired(time.Now()) {
		return nil, domain.ErrInvalidCredentials
	}
	var pair *dto.TokenPairResponse
	err = uc.txRunner.RunTokens(context.Background(), func(tokens repository.RefreshTokenRepository) error {
		if err := tokens.Delete(in.Refresh); err != nil {
			return err
		}
		var issueErr error
		pair, issueErr = uc.issuePair(stored.UserID, tokens)
		return issueErr
	})
	if err != nil {
		return nil, err
	}
	return pair, nil
}

// Profile devuelve el resumen del usuario autenticado para el dashboard.
func (uc *AuthUseCase) Profile(userID string) (*dto.DashboardResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.DashboardResponse{
		Message:   "Welcome, " + user.FirstName + "!",
		UserInfo:  *toUserResponse(user),
		LastLogin: user.LastLogin,
	}, nil
}

func (uc *AuthUseCase) issuePair(userID string, tokens repository.RefreshTokenRepository) (*dto.TokenPairResponse, error) {
	access, err := jwt.Generate(uc.jwtCfg.Secret, userID, uc.jwtCfg.Issuer, uc.jwtCfg.AccessMinutes)
	if err != nil {
		return nil, err
	}
	refresh := uuid.New().String()
	expires := time.Now().Add(time.Duration(uc.jwtCfg.RefreshHours) * time.Hour)
	if err := tokens.Create(refresh, userID, expires); err != nil {
		return nil, err
	}
	return &dto.TokenPairResponse{Access: access, Refresh: refresh}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
