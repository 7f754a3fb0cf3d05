package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codecamp-2025.net/internal/adapter/crypto"
	"gitlab.com/codecamp-2025.net/internal/config"
	"gitlab.com/codecamp-2025.net/internal/domain"
	"gitlab.com/codecamp-2025.net/internal/static/errs"
)

type fakeUserPort struct {
	byUserName map[string]*domain.Users
	byGoogleID map[string]*domain.Users
	created    []*domain.Users
}

func (f *fakeUserPort) Create(ctx context.Context, user *domain.Users) error {
	user.ID = uuid.New()
	f.created = append(f.created, user)
	return nil
}

func (f *fakeUserPort) GetByEmail(ctx context.Context, email string) (*domain.Users, error) {
	return nil, nil
}

func (f *fakeUserPort) GetByUserName(ctx context.Context, userName string) (*domain.Users, error) {
	return f.byUserName[userName], nil
}

func (f *fakeUserPort) GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error) {
	return f.byGoogleID[googleID], nil
}

func jwtProvider() *crypto.JWTServiceImpl {
	return &crypto.JWTServiceImpl{HMACSecretKey: "test-secret"}
}

func TestLocalLoginSuccess(t *testing.T) {
	ctx := context.Background()
	provider := jwtProvider()
	hash, err := provider.EncryptPassword(ctx, "hunter2")
	require.NoError(t, err)

	userID := uuid.New()
	port := &fakeUserPort{byUserName: map[string]*domain.Users{
		"alice": {ID: userID, UserName: "alice", PasswordHash: &hash},
	}}
	svc := NewLocalAuthService(port, provider)

	password := "hunter2"
	token, err := svc.Login(ctx, &domain.Users{UserName: "alice", PasswordHash: &password})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := provider.DecodeTokenPayload(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", payload.Username)
	assert.Equal(t, userID.String(), payload.UserID)
	assert.Contains(t, payload.Permission, "codecamp.execute")
}

func TestLocalLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	provider := jwtProvider()
	hash, err := provider.EncryptPassword(ctx, "hunter2")
	require.NoError(t, err)

	port := &fakeUserPort{byUserName: map[string]*domain.Users{
		"alice": {ID: uuid.New(), UserName: "alice", PasswordHash: &hash},
	}}
	svc := NewLocalAuthService(port, provider)

	password := "wrong"
	_, err = svc.Login(ctx, &domain.Users{UserName: "alice", PasswordHash: &password})

	assert.True(t, errors.Is(err, errs.InvalidCredentials))
}

func TestLocalLoginUnknownUser(t *testing.T) {
	svc := NewLocalAuthService(&fakeUserPort{}, jwtProvider())

	password := "hunter2"
	_, err := svc.Login(context.Background(), &domain.Users{UserName: "ghost", PasswordHash: &password})

	assert.True(t, errors.Is(err, errs.InvalidCredentials))
}

func TestGoogleLoginEnforcesCampusDomain(t *testing.T) {
	svc := NewGoogleAuthService(&fakeUserPort{}, jwtProvider(), &config.GGAuthConfig{
		ForceCampusDomain: true,
		CampusDomain:      "campus.edu",
	})

	googleID := "g-1"
	email := "alice@elsewhere.com"
	_, err := svc.Login(context.Background(), &domain.Users{
		GoogleID:     &googleID,
		Email:        &email,
		AuthProvider: string(domain.ProviderGoogle),
	})

	assert.True(t, errors.Is(err, errs.ShouldUseCampusEmail))
}

func TestGoogleLoginCreatesNewUser(t *testing.T) {
	port := &fakeUserPort{}
	svc := NewGoogleAuthService(port, jwtProvider(), &config.GGAuthConfig{})

	googleID := "g-1"
	email := "alice@campus.edu"
	token, err := svc.Login(context.Background(), &domain.Users{
		GoogleID:     &googleID,
		Email:        &email,
		AuthProvider: string(domain.ProviderGoogle),
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.Len(t, port.created, 1)
	assert.Equal(t, "alice", port.created[0].UserName)
	assert.Nil(t, port.created[0].PasswordHash)
}

func TestGoogleLoginExistingUser(t *testing.T) {
	googleID := "g-1"
	email := "alice@campus.edu"
	port := &fakeUserPort{byGoogleID: map[string]*domain.Users{
		"g-1": {ID: uuid.New(), UserName: "alice", GoogleID: &googleID, Email: &email},
	}}
	svc := NewGoogleAuthService(port, jwtProvider(), &config.GGAuthConfig{})

	token, err := svc.Login(context.Background(), &domain.Users{
		GoogleID:     &googleID,
		Email:        &email,
		AuthProvider: string(domain.ProviderGoogle),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, port.created)
}
