package users

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcdev12/zodiarena/go/internal/models"
)

type fakeRepo struct {
	byUsername map[string]*models.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byUsername: make(map[string]*models.User)}
}

func (f *fakeRepo) CreateUser(_ context.Context, params CreateUserParams) (*models.User, error) {
	if _, ok := f.byUsername[params.Username]; ok {
		return nil, ErrUsernameTaken
	}
	user := &models.User{
		ID:           uuid.New(),
		Username:     params.Username,
		PasswordHash: params.PasswordHash,
		CreatedAt:    time.Now(),
	}
	f.byUsername[params.Username] = user
	return user, nil
}

func (f *fakeRepo) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := f.byUsername[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func TestRegisterAndAuthenticate(t *testing.T) {
	app := NewApp(newFakeRepo())
	ctx := context.Background()

	require.NoError(t, app.Register(ctx, "nova", "Sup3rsecret!"))
	require.NoError(t, app.Authenticate(ctx, "nova", "Sup3rsecret!"))
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeRepo()
	app := NewApp(repo)

	require.NoError(t, app.Register(context.Background(), "nova", "Sup3rsecret!"))

	stored := repo.byUsername["nova"]
	require.NotEqual(t, "Sup3rsecret!", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Sup3rsecret!")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	app := NewApp(newFakeRepo())
	ctx := context.Background()

	require.NoError(t, app.Register(ctx, "nova", "Sup3rsecret!"))
	err := app.Register(ctx, "nova", "An0ther.pass")
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestRegisterPasswordPolicy(t *testing.T) {
	app := NewApp(newFakeRepo())
	ctx := context.Background()

	cases := []struct {
		name     string
		password string
	}{
		{"too short", "Ab1!x"},
		{"no uppercase", "lowercase1!"},
		{"no lowercase", "UPPERCASE1!"},
		{"no digit", "NoDigits!!"},
		{"no special", "NoSpecial1x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, app.Register(ctx, "user_"+tc.name, tc.password))
		})
	}
}

func TestRegisterMissingFields(t *testing.T) {
	app := NewApp(newFakeRepo())
	ctx := context.Background()

	require.ErrorIs(t, app.Register(ctx, "", "Sup3rsecret!"), ErrMissingFields)
	require.ErrorIs(t, app.Register(ctx, "nova", ""), ErrMissingFields)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	app := NewApp(newFakeRepo())
	ctx := context.Background()

	require.NoError(t, app.Register(ctx, "nova", "Sup3rsecret!"))
	require.ErrorIs(t, app.Authenticate(ctx, "nova", "wrongpass1!A"), ErrInvalidCredentials)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	app := NewApp(newFakeRepo())
	err := app.Authenticate(context.Background(), "ghost", "Sup3rsecret!")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
