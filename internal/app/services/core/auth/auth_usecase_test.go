package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/shared/storage"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if user := args.Get(0); user != nil {
		return user.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) CreateProfile(ctx context.Context, profile *models.Profile) (string, error) {
	args := m.Called(ctx, profile)
	return args.String(0), args.Error(1)
}

func (m *MockProfileRepository) FindByID(ctx context.Context, profileID string) (*models.Profile, error) {
	args := m.Called(ctx, profileID)
	if profile := args.Get(0); profile != nil {
		return profile.(*models.Profile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProfileRepository) UpdateProfile(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

type MockPractitionerRepository struct {
	mock.Mock
}

func (m *MockPractitionerRepository) CreatePractitioner(ctx context.Context, practitioner *models.Practitioner) (string, error) {
	args := m.Called(ctx, practitioner)
	return args.String(0), args.Error(1)
}

func (m *MockPractitionerRepository) FindAll(ctx context.Context) ([]models.Practitioner, error) {
	args := m.Called(ctx)
	if practitioners := args.Get(0); practitioners != nil {
		return practitioners.([]models.Practitioner), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPractitionerRepository) FindByID(ctx context.Context, practitionerID string) (*models.Practitioner, error) {
	args := m.Called(ctx, practitionerID)
	if practitioner := args.Get(0); practitioner != nil {
		return practitioner.(*models.Practitioner), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPractitionerRepository) FindByProfileID(ctx context.Context, profileID string) (*models.Practitioner, error) {
	args := m.Called(ctx, profileID)
	if practitioner := args.Get(0); practitioner != nil {
		return practitioner.(*models.Practitioner), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if session := args.Get(0); session != nil {
		return session.(*models.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type authFixture struct {
	usecase       contracts.AuthUsecase
	users         *MockUserRepository
	profiles      *MockProfileRepository
	practitioners *MockPractitionerRepository
	sessions      *MockSessionService
}

func newAuthFixture() *authFixture {
	fixture := &authFixture{
		users:         new(MockUserRepository),
		profiles:      new(MockProfileRepository),
		practitioners: new(MockPractitionerRepository),
		sessions:      new(MockSessionService),
	}
	internalConfig := &config.InternalConfig{
		App: config.App{VerificationImageMaxBytes: 1 << 20},
		JWT: config.JWT{Secret: "auth-test-secret", ExpTimeInHour: 1},
	}
	fixture.usecase = NewAuthUsecase(
		zap.NewNop(),
		fixture.users,
		fixture.profiles,
		fixture.practitioners,
		fixture.sessions,
		storage.NewMemoryStorage(),
		internalConfig,
	)
	return fixture
}

func TestRegisterPatient_PasswordMismatch(t *testing.T) {
	fixture := newAuthFixture()

	response, err := fixture.usecase.RegisterPatient(context.Background(), &requests.RegisterPatient{
		Email:          "pat@example.com",
		Password:       "Sup3rSecret!",
		RetypePassword: "Different1!",
		FullName:       "Pat Example",
	})

	assert.Nil(t, response)
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	fixture.users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestRegisterPatient_EmailAlreadyExists(t *testing.T) {
	fixture := newAuthFixture()

	fixture.users.On("FindByEmail", mock.Anything, "pat@example.com").
		Return(&models.User{ID: "existing", Email: "pat@example.com"}, nil)

	response, err := fixture.usecase.RegisterPatient(context.Background(), &requests.RegisterPatient{
		Email:          "pat@example.com",
		Password:       "Sup3rSecret!",
		RetypePassword: "Sup3rSecret!",
		FullName:       "Pat Example",
	})

	assert.Nil(t, response)
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestRegisterPatient_Success(t *testing.T) {
	fixture := newAuthFixture()

	fixture.users.On("FindByEmail", mock.Anything, "pat@example.com").Return(nil, nil)
	fixture.users.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
		// The stored password must be a hash, never the raw input.
		return user.Email == "pat@example.com" && user.Password != "Sup3rSecret!"
	})).Return("user-1", nil)
	fixture.profiles.On("CreateProfile", mock.Anything, mock.MatchedBy(func(profile *models.Profile) bool {
		return profile.ID == "user-1" && profile.Role == constvars.RolePatient && profile.FullName == "Pat Example"
	})).Return("user-1", nil)

	response, err := fixture.usecase.RegisterPatient(context.Background(), &requests.RegisterPatient{
		Email:          "pat@example.com",
		Password:       "Sup3rSecret!",
		RetypePassword: "Sup3rSecret!",
		FullName:       "Pat Example",
	})

	assert.NoError(t, err)
	assert.Equal(t, "user-1", response.UserID)
	assert.Equal(t, "user-1", response.ProfileID)
	assert.Empty(t, response.PractitionerID)
	fixture.profiles.AssertExpectations(t)
}

func TestRegisterPractitioner_StoresVerificationImages(t *testing.T) {
	fixture := newAuthFixture()

	fixture.users.On("FindByEmail", mock.Anything, "doc@example.com").Return(nil, nil)
	fixture.users.On("CreateUser", mock.Anything, mock.Anything).Return("user-2", nil)
	fixture.profiles.On("CreateProfile", mock.Anything, mock.MatchedBy(func(profile *models.Profile) bool {
		return profile.Role == constvars.RolePractitioner
	})).Return("user-2", nil)

	var created *models.Practitioner
	fixture.practitioners.On("CreatePractitioner", mock.Anything, mock.AnythingOfType("*models.Practitioner")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.Practitioner)
		}).
		Return("prac-1", nil)

	encodedImage := base64.StdEncoding.EncodeToString([]byte("fake-image-bytes"))
	response, err := fixture.usecase.RegisterPractitioner(context.Background(), &requests.RegisterPractitioner{
		Email:             "doc@example.com",
		Password:          "Sup3rSecret!",
		RetypePassword:    "Sup3rSecret!",
		FullName:          "Doc Example",
		Specialty:         "Cardiology",
		ConsultationTypes: []string{constvars.ConsultationTypeVirtual},
		ProfileImage:      encodedImage,
		IDImage:           encodedImage,
	})

	assert.NoError(t, err)
	assert.Equal(t, "prac-1", response.PractitionerID)
	assert.NotNil(t, created)
	assert.Contains(t, created.ProfileImageKey, "practitioner_user-2_profile_")
	assert.Contains(t, created.IDImageKey, "practitioner_user-2_id_")
	assert.Equal(t, "user-2", created.ProfileID)
}

func TestRegisterPractitioner_OversizedImageRejected(t *testing.T) {
	fixture := newAuthFixture()

	fixture.users.On("FindByEmail", mock.Anything, "doc@example.com").Return(nil, nil)
	fixture.users.On("CreateUser", mock.Anything, mock.Anything).Return("user-2", nil)
	fixture.profiles.On("CreateProfile", mock.Anything, mock.Anything).Return("user-2", nil)

	oversized := base64.StdEncoding.EncodeToString(make([]byte, 2<<20))
	response, err := fixture.usecase.RegisterPractitioner(context.Background(), &requests.RegisterPractitioner{
		Email:             "doc@example.com",
		Password:          "Sup3rSecret!",
		RetypePassword:    "Sup3rSecret!",
		FullName:          "Doc Example",
		Specialty:         "Cardiology",
		ConsultationTypes: []string{constvars.ConsultationTypeVirtual},
		ProfileImage:      oversized,
	})

	assert.Nil(t, response)
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	fixture.practitioners.AssertNotCalled(t, "CreatePractitioner", mock.Anything, mock.Anything)
}

func TestLogout_RedisFailureStillSucceeds(t *testing.T) {
	fixture := newAuthFixture()

	fixture.sessions.On("ParseSessionData", mock.Anything, "session-json").
		Return(&models.Session{SessionID: "sess-1", UserID: "user-1", Role: constvars.RolePatient}, nil)
	fixture.sessions.On("DeleteSession", mock.Anything, "sess-1").
		Return(errors.New("connection refused"))

	err := fixture.usecase.Logout(context.Background(), "session-json")

	assert.NoError(t, err)
	fixture.sessions.AssertExpectations(t)
}

func TestLogout_InvalidSessionStillErrors(t *testing.T) {
	fixture := newAuthFixture()

	fixture.sessions.On("ParseSessionData", mock.Anything, "garbage").
		Return(nil, exceptions.ErrSessionInvalid(nil))

	err := fixture.usecase.Logout(context.Background(), "garbage")

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	fixture.sessions.AssertNotCalled(t, "DeleteSession", mock.Anything, mock.Anything)
}

func TestLogin_WrongPassword(t *testing.T) {
	fixture := newAuthFixture()

	hash, err := utils.HashPassword("Sup3rSecret!")
	assert.NoError(t, err)
	fixture.users.On("FindByEmail", mock.Anything, "pat@example.com").
		Return(&models.User{ID: "user-1", Email: "pat@example.com", Password: hash}, nil)

	response, err := fixture.usecase.Login(context.Background(), &requests.Login{
		Email:    "pat@example.com",
		Password: "wrong-password",
	})

	assert.Nil(t, response)
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
}

func TestLogin_UnknownEmailSameErrorAsWrongPassword(t *testing.T) {
	fixture := newAuthFixture()

	fixture.users.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	_, err := fixture.usecase.Login(context.Background(), &requests.Login{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientInvalidEmailOrPassword, customErr.ClientMessage)
}

func TestLogin_PractitionerSessionCarriesPractitionerID(t *testing.T) {
	fixture := newAuthFixture()

	hash, err := utils.HashPassword("Sup3rSecret!")
	assert.NoError(t, err)
	fixture.users.On("FindByEmail", mock.Anything, "doc@example.com").
		Return(&models.User{ID: "user-2", Email: "doc@example.com", Password: hash}, nil)
	fixture.profiles.On("FindByID", mock.Anything, "user-2").
		Return(&models.Profile{ID: "user-2", FullName: "Doc Example", Role: constvars.RolePractitioner}, nil)
	fixture.practitioners.On("FindByProfileID", mock.Anything, "user-2").
		Return(&models.Practitioner{ID: "prac-1", ProfileID: "user-2"}, nil)

	var createdSession *models.Session
	fixture.sessions.On("CreateSession", mock.Anything, mock.AnythingOfType("*models.Session")).
		Run(func(args mock.Arguments) {
			createdSession = args.Get(1).(*models.Session)
		}).
		Return(nil)

	response, err := fixture.usecase.Login(context.Background(), &requests.Login{
		Email:    "doc@example.com",
		Password: "Sup3rSecret!",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.NotNil(t, createdSession)
	assert.Equal(t, "prac-1", createdSession.PractitionerID)

	// The token only carries the session id.
	sessionID, err := utils.ParseSessionJWT(response.Token, "auth-test-secret")
	assert.NoError(t, err)
	assert.Equal(t, createdSession.SessionID, sessionID)
}
