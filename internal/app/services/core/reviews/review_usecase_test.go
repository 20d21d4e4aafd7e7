package reviews

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) CreateReview(ctx context.Context, review *models.Review) (string, error) {
	args := m.Called(ctx, review)
	return args.String(0), args.Error(1)
}

func (m *MockReviewRepository) FindByPractitionerID(ctx context.Context, practitionerID string) ([]models.Review, error) {
	args := m.Called(ctx, practitionerID)
	if reviews := args.Get(0); reviews != nil {
		return reviews.([]models.Review), args.Error(1)
	}
	return nil, args.Error(1)
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

type reviewFixture struct {
	usecase       *reviewUsecase
	reviews       *MockReviewRepository
	practitioners *MockPractitionerRepository
	profiles      *MockProfileRepository
	sessions      *MockSessionService
}

func newReviewFixture() *reviewFixture {
	fixture := &reviewFixture{
		reviews:       new(MockReviewRepository),
		practitioners: new(MockPractitionerRepository),
		profiles:      new(MockProfileRepository),
		sessions:      new(MockSessionService),
	}
	fixture.usecase = NewReviewUsecase(
		zap.NewNop(),
		fixture.reviews,
		fixture.practitioners,
		fixture.profiles,
		fixture.sessions,
	).(*reviewUsecase)
	return fixture
}

func createReviewRequest() *requests.CreateReview {
	return &requests.CreateReview{
		PractitionerID: "prac-1",
		Rating:         5,
		Comment:        "very thorough",
	}
}

func TestCreateReview_Success(t *testing.T) {
	fixture := newReviewFixture()

	fixture.sessions.On("ParseSessionData", mock.Anything, "session-json").Return(&models.Session{
		SessionID: "sess-1",
		UserID:    "patient-1",
		FullName:  "Pat Example",
		Role:      constvars.RolePatient,
	}, nil)
	fixture.practitioners.On("FindByID", mock.Anything, "prac-1").
		Return(&models.Practitioner{ID: "prac-1"}, nil)
	fixture.reviews.On("CreateReview", mock.Anything, mock.MatchedBy(func(review *models.Review) bool {
		return review.PatientID == "patient-1" && review.Rating == 5
	})).Return("rev-1", nil)

	response, err := fixture.usecase.Create(context.Background(), "session-json", createReviewRequest())

	assert.NoError(t, err)
	assert.Equal(t, "rev-1", response.ID)
	assert.Equal(t, "Pat Example", response.ReviewerName)
	fixture.reviews.AssertExpectations(t)
}

func TestCreateReview_PractitionerRoleRejected(t *testing.T) {
	fixture := newReviewFixture()

	fixture.sessions.On("ParseSessionData", mock.Anything, "session-json").Return(&models.Session{
		SessionID:      "sess-2",
		UserID:         "user-2",
		Role:           constvars.RolePractitioner,
		PractitionerID: "prac-1",
	}, nil)

	response, err := fixture.usecase.Create(context.Background(), "session-json", createReviewRequest())

	assert.Nil(t, response)
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	fixture.reviews.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
}

func TestCreateReview_PractitionerMustExist(t *testing.T) {
	fixture := newReviewFixture()

	fixture.sessions.On("ParseSessionData", mock.Anything, "session-json").Return(&models.Session{
		SessionID: "sess-1",
		UserID:    "patient-1",
		Role:      constvars.RolePatient,
	}, nil)
	fixture.practitioners.On("FindByID", mock.Anything, "prac-1").Return(nil, nil)

	response, err := fixture.usecase.Create(context.Background(), "session-json", createReviewRequest())

	assert.Nil(t, response)
	var customErr *exceptions.CustomError
	assert.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}
