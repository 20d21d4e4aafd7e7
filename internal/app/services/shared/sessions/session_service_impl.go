package sessions

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type sessionService struct {
	redisRepository contracts.RedisRepository
	sessionTTL      time.Duration
}

func NewSessionService(redisRepository contracts.RedisRepository, sessionTTLHours int) contracts.SessionService {
	return &sessionService{
		redisRepository: redisRepository,
		sessionTTL:      time.Duration(sessionTTLHours) * time.Hour,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	return s.redisRepository.Set(ctx, session.SessionID, session, s.sessionTTL)
}

// ParseSessionData decodes the JSON blob stored under the session id. A key
// that exists but holds no data means the session expired or was revoked.
func (s *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	if sessionData == "" {
		return nil, exceptions.ErrSessionInvalid(fmt.Errorf("empty session data"))
	}

	session := &models.Session{}
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrSessionInvalid(err)
	}
	if session.UserID == "" {
		return nil, exceptions.ErrSessionInvalid(fmt.Errorf("session has no user"))
	}
	return session, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return s.redisRepository.Delete(ctx, sessionID)
}
