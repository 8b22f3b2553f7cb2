package sessions

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/sigma-tutor/internal/jwt"
	"github.com/sbilibin2017/sigma-tutor/internal/logger"
	"github.com/sbilibin2017/sigma-tutor/internal/models"
)

//go:generate mockgen -source=manager.go -destination=manager_mock.go -package=sessions

// Store persists session records.
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, sess *models.Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// Tokener signs session identifiers for the cookie.
type Tokener interface {
	Generate(ctx context.Context, sessionID string, ttl time.Duration) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// Config holds cookie and lifetime settings.
type Config struct {
	CookieName  string
	Secure      bool
	TTL         time.Duration
	RememberTTL time.Duration
}

// Manager ties the signed cookie to server-side session records.
type Manager struct {
	store   Store
	tokener Tokener
	cfg     Config
}

// NewManager creates a session manager.
func NewManager(store Store, tokener Tokener, cfg Config) *Manager {
	if cfg.CookieName == "" {
		cfg.CookieName = jwt.DefaultCookieName
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	if cfg.RememberTTL <= 0 {
		cfg.RememberTTL = 30 * 24 * time.Hour
	}
	return &Manager{store: store, tokener: tokener, cfg: cfg}
}

// Load returns the session named by the request cookie.
// A missing, forged, expired or unknown cookie yields a fresh anonymous session
// that is not stored until it is saved.
func (m *Manager) Load(ctx context.Context, r *http.Request) (*models.Session, error) {
	token, err := m.tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return newSession(), nil
	}

	claims, err := m.tokener.GetClaims(ctx, token)
	if err != nil {
		logger.FromContext(ctx).Infow("discarding session cookie", "error", err)
		return newSession(), nil
	}

	sess, err := m.store.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return newSession(), nil
	}
	return sess, nil
}

// Save stores the session and (re)issues its cookie.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, sess *models.Session) error {
	ttl := m.ttl(sess)
	if err := m.store.Save(ctx, sess, ttl); err != nil {
		return err
	}

	token, err := m.tokener.Generate(ctx, sess.ID, ttl)
	if err != nil {
		return err
	}

	cookie := &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if sess.Remember {
		cookie.MaxAge = int(ttl.Seconds())
		cookie.Expires = time.Now().Add(ttl)
	}
	http.SetCookie(w, cookie)
	return nil
}

// Login binds userID to a session with a new identifier and discards the old record.
// Pending flashes carry over.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, sess *models.Session, userID int64, remember bool) (*models.Session, error) {
	if err := m.store.Delete(ctx, sess.ID); err != nil {
		return nil, err
	}

	rotated := newSession()
	rotated.UserID = userID
	rotated.Remember = remember
	rotated.Flashes = sess.Flashes

	if err := m.Save(ctx, w, rotated); err != nil {
		return nil, err
	}
	return rotated, nil
}

// Logout deletes the session and issues a fresh anonymous one.
func (m *Manager) Logout(ctx context.Context, w http.ResponseWriter, sess *models.Session) (*models.Session, error) {
	if err := m.store.Delete(ctx, sess.ID); err != nil {
		return nil, err
	}

	fresh := newSession()
	if err := m.Save(ctx, w, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// Flash queues a message for the next rendered page and saves the session.
func (m *Manager) Flash(ctx context.Context, w http.ResponseWriter, sess *models.Session, category, message string) error {
	AddFlash(sess, category, message)
	return m.Save(ctx, w, sess)
}

// PopFlashes returns and clears the pending messages, saving the session when any were pending.
func (m *Manager) PopFlashes(ctx context.Context, w http.ResponseWriter, sess *models.Session) ([]models.Flash, error) {
	if len(sess.Flashes) == 0 {
		return nil, nil
	}
	flashes := sess.Flashes
	sess.Flashes = nil
	if err := m.Save(ctx, w, sess); err != nil {
		return nil, err
	}
	return flashes, nil
}

// AddFlash queues a message without saving.
func AddFlash(sess *models.Session, category, message string) {
	sess.Flashes = append(sess.Flashes, models.Flash{Category: category, Message: message})
}

func (m *Manager) ttl(sess *models.Session) time.Duration {
	if sess.Remember {
		return m.cfg.RememberTTL
	}
	return m.cfg.TTL
}

func newSession() *models.Session {
	return &models.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}
