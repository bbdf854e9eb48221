package memory

import (
	"time"

	"metory-be/pkg/interaction"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ViewingSession couples a live interaction engine with the identifiers a
// request needs to find it again.
type ViewingSession struct {
	Id        uuid.UUID
	StoryId   uuid.UUID
	ViewerId  uuid.UUID
	Engine    *interaction.Session
	CreatedAt time.Time
}

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	c := cache.New(ttl, 10*time.Minute)
	// Stop pending resolution timers when a session expires unvisited.
	c.OnEvicted(func(_ string, value interface{}) {
		if s, ok := value.(*ViewingSession); ok {
			s.Engine.Close()
		}
	})
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *ViewingSession) {
	r.cache.Set(session.Id.String(), session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID uuid.UUID) (*ViewingSession, bool) {
	if x, found := r.cache.Get(sessionID.String()); found {
		return x.(*ViewingSession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID uuid.UUID) {
	if s, found := r.Get(sessionID); found {
		s.Engine.Close()
	}
	r.cache.Delete(sessionID.String())
}
