// Package memory provides an in-memory implementation of the repository
// interfaces. It backs the service and handler tests, so the domain core
// runs without a database. Reads return copies with their associations
// materialized, mirroring the eager-loading contract of the gorm
// repositories.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"dogwalking_backend/internal/models"
	"dogwalking_backend/internal/repositories"
)

// Store holds all aggregates behind one mutex. Transaction serializes whole
// match selections on a dedicated lock, which is the property the domain
// relies on; rollback is not emulated, so transactional callers must finish
// their checks before their first write (the services do).
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex

	members       map[int64]models.Member
	dogs          map[int64]models.Dog
	notifications map[int64]models.Notification
	applications  map[int64]models.Application
	matches       map[int64]models.Match

	nextMemberID       int64
	nextDogID          int64
	nextNotificationID int64
	nextApplicationID  int64
	nextMatchID        int64
}

func NewStore() *Store {
	return &Store{
		members:       make(map[int64]models.Member),
		dogs:          make(map[int64]models.Dog),
		notifications: make(map[int64]models.Notification),
		applications:  make(map[int64]models.Application),
		matches:       make(map[int64]models.Match),
	}
}

func (s *Store) MemberRepository() repositories.MemberRepository {
	return &memberRepo{s: s}
}

func (s *Store) DogRepository() repositories.DogRepository {
	return &dogRepo{s: s}
}

func (s *Store) NotificationRepository() repositories.NotificationRepository {
	return &notificationRepo{s: s}
}

func (s *Store) ApplicationRepository() repositories.ApplicationRepository {
	return &applicationRepo{s: s}
}

func (s *Store) MatchStore() repositories.MatchStore {
	return &matchStore{s: s}
}

// --- materialization helpers (callers hold s.mu) ---

func (s *Store) dogWithOwner(id int64) (models.Dog, bool) {
	dog, ok := s.dogs[id]
	if !ok {
		return models.Dog{}, false
	}
	dog.Member = s.members[dog.MemberID]
	return dog, true
}

func (s *Store) notificationWithDog(id int64) (models.Notification, bool) {
	n, ok := s.notifications[id]
	if !ok {
		return models.Notification{}, false
	}
	n.Dog, _ = s.dogWithOwner(n.DogID)
	return n, true
}

func (s *Store) applicationWithDetails(id int64) (models.Application, bool) {
	a, ok := s.applications[id]
	if !ok {
		return models.Application{}, false
	}
	a.Member = s.members[a.MemberID]
	a.Notification, _ = s.notificationWithDog(a.NotificationID)
	return a, true
}

// --- MemberRepository ---

type memberRepo struct{ s *Store }

func (r *memberRepo) Create(ctx context.Context, member *models.Member) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.members {
		if existing.Email == member.Email {
			return repositories.ErrDuplicate
		}
	}
	r.s.nextMemberID++
	member.ID = r.s.nextMemberID
	member.CreatedAt = time.Now()
	r.s.members[member.ID] = *member
	return nil
}

func (r *memberRepo) FindByID(ctx context.Context, id int64) (*models.Member, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	member, ok := r.s.members[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &member, nil
}

func (r *memberRepo) FindByEmail(ctx context.Context, email string) (*models.Member, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, member := range r.s.members {
		if member.Email == email {
			m := member
			return &m, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *memberRepo) Update(ctx context.Context, member *models.Member) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.members[member.ID]; !ok {
		return repositories.ErrNotFound
	}
	r.s.members[member.ID] = *member
	return nil
}

// --- DogRepository ---

type dogRepo struct{ s *Store }

func (r *dogRepo) Create(ctx context.Context, dog *models.Dog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextDogID++
	dog.ID = r.s.nextDogID
	dog.CreatedAt = time.Now()
	stored := *dog
	stored.Member = models.Member{}
	r.s.dogs[dog.ID] = stored
	return nil
}

func (r *dogRepo) FindByID(ctx context.Context, id int64) (*models.Dog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	dog, ok := r.s.dogWithOwner(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &dog, nil
}

func (r *dogRepo) Update(ctx context.Context, dog *models.Dog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.dogs[dog.ID]; !ok {
		return repositories.ErrNotFound
	}
	stored := *dog
	stored.Member = models.Member{}
	r.s.dogs[dog.ID] = stored
	return nil
}

func (r *dogRepo) ListByMember(ctx context.Context, memberID int64) ([]models.Dog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var dogs []models.Dog
	for _, dog := range r.s.dogs {
		if dog.MemberID == memberID {
			dogs = append(dogs, dog)
		}
	}
	sort.Slice(dogs, func(i, j int) bool { return dogs[i].ID < dogs[j].ID })
	return dogs, nil
}

// --- NotificationRepository ---

type notificationRepo struct{ s *Store }

func (r *notificationRepo) Create(ctx context.Context, n *models.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextNotificationID++
	n.ID = r.s.nextNotificationID
	n.CreatedAt = time.Now()
	stored := *n
	stored.Dog = models.Dog{}
	r.s.notifications[n.ID] = stored
	return nil
}

func (r *notificationRepo) FindByID(ctx context.Context, id int64) (*models.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n, ok := r.s.notificationWithDog(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &n, nil
}

func (r *notificationRepo) ListOpen(ctx context.Context) ([]models.Notification, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var notifications []models.Notification
	for id, n := range r.s.notifications {
		if n.Matched {
			continue
		}
		withDog, _ := r.s.notificationWithDog(id)
		notifications = append(notifications, withDog)
	}
	// Creation ids are monotonic; newest first.
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].ID > notifications[j].ID
	})
	return notifications, nil
}

// --- ApplicationRepository ---

type applicationRepo struct{ s *Store }

func (r *applicationRepo) Create(ctx context.Context, a *models.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextApplicationID++
	a.ID = r.s.nextApplicationID
	a.CreatedAt = time.Now()
	stored := *a
	stored.Member = models.Member{}
	stored.Notification = models.Notification{}
	r.s.applications[a.ID] = stored
	return nil
}

func (r *applicationRepo) FindByID(ctx context.Context, id int64) (*models.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.applicationWithDetails(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &a, nil
}

func (r *applicationRepo) ExistsLive(ctx context.Context, memberID, notificationID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.applications {
		if a.MemberID == memberID && a.NotificationID == notificationID &&
			a.Status != models.ApplicationStatusRejected {
			return true, nil
		}
	}
	return false, nil
}

func (r *applicationRepo) ListByNotification(ctx context.Context, notificationID int64) ([]models.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var applications []models.Application
	for id, a := range r.s.applications {
		if a.NotificationID == notificationID {
			withDetails, _ := r.s.applicationWithDetails(id)
			applications = append(applications, withDetails)
		}
	}
	sort.Slice(applications, func(i, j int) bool { return applications[i].ID < applications[j].ID })
	return applications, nil
}

func (r *applicationRepo) ListByMember(ctx context.Context, memberID int64) ([]models.Application, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var applications []models.Application
	for id, a := range r.s.applications {
		if a.MemberID == memberID {
			withDetails, _ := r.s.applicationWithDetails(id)
			applications = append(applications, withDetails)
		}
	}
	sort.Slice(applications, func(i, j int) bool { return applications[i].ID > applications[j].ID })
	return applications, nil
}

func (r *applicationRepo) CountByNotification(ctx context.Context, notificationID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for _, a := range r.s.applications {
		if a.NotificationID == notificationID {
			count++
		}
	}
	return count, nil
}

// --- MatchStore ---

type matchStore struct{ s *Store }

func (m *matchStore) Transaction(ctx context.Context, fn func(tx repositories.MatchStore) error) error {
	m.s.txMu.Lock()
	defer m.s.txMu.Unlock()
	return fn(m)
}

func (m *matchStore) LockNotification(ctx context.Context, id int64) (*models.Notification, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	n, ok := m.s.notificationWithDog(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &n, nil
}

func (m *matchStore) FindApplication(ctx context.Context, id int64) (*models.Application, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	a, ok := m.s.applicationWithDetails(id)
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &a, nil
}

func (m *matchStore) MarkMatched(ctx context.Context, notificationID int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	n, ok := m.s.notifications[notificationID]
	if !ok {
		return repositories.ErrNotFound
	}
	n.Matched = true
	m.s.notifications[notificationID] = n
	return nil
}

func (m *matchStore) SetApplicationStatus(ctx context.Context, applicationID int64, status models.ApplicationStatus) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	a, ok := m.s.applications[applicationID]
	if !ok {
		return repositories.ErrNotFound
	}
	a.Status = status
	m.s.applications[applicationID] = a
	return nil
}

func (m *matchStore) RejectSiblings(ctx context.Context, notificationID, acceptedApplicationID int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for id, a := range m.s.applications {
		if a.NotificationID == notificationID && a.ID != acceptedApplicationID {
			a.Status = models.ApplicationStatusRejected
			m.s.applications[id] = a
		}
	}
	return nil
}

func (m *matchStore) CreateMatch(ctx context.Context, match *models.Match) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, existing := range m.s.matches {
		if existing.NotificationID == match.NotificationID {
			return repositories.ErrDuplicate
		}
	}
	m.s.nextMatchID++
	match.ID = m.s.nextMatchID
	match.CreatedAt = time.Now()
	stored := *match
	stored.Application = models.Application{}
	stored.Notification = models.Notification{}
	m.s.matches[match.ID] = stored
	return nil
}

func (m *matchStore) FindMatchWithDetails(ctx context.Context, id int64) (*models.Match, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	match, ok := m.s.matches[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	match.Application, _ = m.s.applicationWithDetails(match.ApplicationID)
	match.Notification, _ = m.s.notificationWithDog(match.NotificationID)
	return &match, nil
}

func (m *matchStore) FindMatchByNotification(ctx context.Context, notificationID int64) (*models.Match, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, match := range m.s.matches {
		if match.NotificationID == notificationID {
			found := match
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}
