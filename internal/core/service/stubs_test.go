package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/propertymanager/landlord-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories (mirror the filters of the real Mongo repos)
// ---------------------------------------------------------------------------

type memAccountRepo struct {
	accounts  map[string]*domain.Account
	nextID    int
	deleteErr error // if set, DeleteByID returns this error
	statusErr error // if set, SetStatus returns this error
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: make(map[string]*domain.Account)}
}

func (r *memAccountRepo) Create(_ context.Context, a *domain.Account) (*domain.Account, error) {
	for _, existing := range r.accounts {
		if existing.Email == a.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	clone := *a
	clone.ID = fmt.Sprintf("acc_%d", r.nextID)
	r.accounts[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *memAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *memAccountRepo) List(_ context.Context) ([]*domain.Account, error) {
	out := make([]*domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memAccountRepo) SetStatus(_ context.Context, id string, banned, active bool) (*domain.Account, error) {
	if r.statusErr != nil {
		return nil, r.statusErr
	}
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	a.Banned = banned
	a.Active = active
	clone := *a
	return &clone, nil
}

func (r *memAccountRepo) DeleteByID(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.accounts, id)
	return nil
}

type memPropertyRepo struct {
	properties   map[string]*domain.Property
	nextID       int
	deleteAllErr error // if set, DeleteByLandlord returns this error
}

func newMemPropertyRepo() *memPropertyRepo {
	return &memPropertyRepo{properties: make(map[string]*domain.Property)}
}

func (r *memPropertyRepo) Create(_ context.Context, p *domain.Property) (*domain.Property, error) {
	r.nextID++
	clone := *p
	clone.ID = fmt.Sprintf("prop_%d", r.nextID)
	r.properties[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memPropertyRepo) FindByID(_ context.Context, id, landlordID string) (*domain.Property, error) {
	p, ok := r.properties[id]
	if !ok || (landlordID != "" && p.LandlordID != landlordID) {
		return nil, domain.ErrPropertyNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *memPropertyRepo) FindByLandlord(_ context.Context, landlordID string) ([]*domain.Property, error) {
	var out []*domain.Property
	for _, p := range r.properties {
		if p.LandlordID == landlordID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memPropertyRepo) ReplaceRenovations(_ context.Context, id string, renovations []domain.Renovation, total float64) error {
	p, ok := r.properties[id]
	if !ok {
		return domain.ErrPropertyNotFound
	}
	p.Renovations = renovations
	p.TotalRenovationCost = total
	return nil
}

func (r *memPropertyRepo) DeleteByID(_ context.Context, id, landlordID string) error {
	p, ok := r.properties[id]
	if !ok || (landlordID != "" && p.LandlordID != landlordID) {
		return domain.ErrPropertyNotFound
	}
	delete(r.properties, id)
	return nil
}

func (r *memPropertyRepo) DeleteByLandlord(_ context.Context, landlordID string) (int64, error) {
	if r.deleteAllErr != nil {
		return 0, r.deleteAllErr
	}
	var n int64
	for id, p := range r.properties {
		if p.LandlordID == landlordID {
			delete(r.properties, id)
			n++
		}
	}
	return n, nil
}

type memTenancyRepo struct {
	tenancies    map[string]*domain.Tenancy
	nextID       int
	deleteAllErr error // if set, DeleteByLandlord returns this error
	findErr      error // if set, FindByLandlord returns this error
}

func newMemTenancyRepo() *memTenancyRepo {
	return &memTenancyRepo{tenancies: make(map[string]*domain.Tenancy)}
}

func (r *memTenancyRepo) Create(_ context.Context, t *domain.Tenancy) (*domain.Tenancy, error) {
	r.nextID++
	clone := *t
	clone.ID = fmt.Sprintf("ten_%d", r.nextID)
	r.tenancies[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memTenancyRepo) FindByID(_ context.Context, id, landlordID string) (*domain.Tenancy, error) {
	t, ok := r.tenancies[id]
	if !ok || (landlordID != "" && t.LandlordID != landlordID) {
		return nil, domain.ErrTenancyNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *memTenancyRepo) FindByLandlord(_ context.Context, landlordID string, activeOnly bool) ([]*domain.Tenancy, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []*domain.Tenancy
	for _, t := range r.tenancies {
		if t.LandlordID != landlordID {
			continue
		}
		if activeOnly && !t.Active {
			continue
		}
		clone := *t
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memTenancyRepo) SetPaymentDates(_ context.Context, id string, lastPayment, nextPayment time.Time) error {
	t, ok := r.tenancies[id]
	if !ok {
		return domain.ErrTenancyNotFound
	}
	t.LastPaymentDate = &lastPayment
	t.NextPaymentDate = &nextPayment
	return nil
}

func (r *memTenancyRepo) DeleteByLandlord(_ context.Context, landlordID string) (int64, error) {
	if r.deleteAllErr != nil {
		return 0, r.deleteAllErr
	}
	var n int64
	for id, t := range r.tenancies {
		if t.LandlordID == landlordID {
			delete(r.tenancies, id)
			n++
		}
	}
	return n, nil
}

func (r *memTenancyRepo) DeleteByProperty(_ context.Context, propertyID string) (int64, error) {
	var n int64
	for id, t := range r.tenancies {
		if t.PropertyID == propertyID {
			delete(r.tenancies, id)
			n++
		}
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Collaborator stubs
// ---------------------------------------------------------------------------

type sentMail struct {
	to      string
	subject string
	html    string
}

type stubMailer struct {
	sent []sentMail
	err  error // if set, SendEmail returns this error
}

func (m *stubMailer) SendEmail(_ context.Context, to, subject, html string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, html: html})
	return nil
}

type stubLocker struct {
	busy       bool // when true, Acquire reports the lock as held elsewhere
	acquireErr error
	acquired   []string
	released   []string
}

func (l *stubLocker) Acquire(_ context.Context, accountID string) (bool, error) {
	if l.acquireErr != nil {
		return false, l.acquireErr
	}
	if l.busy {
		return false, nil
	}
	l.acquired = append(l.acquired, accountID)
	return true, nil
}

func (l *stubLocker) Release(_ context.Context, accountID string) error {
	l.released = append(l.released, accountID)
	return nil
}

type stubDispatcher struct {
	requests []domain.NotificationRequest
	err      error // if set, Send returns this error
}

func (d *stubDispatcher) Send(_ context.Context, req domain.NotificationRequest) (domain.DispatchResult, error) {
	d.requests = append(d.requests, req)
	if d.err != nil {
		return domain.DispatchResult{Channel: req.Channel}, d.err
	}
	return domain.DispatchResult{Channel: req.Channel, Accepted: true}, nil
}

type stubQueue struct {
	enqueued []domain.NotificationRequest
}

func (q *stubQueue) Enqueue(req domain.NotificationRequest) {
	q.enqueued = append(q.enqueued, req)
}
