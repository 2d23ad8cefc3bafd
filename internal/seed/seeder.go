package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/harentsoaR/hospital-seed/internal/models"
	"github.com/harentsoaR/hospital-seed/internal/store"
	"github.com/harentsoaR/hospital-seed/internal/utils"
)

// Seeder makes sure the demo users and doctor roster exist.
type Seeder struct {
	store store.Store
	now   func() time.Time
	newID func() string
	hash  func(string) (string, error)
}

type Option func(*Seeder)

func WithClock(now func() time.Time) Option {
	return func(s *Seeder) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Seeder) { s.newID = newID }
}

func WithPasswordHasher(hash func(string) (string, error)) Option {
	return func(s *Seeder) { s.hash = hash }
}

// WithBcryptCost hashes passwords with bcrypt at the given cost.
func WithBcryptCost(cost int) Option {
	return WithPasswordHasher(func(p string) (string, error) {
		return utils.HashPasswordWithCost(p, cost)
	})
}

func New(st store.Store, opts ...Option) *Seeder {
	s := &Seeder{
		store: st,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
		hash:  utils.HashPassword,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type Result struct {
	AdminCreated    bool
	PatientCreated  bool
	DoctorsCreated  int
	ExistingDoctors int64
}

// Run inserts whatever part of the demo data is missing. It stops at the
// first store error; anything inserted before that stays.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	log.Println("Seeding database...")

	var (
		res Result
		err error
	)
	res.AdminCreated, err = s.ensureUser(ctx, adminFixture())
	if err != nil {
		return nil, err
	}
	res.PatientCreated, err = s.ensureUser(ctx, patientFixture())
	if err != nil {
		return nil, err
	}
	res.DoctorsCreated, res.ExistingDoctors, err = s.ensureDoctors(ctx)
	if err != nil {
		return nil, err
	}

	log.Println("Database seeding completed!")
	return &res, nil
}

func (s *Seeder) ensureUser(ctx context.Context, f userFixture) (bool, error) {
	existing, err := s.store.FindUserByUsername(ctx, f.user.Username)
	if err != nil {
		return false, fmt.Errorf("check %s user: %w", f.user.Username, err)
	}
	if existing != nil {
		log.Printf("%s user already exists (username: %s)", f.user.Role, f.user.Username)
		return false, nil
	}

	hash, err := s.hash(f.password)
	if err != nil {
		return false, fmt.Errorf("hash %s password: %w", f.user.Username, err)
	}
	user := f.user
	user.ID = s.newID()
	user.PasswordHash = hash
	user.CreatedAt = models.FormatTimestamp(s.now())

	if err := s.store.InsertUser(ctx, &user); err != nil {
		return false, fmt.Errorf("create %s user: %w", f.user.Username, err)
	}
	log.Printf("%s user created (username: %s, password: %s)", user.Role, user.Username, f.password)
	return true, nil
}

func (s *Seeder) ensureDoctors(ctx context.Context) (int, int64, error) {
	existing, err := s.store.CountDoctors(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("check doctors: %w", err)
	}
	if existing > 0 {
		log.Printf("Doctors already exist (%d doctors)", existing)
		return 0, existing, nil
	}

	doctors := doctorFixtures()
	createdAt := models.FormatTimestamp(s.now())
	for i := range doctors {
		if err := doctors[i].Validate(); err != nil {
			return 0, 0, err
		}
		doctors[i].ID = s.newID()
		doctors[i].CreatedAt = createdAt
	}
	if err := s.store.InsertDoctors(ctx, doctors); err != nil {
		return 0, 0, fmt.Errorf("create doctors: %w", err)
	}
	log.Printf("%d sample doctors created", len(doctors))
	return len(doctors), 0, nil
}

// LogCredentials prints the demo logins the seeded users accept.
func LogCredentials() {
	log.Println("Test Credentials:")
	log.Printf("Admin - Username: %s, Password: %s", AdminUsername, AdminPassword)
	log.Printf("Patient - Username: %s, Password: %s", PatientUsername, PatientPassword)
}

// AdminToken mints a bearer token for the seeded admin account.
func AdminToken(ctx context.Context, st store.Store, secret string) (string, error) {
	admin, err := st.FindUserByUsername(ctx, AdminUsername)
	if err != nil {
		return "", err
	}
	if admin == nil {
		return "", fmt.Errorf("admin user %q not found", AdminUsername)
	}
	return utils.GenerateJWT(secret, admin.ID, string(admin.Role))
}
