package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/saranyu/jobboard-api/internal/model"
	"github.com/saranyu/jobboard-api/internal/provider"
	"github.com/saranyu/jobboard-api/internal/repository"
)

// errDuplicateKey mimics the error Mongo returns when a unique index is
// violated, so mongo.IsDuplicateKeyError recognizes it.
var errDuplicateKey = mongo.WriteException{
	WriteErrors: mongo.WriteErrors{{Code: 11000}},
}

type fakeUserRepo struct {
	users map[bson.ObjectID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[bson.ObjectID]*model.User)}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, errDuplicateKey
		}
	}

	user.ID = bson.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = user

	return user, nil
}

func (r *fakeUserRepo) GetUser(ctx context.Context, id string) (*model.User, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	user, ok := r.users[objectID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	return user, nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id string, params repository.UpdateProfileParams) (*model.User, error) {
	user, err := r.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Username != nil {
		user.Username = *params.Username
	}
	if params.Headline != nil {
		user.Headline = *params.Headline
	}
	if params.SkillIDs != nil {
		user.SkillIDs = *params.SkillIDs
	}
	if params.Languages != nil {
		user.Languages = *params.Languages
	}
	if params.Education != nil {
		user.Education = *params.Education
	}
	user.UpdatedAt = time.Now()

	return user, nil
}

func (r *fakeUserRepo) SetOTP(ctx context.Context, id string, digest string, expiresAt time.Time) error {
	user, err := r.GetUser(ctx, id)
	if err != nil {
		return err
	}

	user.OTP = digest
	user.OTPExpiresAt = &expiresAt

	return nil
}

func (r *fakeUserRepo) MarkEmailVerified(ctx context.Context, id string, verifiedAt time.Time) error {
	user, err := r.GetUser(ctx, id)
	if err != nil {
		return err
	}

	user.EmailVerified = &verifiedAt
	user.OTP = ""
	user.OTPExpiresAt = nil

	return nil
}

type fakeCompanyRepo struct {
	companies map[bson.ObjectID]*model.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[bson.ObjectID]*model.Company)}
}

func (r *fakeCompanyRepo) CreateCompany(ctx context.Context, company *model.Company) (*model.Company, error) {
	company.ID = bson.NewObjectID()
	company.CreatedAt = time.Now()
	company.UpdatedAt = company.CreatedAt
	r.companies[company.ID] = company

	return company, nil
}

func (r *fakeCompanyRepo) GetCompany(ctx context.Context, id string) (*model.Company, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	company, ok := r.companies[objectID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	return company, nil
}

func (r *fakeCompanyRepo) UpdateCompany(ctx context.Context, id string, params repository.UpdateCompanyParams) (*model.Company, error) {
	company, err := r.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		company.Name = *params.Name
	}
	if params.Tagline != nil {
		company.Tagline = *params.Tagline
	}
	if params.IndustryIDs != nil {
		company.IndustryIDs = *params.IndustryIDs
	}
	company.UpdatedAt = time.Now()

	return company, nil
}

func (r *fakeCompanyRepo) ListCompaniesByAdmin(ctx context.Context, adminID bson.ObjectID) ([]*model.Company, error) {
	var companies []*model.Company
	for _, company := range r.companies {
		if company.IsAdmin(adminID) {
			companies = append(companies, company)
		}
	}

	return companies, nil
}

type fakeJobRepo struct {
	jobs map[bson.ObjectID]*model.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[bson.ObjectID]*model.Job)}
}

func (r *fakeJobRepo) CreateJob(ctx context.Context, job *model.Job) (*model.Job, error) {
	job.ID = bson.NewObjectID()
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	r.jobs[job.ID] = job

	return job, nil
}

func (r *fakeJobRepo) GetJob(ctx context.Context, id string) (*model.Job, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	job, ok := r.jobs[objectID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	return job, nil
}

func (r *fakeJobRepo) UpdateJob(ctx context.Context, id string, params repository.UpdateJobParams) (*model.Job, error) {
	job, err := r.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		job.Title = *params.Title
	}
	if params.Status != nil {
		job.Status = *params.Status
	}
	if params.SalaryMin != nil {
		job.SalaryMin = *params.SalaryMin
	}
	if params.SalaryMax != nil {
		job.SalaryMax = *params.SalaryMax
	}
	if params.SkillIDs != nil {
		job.SkillIDs = *params.SkillIDs
	}
	job.UpdatedAt = time.Now()

	return job, nil
}

func (r *fakeJobRepo) ListCompanyJobs(ctx context.Context, companyID bson.ObjectID, params repository.FilterJobsParams) ([]*model.Job, error) {
	var jobs []*model.Job
	for _, job := range r.jobs {
		if job.CompanyID == companyID {
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}

func (r *fakeJobRepo) ListLiveJobs(ctx context.Context, params repository.FilterJobsParams) ([]*model.Job, error) {
	var jobs []*model.Job
	for _, job := range r.jobs {
		if job.Status == model.JobStatusLive {
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}

type fakeLookupRepo struct {
	entities map[model.LookupKind]map[bson.ObjectID]*model.LookupEntity
	creates  int
}

func newFakeLookupRepo() *fakeLookupRepo {
	return &fakeLookupRepo{
		entities: make(map[model.LookupKind]map[bson.ObjectID]*model.LookupEntity),
	}
}

func (r *fakeLookupRepo) Search(ctx context.Context, kind model.LookupKind, query string, limit int64) ([]*model.LookupEntity, error) {
	var found []*model.LookupEntity
	for _, entity := range r.entities[kind] {
		found = append(found, entity)
	}

	return found, nil
}

func (r *fakeLookupRepo) GetByName(ctx context.Context, kind model.LookupKind, name string) (*model.LookupEntity, error) {
	for _, entity := range r.entities[kind] {
		if entity.Name == name {
			return entity, nil
		}
	}

	return nil, mongo.ErrNoDocuments
}

func (r *fakeLookupRepo) GetByIDs(ctx context.Context, kind model.LookupKind, ids []bson.ObjectID) ([]*model.LookupEntity, error) {
	var found []*model.LookupEntity
	for _, id := range ids {
		if entity, ok := r.entities[kind][id]; ok {
			found = append(found, entity)
		}
	}

	return found, nil
}

func (r *fakeLookupRepo) Create(ctx context.Context, kind model.LookupKind, name string) (*model.LookupEntity, error) {
	if _, err := r.GetByName(ctx, kind, name); err == nil {
		return nil, errDuplicateKey
	}

	if r.entities[kind] == nil {
		r.entities[kind] = make(map[bson.ObjectID]*model.LookupEntity)
	}

	entity := &model.LookupEntity{
		ID:        bson.NewObjectID(),
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.entities[kind][entity.ID] = entity
	r.creates++

	return entity, nil
}

func (r *fakeLookupRepo) seed(kind model.LookupKind, name string) *model.LookupEntity {
	entity, _ := r.Create(context.Background(), kind, name)
	r.creates--
	return entity
}

type fakeApplicationRepo struct {
	applications map[bson.ObjectID]*model.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[bson.ObjectID]*model.Application)}
}

func (r *fakeApplicationRepo) CreateApplication(ctx context.Context, application *model.Application) (*model.Application, error) {
	for _, existing := range r.applications {
		if existing.JobID == application.JobID && existing.UserID == application.UserID {
			return nil, errDuplicateKey
		}
	}

	application.ID = bson.NewObjectID()
	application.CreatedAt = time.Now()
	application.UpdatedAt = application.CreatedAt
	r.applications[application.ID] = application

	return application, nil
}

func (r *fakeApplicationRepo) ListApplicationsByUser(ctx context.Context, userID bson.ObjectID) ([]*model.Application, error) {
	var applications []*model.Application
	for _, application := range r.applications {
		if application.UserID == userID {
			applications = append(applications, application)
		}
	}

	return applications, nil
}

func (r *fakeApplicationRepo) ListApplicationsByJob(ctx context.Context, jobID bson.ObjectID) ([]*model.Application, error) {
	var applications []*model.Application
	for _, application := range r.applications {
		if application.JobID == jobID {
			applications = append(applications, application)
		}
	}

	return applications, nil
}

type fakeSender struct {
	lastTo   string
	lastCode string
	sends    int
}

func (s *fakeSender) SendHTML(to []string, subject, htmlBody string) error {
	s.sends++
	return nil
}

func (s *fakeSender) SendOTP(to, code string, expiresIn time.Duration) error {
	s.lastTo = to
	s.lastCode = code
	s.sends++
	return nil
}

type fakeLimiter struct {
	allowed bool
	keys    []string
}

func (l *fakeLimiter) Allow(ctx context.Context, key string) (bool, error) {
	l.keys = append(l.keys, key)
	return l.allowed, nil
}

type fakePublisher struct {
	keys []string
}

func (p *fakePublisher) Publish(ctx context.Context, key string, event any) error {
	p.keys = append(p.keys, key)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

type fakeGoogleValidator struct {
	identity *provider.GoogleIdentity
	err      error
}

func (v *fakeGoogleValidator) ValidateIDToken(ctx context.Context, idToken string) (*provider.GoogleIdentity, error) {
	if v.err != nil {
		return nil, v.err
	}

	return v.identity, nil
}
