package services_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"time"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"

	"github.com/google/uuid"
)

// memStore is a shared in-memory dataset the fake repositories operate
// on, so cross-repository effects (counters, recounts) behave like the
// real database.
type memStore struct {
	users        map[string]*models.User
	profiles     map[string]*models.ApplicantProfile
	education    map[string]*models.Education
	experience   map[string]*models.Experience
	resumes      map[string]*models.Resume
	companies    map[string]*models.CompanyProfile
	jobs         map[string]*models.JobPosting
	applications map[string]*models.JobApplication
}

func newMemStore() *memStore {
	return &memStore{
		users:        make(map[string]*models.User),
		profiles:     make(map[string]*models.ApplicantProfile),
		education:    make(map[string]*models.Education),
		experience:   make(map[string]*models.Experience),
		resumes:      make(map[string]*models.Resume),
		companies:    make(map[string]*models.CompanyProfile),
		jobs:         make(map[string]*models.JobPosting),
		applications: make(map[string]*models.JobApplication),
	}
}

func stamp(m *models.BaseModel) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	m.UpdatedAt = time.Now()
}

// --- user repository ---

type fakeUserRepo struct{ store *memStore }

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.store.users {
		if u.Email == user.Email {
			return repositories.ErrEmailAlreadyTaken
		}
	}
	stamp(&user.BaseModel)
	r.store.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := r.store.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.store.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

// --- applicant profile repository ---

type fakeProfileRepo struct{ store *memStore }

func (r *fakeProfileRepo) CreateProfile(_ context.Context, profile *models.ApplicantProfile) error {
	for _, p := range r.store.profiles {
		if p.UserID == profile.UserID {
			return repositories.ErrProfileAlreadyExists
		}
	}
	stamp(&profile.BaseModel)
	r.store.profiles[profile.ID] = profile
	return nil
}

func (r *fakeProfileRepo) FindProfileByUserID(_ context.Context, userID string) (*models.ApplicantProfile, error) {
	for _, p := range r.store.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *fakeProfileRepo) FindProfilesByIDs(_ context.Context, ids []string) ([]models.ApplicantProfile, error) {
	var out []models.ApplicantProfile
	for _, id := range ids {
		if p, ok := r.store.profiles[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) UpdateProfile(_ context.Context, profile *models.ApplicantProfile) error {
	r.store.profiles[profile.ID] = profile
	return nil
}

func (r *fakeProfileRepo) AddEducation(_ context.Context, entry *models.Education) error {
	stamp(&entry.BaseModel)
	r.store.education[entry.ID] = entry
	return nil
}

func (r *fakeProfileRepo) FindEducation(_ context.Context, profileID, entryID string) (*models.Education, error) {
	if e, ok := r.store.education[entryID]; ok && e.ProfileID == profileID {
		return e, nil
	}
	return nil, repositories.ErrEducationNotFound
}

func (r *fakeProfileRepo) UpdateEducation(_ context.Context, entry *models.Education) error {
	r.store.education[entry.ID] = entry
	return nil
}

func (r *fakeProfileRepo) DeleteEducation(_ context.Context, profileID, entryID string) error {
	if e, ok := r.store.education[entryID]; ok && e.ProfileID == profileID {
		delete(r.store.education, entryID)
		return nil
	}
	return repositories.ErrEducationNotFound
}

func (r *fakeProfileRepo) AddExperience(_ context.Context, entry *models.Experience) error {
	stamp(&entry.BaseModel)
	r.store.experience[entry.ID] = entry
	return nil
}

func (r *fakeProfileRepo) FindExperience(_ context.Context, profileID, entryID string) (*models.Experience, error) {
	if e, ok := r.store.experience[entryID]; ok && e.ProfileID == profileID {
		return e, nil
	}
	return nil, repositories.ErrExperienceNotFound
}

func (r *fakeProfileRepo) UpdateExperience(_ context.Context, entry *models.Experience) error {
	r.store.experience[entry.ID] = entry
	return nil
}

func (r *fakeProfileRepo) DeleteExperience(_ context.Context, profileID, entryID string) error {
	if e, ok := r.store.experience[entryID]; ok && e.ProfileID == profileID {
		delete(r.store.experience, entryID)
		return nil
	}
	return repositories.ErrExperienceNotFound
}

func (r *fakeProfileRepo) CreateResume(_ context.Context, resume *models.Resume) error {
	stamp(&resume.BaseModel)
	r.store.resumes[resume.ID] = resume
	return nil
}

func (r *fakeProfileRepo) FindResume(_ context.Context, profileID, resumeID string) (*models.Resume, error) {
	if res, ok := r.store.resumes[resumeID]; ok && res.ProfileID == profileID {
		return res, nil
	}
	return nil, repositories.ErrResumeNotFound
}

func (r *fakeProfileRepo) FindResumesByProfile(_ context.Context, profileID string) ([]models.Resume, error) {
	var out []models.Resume
	for _, res := range r.store.resumes {
		if res.ProfileID == profileID {
			out = append(out, *res)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadedAt.After(out[j].UploadedAt) })
	return out, nil
}

func (r *fakeProfileRepo) DeleteResume(_ context.Context, profileID, resumeID string) error {
	if res, ok := r.store.resumes[resumeID]; ok && res.ProfileID == profileID {
		delete(r.store.resumes, resumeID)
		return nil
	}
	return repositories.ErrResumeNotFound
}

// --- company profile repository ---

type fakeCompanyRepo struct{ store *memStore }

func (r *fakeCompanyRepo) Create(_ context.Context, profile *models.CompanyProfile) error {
	for _, p := range r.store.companies {
		if p.UserID == profile.UserID {
			return repositories.ErrCompanyAlreadyExists
		}
	}
	stamp(&profile.BaseModel)
	r.store.companies[profile.ID] = profile
	return nil
}

func (r *fakeCompanyRepo) FindByUserID(_ context.Context, userID string) (*models.CompanyProfile, error) {
	for _, p := range r.store.companies {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, repositories.ErrCompanyNotFound
}

func (r *fakeCompanyRepo) FindByID(_ context.Context, id string) (*models.CompanyProfile, error) {
	if p, ok := r.store.companies[id]; ok {
		return p, nil
	}
	return nil, repositories.ErrCompanyNotFound
}

func (r *fakeCompanyRepo) FindByIDs(_ context.Context, ids []string) ([]models.CompanyProfile, error) {
	var out []models.CompanyProfile
	for _, id := range ids {
		if p, ok := r.store.companies[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, profile *models.CompanyProfile) error {
	r.store.companies[profile.ID] = profile
	return nil
}

func (r *fakeCompanyRepo) IncrementJobCounts(_ context.Context, companyID string, jobPostsDelta, activeJobsDelta int) error {
	p, ok := r.store.companies[companyID]
	if !ok {
		return repositories.ErrCompanyNotFound
	}
	p.Metrics.JobPostsCount += jobPostsDelta
	p.Metrics.ActiveJobsCount += activeJobsDelta
	return nil
}

func (r *fakeCompanyRepo) RecountMetrics(_ context.Context, companyID string) (*models.CompanyMetrics, error) {
	p, ok := r.store.companies[companyID]
	if !ok {
		return nil, repositories.ErrCompanyNotFound
	}
	metrics := models.CompanyMetrics{}
	for _, j := range r.store.jobs {
		if j.CompanyID != companyID {
			continue
		}
		metrics.JobPostsCount++
		if j.Status == models.JobStatusOpen {
			metrics.ActiveJobsCount++
		}
	}
	for _, a := range r.store.applications {
		if a.CompanyID == companyID {
			metrics.TotalApplicants++
		}
	}
	p.Metrics = metrics
	return &metrics, nil
}

// --- job repository ---

type fakeJobRepo struct{ store *memStore }

func (r *fakeJobRepo) Create(_ context.Context, job *models.JobPosting) error {
	stamp(&job.BaseModel)
	r.store.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) Update(_ context.Context, job *models.JobPosting) error {
	r.store.jobs[job.ID] = job
	return nil
}

func (r *fakeJobRepo) UpdateStatus(_ context.Context, id string, from, to models.JobStatus) (bool, error) {
	j, ok := r.store.jobs[id]
	if !ok || j.Status != from {
		return false, nil
	}
	j.Status = to
	return true, nil
}

func (r *fakeJobRepo) FindByID(_ context.Context, id string) (*models.JobPosting, error) {
	if j, ok := r.store.jobs[id]; ok {
		return j, nil
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) FindOpenByID(_ context.Context, id string) (*models.JobPosting, error) {
	if j, ok := r.store.jobs[id]; ok && j.Status == models.JobStatusOpen {
		return j, nil
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) FindByIDAndEmployer(_ context.Context, id, employerID string) (*models.JobPosting, error) {
	if j, ok := r.store.jobs[id]; ok && j.EmployerID == employerID {
		return j, nil
	}
	return nil, repositories.ErrJobNotFound
}

func (r *fakeJobRepo) FindByIDs(_ context.Context, ids []string) ([]models.JobPosting, error) {
	var out []models.JobPosting
	for _, id := range ids {
		if j, ok := r.store.jobs[id]; ok {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) ListByEmployer(_ context.Context, employerID string) ([]models.JobPosting, error) {
	var out []models.JobPosting
	for _, j := range r.store.jobs {
		if j.EmployerID == employerID {
			out = append(out, *j)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeJobRepo) SearchOpen(_ context.Context, criteria repositories.JobSearchCriteria) ([]models.JobPosting, int64, error) {
	var matched []models.JobPosting
	for _, j := range r.store.jobs {
		if j.Status != models.JobStatusOpen {
			continue
		}
		if len(criteria.EmploymentTypes) > 0 && !containsType(criteria.EmploymentTypes, j.EmploymentType) {
			continue
		}
		if criteria.Remote != nil && j.Remote != *criteria.Remote {
			continue
		}
		if criteria.SalaryMin != nil && (j.SalaryMin == nil || *j.SalaryMin < *criteria.SalaryMin) {
			continue
		}
		if criteria.SalaryMax != nil && (j.SalaryMax == nil || *j.SalaryMax > *criteria.SalaryMax) {
			continue
		}
		matched = append(matched, *j)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	start := (criteria.Page - 1) * criteria.PageSize
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + criteria.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func containsType(types []models.EmploymentType, t models.EmploymentType) bool {
	for _, et := range types {
		if et == t {
			return true
		}
	}
	return false
}

// --- application repository ---

type fakeApplicationRepo struct{ store *memStore }

func (r *fakeApplicationRepo) Create(_ context.Context, application *models.JobApplication) error {
	for _, a := range r.store.applications {
		if a.JobID == application.JobID && a.ApplicantID == application.ApplicantID {
			return repositories.ErrApplicationAlreadyExists
		}
	}
	stamp(&application.BaseModel)
	r.store.applications[application.ID] = application
	if c, ok := r.store.companies[application.CompanyID]; ok {
		c.Metrics.TotalApplicants++
	}
	return nil
}

func (r *fakeApplicationRepo) FindByID(_ context.Context, id string) (*models.JobApplication, error) {
	if a, ok := r.store.applications[id]; ok {
		return a, nil
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) ListByJob(_ context.Context, jobID string) ([]models.JobApplication, error) {
	var out []models.JobApplication
	for _, a := range r.store.applications {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeApplicationRepo) ListByApplicant(_ context.Context, applicantID string) ([]models.JobApplication, error) {
	var out []models.JobApplication
	for _, a := range r.store.applications {
		if a.ApplicantID == applicantID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeApplicationRepo) UpdateStatus(_ context.Context, id string, status models.ApplicationStatus) error {
	a, ok := r.store.applications[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	a.Status = status
	return nil
}

// --- storage ---

type fakeStorage struct {
	objects    map[string][]byte
	failSave   bool
	failDelete bool
	deleted    []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (s *fakeStorage) Save(_ context.Context, key string, reader io.Reader, _ string) error {
	if s.failSave {
		return errors.New("storage unavailable")
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[key] = data
	return nil
}

func (s *fakeStorage) Get(_ context.Context, key string) (io.ReadCloser, error) {
	data, ok := s.objects[key]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStorage) Delete(_ context.Context, key string) error {
	if s.failDelete {
		return errors.New("storage unavailable")
	}
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeStorage) Exists(_ context.Context, key string) (bool, error) {
	_, ok := s.objects[key]
	return ok, nil
}

func (s *fakeStorage) GetURL(_ context.Context, key string) (string, error) {
	return "https://files.example.com/" + key, nil
}
