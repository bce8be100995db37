package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Team-DAS/profile-cell/internal/profile/event"
	"github.com/Team-DAS/profile-cell/internal/profile/models"
)

var (
	// ErrProfileNotFound means no document exists for the requested user.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrResourceNotFound means the profile exists but the addressed
	// sub-item does not. Lookup is scoped to a single list; ids never
	// match across lists.
	ErrResourceNotFound = errors.New("resource not found")
)

// Store is the whole-document persistence contract. FindByUserID returns
// (nil, nil) when no document exists.
type Store interface {
	FindByUserID(ctx context.Context, userID string) (*models.Profile, error)
	Insert(ctx context.Context, profile *models.Profile) error
	Replace(ctx context.Context, profile *models.Profile) error
}

// Cache is an optional read-through cache in front of the store. A nil
// cache disables caching.
type Cache interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, bool)
	SetProfile(ctx context.Context, profile *models.Profile)
	Invalidate(ctx context.Context, userID string)
}

// ProfileService is the single source of truth for reading and mutating a
// user's profile. Every mutation is load, modify in memory, recompute
// metadata, replace the whole document.
type ProfileService struct {
	store     Store
	cache     Cache
	publisher event.Publisher
}

func NewProfileService(store Store, cache Cache, publisher event.Publisher) *ProfileService {
	return &ProfileService{
		store:     store,
		cache:     cache,
		publisher: publisher,
	}
}

// CreateShell seeds an empty profile when an account is verified. Duplicate
// deliveries are a no-op returning the existing document, so the consumer
// can safely requeue and retry.
func (s *ProfileService) CreateShell(ctx context.Context, ev *models.AccountVerifiedEvent) (*models.Profile, error) {
	if ev.AccountID == "" {
		return nil, fmt.Errorf("account id is required")
	}

	existing, err := s.store.FindByUserID(ctx, ev.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		log.Printf("Profile already exists for account %s, skipping shell creation", ev.AccountID)
		return existing, nil
	}

	now := time.Now()
	profile := &models.Profile{
		UserID: ev.AccountID,
		PersonalInfo: &models.PersonalInfo{
			FullName: ev.FullName,
			Email:    ev.Email,
		},
		Skills:     []models.Skill{},
		Experience: []models.Experience{},
		Education:  []models.Education{},
		Portfolio:  []models.PortfolioItem{},
		Metadata: models.Metadata{
			IsComplete:    false,
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.store.Insert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile shell: %w", err)
	}

	s.publish(&models.ProfileEvent{
		EventType:  models.EventTypeProfileCreated,
		UserID:     profile.UserID,
		Timestamp:  now,
		IsComplete: false,
	})

	return profile, nil
}

// GetProfile retrieves the full aggregate for a user.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}

	if s.cache != nil {
		if profile, ok := s.cache.GetProfile(ctx, userID); ok {
			return profile, nil
		}
	}

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetProfile(ctx, profile)
	}
	return profile, nil
}

// ReplacePersonalInfo swaps the entire personalInfo sub-document. Fields
// omitted in the request are absent afterwards, not merged.
func (s *ProfileService) ReplacePersonalInfo(ctx context.Context, userID string, req *models.PersonalInfoRequest) (*models.PersonalInfo, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.PersonalInfo = &models.PersonalInfo{
		FullName:          req.FullName,
		ProfessionalTitle: req.ProfessionalTitle,
		Summary:           req.Summary,
		Location:          req.Location,
		PhotoURL:          req.PhotoURL,
	}

	if err := s.saveProfile(ctx, profile, "personalInfo"); err != nil {
		return nil, err
	}
	return profile.PersonalInfo, nil
}

// AddSkill appends a skill with a fresh server-generated id.
func (s *ProfileService) AddSkill(ctx context.Context, userID string, req *models.SkillRequest) (*models.Skill, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	skill := models.Skill{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Level: models.SkillLevel(req.Level),
	}
	profile.Skills = append(profile.Skills, skill)

	if err := s.saveProfile(ctx, profile, "skills"); err != nil {
		return nil, err
	}
	log.Printf("Skill %s added for user %s", skill.ID, userID)
	return &skill, nil
}

// DeleteSkill removes the first skill matching the id. Skills have no
// update operation, only add and delete.
func (s *ProfileService) DeleteSkill(ctx context.Context, userID, skillID string) error {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return err
	}

	idx := indexOf(len(profile.Skills), func(i int) bool { return profile.Skills[i].ID == skillID })
	if idx < 0 {
		return fmt.Errorf("%w: skill %s for user %s", ErrResourceNotFound, skillID, userID)
	}
	profile.Skills = append(profile.Skills[:idx], profile.Skills[idx+1:]...)

	return s.saveProfile(ctx, profile, "skills")
}

// AddExperience appends a work-experience entry with a fresh id.
func (s *ProfileService) AddExperience(ctx context.Context, userID string, req *models.ExperienceRequest) (*models.Experience, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	exp := models.Experience{
		ID:          uuid.NewString(),
		Company:     req.Company,
		Role:        req.Role,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	}
	profile.Experience = append(profile.Experience, exp)

	if err := s.saveProfile(ctx, profile, "experience"); err != nil {
		return nil, err
	}
	log.Printf("Experience %s added for user %s", exp.ID, userID)
	return &exp, nil
}

// UpdateExperience replaces all mutable fields of the entry matching the id.
func (s *ProfileService) UpdateExperience(ctx context.Context, userID, experienceID string, req *models.ExperienceRequest) (*models.Experience, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := indexOf(len(profile.Experience), func(i int) bool { return profile.Experience[i].ID == experienceID })
	if idx < 0 {
		return nil, fmt.Errorf("%w: experience %s for user %s", ErrResourceNotFound, experienceID, userID)
	}

	exp := &profile.Experience[idx]
	exp.Company = req.Company
	exp.Role = req.Role
	exp.StartDate = req.StartDate
	exp.EndDate = req.EndDate
	exp.Description = req.Description

	if err := s.saveProfile(ctx, profile, "experience"); err != nil {
		return nil, err
	}
	return exp, nil
}

func (s *ProfileService) DeleteExperience(ctx context.Context, userID, experienceID string) error {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return err
	}

	idx := indexOf(len(profile.Experience), func(i int) bool { return profile.Experience[i].ID == experienceID })
	if idx < 0 {
		return fmt.Errorf("%w: experience %s for user %s", ErrResourceNotFound, experienceID, userID)
	}
	profile.Experience = append(profile.Experience[:idx], profile.Experience[idx+1:]...)

	return s.saveProfile(ctx, profile, "experience")
}

func (s *ProfileService) AddEducation(ctx context.Context, userID string, req *models.EducationRequest) (*models.Education, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	edu := models.Education{
		ID:          uuid.NewString(),
		Institution: req.Institution,
		Degree:      req.Degree,
		EndDate:     req.EndDate,
	}
	profile.Education = append(profile.Education, edu)

	if err := s.saveProfile(ctx, profile, "education"); err != nil {
		return nil, err
	}
	log.Printf("Education %s added for user %s", edu.ID, userID)
	return &edu, nil
}

func (s *ProfileService) UpdateEducation(ctx context.Context, userID, educationID string, req *models.EducationRequest) (*models.Education, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := indexOf(len(profile.Education), func(i int) bool { return profile.Education[i].ID == educationID })
	if idx < 0 {
		return nil, fmt.Errorf("%w: education %s for user %s", ErrResourceNotFound, educationID, userID)
	}

	edu := &profile.Education[idx]
	edu.Institution = req.Institution
	edu.Degree = req.Degree
	edu.EndDate = req.EndDate

	if err := s.saveProfile(ctx, profile, "education"); err != nil {
		return nil, err
	}
	return edu, nil
}

func (s *ProfileService) DeleteEducation(ctx context.Context, userID, educationID string) error {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return err
	}

	idx := indexOf(len(profile.Education), func(i int) bool { return profile.Education[i].ID == educationID })
	if idx < 0 {
		return fmt.Errorf("%w: education %s for user %s", ErrResourceNotFound, educationID, userID)
	}
	profile.Education = append(profile.Education[:idx], profile.Education[idx+1:]...)

	return s.saveProfile(ctx, profile, "education")
}

func (s *ProfileService) AddPortfolioItem(ctx context.Context, userID string, req *models.PortfolioRequest) (*models.PortfolioItem, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	item := models.PortfolioItem{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		DocumentURL: req.DocumentURL,
	}
	profile.Portfolio = append(profile.Portfolio, item)

	if err := s.saveProfile(ctx, profile, "portfolio"); err != nil {
		return nil, err
	}
	log.Printf("Portfolio item %s added for user %s", item.ID, userID)
	return &item, nil
}

func (s *ProfileService) UpdatePortfolioItem(ctx context.Context, userID, portfolioID string, req *models.PortfolioRequest) (*models.PortfolioItem, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := indexOf(len(profile.Portfolio), func(i int) bool { return profile.Portfolio[i].ID == portfolioID })
	if idx < 0 {
		return nil, fmt.Errorf("%w: portfolio item %s for user %s", ErrResourceNotFound, portfolioID, userID)
	}

	item := &profile.Portfolio[idx]
	item.Title = req.Title
	item.Description = req.Description
	item.URL = req.URL
	item.DocumentURL = req.DocumentURL

	if err := s.saveProfile(ctx, profile, "portfolio"); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ProfileService) DeletePortfolioItem(ctx context.Context, userID, portfolioID string) error {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return err
	}

	idx := indexOf(len(profile.Portfolio), func(i int) bool { return profile.Portfolio[i].ID == portfolioID })
	if idx < 0 {
		return fmt.Errorf("%w: portfolio item %s for user %s", ErrResourceNotFound, portfolioID, userID)
	}
	profile.Portfolio = append(profile.Portfolio[:idx], profile.Portfolio[idx+1:]...)

	return s.saveProfile(ctx, profile, "portfolio")
}

// loadProfile fetches the aggregate or fails with ErrProfileNotFound.
func (s *ProfileService) loadProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := s.store.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w for user %s", ErrProfileNotFound, userID)
	}
	return profile, nil
}

// saveProfile is the final step of every mutation: recompute derived
// metadata, replace the document, drop the cache entry, emit events.
func (s *ProfileService) saveProfile(ctx context.Context, profile *models.Profile, changedFields ...string) error {
	wasComplete := profile.Metadata.IsComplete
	now := time.Now()

	if profile.Metadata.CreatedAt.IsZero() {
		profile.Metadata.CreatedAt = now
	}
	profile.Metadata.LastUpdatedAt = now
	profile.Metadata.IsComplete = profile.IsComplete()

	if err := s.store.Replace(ctx, profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, profile.UserID)
	}

	s.publish(&models.ProfileEvent{
		EventType:     models.EventTypeProfileUpdated,
		UserID:        profile.UserID,
		Timestamp:     now,
		ChangedFields: changedFields,
		IsComplete:    profile.Metadata.IsComplete,
	})
	if wasComplete != profile.Metadata.IsComplete {
		s.publish(&models.ProfileEvent{
			EventType:  models.EventTypeCompletenessChanged,
			UserID:     profile.UserID,
			Timestamp:  now,
			IsComplete: profile.Metadata.IsComplete,
		})
	}

	return nil
}

// publish sends an event without failing the mutation on broker errors.
func (s *ProfileService) publish(ev *models.ProfileEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishProfileEvent(ev); err != nil {
		log.Printf("Failed to publish %s event for user %s: %v", ev.EventType, ev.UserID, err)
	}
}

func indexOf(n int, match func(i int) bool) int {
	for i := 0; i < n; i++ {
		if match(i) {
			return i
		}
	}
	return -1
}
