package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/LeducSama/congo-marketplace-backend/internal/logging"
	"github.com/LeducSama/congo-marketplace-backend/internal/models"
	"github.com/LeducSama/congo-marketplace-backend/internal/mykafka"
	"github.com/LeducSama/congo-marketplace-backend/internal/repo"
)

const (
	storyTTL      = 24 * time.Hour
	storyFeedSize = 50
)

type StoryService struct {
	Repo     *repo.GormRepo
	Producer *mykafka.Producer
}

// Create posts a story for the caller's vendor profile. Callers without one
// are rejected; stories expire 24 hours after creation.
func (s *StoryService) Create(ctx context.Context, userID uint, content, imageURL string) (*models.VendorStory, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("content is required: %w", ErrValidation)
	}

	vendor, err := s.Repo.VendorByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("only vendors can create stories: %w", ErrForbidden)
		}
		return nil, err
	}

	story := models.VendorStory{
		VendorID:  vendor.ID,
		Content:   content,
		ImageURL:  imageURL,
		ExpiresAt: time.Now().Add(storyTTL),
		IsActive:  true,
	}
	if err := s.Repo.CreateStory(ctx, &story); err != nil {
		return nil, err
	}

	s.publish(ctx, vendor.ID, map[string]any{
		"type":      "story_created",
		"story_id":  story.ID,
		"vendor_id": vendor.ID,
	})

	return &story, nil
}

// Feed returns active, unexpired stories, newest first, capped at 50.
func (s *StoryService) Feed(ctx context.Context) ([]models.VendorStory, error) {
	return s.Repo.GetStoryFeed(ctx, time.Now(), storyFeedSize)
}

// View bumps the view counter. A missing story is silently ignored; only
// store failures propagate.
func (s *StoryService) View(ctx context.Context, storyID uint) error {
	return s.Repo.IncrementStoryViews(ctx, storyID)
}

func (s *StoryService) publish(ctx context.Context, vendorID uint, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, mykafka.TopicStoryEvents, fmt.Sprint(vendorID), event); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_error", "topic", mykafka.TopicStoryEvents, "error", err)
	}
}
