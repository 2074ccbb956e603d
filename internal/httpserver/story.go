package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/LeducSama/congo-marketplace-backend/internal/logging"
	"github.com/LeducSama/congo-marketplace-backend/internal/service"
	"github.com/LeducSama/congo-marketplace-backend/internal/transport"
)

type StoryHTTP struct {
	Svc *service.StoryService
}

func (h *StoryHTTP) CreateStory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "stories.create")

	uid, err := userID(c)
	if err != nil {
		return errorJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	var req struct {
		Content  string `json:"content"`
		ImageURL string `json:"imageUrl"`
	}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid body")
	}

	story, err := h.Svc.Create(ctx, uid, req.Content, req.ImageURL)
	if err != nil {
		l.Warn("create_story_error", "error", err)
		return respondError(c, err)
	}

	l.Info("story_created", "story_id", story.ID, "vendor_id", story.VendorID)
	return c.JSON(http.StatusCreated, echo.Map{"message": "Story created successfully", "story": story})
}

func (h *StoryHTTP) GetFeed(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "stories.feed")

	if _, err := userID(c); err != nil {
		return errorJSON(c, http.StatusUnauthorized, "unauthorized")
	}

	stories, err := h.Svc.Feed(ctx)
	if err != nil {
		l.Error("story_feed_error", "status", 500, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, transport.NewFeedStoryList(stories))
}

// RecordView is unauthenticated and fire-and-forget: a missing story is not
// an error.
func (h *StoryHTTP) RecordView(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "stories.view")

	storyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid story id")
	}

	if err := h.Svc.View(ctx, uint(storyID)); err != nil {
		l.Error("record_view_error", "story_id", storyID, "error", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "View recorded"})
}
