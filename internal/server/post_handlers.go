package server

import (
	"homegenie/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPosts handles GET /api/posts. The feed is public; when the request
// carries a valid session each post also reports whether that user liked it.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.repos.Posts.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	viewerID, authenticated := s.optionalUserID(c)

	details := make([]models.PostDetail, 0, len(posts))
	for _, post := range posts {
		detail := models.PostDetail{CommunityPost: post, Tags: []string{}}

		author, err := s.repos.Users.GetByID(c.Context(), post.UserID)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		if author != nil {
			detail.User = author.FeedAuthor()
		}

		tags, err := s.repos.Posts.TagsByPost(c.Context(), post.ID)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		for _, tag := range tags {
			detail.Tags = append(detail.Tags, tag.TagName)
		}

		if authenticated {
			liked, err := s.repos.Posts.HasLiked(c.Context(), post.ID, viewerID)
			if err != nil {
				return models.RespondWithError(c, fiber.StatusInternalServerError, err)
			}
			detail.UserLiked = liked
		}

		details = append(details, detail)
	}

	return c.JSON(details)
}

type createPostRequest struct {
	Content    string   `json:"content"`
	ImageURL   string   `json:"imageUrl"`
	IsEvent    bool     `json:"isEvent"`
	EventTitle string   `json:"eventTitle"`
	EventDate  string   `json:"eventDate"`
	Tags       []string `json:"tags"`
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Content is required"))
	}

	post := &models.CommunityPost{
		UserID:     currentUserID(c),
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		IsEvent:    req.IsEvent,
		EventTitle: req.EventTitle,
	}
	if req.EventDate != "" {
		eventDate, err := parseDate(req.EventDate)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid event date format"))
		}
		post.EventDate = &eventDate
	}

	if err := s.repos.Posts.Create(c.Context(), post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	for _, tagName := range req.Tags {
		tag := &models.PostTag{PostID: post.ID, TagName: tagName}
		if err := s.repos.Posts.CreateTag(c.Context(), tag); err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// ToggleLike handles POST /api/posts/:id/like. A first like records the
// like and bumps the counter; liking again removes the like row. The
// counter is only ever incremented, so it reflects total likes received
// rather than the current number of like rows.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID := currentUserID(c)

	post, err := s.repos.Posts.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if post == nil {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Post"))
	}

	liked, err := s.repos.Posts.HasLiked(c.Context(), id, userID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if liked {
		if _, err := s.repos.Posts.DeleteLike(c.Context(), id, userID); err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		current, err := s.repos.Posts.GetByID(c.Context(), id)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		return c.JSON(models.LikeResult{Liked: false, Post: current})
	}

	inserted, err := s.repos.Posts.CreateLike(c.Context(), &models.PostLike{PostID: id, UserID: userID})
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if !inserted {
		// A concurrent request already recorded this like and bumped the
		// counter; report the state it produced.
		current, err := s.repos.Posts.GetByID(c.Context(), id)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		return c.JSON(models.LikeResult{Liked: true, Post: current})
	}
	updated, err := s.repos.Posts.IncrementLikes(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(models.LikeResult{Liked: true, Post: updated})
}
