package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"homegenie/internal/models"
	"homegenie/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
)

// DemoOptions configures how much demo data to generate.
type DemoOptions struct {
	NumUsers int
	NumPosts int
	Password string
}

var postTags = []string{
	"community", "events", "help", "recommendations", "safety",
	"maintenance", "lost-and-found", "marketplace",
}

// Demo generates fake residents and community posts for development.
// All demo users share the same password so they are easy to log in as.
func Demo(ctx context.Context, repos *repository.Repositories, opts DemoOptions) error {
	if opts.NumUsers <= 0 {
		opts.NumUsers = 10
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 25
	}
	if opts.Password == "" {
		opts.Password = "password123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		fullName := gofakeit.Name()
		username := strings.ToLower(strings.ReplaceAll(fullName, " ", "_")) + fmt.Sprintf("%d", gofakeit.Number(10, 999))
		user := &models.User{
			Username:        username,
			Password:        string(hash),
			FullName:        fullName,
			Email:           username + "@example.com",
			PhoneNumber:     gofakeit.Phone(),
			ApartmentNumber: fmt.Sprintf("%c-%d", 'A'+gofakeit.Number(0, 3), gofakeit.Number(101, 904)),
			ApartmentName:   "Sunrise Residency",
			FloorNumber:     fmt.Sprintf("%d", gofakeit.Number(1, 9)),
			Pincode:         gofakeit.Zip(),
		}
		if err := repos.Users.Create(ctx, user); err != nil {
			// Duplicate generated usernames are rare; skip and move on
			continue
		}
		users = append(users, user)
	}
	if len(users) == 0 {
		return fmt.Errorf("no demo users could be created")
	}

	for i := 0; i < opts.NumPosts; i++ {
		author := users[gofakeit.Number(0, len(users)-1)]
		isEvent := gofakeit.Number(0, 4) == 0

		post := &models.CommunityPost{
			UserID:    author.ID,
			Content:   gofakeit.Sentence(gofakeit.Number(8, 25)),
			IsEvent:   isEvent,
			CreatedAt: time.Now().Add(-time.Duration(gofakeit.Number(0, 72)) * time.Hour),
		}
		if isEvent {
			post.EventTitle = gofakeit.HipsterSentence(3)
			eventDate := time.Now().Add(time.Duration(gofakeit.Number(24, 24*14)) * time.Hour)
			post.EventDate = &eventDate
		}
		if err := repos.Posts.Create(ctx, post); err != nil {
			return fmt.Errorf("failed to create demo post: %w", err)
		}

		for _, tag := range pickTags() {
			if err := repos.Posts.CreateTag(ctx, &models.PostTag{PostID: post.ID, TagName: tag}); err != nil {
				return err
			}
		}

		// A few likes per post from random residents
		for j := 0; j < gofakeit.Number(0, 5); j++ {
			liker := users[gofakeit.Number(0, len(users)-1)]
			inserted, err := repos.Posts.CreateLike(ctx, &models.PostLike{PostID: post.ID, UserID: liker.ID})
			if err != nil {
				return err
			}
			if !inserted {
				continue
			}
			if _, err := repos.Posts.IncrementLikes(ctx, post.ID); err != nil {
				return err
			}
		}
	}

	return nil
}

func pickTags() []string {
	n := gofakeit.Number(0, 3)
	if n == 0 {
		return nil
	}
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for len(out) < n {
		tag := postTags[gofakeit.Number(0, len(postTags)-1)]
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
