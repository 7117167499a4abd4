package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authorModel "github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model/author"
	postModel "github.com/RoiShukrun1/Social-Media-Posts-Manager/internal/model/post"
)

// CreateTestAuthor creates a test author with a unique email
func CreateTestAuthor(db *gorm.DB, opts ...AuthorOption) *authorModel.Author {
	uniqueID := uuid.New().String()

	testAuthor := &authorModel.Author{
		FirstName:     "Test",
		LastName:      "Author",
		Email:         fmt.Sprintf("test_%s@example.com", uniqueID),
		Company:       "Test Company",
		JobTitle:      "Engineer",
		Bio:           "Test author bio",
		FollowerCount: 1000,
		Verified:      false,
	}

	for _, opt := range opts {
		opt(testAuthor)
	}

	if err := db.Create(testAuthor).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test author: %v", err))
	}

	return testAuthor
}

// AuthorOption configures test author
type AuthorOption func(*authorModel.Author)

// WithEmail sets the email
func WithEmail(email string) AuthorOption {
	return func(a *authorModel.Author) {
		a.Email = email
	}
}

// WithName sets first and last name
func WithName(first, last string) AuthorOption {
	return func(a *authorModel.Author) {
		a.FirstName = first
		a.LastName = last
	}
}

// WithFollowerCount sets the follower count
func WithFollowerCount(count int) AuthorOption {
	return func(a *authorModel.Author) {
		a.FollowerCount = count
	}
}

// WithVerified sets the verified flag
func WithVerified(verified bool) AuthorOption {
	return func(a *authorModel.Author) {
		a.Verified = verified
	}
}

// CreateTestPost creates a test post for the given author
func CreateTestPost(db *gorm.DB, authorID uint, opts ...PostOption) *postModel.Post {
	testPost := &postModel.Post{
		AuthorID:       authorID,
		Text:           "Test post text",
		Date:           time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
		Likes:          10,
		Comments:       5,
		Shares:         2,
		Category:       "Technology",
		EngagementRate: 0.15,
	}

	for _, opt := range opts {
		opt(testPost)
	}

	if err := db.Create(testPost).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test post: %v", err))
	}

	return testPost
}

// PostOption configures test post
type PostOption func(*postModel.Post)

// WithText sets the post text
func WithText(text string) PostOption {
	return func(p *postModel.Post) {
		p.Text = text
	}
}

// WithDate sets the post date
func WithDate(date time.Time) PostOption {
	return func(p *postModel.Post) {
		p.Date = date
	}
}

// WithLikes sets the likes count
func WithLikes(likes int) PostOption {
	return func(p *postModel.Post) {
		p.Likes = likes
	}
}

// WithComments sets the comments count
func WithComments(comments int) PostOption {
	return func(p *postModel.Post) {
		p.Comments = comments
	}
}

// WithShares sets the shares count
func WithShares(shares int) PostOption {
	return func(p *postModel.Post) {
		p.Shares = shares
	}
}

// WithCategory sets the category
func WithCategory(category string) PostOption {
	return func(p *postModel.Post) {
		p.Category = category
	}
}

// WithEngagementRate sets the engagement rate
func WithEngagementRate(rate float64) PostOption {
	return func(p *postModel.Post) {
		p.EngagementRate = rate
	}
}

// WithLocation sets the location
func WithLocation(location string) PostOption {
	return func(p *postModel.Post) {
		p.Location = &location
	}
}

// WithImageSVG sets the inline image
func WithImageSVG(svg string) PostOption {
	return func(p *postModel.Post) {
		p.ImageSVG = &svg
	}
}
