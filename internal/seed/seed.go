// Package seed provides database seeding utilities for development and
// testing. Demo records are tagged with a name prefix so they can be purged
// and regenerated without touching real data.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"socialecho/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// DemoPrefix marks every community created by the seeder.
const DemoPrefix = "Demo - "

// Options configuration for the seeder
type Options struct {
	NumCommunities    int
	NumModerators     int
	NumMembers        int
	PostsPerCommunity int
	ShouldClean       bool
}

func (o *Options) applyDefaults() {
	if o.NumCommunities <= 0 {
		o.NumCommunities = 8
	}
	if o.NumModerators <= 0 {
		o.NumModerators = 6
	}
	if o.NumMembers <= 0 {
		o.NumMembers = 30
	}
	if o.PostsPerCommunity <= 0 {
		o.PostsPerCommunity = 12
	}
}

var communityTopics = []string{
	"Gardening", "Cooking", "Hiking", "Photography", "Astronomy",
	"Woodworking", "Cycling", "Chess", "Homebrewing", "Painting",
	"Running", "Birdwatching", "Pottery", "Climbing", "Baking",
}

var defaultRules = []models.Rule{
	{Rule: "Be respectful", Description: "Treat other members the way you want to be treated."},
	{Rule: "Stay on topic", Description: "Keep posts relevant to the community's subject."},
	{Rule: "No spam", Description: "No advertising, self-promotion, or repeated posts."},
}

// Run populates the database with demo communities, users, and content.
func Run(db *gorm.DB, opts Options) error {
	opts.applyDefaults()
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if opts.ShouldClean {
		if err := Clean(db); err != nil {
			return fmt.Errorf("clean previous demo data: %w", err)
		}
	}

	moderators := make([]*models.User, 0, opts.NumModerators)
	for i := 0; i < opts.NumModerators; i++ {
		u, err := createDemoUser(db, models.RoleModerator)
		if err != nil {
			return err
		}
		moderators = append(moderators, u)
	}

	members := make([]*models.User, 0, opts.NumMembers)
	for i := 0; i < opts.NumMembers; i++ {
		u, err := createDemoUser(db, models.RoleGeneral)
		if err != nil {
			return err
		}
		members = append(members, u)
	}

	topics := r.Perm(len(communityTopics))
	n := opts.NumCommunities
	if n > len(communityTopics) {
		n = len(communityTopics)
	}

	for i := 0; i < n; i++ {
		topic := communityTopics[topics[i]]
		community := &models.Community{
			Name:        DemoPrefix + topic,
			Description: gofakeit.Paragraph(1, 3, 8, " "),
			Category:    strings.ToLower(topic),
			Rules:       append([]models.Rule{}, defaultRules...),
		}
		if err := db.Create(community).Error; err != nil {
			return fmt.Errorf("create demo community %q: %w", community.Name, err)
		}

		if err := linkDemoUsers(db, community, moderators, members, r); err != nil {
			return err
		}
		if err := createDemoContent(db, community, members, opts.PostsPerCommunity, r); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d demo communities with %d moderators and %d members",
		n, opts.NumModerators, opts.NumMembers)
	return nil
}

// Clean removes every community carrying the demo prefix along with its
// content and links. Demo users are left in place; they carry no state of
// their own.
func Clean(db *gorm.DB) error {
	var communities []*models.Community
	if err := db.Where("name LIKE ?", DemoPrefix+"%").Find(&communities).Error; err != nil {
		return err
	}

	for _, c := range communities {
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(
				"DELETE FROM comments WHERE post_id IN (SELECT id FROM posts WHERE community_id = ?)", c.ID,
			).Error; err != nil {
				return err
			}
			if err := tx.Where("community_id = ?", c.ID).Delete(&models.Post{}).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM community_members WHERE community_id = ?", c.ID).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM community_moderators WHERE community_id = ?", c.ID).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM community_rules WHERE community_id = ?", c.ID).Error; err != nil {
				return err
			}
			return tx.Delete(&models.Community{}, c.ID).Error
		})
		if err != nil {
			return fmt.Errorf("purge demo community %q: %w", c.Name, err)
		}
	}
	return nil
}

func createDemoUser(db *gorm.DB, role models.UserRole) (*models.User, error) {
	name := gofakeit.Name()
	u := &models.User{
		Name:   name,
		Email:  fmt.Sprintf("%s.%s@demo.local", gofakeit.Username(), gofakeit.LetterN(4)),
		Avatar: fmt.Sprintf("https://picsum.photos/seed/%s/200/200", gofakeit.UUID()),
		Role:   role,
	}
	if err := db.Create(u).Error; err != nil {
		return nil, fmt.Errorf("create demo user %q: %w", name, err)
	}
	return u, nil
}

func linkDemoUsers(db *gorm.DB, community *models.Community, moderators, members []*models.User, r *rand.Rand) error {
	// One or two moderators per community.
	numMods := 1 + r.Intn(2)
	for _, idx := range r.Perm(len(moderators))[:numMods] {
		if err := db.Exec(
			"INSERT INTO community_moderators (community_id, user_id) VALUES (?, ?)",
			community.ID, moderators[idx].ID,
		).Error; err != nil {
			return err
		}
	}

	numMembers := 3 + r.Intn(len(members)-2)
	for _, idx := range r.Perm(len(members))[:numMembers] {
		if err := db.Exec(
			"INSERT INTO community_members (community_id, user_id) VALUES (?, ?)",
			community.ID, members[idx].ID,
		).Error; err != nil {
			return err
		}
	}

	return db.Model(&models.Community{}).Where("id = ?", community.ID).Updates(map[string]any{
		"moderator_count": numMods,
		"member_count":    numMembers,
	}).Error
}

func createDemoContent(db *gorm.DB, community *models.Community, members []*models.User, numPosts int, r *rand.Rand) error {
	for i := 0; i < numPosts; i++ {
		author := members[r.Intn(len(members))]
		post := &models.Post{
			CommunityID: community.ID,
			UserID:      author.ID,
			Content:     gofakeit.Paragraph(1, 2, 10, " "),
		}
		if err := db.Create(post).Error; err != nil {
			return err
		}

		for j := 0; j < r.Intn(4); j++ {
			commenter := members[r.Intn(len(members))]
			comment := &models.Comment{
				PostID:  post.ID,
				UserID:  commenter.ID,
				Content: gofakeit.Sentence(8 + r.Intn(10)),
			}
			if err := db.Create(comment).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
