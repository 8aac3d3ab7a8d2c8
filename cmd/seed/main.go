// Command main runs the demo data seeder for the SocialEcho admin console.
package main

import (
	"flag"
	"log"

	"socialecho/internal/bootstrap"
	"socialecho/internal/config"
	"socialecho/internal/seed"
)

func main() {
	numCommunities := flag.Int("communities", 8, "Number of demo communities to create")
	numModerators := flag.Int("moderators", 6, "Number of moderator-role users to create")
	numMembers := flag.Int("members", 30, "Number of member users to create")
	postsPer := flag.Int("posts", 12, "Posts per community")
	shouldClean := flag.Bool("clean", true, "Purge previous demo data before seeding")
	cleanOnly := flag.Bool("clean-only", false, "Only purge demo data, do not reseed")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, _, err := bootstrap.InitRuntime(cfg, bootstrap.Options{SkipRedis: true})
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}

	if *cleanOnly {
		if err := seed.Clean(db); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
		log.Println("Demo data purged")
		return
	}

	opts := seed.Options{
		NumCommunities:    *numCommunities,
		NumModerators:     *numModerators,
		NumMembers:        *numMembers,
		PostsPerCommunity: *postsPer,
		ShouldClean:       *shouldClean,
	}
	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
