package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/tunehawk/music-recommendation-service/internal/artwork"
	"github.com/tunehawk/music-recommendation-service/internal/cache"
	"github.com/tunehawk/music-recommendation-service/internal/catalog"
	"github.com/tunehawk/music-recommendation-service/internal/config"
	"github.com/tunehawk/music-recommendation-service/internal/handler"
	"github.com/tunehawk/music-recommendation-service/internal/model"
	"github.com/tunehawk/music-recommendation-service/internal/recommend"
	"github.com/tunehawk/music-recommendation-service/internal/repository"
	"github.com/tunehawk/music-recommendation-service/internal/router"
	"github.com/tunehawk/music-recommendation-service/internal/service"
	"github.com/tunehawk/music-recommendation-service/internal/similarity"
	"github.com/tunehawk/music-recommendation-service/seeds"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config %v", err)
	}

	ctx := context.Background()

	// ------------ PostgreSQL ---------------
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to parse database config %v", err)
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatalf("failed to connect to database %v", err)
	}
	defer pool.Close()

	if err := waitForDB(ctx, pool); err != nil {
		log.Fatalf("database not ready: %v", err)
	}
	log.Println("connected to PostgreSQL")

	// ------------ Run Migrations ---------------
	// for migrate-down using CLI command
	if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
		if err := migrateDown(ctx, pool); err != nil {
			log.Fatalf("failed to migrate down %v", err)
		}
		log.Println("migrations dropped")
		return
	}

	if err := migrateUp(ctx, pool); err != nil {
		log.Fatalf("failed to migrate up %v", err)
	}

	// ------------ Setup Seed Data ---------------
	if err := checkSeed(ctx, pool); err != nil {
		log.Fatalf("failed to check seed %v", err)
	}

	// ------------ Redis ---------------
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to parse redis url %v", err)
	}
	redisClient := redis.NewClient(redisOpts)
	resultCache := cache.NewCache(redisClient, cfg.CacheTTL)
	if err := resultCache.Ping(ctx); err != nil {
		log.Fatalf("redis not ready: %v", err)
	}
	log.Println("connected to Redis")

	// ------------ Load Artifacts ---------------
	repo := repository.New(pool)

	songRows, err := repo.LoadSongs(ctx)
	if err != nil {
		log.Fatalf("failed to load catalog %v", err)
	}
	cat := catalog.New(songRows)
	log.Printf("loaded catalog with %d rows", cat.Len())

	simScores, err := repo.LoadSimilarity(ctx, cat.Len())
	if err != nil {
		log.Fatalf("failed to load similarity matrix %v", err)
	}
	matrix, err := similarity.New(simScores, cat.Len())
	if err != nil {
		log.Fatalf("invalid similarity matrix %v", err)
	}

	factors, err := repo.LoadFactors(ctx)
	if err != nil {
		log.Fatalf("failed to load model factors %v", err)
	}
	predictor := model.NewClient(factors)

	// ------------ Recommendation Pipeline ---------------
	resolver := artwork.NewMemo(artwork.NewSearchClient(cfg.ArtworkSearchURL, cfg.ArtworkAPIToken, cfg.ArtworkTimeout))

	blender := recommend.NewBlender(
		recommend.NewContentBased(cat, matrix, resolver),
		recommend.NewProfileMatcher(cat),
		recommend.NewCollaborative(cat, predictor, resolver),
	)

	svc := service.NewService(blender, cat, resultCache)
	h := handler.NewHandler(svc)

	// ---------------- Server --------------------
	log.Printf("Server running on %s", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), router.Setup(h)))
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		log.Printf("waiting for database... (%d/30)", i+1)
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("database connection timeout after 30s")
}

func migrateDown(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.down.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	log.Println("migrations dropped successfully")
	return nil
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.up.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	log.Println("migrations applied successfully")
	return nil
}

func checkSeed(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM songs").Scan(&count); err != nil {
		return fmt.Errorf("check songs count: %w", err)
	}
	if count > 0 {
		log.Printf("database already seeded (%d songs), skipping", count)
		return nil
	}
	return seeds.Setup(ctx, pool)
}
