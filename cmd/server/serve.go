package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/frkandris/opinions/internal/common/clock"
	"github.com/frkandris/opinions/internal/common/roomcode"
	"github.com/frkandris/opinions/internal/common/uuid"
	"github.com/frkandris/opinions/internal/handlers/web"
	gameRepo "github.com/frkandris/opinions/internal/repositories/game"
	opinionRepo "github.com/frkandris/opinions/internal/repositories/opinion"
	playerRepo "github.com/frkandris/opinions/internal/repositories/player"
	voteRepo "github.com/frkandris/opinions/internal/repositories/vote"
	gameService "github.com/frkandris/opinions/internal/services/game"
	syncService "github.com/frkandris/opinions/internal/services/sync"
	"github.com/frkandris/opinions/internal/turns"
)

const shutdownTimeout = 10 * time.Second

func serve(ctx context.Context, cfg *config) error {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.redisAddr,
		Password: cfg.redisPassword,
		DB:       0,
	})
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return err
	}

	gameRepository, err := gameRepo.NewRedis(&gameRepo.Config{RedisClient: redisClient})
	if err != nil {
		return err
	}

	playerRepository, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: redisClient})
	if err != nil {
		return err
	}

	opinionRepository, err := opinionRepo.NewRedis(&opinionRepo.Config{RedisClient: redisClient})
	if err != nil {
		return err
	}

	voteRepository, err := voteRepo.NewRedis(&voteRepo.Config{RedisClient: redisClient})
	if err != nil {
		return err
	}

	syncSvc, err := syncService.New(&syncService.Config{RedisClient: redisClient})
	if err != nil {
		return err
	}

	gameSvc, err := gameService.New(&gameService.Config{
		TurnMode:      turns.Mode(cfg.turnMode),
		MaxPlayers:    cfg.maxPlayers,
		GameRepo:      gameRepository,
		PlayerRepo:    playerRepository,
		OpinionRepo:   opinionRepository,
		VoteRepo:      voteRepository,
		Publisher:     syncSvc,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		CodeGenerator: roomcode.New(nil),
	})
	if err != nil {
		return err
	}

	handler, err := web.New(&web.Config{
		GameService: gameSvc,
		SyncService: syncSvc,
		BaseURL:     cfg.externalURL(),
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    cfg.listenAddr(),
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s (base URL %s)", cfg.listenAddr(), cfg.externalURL())
		errCh <- server.ListenAndServe()
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	case sig := <-sc:
		log.Printf("received %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	log.Println("server has been shut down")
	return nil
}
