// Package shop runs the storefront client stack against a live server,
// standing in for the browser shell the original front end provided.
package shop

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"deskline/internal/client/api"
	"deskline/internal/client/storefront"
	"deskline/internal/compress"
	"deskline/internal/infrastructure/cache"
	"deskline/internal/infrastructure/config"
	"deskline/internal/infrastructure/localstore"
	"deskline/internal/infrastructure/storage"
	"deskline/internal/shared/logger"
)

var (
	apiURL     string
	userID     string
	userName   string
	userEmail  string
	avatarPath string
	toggleIDs  []string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Run a storefront session against the API",
		Long: `Walk the storefront client stack end to end: browse the catalog,
toggle favorites locally, sign in to merge them with the account set, and
optionally upload an avatar.`,
		RunE: run,
	}

	cmd.Flags().StringVar(&apiURL, "api", "http://localhost:4100", "Base URL of the deskline API")
	cmd.Flags().StringVarP(&userID, "user", "u", "u-demo", "User ID to sign in as")
	cmd.Flags().StringVar(&userName, "name", "Demo User", "Display name for a first-time profile")
	cmd.Flags().StringVar(&userEmail, "email", "demo@example.com", "Email for a first-time profile")
	cmd.Flags().StringVar(&avatarPath, "avatar", "", "Image file to upload as the avatar")
	cmd.Flags().StringSliceVar(&toggleIDs, "toggle", nil, "Item IDs to toggle as favorites before signing in")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	local, err := localstore.Open(&cfg.LocalStore)
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}
	defer local.Close()

	redisClient, err := cache.NewClient(&cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()

	client := api.NewClient(apiURL)

	items := storefront.NewItemListService(client)
	if err := items.Load(ctx); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	page := items.SetFromParams(map[string]string{})
	log.Infow("catalog loaded", "items", page.TotalItems, "pages", page.TotalPages)

	favorites := storefront.NewFavoritesEngine(local, cache.NewRedisFavoriteStore(redisClient), log)
	if err := favorites.Load(ctx); err != nil {
		return fmt.Errorf("failed to load favorites: %w", err)
	}

	for _, id := range toggleIDs {
		if err := favorites.Toggle(ctx, id); err != nil {
			log.Warnw("failed to toggle favorite", "item_id", id, "error", err)
		}
	}
	log.Infow("signed-out favorites", "items", favorites.Favorites())

	favorites.SignIn(ctx, userID)
	log.Infow("signed in", "user_id", userID, "favorites", favorites.Favorites())
	if notice, ok := favorites.Notice(); ok {
		fmt.Println(notice)
	}

	if avatarPath != "" {
		if err := uploadAvatar(ctx, cfg, redisClient, log); err != nil {
			return err
		}
	}

	return nil
}

func uploadAvatar(ctx context.Context, cfg *config.Config, redisClient *redis.Client, log logger.Interface) error {
	data, err := os.ReadFile(avatarPath)
	if err != nil {
		return fmt.Errorf("failed to read avatar file: %w", err)
	}

	objects, err := storage.NewFileStorage(&cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open object storage: %w", err)
	}

	worker := compress.NewWorker(log)
	defer worker.Close()

	profiles := storefront.NewProfileService(
		cache.NewRedisProfileStore(redisClient),
		worker,
		objects,
		log,
	)

	if _, err := profiles.Ensure(ctx, userID, userName, userEmail); err != nil {
		return fmt.Errorf("failed to ensure profile: %w", err)
	}

	url, warning, err := profiles.UploadAvatar(ctx, userID, filepath.Base(avatarPath), data)
	if err != nil {
		return fmt.Errorf("failed to upload avatar: %w", err)
	}
	if warning != "" {
		fmt.Println(warning)
	}
	log.Infow("avatar updated", "user_id", userID, "url", url)

	return nil
}
