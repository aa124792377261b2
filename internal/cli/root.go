package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"microblog/internal/core/repository"
	"microblog/internal/core/service"
	"microblog/internal/infrastructure/sqlite"
	"microblog/pkg/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "microblog",
	Short: "Microblog - a minimal authenticated blogging app",
	Long: `Microblog is a small server-rendered blogging application.

It provides:
- User registration and login with bcrypt-hashed credentials
- Signed, expiring session tokens carried in an HTTP-only cookie
- Plain-text posts (markup is stripped before storage)
- A sqlite database in WAL mode
- CLI management of users and posts`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		// Load configuration
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
}

// initServices initializes the database, repositories and services
func initServices() (*Services, error) {
	db, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	userRepo := sqlite.NewUserRepository(db)
	postRepo := sqlite.NewPostRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecretKey, cfg.JWTAlgorithm)
	postService := service.NewPostService(postRepo)

	return &Services{
		DB:          db,
		UserRepo:    userRepo,
		PostRepo:    postRepo,
		AuthService: authService,
		PostService: postService,
	}, nil
}

// Services holds all initialized services
type Services struct {
	DB          *sqlite.DB
	UserRepo    repository.UserRepository
	PostRepo    repository.PostRepository
	AuthService *service.AuthService
	PostService *service.PostService
}

// Close closes all resources
func (s *Services) Close() {
	if s.DB != nil {
		s.DB.Close()
	}
}
