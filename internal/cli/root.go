// Package cli is the terminal surface of the property portal: customer
// login and favorites on top of the session controller, plus the
// guard-gated admin commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"property-portal/internal/api"
	"property-portal/internal/config"
	"property-portal/internal/event"
	"property-portal/internal/favorites"
	"property-portal/internal/session"
	"property-portal/internal/tokenstore"
)

var (
	apiURL     string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "portal",
	Short: "CLI for the property portal",
	Long: `portal is a command-line client for the property-listing service.

Customers can browse listings, sign in, and manage favorites; admins can
inspect the back office after an admin login.

Environment Variables:
  UPSTREAM_API_URL  Upstream API URL (default: http://localhost:3001)
  TOKEN_FILE        Session token file (default: ~/.property-portal/tokens.json)`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Upstream API URL (overrides UPSTREAM_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// env bundles everything a command needs: config, the upstream client,
// and the session machinery wired the same way on every invocation.
type env struct {
	cfg        *config.Config
	client     *api.Client
	store      *tokenstore.Store
	favorites  *favorites.Synchronizer
	controller *session.Controller
	guard      *session.Guard
}

func newEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if apiURL != "" {
		cfg.UpstreamURL = apiURL
	}

	client := api.New(cfg.UpstreamURL, cfg.UpstreamTimeout, api.WithRateLimit(cfg.UpstreamRPM))
	store := tokenstore.New(cfg.TokenFile)
	favs := favorites.New(client)

	return &env{
		cfg:        cfg,
		client:     client,
		store:      store,
		favorites:  favs,
		controller: session.NewController(store, favs, event.NewBus()),
		guard:      session.NewGuard(store, "portal admin login"),
	}, nil
}

func printJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
