package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/frkandris/opinions/internal/turns"
)

type config struct {
	bind          string
	port          int
	redisAddr     string
	redisPassword string
	baseURL       string
	turnMode      string
	maxPlayers    int
}

func (c *config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}

	if c.redisAddr == "" {
		return errors.New("redis address cannot be empty")
	}

	switch turns.Mode(c.turnMode) {
	case turns.ModeConcurrent, turns.ModeSharedDevice:
	default:
		return fmt.Errorf("invalid turn mode %q (must be %q or %q)", c.turnMode, turns.ModeConcurrent, turns.ModeSharedDevice)
	}

	return nil
}

// listenAddr is where the server binds; externalURL is what goes into QR
// codes, falling back to the listen address when no base URL is set.
func (c *config) listenAddr() string {
	return fmt.Sprintf("%s:%d", c.bind, c.port)
}

func (c *config) externalURL() string {
	if c.baseURL != "" {
		return strings.TrimRight(c.baseURL, "/")
	}
	return fmt.Sprintf("http://%s", c.listenAddr())
}

func newCmd(cfg *config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("OPINIONS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "opinions-server",
		Short:         "The anonymous opinions party game, served over HTTP.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: OPINIONS_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: OPINIONS_PORT)")
	fs.StringVar(&cfg.redisAddr, "redis-addr", "localhost:6379", "redis host:port (env: OPINIONS_REDIS_ADDR)")
	fs.StringVar(&cfg.redisPassword, "redis-password", "", "redis password (env: OPINIONS_REDIS_PASSWORD)")
	fs.StringVar(&cfg.baseURL, "base-url", "", "externally visible URL, used in join QR codes (env: OPINIONS_BASE_URL)")
	fs.StringVar(&cfg.turnMode, "turn-mode", string(turns.ModeConcurrent), "voting mode, concurrent or shared_device (env: OPINIONS_TURN_MODE)")
	fs.IntVar(&cfg.maxPlayers, "max-players", 0, "lobby size cap, 0 for the default (env: OPINIONS_MAX_PLAYERS)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("opinions-server v{{.Version}}\n")

	return cmd
}
