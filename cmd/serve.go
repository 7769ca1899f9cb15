package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/skillsync/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "address for the API server to listen on (default :5000 or :$PORT)")

	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
}

// listenAddr prefers an explicitly configured address, then $PORT.
func listenAddr(cmd *cobra.Command, config *Config) string {
	explicit := cmd.Flags().Changed("listen") || viper.InConfig("server.listen") || os.Getenv(envPrefix+"_SERVER_LISTEN") != ""
	if !explicit {
		if port := strings.TrimSpace(viper.GetString("port")); port != "" {
			return ":" + port
		}
	}
	return config.Server.Listen
}

func runServe(cmd *cobra.Command, _ []string) error {
	l, err := newLogger()
	if err != nil {
		return err
	}
	defer l.Sync()

	config, err := getConfig()
	if err != nil {
		return fmt.Errorf("getting a config: %w", err)
	}

	c, extractor, err := newEngine(config, l)
	if err != nil {
		return err
	}

	server := api.NewServer(api.Config{
		ListenAddr: listenAddr(cmd, config),
		BodyLimit:  config.Server.BodyLimit,
	}, c, extractor, l)

	l.Info("starting the skillsync API", zap.String("version", version))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run()
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	select {
	case err := <-errCh:
		return err
	case sig := <-signals:
		l.Info("shutting down", zap.String("signal", sig.String()))
		if err := server.Shutdown(); err != nil {
			return fmt.Errorf("shutting down API server: %w", err)
		}
		if err := <-errCh; err != nil && !errors.Is(err, os.ErrClosed) {
			return err
		}
		return nil
	}
}
