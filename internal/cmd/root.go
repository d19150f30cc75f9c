package cmd

import (
	"entrust_service/internal/cmd/migrate"
	"entrust_service/internal/cmd/serve"
	"entrust_service/internal/cmd/token"
	"entrust_service/pkg/config"
	"entrust_service/pkg/logger"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the entrust_service root command.
func NewRootCommand() *cobra.Command {
	cfg := new(config.Service)

	root := &cobra.Command{
		Use:          config.EnvConfig.Service,
		Short:        "Pet entrust listings and two-party chat",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Log = logger.Initialize(config.EnvConfig.Service, config.EnvConfig.LogPath)
			logger.Log.SetDebugMode(config.IsLocal())

			loaded, err := config.LoadConfig[config.Service](config.EnvConfig.Service, config.EnvConfig.YAMLPath)
			if err != nil {
				return errors.Wrap(err, "load config")
			}
			if err := loaded.Validate(); err != nil {
				return err
			}
			*cfg = loaded
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Log.Sync()
		},
	}

	serve.Register(root, cfg)
	migrate.Register(root, cfg)
	token.Register(root, cfg)

	return root
}
