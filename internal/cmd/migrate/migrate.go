package migrate

import (
	"time"

	chatrepo "entrust_service/internal/chat/repository"
	entrustrepo "entrust_service/internal/entrust/repository"
	"entrust_service/pkg/config"
	"entrust_service/pkg/database"
	"entrust_service/pkg/logger"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type migrator interface {
	AutoMigrate() error
}

func main(cfg *config.Service) error {
	db, err := database.NewMySQLConnection(database.Connection{
		DSN:           cfg.MySQL.MySQLDSN(),
		RetryCount:    cfg.MySQL.RetryCount,
		RetryInterval: time.Duration(cfg.MySQL.RetryInterval),
	})
	if err != nil {
		return err
	}
	defer database.CloseMySQL(db)

	return run(entrustrepo.NewEntrustRepository(db), chatrepo.NewRoomRepository(db))
}

func run(migrators ...migrator) error {
	for _, m := range migrators {
		if err := m.AutoMigrate(); err != nil {
			return errors.Wrap(err, "error running migrations")
		}
	}
	logger.Log.Info("migrations ran successfully")
	return nil
}

// Register migrate command.
func Register(root *cobra.Command, cfg *config.Service) {
	root.AddCommand(
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the entrusts, pets and chat_withs tables",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := main(cfg); err != nil {
					return err
				}
				cmd.Println("migrations ran successfully")
				return nil
			},
		},
	)
}
