package cli

import (
	"github.com/spf13/cobra"

	"savings-ledger/internal/adapter/repository/mysql"
	"savings-ledger/internal/config"
	"savings-ledger/internal/infrastructure/db"
	"savings-ledger/internal/logger"
	"savings-ledger/internal/usecase/member"
)

func newMigrateCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema and bootstrap the first admin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := cfg()
			gdb, err := db.OpenGorm(c)
			if err != nil {
				return err
			}
			if err := db.Migrate(gdb); err != nil {
				return err
			}
			logger.Info().Str("driver", c.DBDriver).Msg("schema migrated")

			if c.BootstrapAdminEmail == "" {
				return nil
			}
			created, err := member.NewUsecase(mysql.NewMemberRepository(gdb)).
				EnsureAdmin(cmd.Context(), c.BootstrapAdminEmail, c.BootstrapAdminPassword)
			if err != nil {
				return err
			}
			logger.Info().Str("email", c.BootstrapAdminEmail).Bool("created", created).Msg("bootstrap admin checked")
			return nil
		},
	}
}
