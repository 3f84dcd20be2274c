package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"savings-ledger/internal/adapter/repository/mysql"
	"savings-ledger/internal/config"
	"savings-ledger/internal/infrastructure/db"
	"savings-ledger/internal/usecase/report"
)

func newSummaryCmd(cfg func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the active cycle's group summary as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gdb, err := db.OpenGorm(cfg())
			if err != nil {
				return err
			}
			uc := report.NewUsecase(
				mysql.NewMemberRepository(gdb),
				mysql.NewCycleRepository(gdb),
				mysql.NewContributionRepository(gdb),
				mysql.NewLoanRepository(gdb),
				mysql.NewRepaymentRepository(gdb),
			)
			s, err := uc.Summary(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		},
	}
}
