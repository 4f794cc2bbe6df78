package main

import (
	"fmt"
	"text/tabwriter"

	"burokrat-site/domain/contact"
	"burokrat-site/pkg/logger"
	"burokrat-site/utils"

	"github.com/spf13/cobra"
)

var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "Inspect stored contact submissions",
}

var submissionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List submissions, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		repo, closeDB, err := submissionRepository()
		if err != nil {
			return err
		}
		defer closeDB()

		subs, err := repo.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(subs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No submissions")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tNAME\tEMAIL\tPHONE\tSENT\tMESSAGE")
		for _, s := range subs {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%t\t%s\n",
				s.ID, s.CreatedAt.Format("02.01.2006 15:04"), s.Name, s.Email,
				utils.OrDefault(utils.FormatPhone(s.Phone).Display, "-"), s.EmailSent, utils.Truncate(s.Message, 50))
		}
		return w.Flush()
	},
}

var submissionsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count submissions by delivery outcome",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		repo, closeDB, err := submissionRepository()
		if err != nil {
			return err
		}
		defer closeDB()

		st, err := repo.Stats(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Total:        %d\n", st.Total)
		fmt.Fprintf(out, "Email sent:   %d\n", st.Sent)
		fmt.Fprintf(out, "Email failed: %d\n", st.Failed)
		fmt.Fprintf(out, "Success rate: %.1f%%\n", st.SuccessRate())
		return nil
	},
}

var submissionsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every stored submission",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		repo, closeDB, err := submissionRepository()
		if err != nil {
			return err
		}
		defer closeDB()

		n, err := repo.Count(cmd.Context())
		if err != nil {
			return err
		}
		if n > 0 && !force {
			return fmt.Errorf("refusing to delete %d submissions without --force", n)
		}

		deleted, err := repo.Reset(cmd.Context())
		if err != nil {
			return err
		}
		logger.Get().WithComponent("submissions").Warn("Submissions deleted", logger.Int64("deleted", deleted))
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d submissions\n", deleted)
		return nil
	},
}

func init() {
	submissionsResetCmd.Flags().Bool("force", false, "delete without asking")
	submissionsCmd.AddCommand(submissionsListCmd, submissionsStatsCmd, submissionsResetCmd)
	rootCmd.AddCommand(submissionsCmd)
}

func submissionRepository() (*contact.Repository, func(), error) {
	cfg, _, err := bootstrap()
	if err != nil {
		return nil, nil, err
	}
	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	return contact.NewRepository(db), func() { db.Close() }, nil
}
