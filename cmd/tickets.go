package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/psds-microservice/support-bot/internal/config"
	"github.com/psds-microservice/support-bot/internal/store"
)

var ticketsCmd = &cobra.Command{
	Use:   "tickets",
	Short: "List stored warranty tickets from the data dir",
	RunE:  runTickets,
}

func runTickets(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	st, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	tickets := st.LoadTickets()
	if len(tickets) == 0 {
		fmt.Println("no tickets")
		return nil
	}
	ids := make([]string, 0, len(tickets))
	for id := range tickets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		t := tickets[id]
		fmt.Printf("%s: %s | %s | %d history events\n", t.ID, t.Serial, t.Status, len(t.History))
	}
	return nil
}
