package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/psds-microservice/support-bot/internal/config"
	"github.com/psds-microservice/support-bot/internal/store"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List stored orders from the data dir",
	RunE:  runOrders,
}

func runOrders(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	st, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	orders := st.LoadOrders()
	if len(orders) == 0 {
		fmt.Println("no orders")
		return nil
	}
	ids := make([]string, 0, len(orders))
	for id := range orders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		o := orders[id]
		fmt.Printf("%s: %s — %d %s, %s (%s, %s)\n", o.ID, o.Product, o.Price, cfg.Currency, o.Email, o.City, o.Delivery)
	}
	return nil
}
