package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streamvault/platform-service/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Print the fixture data a fresh store starts with",
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	st := store.NewSeeded()

	fmt.Println("users:")
	for _, u := range store.SeedUsers() {
		fmt.Printf("  %s  %-24s %s\n", u.ID, u.Email, u.Role)
	}
	fmt.Println("media:")
	for _, m := range st.ListMedia() {
		fmt.Printf("  %s  %-28s %s\n", m.ID, m.Title, m.Type)
	}
	fmt.Println("plans:")
	for _, p := range st.ListPlans() {
		fmt.Printf("  %s  %-12s $%.2f/mo\n", p.ID, p.Name, p.PricePerMonth)
	}
	return nil
}
