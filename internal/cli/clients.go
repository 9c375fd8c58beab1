package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/martijn/wigest/internal/core/repository"
)

var clientsSearch string

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage clients",
	Long:  "Inspect the client base from the command line",
}

var clientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		filter := repository.ClientFilter{Limit: 100}
		if clientsSearch != "" {
			filter.Search = &clientsSearch
		}

		clients, err := services.ClientService.ListClients(cmd.Context(), filter)
		if err != nil {
			return fmt.Errorf("failed to list clients: %w", err)
		}

		total, err := services.ClientService.CountClients(cmd.Context(), filter)
		if err != nil {
			return fmt.Errorf("failed to count clients: %w", err)
		}

		if len(clients) == 0 {
			fmt.Println("No clients found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL")
		for _, client := range clients {
			fmt.Fprintf(w, "%d\t%s\t%s\n", client.ID, client.Name, client.Email)
		}
		w.Flush()

		fmt.Printf("\n%d client(s)\n", total)
		return nil
	},
}

func init() {
	clientsListCmd.Flags().StringVar(&clientsSearch, "search", "", "substring match on name or email")
	clientsCmd.AddCommand(clientsListCmd)
	rootCmd.AddCommand(clientsCmd)
}
