package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/Rocco1585/agentur-dashboard-pro-sub000/internal/domain"
	"github.com/Rocco1585/agentur-dashboard-pro-sub000/pkg/client"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type options struct {
	server      string
	sessionFile string
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "agentur-crm", "session.json")
}

func defaultServer() string {
	if server := os.Getenv("CRM_SERVER"); server != "" {
		return server
	}
	return "http://localhost:8000"
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "crmctl",
		Short:         "Linha de comando do painel da agência",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.server, "server", defaultServer(), "URL da API")
	root.PersistentFlags().StringVar(&opts.sessionFile, "session", defaultSessionFile(), "arquivo da sessão")

	root.AddCommand(
		newLoginCmd(opts),
		newLogoutCmd(opts),
		newWhoamiCmd(opts),
		newCustomersCmd(opts),
		newPipelineCmd(opts),
		newStatsCmd(opts),
	)
	return root
}

// connect abre o cliente e recupera a sessão gravada
func connect(opts *options, requireSession bool) (*client.Client, error) {
	c := client.New(opts.server, client.WithSessionStore(client.FileSessionStore{Path: opts.sessionFile}))
	session, err := c.Restore()
	if err != nil {
		return nil, err
	}
	if requireSession && session == nil {
		return nil, fmt.Errorf("nicht angemeldet, bitte zuerst 'crmctl login' ausführen")
	}
	return c, nil
}

func printJSON(w io.Writer, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func newLoginCmd(opts *options) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Abre uma sessão",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := connect(opts, false)
			if err != nil {
				return err
			}

			session, err := c.Login(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Angemeldet als %s (%s)\n", session.User.Name, session.User.UserRole)
			return err
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "senha")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Encerra a sessão e apaga o arquivo",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := connect(opts, true)
			if err != nil {
				return err
			}
			if err := c.Logout(cmd.Context()); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Abgemeldet")
			return err
		},
	}
}

func newWhoamiCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Mostra o usuário da sessão",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := connect(opts, true)
			if err != nil {
				return err
			}
			var me domain.TeamMember
			if err := c.Do(cmd.Context(), http.MethodGet, "/v1/me", nil, &me); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), me)
		},
	}
}

func newCustomersCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Clientes",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Lista os clientes",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := connect(opts, true)
			if err != nil {
				return err
			}
			customers := client.NewCollection(c, "/v1/customers", func(c *domain.Customer) string { return c.ID })
			defer customers.Close()

			items, err := customers.Fetch(cmd.Context(), nil)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tPRIORITÄT\tZAHLUNG\tTERMINE")
			for _, customer := range items {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d/%d\n",
					customer.ID, customer.Name, customer.Priority, customer.PaymentStatus,
					customer.CompletedAppointments, customer.BookedAppointments)
			}
			return tw.Flush()
		},
	}

	var req domain.CreateCustomerRequest
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Cria um cliente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := connect(opts, true)
			if err != nil {
				return err
			}
			customers := client.NewCollection(c, "/v1/customers", func(c *domain.Customer) string { return c.ID })
			defer customers.Close()

			req.Name = args[0]
			created, err := customers.Add(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), created)
		},
	}
	add.Flags().StringVar(&req.Email, "email", "", "e-mail")
	add.Flags().StringVar(&req.Contact, "contact", "", "pessoa de contato")
	add.Flags().StringVar(&req.Phone, "phone", "", "telefone")

	cmd.AddCommand(list, add)
	return cmd
}

func newPipelineCmd(opts *options) *cobra.Command {
	var portal bool

	newBoard := func(c *client.Client) *client.Board {
		if portal {
			return client.NewPortalBoard(c)
		}
		return client.NewBoard(c)
	}

	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Quadro do pipeline",
	}
	cmd.PersistentFlags().BoolVar(&portal, "portal", false, "usa o portal do cliente")

	show := &cobra.Command{
		Use:   "show",
		Short: "Mostra as colunas do quadro",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := connect(opts, true)
			if err != nil {
				return err
			}
			board := newBoard(c)
			defer board.Close()

			loaded, err := board.Load(cmd.Context())
			if err != nil {
				return err
			}
			for _, column := range loaded.Columns {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", column.Label, len(column.Appointments))
				for _, a := range column.Appointments {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s %s  %s\n", a.ID, a.Date, a.Time, a.CustomerName)
				}
			}
			return nil
		},
	}

	move := &cobra.Command{
		Use:   "move <appointment-id> <stage>",
		Short: "Move um compromisso para outra etapa",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stage, err := domain.ParseStage(args[1])
			if err != nil {
				return err
			}

			c, err := connect(opts, true)
			if err != nil {
				return err
			}
			board := newBoard(c)
			defer board.Close()

			if _, err := board.Load(cmd.Context()); err != nil {
				return err
			}
			moved, err := board.Move(cmd.Context(), args[0], stage)
			if err != nil {
				return err
			}
			if !moved {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "Keine Änderung")
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Verschoben nach %s\n", stage.Label())
			return err
		},
	}

	cmd.AddCommand(show, move)
	return cmd
}

func newStatsCmd(opts *options) *cobra.Command {
	var window string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Indicadores do painel (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := connect(opts, true)
			if err != nil {
				return err
			}
			query := url.Values{}
			if window != "" {
				query.Set("window", window)
			}

			var stats map[string]any
			if err := c.Do(cmd.Context(), http.MethodGet, "/v1/dashboard/stats?"+query.Encode(), nil, &stats); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), stats)
		},
	}
	cmd.Flags().StringVarP(&window, "window", "w", "", "today, week, month, year ou all")
	return cmd
}
