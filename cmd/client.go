package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"trading-journal/config"
	"trading-journal/pkg/journalclient"
	"trading-journal/pkg/session"
)

var (
	loginEmail    string
	loginPassword string
	statsAccount  uint

	tradesAccount uint
	tradesStatus  string
	tradeID       uint
	closeExit     float64
	closePnL      float64
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Talk to a running journal API",
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and save the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, _, err := loadClientSession()
		if err != nil {
			return err
		}
		c := journalclient.New(cfg.Client.BaseURL, cfg.Client.Timeout, nil)
		sess, err := c.Login(cmd.Context(), loginEmail, loginPassword)
		if err != nil {
			return err
		}
		if err := store.Save(sess); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (session saved to %s)\n", sess.Email, store.Path())
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, _, err := loadClientSession()
		if err != nil {
			return err
		}
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
		return nil
	},
}

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List your trading accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAuthedClient()
		if err != nil {
			return err
		}
		accounts, err := c.Accounts(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tINITIAL\tCURRENT\tCURRENCY")
		for _, a := range accounts {
			fmt.Fprintf(w, "%d\t%s\t%.2f\t%.2f\t%s\n", a.ID, a.AccountName, a.InitialCapital, a.CurrentCapital, a.Currency)
		}
		return w.Flush()
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the statistics report of an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAuthedClient()
		if err != nil {
			return err
		}
		report, err := c.Statistics(cmd.Context(), statsAccount)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

var tradesCmd = &cobra.Command{
	Use:   "trades",
	Short: "List your trades",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAuthedClient()
		if err != nil {
			return err
		}
		trades, err := c.Trades(cmd.Context(), tradesAccount, tradesStatus)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tACCOUNT\tASSET\tSTATUS\tPNL\tDATE")
		for _, t := range trades {
			pnl, date := "-", "-"
			if t.PnLUSD != nil {
				pnl = fmt.Sprintf("%.2f", *t.PnLUSD)
			}
			if t.TradeDate != nil {
				date = t.TradeDate.Format("2006-01-02")
			}
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n", t.ID, t.AccountID, t.Asset, t.Status, pnl, date)
		}
		return w.Flush()
	},
}

var closeTradeCmd = &cobra.Command{
	Use:   "close-trade",
	Short: "Mark a trade closed with its exit price and realized P&L",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAuthedClient()
		if err != nil {
			return err
		}
		fields := map[string]interface{}{
			"status":    "closed",
			"pnl_usd":   closePnL,
			"exit_date": time.Now().UTC().Format(time.RFC3339),
		}
		if cmd.Flags().Changed("exit-price") {
			fields["exit_price"] = closeExit
		}
		trade, err := c.UpdateTrade(cmd.Context(), tradeID, fields)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Trade %d closed (%s)\n", trade.ID, trade.Asset)
		return nil
	},
}

var deleteTradeCmd = &cobra.Command{
	Use:   "delete-trade",
	Short: "Delete a trade",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAuthedClient()
		if err != nil {
			return err
		}
		if err := c.DeleteTrade(cmd.Context(), tradeID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Trade %d deleted\n", tradeID)
		return nil
	},
}

func loadClientSession() (*config.Config, *journalclient.SessionStore, *session.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	store, err := journalclient.NewSessionStore(cfg.Client.SessionPath)
	if err != nil {
		return nil, nil, nil, err
	}
	sess, err := store.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, store, sess, nil
}

func newAuthedClient() (*journalclient.Client, error) {
	cfg, _, sess, err := loadClientSession()
	if err != nil {
		return nil, err
	}
	if sess == nil || !sess.Valid(time.Now()) {
		return nil, journalclient.ErrNotLoggedIn
	}
	return journalclient.New(cfg.Client.BaseURL, cfg.Client.Timeout, sess), nil
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", os.Getenv("JOURNAL_PASSWORD"), "password (defaults to $JOURNAL_PASSWORD)")
	_ = loginCmd.MarkFlagRequired("email")

	statsCmd.Flags().UintVar(&statsAccount, "account", 0, "account id")
	_ = statsCmd.MarkFlagRequired("account")

	tradesCmd.Flags().UintVar(&tradesAccount, "account", 0, "only this account")
	tradesCmd.Flags().StringVar(&tradesStatus, "status", "", "open, closed or cancelled")

	closeTradeCmd.Flags().UintVar(&tradeID, "id", 0, "trade id")
	closeTradeCmd.Flags().Float64Var(&closePnL, "pnl", 0, "realized P&L in USD")
	closeTradeCmd.Flags().Float64Var(&closeExit, "exit-price", 0, "exit price")
	_ = closeTradeCmd.MarkFlagRequired("id")
	_ = closeTradeCmd.MarkFlagRequired("pnl")

	deleteTradeCmd.Flags().UintVar(&tradeID, "id", 0, "trade id")
	_ = deleteTradeCmd.MarkFlagRequired("id")

	clientCmd.AddCommand(loginCmd, logoutCmd, accountsCmd, statsCmd, tradesCmd, closeTradeCmd, deleteTradeCmd)
}
