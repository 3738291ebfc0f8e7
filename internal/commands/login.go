package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hrbank-dev/hrbank/internal/ledger"
)

func newLoginCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and manage an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(dataDir)
			if err != nil {
				return err
			}
			return runLogin(e, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")

	return cmd
}

// runLogin authenticates and then drives the user menu until logout.
func runLogin(e *env, in io.Reader, out io.Writer) error {
	p := newPrompter(in, out)

	number, err := p.ask("Enter your account number: ")
	if err != nil {
		return err
	}
	password, err := p.ask("Enter your password: ")
	if err != nil {
		return err
	}

	if _, err := e.ledger.Authenticate(number, password); err != nil {
		if errors.Is(err, ledger.ErrAuthFailed) {
			fmt.Fprintln(out, "Invalid account number or password.")
			return nil
		}
		return err
	}
	fmt.Fprintln(out, "Login successful!")

	for {
		fmt.Fprintln(out, "\nUser Menu:")
		fmt.Fprintln(out, "1. Deposit")
		fmt.Fprintln(out, "2. Withdraw")
		fmt.Fprintln(out, "3. Statement")
		fmt.Fprintln(out, "4. Logout")

		choice, err := p.ask("Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if err := runDeposit(e, p, out, number); err != nil {
				return err
			}
		case "2":
			if err := runWithdraw(e, p, out, number); err != nil {
				return err
			}
		case "3":
			if err := printStatement(e, out, number); err != nil {
				return err
			}
		case "4":
			fmt.Fprintln(out, "Logged out successfully.")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice. Please try again.")
		}
	}
}

// runDeposit re-prompts on retriable amount errors, then deposits.
func runDeposit(e *env, p *prompter, out io.Writer, number string) error {
	for {
		amount, err := p.askAmount("Enter amount to deposit: ")
		if err != nil {
			return err
		}

		balance, err := e.ledger.Deposit(number, amount)
		if errors.Is(err, ledger.ErrBadAmount) {
			fmt.Fprintln(out, "Amount must be greater than zero.")
			continue
		}
		if err != nil {
			return err
		}

		e.autoCommit(fmt.Sprintf("deposit: %s to %s", amount, number))
		fmt.Fprintf(out, "Deposit successful! Current balance: %s\n", balance)
		return nil
	}
}

// runWithdraw re-prompts on retriable amount errors, then withdraws.
func runWithdraw(e *env, p *prompter, out io.Writer, number string) error {
	for {
		amount, err := p.askAmount("Enter amount to withdraw: ")
		if err != nil {
			return err
		}

		balance, err := e.ledger.Withdraw(number, amount)
		if errors.Is(err, ledger.ErrBadAmount) {
			fmt.Fprintln(out, "Amount must be greater than zero.")
			continue
		}
		if errors.Is(err, ledger.ErrInsufficient) {
			fmt.Fprintln(out, "Insufficient balance.")
			continue
		}
		if err != nil {
			return err
		}

		e.autoCommit(fmt.Sprintf("withdraw: %s from %s", amount, number))
		fmt.Fprintf(out, "Withdrawal successful! Current balance: %s\n", balance)
		return nil
	}
}

// printStatement lists the account's transactions, oldest first.
func printStatement(e *env, out io.Writer, number string) error {
	txns, err := e.txns.ForAccount(number)
	if err != nil {
		return err
	}
	if len(txns) == 0 {
		fmt.Fprintln(out, "No transactions yet.")
		return nil
	}
	for _, txn := range txns {
		fmt.Fprintf(out, "%s  %-10s  %s\n", txn.Date.Format(isoDate), txn.Type, txn.Amount)
	}
	return nil
}
