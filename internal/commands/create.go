package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/hrbank-dev/hrbank/internal/ledger"
)

// minAge is the minimum account-holder age in years.
const minAge = 18

func newCreateCommand() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new bank account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(dataDir)
			if err != nil {
				return err
			}
			return runCreate(e, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&dataDir, "data", ".", "data directory")

	return cmd
}

// runCreate drives the interactive account-creation flow. Each answer
// re-prompts until valid; an under-age applicant aborts the flow.
func runCreate(e *env, in io.Reader, out io.Writer) error {
	p := newPrompter(in, out)

	var name string
	for {
		answer, err := p.ask("Enter your name: ")
		if err != nil {
			return err
		}
		if validName(answer) {
			name = answer
			break
		}
		fmt.Fprintln(out, "Invalid name. Please enter only alphabetic characters.")
	}

	var dob string
	for {
		answer, err := p.ask("Enter your date of birth (YYYY-MM-DD): ")
		if err != nil {
			return err
		}
		age, err := ageOn(answer, time.Now())
		if err != nil {
			fmt.Fprintln(out, "Invalid date format. Please enter your date of birth in YYYY-MM-DD format.")
			continue
		}
		if age < minAge {
			fmt.Fprintln(out, "You must be at least 18 years old to create a savings account.")
			return nil
		}
		dob = answer
		break
	}

	var phone string
	for {
		answer, err := p.ask("Enter your phone number: ")
		if err != nil {
			return err
		}
		if validPhone(answer) {
			phone = answer
			break
		}
		fmt.Fprintln(out, "Invalid phone number. Please enter a 10-digit number.")
	}

	email, err := p.ask("Enter your email: ")
	if err != nil {
		return err
	}

	var aadhar string
	for {
		answer, err := p.ask("Enter your Aadhar card number: ")
		if err != nil {
			return err
		}
		if validAadhar(answer) {
			aadhar = answer
			break
		}
		fmt.Fprintln(out, "Invalid Aadhar number. Please enter a 12-digit number.")
	}

	var deposit decimal.Decimal
	for {
		amount, err := p.askAmount("Enter your initial deposit: ")
		if err != nil {
			return err
		}
		if amount.IsNegative() {
			fmt.Fprintln(out, "Deposit must not be negative.")
			continue
		}
		deposit = amount
		break
	}

	atmAnswer, err := p.ask("Do you want an ATM card? (yes/no): ")
	if err != nil {
		return err
	}

	password, err := p.ask("Enter a password: ")
	if err != nil {
		return err
	}

	acct, err := e.ledger.CreateAccount(ledger.CreateParams{
		Name:           name,
		Password:       password,
		InitialDeposit: deposit,
		DOB:            dob,
		Phone:          phone,
		Email:          email,
		Aadhar:         aadhar,
		ATMCard:        isYes(atmAnswer),
	})
	if err != nil {
		return err
	}

	e.autoCommit("create: account " + acct.Number)

	fmt.Fprintf(out, "Your account number: %s (Save this for login)\n", acct.Number)
	fmt.Fprintln(out, "Account created successfully!")
	return nil
}
