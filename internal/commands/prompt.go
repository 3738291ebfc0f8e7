package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// isoDate is the stored date-of-birth format.
const isoDate = "2006-01-02"

// prompter reads line-oriented answers from an interactive session.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints the question and returns the trimmed answer line.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askAmount re-prompts until the answer parses as a decimal number.
// Amount-range checks stay with the ledger; this only guards syntax.
func (p *prompter) askAmount(question string) (decimal.Decimal, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return decimal.Zero, err
		}
		amount, err := decimal.NewFromString(answer)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid amount. Please enter a number.")
			continue
		}
		return amount, nil
	}
}

// isYes reports whether an answer means yes.
func isYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

// validName reports whether s is non-empty and all alphabetic.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}

// validPhone reports whether s is exactly 10 digits.
func validPhone(s string) bool {
	return len(s) == 10 && allDigits(s)
}

// validAadhar reports whether s is exactly 12 digits.
func validAadhar(s string) bool {
	return len(s) == 12 && allDigits(s)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// ageOn computes whole years between an ISO date of birth and today.
func ageOn(dob string, today time.Time) (int, error) {
	birth, err := time.Parse(isoDate, dob)
	if err != nil {
		return 0, err
	}
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age, nil
}
