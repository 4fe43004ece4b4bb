package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	apppayroll "github.com/asnhr/hrms/internal/application/payroll"
	"github.com/asnhr/hrms/internal/domain/employee"
	"github.com/asnhr/hrms/internal/domain/payroll"
	"github.com/asnhr/hrms/internal/infrastructure/printing"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// calculator is a payroll service without persisted settings; the calculators
// never read them.
func calculator() *apppayroll.PayrollService {
	return apppayroll.NewPayrollService(nil, nil, payroll.CompanyProfile{}, zap.NewNop())
}

func parseAmount(flag, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("--%s must be a number, got %q", flag, raw)
	}
	return d, nil
}

func inr(d decimal.Decimal) string {
	return printing.FormatINR(d, 2)
}

func newCTCCmd(opts *rootOptions) *cobra.Command {
	var (
		amount   string
		yearly   bool
		regime   string
		month    int
		noESI    bool
		noMLWF   bool
		nonMetro bool
	)
	cmd := &cobra.Command{
		Use:   "ctc",
		Short: "Print the monthly breakup of a cost to company",
		Example: `  hrctl ctc --ctc 50000
  hrctl ctc --ctc 900000 --yearly --regime old -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctc, err := parseAmount("ctc", amount)
			if err != nil {
				return err
			}
			options := payroll.DefaultOptions()
			options.ESI = !noESI
			options.MLWF = !noMLWF
			options.MetroCity = !nonMetro
			breakup, err := calculator().CalculateCTC(context.Background(), apppayroll.CalculateCTCInput{
				CTC:     ctc,
				Yearly:  yearly,
				Regime:  regime,
				Options: &options,
				Month:   month,
			})
			if err != nil {
				return err
			}
			if opts.output == "json" {
				return writeJSON(cmd.OutOrStdout(), breakup)
			}
			return printBreakup(cmd.OutOrStdout(), breakup)
		},
	}
	cmd.Flags().StringVar(&amount, "ctc", "", "Cost to company in rupees")
	cmd.Flags().BoolVar(&yearly, "yearly", false, "Treat --ctc as an annual figure")
	cmd.Flags().StringVar(&regime, "regime", "new", "Income tax regime: new or old")
	cmd.Flags().IntVar(&month, "month", 0, "Payroll month 1-12 (default current month)")
	cmd.Flags().BoolVar(&noESI, "no-esi", false, "Skip ESI")
	cmd.Flags().BoolVar(&noMLWF, "no-mlwf", false, "Skip Maharashtra labour welfare fund")
	cmd.Flags().BoolVar(&nonMetro, "non-metro", false, "Use the non-metro HRA rule")
	_ = cmd.MarkFlagRequired("ctc")
	return cmd
}

func printBreakup(out io.Writer, b *payroll.CTCBreakup) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	rows := []struct {
		label  string
		amount decimal.Decimal
	}{
		{"Monthly CTC", b.MonthlyCTC},
		{"Annual CTC", b.AnnualCTC},
		{"Basic", b.Earnings.Basic},
		{"HRA", b.Earnings.HRA},
		{"DA", b.Earnings.DA},
		{"LTA", b.Earnings.LTA},
		{"Performance", b.Earnings.Performance},
		{"Special allowance", b.Earnings.Special},
		{"Employee PF", b.Deductions.PF},
		{"Employee ESIC", b.Deductions.ESIC},
		{"Professional tax", b.Deductions.ProfessionalTax},
		{"MLWF", b.Deductions.MLWF},
		{"Income tax", b.Deductions.IncomeTax},
		{"Total deductions", b.Deductions.Total},
		{"Net monthly", b.NetMonthly},
		{"Net yearly", b.NetYearly},
		{"Employer cost", b.EmployerCost},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t\n", r.label, inr(r.amount))
	}
	fmt.Fprintf(w, "Tax regime\t%s\t\n", b.Tax.Regime)
	return w.Flush()
}

func newTaxCmd(opts *rootOptions) *cobra.Command {
	var income, monthlyPF string
	cmd := &cobra.Command{
		Use:     "tax",
		Short:   "Compare annual income tax under the new and old regimes",
		Example: "  hrctl tax --income 1500000 --pf 1800",
		RunE: func(cmd *cobra.Command, _ []string) error {
			annual, err := parseAmount("income", income)
			if err != nil {
				return err
			}
			pf, err := parseAmount("pf", monthlyPF)
			if err != nil {
				return err
			}
			cmp, err := calculator().CompareTax(context.Background(), annual, pf)
			if err != nil {
				return err
			}
			if opts.output == "json" {
				return writeJSON(cmd.OutOrStdout(), cmp)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "\tNew regime\tOld regime")
			fmt.Fprintf(w, "Taxable income\t%s\t%s\n", inr(cmp.New.TaxableIncome), inr(cmp.Old.TaxableIncome))
			fmt.Fprintf(w, "Annual tax\t%s\t%s\n", inr(cmp.New.AnnualTax), inr(cmp.Old.AnnualTax))
			fmt.Fprintf(w, "Monthly tax\t%s\t%s\n", inr(cmp.New.MonthlyTax), inr(cmp.Old.MonthlyTax))
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recommended: %s regime (saves %s)\n", cmp.Recommended, inr(cmp.Savings))
			return nil
		},
	}
	cmd.Flags().StringVar(&income, "income", "", "Annual income in rupees")
	cmd.Flags().StringVar(&monthlyPF, "pf", "0", "Monthly employee PF, deducted under the old regime")
	_ = cmd.MarkFlagRequired("income")
	return cmd
}

func newBonusCmd(opts *rootOptions) *cobra.Command {
	var (
		amount string
		joined string
		fyYear int
	)
	cmd := &cobra.Command{
		Use:     "bonus",
		Short:   "Show the statutory bonus accrued over a fiscal year",
		Example: "  hrctl bonus --ctc 20000 --joined 2024-10-15 --fy 2024",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctc, err := parseAmount("ctc", amount)
			if err != nil {
				return err
			}
			if !ctc.IsPositive() {
				return fmt.Errorf("--ctc must be greater than zero")
			}
			e := &employee.Employee{Salary: ctc}
			if joined != "" {
				d, err := time.Parse(time.DateOnly, joined)
				if err != nil {
					return fmt.Errorf("--joined must be YYYY-MM-DD, got %q", joined)
				}
				e.JoinDate = d
			}
			fy := payroll.FiscalYearOf(time.Now())
			if cmd.Flags().Changed("fy") {
				fy = payroll.NewFiscalYear(fyYear, time.UTC)
			}
			row := payroll.BonusRowFor(e, fy)

			if opts.output == "json" {
				return writeJSON(cmd.OutOrStdout(), struct {
					FiscalYear payroll.FiscalYear `json:"fiscal_year"`
					payroll.BonusRow
				}{fy, row})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Bonus for %s\n", fy.Label())
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "Month\tWages\tBonus")
			for _, m := range row.Months {
				fmt.Fprintf(w, "%s\t%s\t%s\n", m.Month.Format("Jan 2006"), inr(m.Wages), inr(m.Bonus))
			}
			fmt.Fprintf(w, "Total\t%s\t%s\n", inr(row.TotalWages), inr(row.TotalBonus))
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&amount, "ctc", "", "Monthly cost to company in rupees")
	cmd.Flags().StringVar(&joined, "joined", "", "Join date YYYY-MM-DD (default: before the fiscal year)")
	cmd.Flags().IntVar(&fyYear, "fy", 0, "Fiscal year start, e.g. 2024 for 2024-25 (default current)")
	_ = cmd.MarkFlagRequired("ctc")
	return cmd
}
