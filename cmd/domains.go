// This file implements the domains command for inspecting the business
// domain registry and trying out classification.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/veltaire/planforge/core/domain"
)

var (
	domainsJSON      bool
	classifyIndustry string
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List the supported business domains",
	Long: `List the business domains planforge can classify opportunities into,
with each domain's specialist roles and key metrics.

Examples:
  planforge domains
  planforge domains --json
  planforge domains classify "invoice processing automation"`,
	RunE: runDomains,
}

var domainsClassifyCmd = &cobra.Command{
	Use:   "classify [text]",
	Short: "Classify free text into a business domain",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDomainsClassify,
}

func init() {
	domainsCmd.Flags().BoolVar(&domainsJSON, "json", false, "emit JSON output")
	domainsClassifyCmd.Flags().StringVar(&classifyIndustry, "industry", "", "industry hint for classification")

	domainsCmd.AddCommand(domainsClassifyCmd)
	rootCmd.AddCommand(domainsCmd)
}

func runDomains(cmd *cobra.Command, args []string) error {
	registry := domain.NewRegistry()

	if domainsJSON {
		type entry struct {
			Domain     string   `json:"domain"`
			Roles      []string `json:"roles"`
			KeyMetrics []string `json:"keyMetrics"`
			Regulated  bool     `json:"regulated"`
		}
		var entries []entry
		for _, d := range domain.ValidDomains() {
			rec, _ := registry.Get(d)
			roles := make([]string, 0, len(rec.Roles))
			for _, r := range rec.Roles {
				roles = append(roles, r.Title)
			}
			entries = append(entries, entry{
				Domain:     d.String(),
				Roles:      roles,
				KeyMetrics: rec.KeyMetrics,
				Regulated:  d.IsRegulated(),
			})
		}
		return printJSON(entries)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DOMAIN\tROLES\tREGULATED")
	for _, d := range domain.ValidDomains() {
		rec, _ := registry.Get(d)
		regulated := ""
		if d.IsRegulated() {
			regulated = "yes"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", d.String(), len(rec.Roles), regulated)
	}
	return w.Flush()
}

func runDomainsClassify(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	classifier := domain.NewClassifier()
	d := classifier.Classify("", text, classifyIndustry)
	fmt.Println(d.String())
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, string(data))
	return err
}
