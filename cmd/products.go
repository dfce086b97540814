package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/olivierh59500/aichair/internal/catalog"
	"github.com/olivierh59500/aichair/internal/config"
)

var (
	primary = lipgloss.NewStyle().Foreground(lipgloss.Color(config.PrimaryHex)).Bold(true)
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	card    = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 2).
		Width(72)
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Print the chair catalogue",
	Args:  cobra.NoArgs,
	Run:   listProducts,
}

func init() {
	rootCmd.AddCommand(productsCmd)
}

func listProducts(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, primary.Render(catalog.CollectionTitle))
	for _, p := range catalog.Products() {
		fmt.Fprintln(out, card.Render(renderProduct(p)))
	}
}

func renderProduct(p catalog.Product) string {
	var b strings.Builder
	b.WriteString(white.Bold(true).Render(p.Name))
	b.WriteString("  ")
	b.WriteString(primary.Render(catalog.FormatPrice(p.Price)))
	b.WriteString("\n")
	b.WriteString(dim.Render(p.Description))
	b.WriteString("\n\n")

	b.WriteString(white.Render(catalog.SpecsTitle))
	b.WriteString("\n")
	for _, s := range p.Specs {
		fmt.Fprintf(&b, "  %s %s\n", dim.Render(fmt.Sprintf("%-14s", s.Name)), white.Render(s.Value))
	}
	b.WriteString("\n")

	b.WriteString(white.Render(catalog.FeaturesTitle))
	for _, f := range p.Features {
		fmt.Fprintf(&b, "\n  %s %s", primary.Render("*"), white.Render(f.Title))
		fmt.Fprintf(&b, "\n    %s", dim.Render(f.Description))
	}
	return b.String()
}
