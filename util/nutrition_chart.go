package util

import (
	"fmt"
	"io"

	"cardapio-server/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderNutritionChart writes an HTML page with one bar group per dish:
// calories, protein, carbohydrates and fat.
func RenderNutritionChart(w io.Writer, title string, items []models.MenuItem) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d prato(s)", len(items)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	names := make([]string, 0, len(items))
	calories := make([]opts.BarData, 0, len(items))
	protein := make([]opts.BarData, 0, len(items))
	carbs := make([]opts.BarData, 0, len(items))
	fat := make([]opts.BarData, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
		calories = append(calories, opts.BarData{Value: item.Calories})
		protein = append(protein, opts.BarData{Value: item.Protein})
		carbs = append(carbs, opts.BarData{Value: item.Carbs})
		fat = append(fat, opts.BarData{Value: item.Fat})
	}

	bar.SetXAxis(names).
		AddSeries("Calorias (kcal)", calories).
		AddSeries("Proteínas (g)", protein).
		AddSeries("Carboidratos (g)", carbs).
		AddSeries("Gorduras (g)", fat)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
