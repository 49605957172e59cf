package commands

import (
	"log/slog"
	"os"
	"time"

	"capscrape/lib/configutil"
	"capscrape/lib/restyutil"
	"capscrape/lib/scrapers/espncap"
	"capscrape/lib/serviceutil"
	"capscrape/lib/telemetry"
	"capscrape/services/capsheet"

	"github.com/spf13/cobra"
)

type Config struct {
	BaseUrl      string  `json:"base_url"`
	StartYear    int     `json:"start_year"`
	EndYear      int     `json:"end_year"`
	Output       string  `json:"output"`
	DelaySeconds float64 `json:"delay_seconds"`
}

var defaultConfig = Config{
	BaseUrl:      espncap.DefaultBaseUrl,
	StartYear:    2011,
	EndYear:      2024,
	Output:       "data/team_cap_2011_2024.csv",
	DelaySeconds: 1,
}

var (
	scrapeStartYear *int
	scrapeEndYear   *int
	scrapeOutput    *string
	scrapeDelay     *float64
	scrapeDebugHttp *bool
)

func init() {
	scrapeStartYear = scrapeCmd.Flags().Int("start-year", defaultConfig.StartYear, "First season to scrape.")
	scrapeEndYear = scrapeCmd.Flags().Int("end-year", defaultConfig.EndYear, "Last season to scrape (inclusive).")
	scrapeOutput = scrapeCmd.Flags().String("output", defaultConfig.Output, "The CSV file to write the dataset to.")
	scrapeDelay = scrapeCmd.Flags().Float64("delay", defaultConfig.DelaySeconds, "Minimum seconds between page requests.")
	scrapeDebugHttp = scrapeCmd.Flags().Bool("debug-http", false, "Dump every http exchange to .dev/resty/espncap.")
	rootCmd.AddCommand(scrapeCmd)
}

func loadConfig(cmd *cobra.Command) Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if os.IsNotExist(err) {
		cfg = defaultConfig
	} else if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}

	if cfg.BaseUrl == "" {
		cfg.BaseUrl = defaultConfig.BaseUrl
	}
	if cmd.Flags().Changed("start-year") || cfg.StartYear == 0 {
		cfg.StartYear = *scrapeStartYear
	}
	if cmd.Flags().Changed("end-year") || cfg.EndYear == 0 {
		cfg.EndYear = *scrapeEndYear
	}
	if cmd.Flags().Changed("output") || cfg.Output == "" {
		cfg.Output = *scrapeOutput
	}
	if cmd.Flags().Changed("delay") || cfg.DelaySeconds == 0 {
		cfg.DelaySeconds = *scrapeDelay
	}
	return cfg
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [--output <path/to/output.csv>]",
	Short: "Scrapes the configured season range, cleans it and writes the CSV dataset.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		cfg := loadConfig(cmd)

		tel, err := telemetry.SetupFromEnv(ctx, "capscrape")
		if err != nil {
			serviceutil.Fatal("failed to setup telemetry", err)
		}
		defer tel.Shutdown(ctx)
		telemetry.InstrumentPerfStats(ctx)

		client, err := espncap.NewClient(espncap.ClientOptions{BaseUrl: cfg.BaseUrl})
		if err != nil {
			serviceutil.Fatal("failed to initialize scrape client", err)
		}
		if *scrapeDebugHttp {
			client.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/espncap"))
		}

		slog.Info("scraping season range", "start_year", cfg.StartYear, "end_year", cfg.EndYear)

		t1 := time.Now()
		tables, err := capsheet.Scrape(ctx, client, capsheet.ScrapeOptions{
			StartYear: cfg.StartYear,
			EndYear:   cfg.EndYear,
			Interval:  time.Duration(cfg.DelaySeconds * float64(time.Second)),
		})
		if err != nil {
			serviceutil.Fatal("scrape interrupted", err)
		}

		records, err := capsheet.Clean(tables)
		if err != nil {
			serviceutil.Fatal("failed to clean scraped tables", err)
		}

		err = capsheet.Export(records, cfg.Output)
		if err != nil {
			serviceutil.Fatal("failed to export dataset", err)
		}
		t2 := time.Now()

		capsheet.Summarize(records).Render(os.Stdout)
		slog.Info("scraping time", "seconds", t2.Sub(t1).Seconds(), "output", cfg.Output)
	},
}
