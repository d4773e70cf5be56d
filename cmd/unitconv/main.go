package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"unitconv/internal/common/logger"
	"unitconv/internal/gemini"
	cu "unitconv/internal/ops/convert-units"
	ir "unitconv/internal/ops/interpret-request"
	"unitconv/pkg/catalog"
)

var (
	// Global flags
	verbose bool

	// convert flags
	category string

	// ask flags
	apiKey  string
	model   string
	baseURL string
	timeout time.Duration
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "unitconv",
	Short: "Unit conversions between Length, Weight, Temperature, and Volume",
	Long: `unitconv converts values between units of Length, Weight, Temperature,
and Volume, either from explicit arguments or from a natural-language
request answered by the Gemini completion API.

Examples:
  unitconv convert 5 feet meters --category Length
  unitconv ask "how many meters is 5 feet"
  unitconv categories`,
}

var convertCmd = &cobra.Command{
	Use:   "convert [value] [from-unit] [to-unit]",
	Short: "Convert a value between two units of one category",
	Long: `Converts a value between two units. The category must be one of
Length, Weight, Temperature, or Volume, and both units must belong to it.

Examples:
  unitconv convert 5 feet meters --category Length
  unitconv convert -- -40 Fahrenheit Celsius --category Temperature`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

var askCmd = &cobra.Command{
	Use:   "ask [request]",
	Short: "Convert from a natural-language request",
	Long: `Sends the request text to the Gemini completion API, recovers the
structured conversion from its reply, and runs the conversion.

Requires GEMINI_API_KEY (or --api-key).

Example:
  unitconv ask "how many meters is 5 feet"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List supported categories and their units",
	RunE:  runCategories,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	convertCmd.Flags().StringVarP(&category, "category", "c", "", "Measurement category (required)")
	convertCmd.MarkFlagRequired("category")

	askCmd.Flags().StringVar(&apiKey, "api-key", "", "Gemini API key (or set GEMINI_API_KEY)")
	askCmd.Flags().StringVar(&model, "model", gemini.DefaultModel, "Completion model")
	askCmd.Flags().StringVar(&baseURL, "base-url", "", "Override the Gemini API base URL")
	askCmd.Flags().DurationVar(&timeout, "timeout", gemini.DefaultTimeout, "Completion timeout")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func cliLogger() logger.Logger {
	if verbose {
		return logger.NewStructured("debug", "console")
	}
	return logger.NewNoOpLogger()
}

// runConvert executes the manual conversion path
func runConvert(cmd *cobra.Command, args []string) error {
	handler := cu.NewHandler(cu.LoadConfig(), &convertUnitsLoggerAdapter{cliLogger()})

	output, err := handler.Execute(context.Background(), &cu.Input{
		Value:    args[0],
		FromUnit: args[1],
		ToUnit:   args[2],
		Category: category,
	})
	if err != nil {
		return err
	}

	fmt.Println(output.Formatted)
	return nil
}

// runAsk executes the natural-language path: interpret, then convert.
// The credential is only required here; the other subcommands never
// talk to the provider.
func runAsk(cmd *cobra.Command, args []string) error {
	key := apiKey
	if key == "" {
		key = os.Getenv("GEMINI_API_KEY")
	}
	if key == "" {
		return fmt.Errorf("GEMINI_API_KEY is required: set the environment variable or pass --api-key")
	}

	log := cliLogger()

	client, err := gemini.NewClient(gemini.Config{
		APIKey:  key,
		Model:   model,
		BaseURL: baseURL,
		Timeout: timeout,
	}, &geminiLoggerAdapter{log})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	interpretHandler := ir.NewHandler(ir.LoadConfig(), client, &interpretRequestLoggerAdapter{log})
	request, err := interpretHandler.Execute(ctx, &ir.Input{Text: strings.Join(args, " ")})
	if err != nil {
		return err
	}

	convertHandler := cu.NewHandler(cu.LoadConfig(), &convertUnitsLoggerAdapter{log})
	output, err := convertHandler.Execute(ctx, &cu.Input{
		Value:    request.Value,
		FromUnit: request.FromUnit,
		ToUnit:   request.ToUnit,
		Category: string(request.Category),
	})
	if err != nil {
		return err
	}

	fmt.Println(output.Formatted)
	return nil
}

// runCategories prints the supported categories and their units
func runCategories(cmd *cobra.Command, args []string) error {
	for _, entry := range catalog.Default("").Categories {
		names := make([]string, len(entry.Units))
		for i, unit := range entry.Units {
			names[i] = unit.Name
		}
		fmt.Printf("%s (base: %s): %s\n", entry.Name, entry.BaseUnit, strings.Join(names, ", "))
	}
	return nil
}

// Logger adapters for packages that declare their own Logger interfaces
type convertUnitsLoggerAdapter struct {
	logger.Logger
}

func (a *convertUnitsLoggerAdapter) With(fields map[string]interface{}) cu.Logger {
	return &convertUnitsLoggerAdapter{a.Logger.With(fields)}
}

type interpretRequestLoggerAdapter struct {
	logger.Logger
}

func (a *interpretRequestLoggerAdapter) With(fields map[string]interface{}) ir.Logger {
	return &interpretRequestLoggerAdapter{a.Logger.With(fields)}
}

type geminiLoggerAdapter struct {
	logger.Logger
}

func (a *geminiLoggerAdapter) With(fields map[string]interface{}) gemini.Logger {
	return &geminiLoggerAdapter{a.Logger.With(fields)}
}
