// Package main provides the clam CLI application entry point.
// clam is an interactive command shell built on the clamshell runtime,
// bundled with a demo command set that exercises the argument model.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"clamshell/cmd/clam/commands"
	"clamshell/internal/logger"
	"clamshell/internal/shell"
	"clamshell/internal/version"
)

var (
	logLevel   string
	logFile    string
	noColor    bool
	configFile string
	detail     bool
)

// rootCmd dispatches its arguments as a single shell command; without
// arguments it starts whichever front-end matches stdin.
var rootCmd = &cobra.Command{
	Use:   "clam [command line...]",
	Short: "Clam - an interactive command shell",
	Long: `Clam is an interactive command shell built on the clamshell runtime.
Without arguments it reads commands from the terminal or from piped stdin;
with arguments it dispatches them as a single command and exits.`,
	Args: cobra.ArbitraryArgs,
	Run:  runShell,
}

// shellCmd starts the interactive loop regardless of what stdin looks like.
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start interactive shell mode",
	Long:  `Start the interactive clam shell even when stdin is not a terminal.`,
	Run: func(_ *cobra.Command, _ []string) {
		app := mustApp()
		exit(app, app.RunInteractive())
	},
}

// scriptCmd runs a .clam script file, stopping at the first failing line.
var scriptCmd = &cobra.Command{
	Use:   "script <file.clam>",
	Short: "Execute a .clam script file",
	Long: `Execute a .clam script file directly without entering interactive mode.
This is useful for automation and running predefined workflows.`,
	Args: cobra.ExactArgs(1),
	Run:  runScript,
}

// versionCmd prints build information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version of Clam.`,
	Run: func(_ *cobra.Command, _ []string) {
		if detail {
			fmt.Println(version.GetDetailedVersion())
			return
		}
		fmt.Println(version.GetFormattedVersion())
	},
}

func main() {
	// Missing .env is fine; present values feed the CLAM_ lookups below.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Read configuration from an explicit file")

	// Leave everything after the first command token alone so name=value
	// arguments pass through to the dispatcher untouched.
	rootCmd.Flags().SetInterspersed(false)

	viper.SetEnvPrefix("CLAM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Bind flags to viper
	for _, name := range []string{"log-level", "log-file", "no-color", "config"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", name, err)
			os.Exit(1)
		}
	}

	versionCmd.Flags().BoolVar(&detail, "detail", false, "Show full build information")

	// Add subcommands
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(scriptCmd)
	rootCmd.AddCommand(versionCmd)

	// Configure logger before any command execution
	cobra.OnInitialize(initLogging)
}

func initLogging() {
	if err := logger.Configure(viper.GetString("log-level"), viper.GetString("log-file"), false); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

// shellOptions folds the persistent flags into the runtime options.
func shellOptions() (shell.Options, error) {
	cmds, err := commands.All()
	if err != nil {
		return shell.Options{}, err
	}
	opts := shell.Options{
		Commands:   cmds,
		Version:    version.GetVersion(),
		ConfigFile: viper.GetString("config"),
	}
	if viper.GetBool("no-color") {
		opts.Color = "never"
	}
	return opts, nil
}

func mustApp() *shell.App {
	opts, err := shellOptions()
	if err != nil {
		logger.Fatal("Failed to build command set", "error", err)
	}
	app, err := shell.New("clam", opts)
	if err != nil {
		logger.Fatal("Failed to assemble shell", "error", err)
	}
	return app
}

// exit closes the app before leaving the process so the transcript and the
// usage journal flush.
func exit(app *shell.App, code int) {
	if err := app.Close(); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	os.Exit(code)
}

func runShell(_ *cobra.Command, args []string) {
	logger.Debug("Starting clam", "version", version.GetVersion())

	app := mustApp()
	exit(app, app.Main(args))
}

func runScript(_ *cobra.Command, args []string) {
	scriptPath := args[0]

	logger.Debug("Starting clam script mode", "version", version.GetVersion(), "script", scriptPath)

	if err := validateScriptFile(scriptPath); err != nil {
		logger.Fatal("Script validation failed", "error", err)
	}

	f, err := os.Open(scriptPath)
	if err != nil {
		logger.Fatal("Failed to open script", "error", err)
	}

	app := mustApp()
	code := app.RunScript(f)
	_ = f.Close()
	exit(app, code)
}

func validateScriptFile(scriptPath string) error {
	// Check if file exists
	if _, err := os.Stat(scriptPath); os.IsNotExist(err) {
		return fmt.Errorf("script file does not exist: %s", scriptPath)
	}

	// Check file extension
	if ext := filepath.Ext(scriptPath); ext != ".clam" {
		return fmt.Errorf("script file must have .clam extension, got: %s", ext)
	}

	return nil
}
